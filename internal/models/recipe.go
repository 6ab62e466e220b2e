package models

// Recipe represents a published recipe.
//
// UserID references the publishing user but is stored as supplied and never
// checked against the user table; an orphaned reference is tolerated.
// TrendScore and Likes are engagement signals written by external collectors
// and are only read here, as ranking keys. Fields the backend does not model
// explicitly survive round trips through Extra.
type Recipe struct {
	ID           string                 `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string                 `json:"userId" gorm:"index;type:varchar(36)"`
	Title        string                 `json:"title" gorm:"type:varchar(255)"`
	Description  string                 `json:"description,omitempty" gorm:"type:text"`
	Ingredients  []string               `json:"ingredients,omitempty" gorm:"serializer:json"`
	Instructions []string               `json:"instructions,omitempty" gorm:"serializer:json"`
	Image        string                 `json:"image,omitempty" gorm:"type:varchar(512)"`
	Time         string                 `json:"time,omitempty" gorm:"type:varchar(50)"`
	TrendScore   int                    `json:"trendScore"`
	Likes        int                    `json:"likes"`
	Extra        map[string]interface{} `json:"extra,omitempty" gorm:"serializer:json"`
	CreatedAt    int64                  `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt    int64                  `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`
}

// ApplyPartial merges the provided top-level fields into the recipe. Known
// keys replace the matching typed field; anything else lands in Extra so
// unknown payload fields keep well-defined merge semantics instead of being
// dropped. Keys not present are left unchanged.
func (r *Recipe) ApplyPartial(fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "userId":
			if v, ok := value.(string); ok {
				r.UserID = v
			}
		case "title":
			if v, ok := value.(string); ok {
				r.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				r.Description = v
			}
		case "ingredients":
			if v, ok := toStringSlice(value); ok {
				r.Ingredients = v
			}
		case "instructions":
			if v, ok := toStringSlice(value); ok {
				r.Instructions = v
			}
		case "image":
			if v, ok := value.(string); ok {
				r.Image = v
			}
		case "time":
			if v, ok := value.(string); ok {
				r.Time = v
			}
		case "trendScore":
			if v, ok := toInt(value); ok {
				r.TrendScore = v
			}
		case "likes":
			if v, ok := toInt(value); ok {
				r.Likes = v
			}
		case "id", "createdAt", "updatedAt":
			// Identity and timestamps are never writable through a merge.
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]interface{})
			}
			r.Extra[key] = value
		}
	}
}

// toInt accepts the numeric types a JSON body parser can produce.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
