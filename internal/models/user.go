package models

import "gorm.io/gorm"

// User represents a registered account.
//
// Username is derived from the full name at registration and is deliberately
// NOT backed by a unique index: the derivation carries an accepted collision
// risk and the wider system makes no global-uniqueness guarantee. Email is the
// only unique key; its index doubles as the store-level backstop for the
// check-then-insert race in registration.
type User struct {
	ID           string   `json:"userId" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string   `json:"username" gorm:"type:varchar(100)"`
	FullName     string   `json:"fullName" gorm:"type:varchar(255)" validate:"required"`
	Email        string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password     string   `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	SavedRecipes []string `json:"savedRecipes" gorm:"serializer:json"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ApplyPartial merges the provided top-level fields into the user record.
// Keys not present are left unchanged; unknown keys are ignored. The password
// hash is not reachable through this path.
func (u *User) ApplyPartial(fields map[string]interface{}) {
	if v, ok := fields["fullName"].(string); ok {
		u.FullName = v
	}
	if v, ok := fields["username"].(string); ok {
		u.Username = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["savedRecipes"]; ok {
		if ids, ok := toStringSlice(v); ok {
			u.SavedRecipes = ids
		}
	}
}

// toStringSlice converts a decoded JSON array into []string. JSON arrays
// arrive from the body parser as []interface{}.
func toStringSlice(v interface{}) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
