package services_test

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"testing"

	"recipeshare/internal/models"
	"recipeshare/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) AppendSavedRecipe(userID, recipeID string) ([]string, error) {
	args := m.Called(userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// notFoundErr mimics the wrapped error shape the repositories produce.
func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, models.ErrNotFound)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	// Test successful registration
	mockRepo.On("GetByEmail", "jane@example.com").Return(nil, notFoundErr("user with email jane@example.com")).Once()
	var created *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.User)
	}).Return(nil).Once()

	user, err := authService.Register("Jane De Vries", "jane@example.com", "password123")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, created, user)
	mockRepo.AssertExpectations(t)

	// Username: lowercased full name, whitespace stripped, 0..999 decimal suffix
	assert.Regexp(t, regexp.MustCompile(`^janedevries[0-9]{1,3}$`), user.Username)
	assert.Equal(t, "Jane De Vries", user.FullName)
	assert.NotNil(t, user.SavedRecipes)
	assert.Empty(t, user.SavedRecipes)

	// The plaintext is discarded; the stored value is a verifiable bcrypt hash
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	existing := &models.User{ID: "user-1", Email: "jane@example.com"}
	mockRepo.On("GetByEmail", "jane@example.com").Return(existing, nil).Once()

	user, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "janedoe42",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: string(hashedPassword),
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	identity, err := authService.Login("jane@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, &services.Identity{
		UserID:   "user-123",
		Username: "janedoe42",
		Email:    "jane@example.com",
	}, identity)
	mockRepo.AssertExpectations(t)

	// Wrong password and unknown email must produce the same failure
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, errWrongPassword := authService.Login("jane@example.com", "wrongpassword")
	assert.ErrorIs(t, errWrongPassword, models.ErrInvalidCredentials)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, notFoundErr("user with email ghost@example.com")).Once()
	_, errUnknownEmail := authService.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, errUnknownEmail, models.ErrInvalidCredentials)

	assert.Equal(t, errWrongPassword, errUnknownEmail)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	user := &models.User{
		ID:           "user-123",
		Username:     "janedoe42",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Password:     "hash",
		SavedRecipes: []string{"recipe-1"},
	}

	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	updated, err := authService.UpdateProfile("user-123", map[string]interface{}{"fullName": "Jane D."})
	assert.NoError(t, err)
	assert.Equal(t, "Jane D.", updated.FullName)

	// Fields not present in the input are left unchanged
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "janedoe42", updated.Username)
	assert.Equal(t, []string{"recipe-1"}, updated.SavedRecipes)
	assert.Equal(t, "hash", updated.Password)
	mockRepo.AssertExpectations(t)

	// Test user not found
	mockRepo.On("GetByID", "ghost").Return(nil, notFoundErr("user with ID ghost")).Once()
	_, err = authService.UpdateProfile("ghost", map[string]interface{}{"fullName": "X"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
