package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"recipeshare/internal/models"
	"recipeshare/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Identity is the projection returned on a successful login. It never carries
// the password hash.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthService handles business logic for accounts and authentication.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new account. The username is derived from the full name:
// lowercased, all whitespace stripped, with a random 0..999 suffix. The
// derivation is NOT re-checked against existing usernames; collisions are an
// accepted risk and the system gives no global-uniqueness guarantee.
func (s *AuthService) Register(fullName, email, password string) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email '%s': %w", email, models.ErrDuplicateEmail)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	username := strings.Join(strings.Fields(strings.ToLower(fullName)), "") + strconv.Itoa(rand.Intn(1000))

	user := &models.User{
		Username:     username,
		FullName:     fullName,
		Email:        email,
		Password:     string(hashedPassword),
		SavedRecipes: []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials for an email and returns a minimal identity
// projection. An unknown email and a wrong password both fail with
// models.ErrInvalidCredentials so the two cases are indistinguishable.
func (s *AuthService) Login(email, password string) (*Identity, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return &Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile merges the provided top-level fields into the user record and
// persists it. Fields absent from the input are left unchanged.
func (s *AuthService) UpdateProfile(id string, fields map[string]interface{}) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.ApplyPartial(fields)
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", id, err)
	}
	return user, nil
}
