package services

import (
	"errors"
	"fmt"
	"time"

	"quill/app/auth"
	"quill/app/models"
	"quill/app/repositories"
)

// ErrInvalidCredentials covers both an unknown username and a password
// mismatch, so login failures do not reveal which one occurred.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles registration and credential verification
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, tokens *auth.TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register hashes the password and inserts a new user
func (s *UserService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a session token on success
func (s *UserService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %v", err)
	}
	return user, token, nil
}
