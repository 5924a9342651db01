// Package service holds the domain validation and state-transition rules.
package service

import (
	"context"

	"quorum/internal/models"
	"quorum/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountService implements registration and login validation.
type AccountService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// LoginInput carries the login payload. The identifier is matched against
// both username and email.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register validates and creates a new user account. The duplicate check runs
// as a single username-OR-email query.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if in.LastName == "" {
		missing = append(missing, "last_name")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, models.NewMissingFieldError(missing...)
	}

	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewDuplicateIdentityError()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the identifier against username or email and verifies the
// credential.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.UsernameOrEmail == "" {
		return nil, models.NewMissingFieldError("username_or_email")
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, in.UsernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnknownIdentityError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}
