package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// UserService is the façade for registration, login, profile changes and
// order-history reads. All input validation happens here, before any store
// call, so bad input never creates partial state.
type UserService struct {
	users  port.UserRepository
	logger *zap.SugaredLogger
}

func NewUserService(users port.UserRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register validates the sign-up fields and creates the account. An email
// that already has an account is rejected, so lookups by email stay
// unambiguous.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) error {
	if !domain.ValidatePhoneNumber(reg.PhoneNumber) {
		return &domain.ValidationError{Field: "phone number", Reason: "must be exactly 10 digits"}
	}
	if !domain.ValidateEmail(reg.Email) {
		return &domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if !domain.ValidatePassword(reg.Password) {
		return &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	_, err := s.users.GetByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return fmt.Errorf("%s: %w", reg.Email, ErrDuplicateEmail)
	case !errors.Is(err, port.ErrNotFound):
		return err
	}

	if err := s.users.Insert(ctx, domain.UserAccount{
		FullName:    reg.FullName,
		PhoneNumber: reg.PhoneNumber,
		Email:       reg.Email,
		Address:     reg.Address,
		Password:    reg.Password,
	}); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	s.logger.Infow("user registered", "email", reg.Email)
	return nil
}

// Login checks the stored credentials. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.UserAccount, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile re-validates the phone number, then rewrites the mutable
// profile fields. Password and order history are untouched.
func (s *UserService) UpdateProfile(ctx context.Context, email string, profile domain.Profile) error {
	if !domain.ValidatePhoneNumber(profile.PhoneNumber) {
		return &domain.ValidationError{Field: "phone number", Reason: "must be exactly 10 digits"}
	}
	return s.users.UpdateProfile(ctx, email, profile)
}

// OrderHistory returns the user's order entries, oldest first.
func (s *UserService) OrderHistory(ctx context.Context, email string) ([]string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.OrderHistory, nil
}
