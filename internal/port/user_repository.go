package port

import (
	"context"

	"fooddelivery/internal/core/domain"
)

type UserRepository interface {
	// GetByEmail returns the first row matching, ErrNotFound on miss
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)

	// Insert appends a new user row; duplicate emails are the caller's problem
	Insert(ctx context.Context, user domain.UserAccount) error

	// UpdateProfile rewrites name, phone and address of the matching row,
	// leaving password and order history untouched
	UpdateProfile(ctx context.Context, email string, profile domain.Profile) error

	// AppendOrderHistory adds one entry to the matching row's history
	AppendOrderHistory(ctx context.Context, email, entry string) error
}
