package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound reports a lookup that matched no user.
	ErrNotFound = errors.New("identity: user not found")
	// ErrDuplicateEmail reports a create that would violate the one-user-per-email invariant.
	ErrDuplicateEmail = errors.New("identity: email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update persists the mutable account state: password hash, verification
	// flag and both OTP pairs.
	Update(ctx context.Context, u *User) error
}
