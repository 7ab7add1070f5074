package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("old password does not match")
	ErrCreateFailed       = errors.New("unable to create user record")
	ErrDeleteFailed       = errors.New("unable to delete user record")
)

// Filter narrows a Find. Email is an exact match against the stored
// (lowercased) value; Name is a case-insensitive exact match.
type Filter struct {
	Email string
	Name  string
}

type Repository interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// Find returns one page of matches plus the total match count ignoring
	// pagination.
	Find(ctx context.Context, filter Filter, skip, limit int64) ([]User, int64, error)
	Insert(ctx context.Context, user User) error
	// Replace writes the full document keyed on its id.
	Replace(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
}
