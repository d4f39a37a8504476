package repository

import (
	"context"
	"errors"

	"shield-srv/internal/model"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned on a unique constraint violation.
var ErrDuplicate = errors.New("duplicate")

type Repository interface {
	// List returns all users of a company ordered by creation time.
	List(ctx context.Context, companyID string) ([]model.User, error)
	GetOneByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
}
