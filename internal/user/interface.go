package user

import (
	"context"

	"shield-srv/internal/model"
)

type UseCase interface {
	// ListRecipients returns the users of the caller's company, for email
	// fan-out and member listings.
	ListRecipients(ctx context.Context, sc model.Scope) ([]model.User, error)
	// GetByEmail resolves a user by email within the caller's company.
	GetByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error)
}
