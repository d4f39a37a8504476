package repository

import (
	"context"
	"errors"

	"shield-srv/internal/model"
	"shield-srv/pkg/paginator"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned on a unique constraint violation.
var ErrDuplicate = errors.New("duplicate")

type Repository interface {
	Detail(ctx context.Context, id string) (model.Company, error)
	List(ctx context.Context, opts ListOptions) ([]model.Company, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Company, paginator.Paginator, error)
	Create(ctx context.Context, opts CreateOptions) (model.Company, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Company, error)

	CreateBrand(ctx context.Context, opts CreateBrandOptions) (model.Brand, error)
	ListBrands(ctx context.Context, companyID string) ([]model.Brand, error)
	GetBrandByName(ctx context.Context, companyID, name string) (model.Brand, error)

	CreateAdAccount(ctx context.Context, opts CreateAdAccountOptions) (model.AdAccount, error)
	// LatestAdAccount returns the most recently updated attachment for the
	// provider across the company's brands, or ErrNotFound.
	LatestAdAccount(ctx context.Context, companyID, provider string) (model.AdAccount, error)
}
