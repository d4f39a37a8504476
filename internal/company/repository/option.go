package repository

import (
	"shield-srv/internal/model"
	"shield-srv/pkg/paginator"
)

// Filter narrows company listings for orchestration loops.
type Filter struct {
	HasFeedURL   bool
	HasMetaToken bool
	HasDailyCap  bool
}

// ListOptions contains options for listing companies.
type ListOptions struct {
	Filter Filter
}

// GetOptions contains options for paginated company listing.
type GetOptions struct {
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating a company.
type CreateOptions struct {
	Company model.Company
}

// UpdateOptions contains options for updating a company.
type UpdateOptions struct {
	Company model.Company
}

// CreateBrandOptions contains options for creating a brand.
type CreateBrandOptions struct {
	Brand model.Brand
}

// CreateAdAccountOptions contains options for attaching an ad account.
type CreateAdAccountOptions struct {
	AdAccount model.AdAccount
}
