package company

import (
	"context"

	"shield-srv/internal/model"
)

type UseCase interface {
	GetSettings(ctx context.Context, sc model.Scope) (model.Company, error)
	UpdateSettings(ctx context.Context, sc model.Scope, ip UpdateSettingsInput) (model.Company, error)
	Onboard(ctx context.Context, ip OnboardInput) (OnboardOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetCompanyOutput, error)

	CreateBrand(ctx context.Context, sc model.Scope, ip CreateBrandInput) (model.Brand, error)
	ListBrands(ctx context.Context, sc model.Scope) ([]model.Brand, error)
	AttachAdAccount(ctx context.Context, sc model.Scope, ip AttachAdAccountInput) (model.AdAccount, error)

	SendTestSlack(ctx context.Context, sc model.Scope, ip SendTestSlackInput) error
	SendTestEmail(ctx context.Context, sc model.Scope, ip SendTestEmailInput) error
}
