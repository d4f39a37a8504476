package usecase

import (
	"context"

	"shield-srv/internal/company"
	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	"shield-srv/pkg/money"
	"shield-srv/pkg/slack"
)

func (uc *usecase) CreateBrand(ctx context.Context, sc model.Scope, ip company.CreateBrandInput) (model.Brand, error) {
	if ip.Name == "" {
		return model.Brand{}, company.ErrFieldRequired
	}
	if ip.WebhookURL != "" && !slack.ValidWebhookURL(ip.WebhookURL) {
		return model.Brand{}, company.ErrInvalidWebhookURL
	}

	b, err := uc.repo.CreateBrand(ctx, repository.CreateBrandOptions{Brand: model.Brand{
		CompanyID:  sc.CompanyID,
		Name:       ip.Name,
		Currency:   money.NormalizeCurrency(ip.Currency),
		WebhookURL: ip.WebhookURL,
	}})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.Brand{}, company.ErrBrandExists
		}
		uc.l.Errorf(ctx, "internal.company.usecase.CreateBrand.CreateBrand: %v", err)
		return model.Brand{}, err
	}

	return b, nil
}

func (uc *usecase) ListBrands(ctx context.Context, sc model.Scope) ([]model.Brand, error) {
	brands, err := uc.repo.ListBrands(ctx, sc.CompanyID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.ListBrands.ListBrands: %v", err)
		return nil, err
	}
	return brands, nil
}

func (uc *usecase) AttachAdAccount(ctx context.Context, sc model.Scope, ip company.AttachAdAccountInput) (model.AdAccount, error) {
	if ip.BrandID == "" || ip.Provider == "" || ip.ExternalID == "" {
		return model.AdAccount{}, company.ErrFieldRequired
	}

	// the brand must belong to the caller's company
	brands, err := uc.repo.ListBrands(ctx, sc.CompanyID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.AttachAdAccount.ListBrands: %v", err)
		return model.AdAccount{}, err
	}
	owned := false
	for _, b := range brands {
		if b.ID == ip.BrandID {
			owned = true
			break
		}
	}
	if !owned {
		return model.AdAccount{}, company.ErrBrandNotFound
	}

	a, err := uc.repo.CreateAdAccount(ctx, repository.CreateAdAccountOptions{AdAccount: model.AdAccount{
		BrandID:    ip.BrandID,
		Provider:   ip.Provider,
		ExternalID: ip.ExternalID,
	}})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.AdAccount{}, company.ErrAdAccountExists
		}
		uc.l.Errorf(ctx, "internal.company.usecase.AttachAdAccount.CreateAdAccount: %v", err)
		return model.AdAccount{}, err
	}

	return a, nil
}
