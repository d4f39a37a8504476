package usecase

import (
	"context"
	"time"

	"shield-srv/internal/company"
	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	userRepo "shield-srv/internal/user/repository"
	"shield-srv/pkg/encrypter"
	"shield-srv/pkg/money"
	"shield-srv/pkg/slack"
	"shield-srv/pkg/timeutil"
)

const defaultDigestHour = 9

func (uc *usecase) GetSettings(ctx context.Context, sc model.Scope) (model.Company, error) {
	c, err := uc.repo.Detail(ctx, sc.CompanyID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Company{}, company.ErrCompanyNotFound
		}
		uc.l.Errorf(ctx, "internal.company.usecase.GetSettings.Detail: %v", err)
		return model.Company{}, err
	}
	return c, nil
}

func (uc *usecase) UpdateSettings(ctx context.Context, sc model.Scope, ip company.UpdateSettingsInput) (model.Company, error) {
	c, err := uc.repo.Detail(ctx, sc.CompanyID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Company{}, company.ErrCompanyNotFound
		}
		uc.l.Errorf(ctx, "internal.company.usecase.UpdateSettings.Detail: %v", err)
		return model.Company{}, err
	}

	if err := uc.applySettings(&c, ip); err != nil {
		return model.Company{}, err
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Company: c})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.UpdateSettings.Update: %v", err)
		return model.Company{}, err
	}
	return updated, nil
}

func (uc *usecase) applySettings(c *model.Company, ip company.UpdateSettingsInput) error {
	if ip.Name != nil {
		c.Name = *ip.Name
	}
	if ip.Timezone != nil {
		if _, err := time.LoadLocation(*ip.Timezone); err != nil || *ip.Timezone == "" {
			return company.ErrInvalidTimezone
		}
		c.Timezone = *ip.Timezone
	}
	if ip.Currency != nil {
		c.Currency = money.NormalizeCurrency(*ip.Currency)
	}
	if ip.MinSeverity != nil {
		c.MinSeverity = model.ParseSeverity(*ip.MinSeverity)
	}
	if ip.QuietStart != nil || ip.QuietEnd != nil {
		start, end := c.QuietStart, c.QuietEnd
		if ip.QuietStart != nil {
			start = *ip.QuietStart
		}
		if ip.QuietEnd != nil {
			end = *ip.QuietEnd
		}
		if err := validateQuietHours(start, end); err != nil {
			return err
		}
		c.QuietStart, c.QuietEnd = start, end
	}
	if ip.DigestHourLocal != nil {
		c.DigestHourLocal = timeutil.ClampHour(*ip.DigestHourLocal, defaultDigestHour)
	}
	if ip.SlackWebhookURL != nil {
		if err := validateWebhook(*ip.SlackWebhookURL); err != nil {
			return err
		}
		c.SlackWebhookURL = *ip.SlackWebhookURL
	}
	if ip.SummaryWebhookURL != nil {
		if err := validateWebhook(*ip.SummaryWebhookURL); err != nil {
			return err
		}
		c.SummaryWebhookURL = *ip.SummaryWebhookURL
	}
	if ip.BrandWebhooks != nil {
		m, err := parseBrandWebhookMap(*ip.BrandWebhooks)
		if err != nil {
			return err
		}
		c.BrandWebhooks = m
	}
	if ip.FeedURL != nil {
		c.FeedURL = *ip.FeedURL
	}
	if ip.DailyCapAmount != nil {
		c.DailyCapAmount = *ip.DailyCapAmount
	}
	if ip.MetaAccessToken != nil {
		if *ip.MetaAccessToken == "" {
			c.MetaAccessToken = ""
		} else {
			ciphertext, err := uc.encrypter.Encrypt(*ip.MetaAccessToken)
			if err != nil {
				return err
			}
			c.MetaAccessToken = ciphertext
		}
	}
	if ip.MetaAdAccountID != nil {
		c.MetaAdAccountID = *ip.MetaAdAccountID
	}
	return nil
}

// validateQuietHours requires both bounds set as HH:MM, or both empty.
func validateQuietHours(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if !timeutil.ValidHHMM(start) || !timeutil.ValidHHMM(end) {
		return company.ErrInvalidQuietHours
	}
	return nil
}

// validateWebhook accepts an empty string (clears the endpoint) or a valid
// Slack incoming webhook URL.
func validateWebhook(url string) error {
	if url == "" {
		return nil
	}
	if !slack.ValidWebhookURL(url) {
		return company.ErrInvalidWebhookURL
	}
	return nil
}

func (uc *usecase) Onboard(ctx context.Context, ip company.OnboardInput) (company.OnboardOutput, error) {
	if ip.CompanyName == "" || ip.AdminEmail == "" || ip.Password == "" {
		return company.OnboardOutput{}, company.ErrFieldRequired
	}
	tz := ip.Timezone
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return company.OnboardOutput{}, company.ErrInvalidTimezone
	}

	c, err := uc.repo.Create(ctx, repository.CreateOptions{Company: model.Company{
		Name:            ip.CompanyName,
		Timezone:        tz,
		Currency:        money.NormalizeCurrency(ip.Currency),
		MinSeverity:     model.SeverityOK,
		DigestHourLocal: defaultDigestHour,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.Onboard.Create: %v", err)
		return company.OnboardOutput{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.Onboard.HashPassword: %v", err)
		return company.OnboardOutput{}, err
	}

	admin, err := uc.userRepo.Create(ctx, userRepo.CreateOptions{User: model.User{
		CompanyID:      c.ID,
		Email:          ip.AdminEmail,
		Name:           ip.AdminName,
		Role:           model.RoleAdmin,
		HashedPassword: hash,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.Onboard.CreateUser: %v", err)
		return company.OnboardOutput{}, err
	}

	// every company starts with a default brand named after it
	brand, err := uc.repo.CreateBrand(ctx, repository.CreateBrandOptions{Brand: model.Brand{
		CompanyID: c.ID,
		Name:      ip.CompanyName,
		Currency:  c.Currency,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.Onboard.CreateBrand: %v", err)
		return company.OnboardOutput{}, err
	}

	return company.OnboardOutput{Company: c, Admin: admin, Brand: brand}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip company.GetInput) (company.GetCompanyOutput, error) {
	if !sc.IsAdmin() {
		return company.GetCompanyOutput{}, company.ErrUnauthorized
	}

	companies, pag, err := uc.repo.Get(ctx, repository.GetOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.Get.Get: %v", err)
		return company.GetCompanyOutput{}, err
	}

	return company.GetCompanyOutput{Companies: companies, Paginator: pag}, nil
}
