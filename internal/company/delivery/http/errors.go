package http

import (
	"shield-srv/internal/company"
	pkgErrors "shield-srv/pkg/errors"
	"shield-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	company.ErrCompanyNotFound:   pkgErrors.NewHTTPError(40401, "Company not found", 404),
	company.ErrBrandNotFound:     pkgErrors.NewHTTPError(40402, "Brand not found", 404),
	company.ErrBrandExists:       pkgErrors.NewHTTPError(40901, "Brand already exists", 409),
	company.ErrAdAccountExists:   pkgErrors.NewHTTPError(40902, "Ad account already attached", 409),
	company.ErrUnauthorized:      pkgErrors.NewForbiddenHTTPError(),
	company.ErrFieldRequired:     pkgErrors.NewHTTPError(40001, "Missing required field", 400),
	company.ErrInvalidTimezone:   pkgErrors.NewHTTPError(40002, "Invalid IANA timezone", 400),
	company.ErrInvalidQuietHours: pkgErrors.NewHTTPError(40003, "Quiet hours must be HH:MM", 400),
	company.ErrInvalidWebhookURL: pkgErrors.NewHTTPError(40004, "Invalid Slack webhook URL", 400),
	company.ErrInvalidBrandMap:   pkgErrors.NewHTTPError(40005, "Invalid brand webhook map", 400),
	company.ErrNoWebhook:         pkgErrors.NewHTTPError(40006, "No webhook configured", 400),
	company.ErrMetaNotConnected:  pkgErrors.NewHTTPError(40007, "Meta access token not configured", 400),
}
