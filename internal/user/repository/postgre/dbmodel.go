package postgres

import (
	"time"

	"shield-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type userRow struct {
	ID             string      `boil:"id"`
	CompanyID      string      `boil:"company_id"`
	Email          string      `boil:"email"`
	Name           null.String `boil:"name"`
	Role           string      `boil:"role"`
	HashedPassword null.String `boil:"hashed_password"`
	CreatedAt      time.Time   `boil:"created_at"`
	UpdatedAt      time.Time   `boil:"updated_at"`
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		Email:          r.Email,
		Name:           r.Name.String,
		Role:           r.Role,
		HashedPassword: r.HashedPassword.String,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
