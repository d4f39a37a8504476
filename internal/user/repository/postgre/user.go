package postgres

import (
	"context"
	"database/sql"

	"shield-srv/internal/model"
	"shield-srv/internal/user/repository"
	postgresPkg "shield-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const userColumns = `id, company_id, email, name, role, hashed_password, created_at, updated_at`

func (r *implRepository) List(ctx context.Context, companyID string) ([]model.User, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.IsUUID: %v", err)
		return nil, err
	}

	var rows []userRow
	err := queries.Raw(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY created_at ASC`,
		companyID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	users := make([]model.User, len(rows))
	for i, row := range rows {
		users[i] = row.toModel()
	}
	return users, nil
}

func (r *implRepository) GetOneByEmail(ctx context.Context, email string) (model.User, error) {
	var row userRow
	err := queries.Raw(
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOneByEmail.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if u.ID == "" {
		u.ID = postgresPkg.NewUUID()
	}
	if err := postgresPkg.IsUUID(u.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.IsUUID: %v", err)
		return model.User{}, err
	}

	now := r.clock()
	var row userRow
	err := queries.Raw(
		`INSERT INTO users (id, company_id, email, name, role, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING `+userColumns,
		u.ID, u.CompanyID, u.Email,
		null.NewString(u.Name, u.Name != ""), u.Role,
		null.NewString(u.HashedPassword, u.HashedPassword != ""), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}
