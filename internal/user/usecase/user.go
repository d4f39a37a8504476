package usecase

import (
	"context"

	"shield-srv/internal/model"
	"shield-srv/internal/user"
	"shield-srv/internal/user/repository"
)

func (uc *usecase) ListRecipients(ctx context.Context, sc model.Scope) ([]model.User, error) {
	users, err := uc.repo.List(ctx, sc.CompanyID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ListRecipients.List: %v", err)
		return nil, err
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

func (uc *usecase) GetByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error) {
	u, err := uc.repo.GetOneByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetByEmail.GetOneByEmail: %v", err)
		return model.User{}, err
	}
	if u.CompanyID != sc.CompanyID {
		return model.User{}, user.ErrUserNotFound
	}
	u.HashedPassword = ""
	return u, nil
}
