package repository

import "shield-srv/internal/model"

type CreateOptions struct {
	User model.User
}
