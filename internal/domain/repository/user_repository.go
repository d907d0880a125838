package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

// Users are provisioned by the identity provider; this core only reads them.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
