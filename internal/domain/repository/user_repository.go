package repository

import (
	"context"

	"inventra/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
