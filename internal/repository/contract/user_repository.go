package contract

import (
	"context"

	"contractdesk-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	FindById(ctx context.Context, id uint) (*entity.User, error)
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
}
