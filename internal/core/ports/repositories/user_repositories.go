package repositories

import (
	"context"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// UserRepository defines persistence operations for application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
	CountActiveUsers(ctx context.Context) (int64, error)
}
