package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// UserSvc defines operations over application users.
type UserSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
	// Authenticate verifies email/password credentials and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// FindOrCreateGoogleUser resolves a Google sign-in to a local account,
	// provisioning a role=user account on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}
