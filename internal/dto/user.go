package dto

import (
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// --- User DTOs ---

// CreateUserRequest defines data for creating a user account.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin moderator user"`
	Password string          `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the updatable user fields.
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=admin moderator user"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
}

// UserResponse defines data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain user to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converts a page of users.
func ToUserListResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return list
}

// --- Auth DTOs ---

// LoginRequest defines the credentials body of /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the successful login body.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
