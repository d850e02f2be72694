package domain

import "time"

// UserRole defines the roles a user can hold. The set is deliberate: admin can
// do everything, moderator can create and edit, user can only create.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleUser      UserRole = "user"
)

// CanEdit reports whether the role may update existing records.
func (r UserRole) CanEdit() bool {
	return r == RoleAdmin || r == RoleModerator
}

// CanDelete reports whether the role may delete records.
func (r UserRole) CanDelete() bool {
	return r == RoleAdmin
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID" db:"user_id"`
	Name         string   `json:"name" db:"name"`
	Email        string   `json:"email" db:"email"`
	Role         UserRole `json:"role" db:"role"`
	PasswordHash string   `json:"-" db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
