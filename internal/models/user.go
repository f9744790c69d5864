package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents the application user account. Admin and staff accounts live
// in the same collection, distinguished by role.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
