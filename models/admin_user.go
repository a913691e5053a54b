package models

import (
	"time"
)

// AdminUser represents a back-office user. Admin access is granted by
// presence in the admin_users table, not by a token claim alone.
type AdminUser struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AdminUserInput holds data for creating an admin user
type AdminUserInput struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// AdminUserUpdateInput holds data for updating an admin user
type AdminUserUpdateInput struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
}

// AdminLoginInput holds credentials for the admin sign-in call
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
