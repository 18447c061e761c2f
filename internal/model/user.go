// File: internal/model/user.go
package model

import "time"

// UserRole 使用者角色，封閉集合 {admin, employee}
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// Valid 檢查角色是否為已知值
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Name           string    `db:"name" json:"name"`
	Role           UserRole  `db:"role" json:"role"`
	Status         string    `db:"status" json:"status"`
	DefaultProject *string   `db:"default_project" json:"default_project,omitempty"`
	DefaultTask    *string   `db:"default_task" json:"default_task,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin 判斷使用者是否具管理員角色
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
