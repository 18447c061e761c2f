// File: internal/service/seed.go
package service

import (
	"context"
	"fmt"

	"timeclock/internal/database"
	"timeclock/internal/model"
	"timeclock/internal/store"

	"github.com/google/uuid"
)

// DemoAccount 描述一組示範帳號
type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     model.UserRole
}

// DemoAccounts 為 cmd/seed 寫入的預設帳號；服務啟動本身不做任何植入
var DemoAccounts = []DemoAccount{
	{Email: "admin@omnigratum.com", Password: "admin123", Name: "Admin User", Role: model.RoleAdmin},
	{Email: "employee@omnigratum.com", Password: "employee123", Name: "Employee User", Role: model.RoleEmployee},
}

// SeedDemoUsers 建立不存在的示範帳號，已存在者略過
func SeedDemoUsers(ctx context.Context, db database.DB) error {
	for _, acc := range DemoAccounts {
		if _, err := store.GetUserByEmail(ctx, db, acc.Email); err == nil {
			continue
		} else if !store.IsNotFound(err) {
			return fmt.Errorf("SeedDemoUsers: %w", err)
		}

		hash, err := HashPassword(acc.Password)
		if err != nil {
			return fmt.Errorf("SeedDemoUsers: %w", err)
		}
		if _, err := store.CreateUser(ctx, db, &model.User{
			ID:           uuid.NewString(),
			Email:        acc.Email,
			PasswordHash: hash,
			Name:         acc.Name,
			Role:         acc.Role,
			Status:       "active",
		}); err != nil {
			return fmt.Errorf("SeedDemoUsers: %w", err)
		}
	}
	return nil
}
