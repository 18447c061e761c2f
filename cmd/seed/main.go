// Package main 為獨立的示範資料植入工具。
// 植入是明確的一次性操作，服務本身啟動時不會寫入任何資料。
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"timeclock/internal/database"
	"timeclock/internal/service"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	seedDemoUsers   = service.SeedDemoUsers
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	if err := seedDemoUsers(context.Background(), db); err != nil {
		return fmt.Errorf("示範帳號植入失敗: %v", err)
	}

	for _, acc := range service.DemoAccounts {
		log.Printf("seeded %s (%s)", acc.Email, acc.Role)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
