// Command bootstrap provisions the initial super admin account and prints
// the generated credentials once. Safe to re-run: a second invocation
// reports that the account already exists and inserts nothing.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/repository"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/logger"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	slog.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel)))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	adminRepo := repository.NewAdminRepository(pool)

	s := service.New(cfg, adminRepo, nil, nil, nil)

	result, err := s.CreateInitialSuperAdmin(ctx)
	panicOnErr("create initial super admin", err)

	if !result.Created {
		fmt.Println("Super admin already exists, nothing created.")
		os.Exit(0)
	}

	fmt.Println("Super admin created. Store these credentials now, they will not be shown again:")
	fmt.Printf("  email:    %s\n", result.Credentials.Email)
	fmt.Printf("  username: %s\n", result.Credentials.Username)
	fmt.Printf("  password: %s\n", result.Credentials.Password)
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
