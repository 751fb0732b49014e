package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

const bootstrapPasswordBytes = 12

type BootstrapResult struct {
	Created     bool                          `json:"created"`
	Credentials *entity.SuperAdminCredentials `json:"credentials,omitempty"`
}

// CreateInitialSuperAdmin provisions the one super admin account. The insert
// is conditional on no super admin existing, so calling it twice (even
// concurrently) yields exactly one row; the losing call reports Created=false.
// Generated credentials are returned exactly once and never stored in clear.
func (s *Service) CreateInitialSuperAdmin(ctx context.Context) (BootstrapResult, error) {
	password, err := generatePassword()
	if err != nil {
		return BootstrapResult{}, fmt.Errorf("generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return BootstrapResult{}, fmt.Errorf("hash password: %w", err)
	}

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         s.cfg.Bootstrap.SuperAdminName,
		Username:     strings.ToLower(s.cfg.Bootstrap.SuperAdminUsername),
		Email:        strings.ToLower(s.cfg.Bootstrap.SuperAdminEmail),
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.admins.CreateSuperAdmin(ctx, admin)
	if err != nil {
		slog.ErrorContext(ctx, "create super admin failed", "error", err)

		return BootstrapResult{}, fmt.Errorf("create super admin: %w", err)
	}

	if !created {
		slog.InfoContext(ctx, "super admin already exists, nothing created")

		return BootstrapResult{Created: false}, nil
	}

	slog.InfoContext(ctx, "super admin created", "username", admin.Username)

	return BootstrapResult{
		Created: true,
		Credentials: &entity.SuperAdminCredentials{
			Email:    admin.Email,
			Username: admin.Username,
			Password: password,
		},
	}, nil
}

func generatePassword() (string, error) {
	b := make([]byte, bootstrapPasswordBytes)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
