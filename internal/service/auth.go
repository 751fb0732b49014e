package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

// SignIn authenticates by email first, then by username. Both lookups are
// lowercased; accounts are stored with lowercase email and username.
func (s *Service) SignIn(ctx context.Context, identifier, password string) (entity.UserTokens, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return entity.UserTokens{}, entity.ErrEmptyCredentials
	}

	identifier = strings.ToLower(identifier)

	admin, err := s.admins.AdminByEmail(ctx, identifier)
	if errors.Is(err, entity.ErrNotFound) {
		admin, err = s.admins.AdminByUsername(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.UserTokens{}, entity.ErrNotFound
		}

		slog.ErrorContext(ctx, "sign in lookup failed", "error", err)

		return entity.UserTokens{}, fmt.Errorf("lookup account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return entity.UserTokens{}, entity.ErrWrongPassword
	}

	session := entity.Session{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    admin.ID,
		CreatedAt: time.Now(),
	}

	if s.cfg.JWT.AccessTokenExpiry > 0 {
		expiresAt := session.CreatedAt.Add(s.cfg.JWT.AccessTokenExpiry)
		session.ExpiresAt = &expiresAt
	}

	err = s.sessions.SaveSession(ctx, session)
	if err != nil {
		slog.ErrorContext(ctx, "save session failed", "error", err)

		return entity.UserTokens{}, fmt.Errorf("save session: %w", err)
	}

	accessToken, err := s.generateAccessToken(admin, session)
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("generate access token: %w", err)
	}

	slog.InfoContext(ctx, "user signed in", "username", admin.Username, "role", admin.Role)

	return entity.UserTokens{
		AccessToken: accessToken,
		User:        admin,
	}, nil
}

// SignOut destroys the session behind the token. Unknown or malformed
// tokens leave nothing to destroy and are not an error.
func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	claims, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil
	}

	sessionID, err := uuid.FromString(claims.RegisteredClaims.ID)
	if err != nil {
		return nil
	}

	err = s.sessions.DeleteSession(ctx, sessionID)
	if err != nil {
		slog.ErrorContext(ctx, "delete session failed", "error", err)

		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// ValidateToken checks the token signature and that its session is still
// alive, then returns the current account record.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (entity.Admin, error) {
	claims, err := s.parseAccessToken(accessToken)
	if err != nil {
		return entity.Admin{}, entity.ErrInvalidToken
	}

	sessionID, err := uuid.FromString(claims.RegisteredClaims.ID)
	if err != nil {
		return entity.Admin{}, entity.ErrInvalidToken
	}

	session, err := s.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Admin{}, entity.ErrSessionRevoked
		}

		return entity.Admin{}, fmt.Errorf("load session: %w", err)
	}

	if session.ExpiresAt != nil && session.ExpiresAt.Before(time.Now()) {
		_ = s.sessions.DeleteSession(ctx, sessionID)

		return entity.Admin{}, entity.ErrSessionRevoked
	}

	admin, err := s.admins.AdminByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Admin{}, entity.ErrSessionRevoked
		}

		return entity.Admin{}, fmt.Errorf("load account: %w", err)
	}

	return admin, nil
}

func (s *Service) generateAccessToken(admin entity.Admin, session entity.Session) (string, error) {
	claims := entity.UserJwtClaims{
		User: entity.UserJwtInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Role:     admin.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       session.ID.String(),
			Subject:  admin.ID.String(),
			IssuedAt: jwt.NewNumericDate(session.CreatedAt),
		},
	}

	if session.ExpiresAt != nil {
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(*session.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

func (s *Service) parseAccessToken(accessToken string) (*entity.UserJwtClaims, error) {
	var claims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", entity.ErrInvalidToken, t.Header["alg"])
		}

		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, entity.ErrInvalidToken
	}

	return &claims, nil
}
