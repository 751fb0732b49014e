package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/mocks"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
)

type TestService struct {
	admins   *mocks.MockAdminRepository
	sessions *mocks.MockSessionRepository
	surveys  *mocks.MockSurveyRepository
	producer *mocks.MockPublisher
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	admins := mocks.NewMockAdminRepository(ctrl)
	sessions := mocks.NewMockSessionRepository(ctrl)
	surveys := mocks.NewMockSurveyRepository(ctrl)
	producer := mocks.NewMockPublisher(ctrl)

	cfg := config.Config{
		JWT: config.JWTConfig{Secret: "test-secret"},
		Bootstrap: config.BootstrapConfig{
			SuperAdminName:     "Super Admin",
			SuperAdminUsername: "superadmin",
			SuperAdminEmail:    "superadmin@gesa.local",
		},
	}

	return &TestService{
		admins:   admins,
		sessions: sessions,
		surveys:  surveys,
		producer: producer,
		s:        service.New(cfg, admins, sessions, surveys, producer),
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestSignIn_EmptyCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name       string
		identifier string
		password   string
	}{
		{name: "empty identifier", identifier: "", password: "secret"},
		{name: "blank identifier", identifier: "   ", password: "secret"},
		{name: "empty password", identifier: "admin@example.com", password: ""},
		{name: "both empty", identifier: "", password: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// no EXPECT calls: validation must fail before any lookup
			ts := NewTestService(t)

			_, err := ts.s.SignIn(ctx, tc.identifier, tc.password)
			require.ErrorIs(t, err, entity.ErrEmptyCredentials)
		})
	}
}

func TestSignIn_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	// the identifier is trimmed and lowercased before both lookups
	ts.admins.EXPECT().AdminByEmail(gomock.Any(), "ghost@example.com").Return(entity.Admin{}, entity.ErrNotFound)
	ts.admins.EXPECT().AdminByUsername(gomock.Any(), "ghost@example.com").Return(entity.Admin{}, entity.ErrNotFound)

	_, err := ts.s.SignIn(ctx, "  Ghost@Example.COM ", "whatever")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSignIn_WrongPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "budi",
		Email:        "budi@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         entity.RoleSurveyor,
	}

	ts.admins.EXPECT().AdminByEmail(gomock.Any(), "budi@example.com").Return(admin, nil)

	_, err := ts.s.SignIn(ctx, "budi@example.com", "wrong horse")
	require.ErrorIs(t, err, entity.ErrWrongPassword)
}

func TestSignIn_UsernameFallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "budi",
		Email:        "budi@example.com",
		PasswordHash: hashPassword(t, "rahasia123"),
		Role:         entity.RoleFieldOfficer,
	}

	ts.admins.EXPECT().AdminByEmail(gomock.Any(), "budi").Return(entity.Admin{}, entity.ErrNotFound)
	ts.admins.EXPECT().AdminByUsername(gomock.Any(), "budi").Return(admin, nil)
	ts.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.SignIn(ctx, "Budi", "rahasia123")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.Equal(t, admin.ID, tokens.User.ID)
}

func TestSignIn_SignOut_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Budi Santoso",
		Username:     "budi",
		Email:        "budi@example.com",
		PasswordHash: hashPassword(t, "rahasia123"),
		Role:         entity.RoleAdmin,
	}

	var savedSession entity.Session

	ts.admins.EXPECT().AdminByEmail(gomock.Any(), "budi@example.com").Return(admin, nil)
	ts.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session entity.Session) error {
			savedSession = session
			return nil
		})

	tokens, err := ts.s.SignIn(ctx, "budi@example.com", "rahasia123")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.Equal(t, admin.Email, tokens.User.Email)
	require.Nil(t, savedSession.ExpiresAt)

	// the token validates while the session row is alive
	ts.sessions.EXPECT().SessionByID(gomock.Any(), savedSession.ID).Return(savedSession, nil)
	ts.admins.EXPECT().AdminByID(gomock.Any(), admin.ID).Return(admin, nil)

	got, err := ts.s.ValidateToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, admin, got)

	// sign-out destroys the session
	ts.sessions.EXPECT().DeleteSession(gomock.Any(), savedSession.ID).Return(nil)

	err = ts.s.SignOut(ctx, tokens.AccessToken)
	require.NoError(t, err)

	// and the same token no longer validates
	ts.sessions.EXPECT().SessionByID(gomock.Any(), savedSession.ID).Return(entity.Session{}, entity.ErrNotFound)

	_, err = ts.s.ValidateToken(ctx, tokens.AccessToken)
	require.ErrorIs(t, err, entity.ErrSessionRevoked)
}

func TestValidateToken_Corrupted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// no EXPECT calls: a garbage token never reaches the session store
	ts := NewTestService(t)

	_, err := ts.s.ValidateToken(ctx, "definitely-not-a-jwt")
	require.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestSignOut_CorruptedToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	// nothing to destroy, not an error
	err := ts.s.SignOut(ctx, "definitely-not-a-jwt")
	require.NoError(t, err)
}
