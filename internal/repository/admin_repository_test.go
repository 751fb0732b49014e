package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/repository"
)

func newTestAdmin(role entity.Role) entity.Admin {
	suffix := uuid.Must(uuid.NewV4()).String()

	return entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Test Admin",
		Username:     "admin-" + suffix,
		Email:        "admin-" + suffix + "@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         role,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestAdminRepository_CreateAndLookup(t *testing.T) {
	t.Parallel()

	repo := repository.NewAdminRepository(dbPool(t))

	want := newTestAdmin(entity.RoleAdmin)

	err := repo.CreateAdmin(context.Background(), want)
	require.NoError(t, err)

	for _, lookup := range []func() (entity.Admin, error){
		func() (entity.Admin, error) { return repo.AdminByEmail(context.Background(), want.Email) },
		func() (entity.Admin, error) { return repo.AdminByUsername(context.Background(), want.Username) },
		func() (entity.Admin, error) { return repo.AdminByID(context.Background(), want.ID) },
	} {
		got, err := lookup()
		require.NoError(t, err)
		require.True(t, want.CreatedAt.Equal(got.CreatedAt))
		got.CreatedAt = want.CreatedAt
		require.Equal(t, want, got)
	}
}

func TestAdminRepository_LookupMissing(t *testing.T) {
	t.Parallel()

	repo := repository.NewAdminRepository(dbPool(t))

	_, err := repo.AdminByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.AdminByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.AdminByID(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAdminRepository_CreateSuperAdminOnce(t *testing.T) {
	db := dbPool(t)
	repo := repository.NewAdminRepository(db)

	// start from a clean slate, other tests never touch the super admin row
	_, err := db.Exec(context.Background(), `DELETE FROM admins WHERE role = $1`, entity.RoleSuperAdmin)
	require.NoError(t, err)

	first := newTestAdmin(entity.RoleSuperAdmin)

	created, err := repo.CreateSuperAdmin(context.Background(), first)
	require.NoError(t, err)
	require.True(t, created)

	// a second bootstrap attempt inserts nothing
	created, err = repo.CreateSuperAdmin(context.Background(), newTestAdmin(entity.RoleSuperAdmin))
	require.NoError(t, err)
	require.False(t, created)

	got, err := repo.AdminByID(context.Background(), first.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleSuperAdmin, got.Role)
}
