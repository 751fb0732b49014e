package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: pool,
	}
}

const adminColumns = "id, name, username, email, password_hash, role, created_at"

func (r *AdminRepository) AdminByEmail(ctx context.Context, email string) (entity.Admin, error) {
	sqlQuery := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1 ORDER BY created_at LIMIT 1`

	return r.scanAdmin(r.db.QueryRow(ctx, sqlQuery, email))
}

func (r *AdminRepository) AdminByUsername(ctx context.Context, username string) (entity.Admin, error) {
	sqlQuery := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1 ORDER BY created_at LIMIT 1`

	return r.scanAdmin(r.db.QueryRow(ctx, sqlQuery, username))
}

func (r *AdminRepository) AdminByID(ctx context.Context, id uuid.UUID) (entity.Admin, error) {
	sqlQuery := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	return r.scanAdmin(r.db.QueryRow(ctx, sqlQuery, id))
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, admin entity.Admin) error {
	sqlQuery := `
		INSERT INTO admins (id, name, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sqlQuery,
		admin.ID,
		admin.Name,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// CreateSuperAdmin inserts only when no super admin exists yet. The single
// conditional statement (plus the partial unique index) closes the
// check-then-act race of two concurrent bootstrap attempts.
func (r *AdminRepository) CreateSuperAdmin(ctx context.Context, admin entity.Admin) (bool, error) {
	sqlQuery := `
		INSERT INTO admins (id, name, username, email, password_hash, role, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (SELECT 1 FROM admins WHERE role = $6)
		ON CONFLICT DO NOTHING`

	tag, err := r.db.Exec(ctx, sqlQuery,
		admin.ID,
		admin.Name,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		entity.RoleSuperAdmin,
		admin.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *AdminRepository) scanAdmin(row pgx.Row) (entity.Admin, error) {
	var admin entity.Admin

	err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Admin{}, entity.ErrNotFound
		}

		return entity.Admin{}, err
	}

	return admin, nil
}
