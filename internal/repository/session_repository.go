package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: pool,
	}
}

func (r *SessionRepository) SaveSession(ctx context.Context, session entity.Session) error {
	sqlQuery := `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, sqlQuery,
		session.ID,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) SessionByID(ctx context.Context, id uuid.UUID) (entity.Session, error) {
	sqlQuery := `SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = $1`

	var session entity.Session

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&session.ID,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, entity.ErrNotFound
		}

		return entity.Session{}, err
	}

	return session, nil
}

// DeleteSession is idempotent: deleting an absent session is not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	sqlQuery := `DELETE FROM sessions WHERE id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	sqlQuery := `DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at < now()`

	_, err := r.db.Exec(ctx, sqlQuery)
	if err != nil {
		return err
	}

	return nil
}
