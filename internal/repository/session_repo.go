package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSessionRepository struct {
	DB *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{DB: db}
}

// Add appends a token to the user's active-token list.
func (r *PostgresSessionRepository) Add(ctx context.Context, userID uuid.UUID, token, access string) error {
	query := `INSERT INTO session_tokens (token, user_id, access, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, query, token, userID, access, time.Now())
	return err
}

// Exists reports whether the exact token string is still listed for the
// user with the given access scope.
func (r *PostgresSessionRepository) Exists(ctx context.Context, userID uuid.UUID, token, access string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM session_tokens WHERE user_id=$1 AND token=$2 AND access=$3)`
	if err := r.DB.QueryRow(ctx, query, userID, token, access).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Remove deletes the token from the user's list. Removing an absent
// token is not an error.
func (r *PostgresSessionRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	query := `DELETE FROM session_tokens WHERE user_id=$1 AND token=$2`
	_, err := r.DB.Exec(ctx, query, userID, token)
	return err
}
