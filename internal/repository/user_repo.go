package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/model"
)

type PostgresUserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// Create inserts a new user and returns the created record.
func (r *PostgresUserRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	u := &model.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	query := `INSERT INTO users (user_id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, u.UserID, u.Email, u.PasswordHash, u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT user_id, email, password_hash, created_at FROM users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	query := `SELECT user_id, email, password_hash, created_at FROM users WHERE user_id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
