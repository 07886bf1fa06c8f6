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

type PostgresChecklistRepository struct {
	DB *pgxpool.Pool
}

func NewChecklistRepository(db *pgxpool.Pool) *PostgresChecklistRepository {
	return &PostgresChecklistRepository{DB: db}
}

func (r *PostgresChecklistRepository) Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Checklist, error) {
	cl := &model.Checklist{
		ChecklistID: uuid.New(),
		Text:        text,
		Completed:   false,
		CompletedAt: nil,
		CreatorID:   ownerID,
		CreatedAt:   time.Now(),
	}
	query := `INSERT INTO checklists (checklist_id, text, completed, completed_at, creator_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.Exec(ctx, query, cl.ChecklistID, cl.Text, cl.Completed, cl.CompletedAt, cl.CreatorID, cl.CreatedAt); err != nil {
		return nil, err
	}
	return cl, nil
}

func (r *PostgresChecklistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Checklist, error) {
	query := `SELECT checklist_id, text, completed, completed_at, creator_id, created_at
			FROM checklists
			WHERE creator_id=$1
			ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Checklist{}
	for rows.Next() {
		var cl model.Checklist
		if err := rows.Scan(&cl.ChecklistID, &cl.Text, &cl.Completed, &cl.CompletedAt, &cl.CreatorID, &cl.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, cl)
	}
	return list, rows.Err()
}

func (r *PostgresChecklistRepository) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	var cl model.Checklist
	query := `SELECT checklist_id, text, completed, completed_at, creator_id, created_at
			FROM checklists
			WHERE checklist_id=$1 AND creator_id=$2`
	err := r.DB.QueryRow(ctx, query, id, ownerID).
		Scan(&cl.ChecklistID, &cl.Text, &cl.Completed, &cl.CompletedAt, &cl.CreatorID, &cl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}

// UpdateByOwner rewrites text (when non-nil) and the completion pair,
// returning the updated row. The (id, owner) predicate keeps a user
// from touching anyone else's items.
func (r *PostgresChecklistRepository) UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, text *string, completed bool, completedAt *time.Time) (*model.Checklist, error) {
	var cl model.Checklist
	query := `UPDATE checklists
			SET text=COALESCE($3, text), completed=$4, completed_at=$5
			WHERE checklist_id=$1 AND creator_id=$2
			RETURNING checklist_id, text, completed, completed_at, creator_id, created_at`
	err := r.DB.QueryRow(ctx, query, id, ownerID, text, completed, completedAt).
		Scan(&cl.ChecklistID, &cl.Text, &cl.Completed, &cl.CompletedAt, &cl.CreatorID, &cl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}

func (r *PostgresChecklistRepository) DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	var cl model.Checklist
	query := `DELETE FROM checklists
			WHERE checklist_id=$1 AND creator_id=$2
			RETURNING checklist_id, text, completed, completed_at, creator_id, created_at`
	err := r.DB.QueryRow(ctx, query, id, ownerID).
		Scan(&cl.ChecklistID, &cl.Text, &cl.Completed, &cl.CompletedAt, &cl.CreatorID, &cl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}
