// Package repository provides PostgreSQL-backed storage for users,
// session tokens, and checklist items. Interfaces are defined here so
// services can be exercised against fakes.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ChecklistAPI/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// SessionRepository stores the per-user active-token list. A session
// token is live only while its row exists.
type SessionRepository interface {
	Add(ctx context.Context, userID uuid.UUID, token, access string) error
	Exists(ctx context.Context, userID uuid.UUID, token, access string) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, token string) error
}

type ChecklistRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Checklist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Checklist, error)
	GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error)
	UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, text *string, completed bool, completedAt *time.Time) (*model.Checklist, error)
	DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error)
}
