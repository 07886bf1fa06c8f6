package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/model"
	"ChecklistAPI/internal/repository"
)

type ChecklistService struct {
	Items repository.ChecklistRepository
}

func NewChecklistService(r repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{Items: r}
}

// parseItemID folds structurally invalid ids into not-found, so a
// malformed id and an absent one are indistinguishable to the caller.
func parseItemID(rawID string) (uuid.UUID, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, apperr.ErrNotFound
	}
	return id, nil
}

func (s *ChecklistService) Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Checklist, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("text", "is required")
	}
	return s.Items.Create(ctx, ownerID, text)
}

func (s *ChecklistService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Checklist, error) {
	return s.Items.ListByOwner(ctx, ownerID)
}

func (s *ChecklistService) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (*model.Checklist, error) {
	id, err := parseItemID(rawID)
	if err != nil {
		return nil, err
	}
	return s.Items.GetByOwner(ctx, ownerID, id)
}

// Update accepts only text and completed from caller input. The
// completion pair is recomputed on every update from the provided
// completed value: true stamps completedAt with the current time,
// false or absent clears both.
func (s *ChecklistService) Update(ctx context.Context, ownerID uuid.UUID, rawID string, text *string, completed *bool) (*model.Checklist, error) {
	id, err := parseItemID(rawID)
	if err != nil {
		return nil, err
	}
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return nil, apperr.Validation("text", "is required")
		}
		text = &trimmed
	}
	done := completed != nil && *completed
	var completedAt *time.Time
	if done {
		now := time.Now()
		completedAt = &now
	}
	return s.Items.UpdateByOwner(ctx, ownerID, id, text, done, completedAt)
}

func (s *ChecklistService) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) (*model.Checklist, error) {
	id, err := parseItemID(rawID)
	if err != nil {
		return nil, err
	}
	return s.Items.DeleteByOwner(ctx, ownerID, id)
}
