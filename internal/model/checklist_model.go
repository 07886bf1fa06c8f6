package model

import (
	"time"

	"github.com/google/uuid"
)

type Checklist struct {
	ChecklistID uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"` // null until completed
	CreatorID   uuid.UUID  `json:"creator"`
	CreatedAt   time.Time  `json:"created_at"`
}
