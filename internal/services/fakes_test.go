package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/model"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	u := &model.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.UserID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

type sessionKey struct {
	userID uuid.UUID
	token  string
	access string
}

type fakeSessionRepo struct {
	sessions map[sessionKey]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[sessionKey]bool{}}
}

func (f *fakeSessionRepo) Add(ctx context.Context, userID uuid.UUID, token, access string) error {
	f.sessions[sessionKey{userID, token, access}] = true
	return nil
}

func (f *fakeSessionRepo) Exists(ctx context.Context, userID uuid.UUID, token, access string) (bool, error) {
	return f.sessions[sessionKey{userID, token, access}], nil
}

func (f *fakeSessionRepo) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	delete(f.sessions, sessionKey{userID, token, model.AccessAuth})
	return nil
}

type fakeChecklistRepo struct {
	items []model.Checklist
}

func (f *fakeChecklistRepo) Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Checklist, error) {
	cl := model.Checklist{
		ChecklistID: uuid.New(),
		Text:        text,
		CreatorID:   ownerID,
		CreatedAt:   time.Now(),
	}
	f.items = append(f.items, cl)
	return &cl, nil
}

func (f *fakeChecklistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Checklist, error) {
	list := []model.Checklist{}
	for _, cl := range f.items {
		if cl.CreatorID == ownerID {
			list = append(list, cl)
		}
	}
	return list, nil
}

func (f *fakeChecklistRepo) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	for i := range f.items {
		if f.items[i].ChecklistID == id && f.items[i].CreatorID == ownerID {
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeChecklistRepo) UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, text *string, completed bool, completedAt *time.Time) (*model.Checklist, error) {
	for i := range f.items {
		if f.items[i].ChecklistID == id && f.items[i].CreatorID == ownerID {
			if text != nil {
				f.items[i].Text = *text
			}
			f.items[i].Completed = completed
			f.items[i].CompletedAt = completedAt
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeChecklistRepo) DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	for i := range f.items {
		if f.items[i].ChecklistID == id && f.items[i].CreatorID == ownerID {
			cp := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}
