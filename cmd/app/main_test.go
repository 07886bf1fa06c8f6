package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/logging"
	"ChecklistAPI/internal/middleware"
	"ChecklistAPI/internal/model"
	"ChecklistAPI/internal/services"
)

// newTestServer wires the real services and routes over in-memory
// repositories, so requests exercise the full stack short of SQL.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	users := &memUserRepo{}
	sessions := &memSessionRepo{sessions: map[string]memSession{}}
	items := &memChecklistRepo{}

	userSvc := services.NewUserService(users, bcrypt.MinCost)
	tokenSvc := services.NewTokenService(users, sessions, "test-secret")
	checklistSvc := services.NewChecklistService(items)

	e := echo.New()
	log := logging.NewJSON(io.Discard)
	authGate := middleware.Authenticate(tokenSvc, log)
	registerUserRoutes(e, userSvc, tokenSvc, authGate)
	registerChecklistRoutes(e, checklistSvc, authGate)
	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(middleware.AuthHeader, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signUp registers a user and returns the session token.
func signUp(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/users", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, "register failed: %s", rec.Body.String())
	token := rec.Header().Get(middleware.AuthHeader)
	require.NotEmpty(t, token)
	return token
}

// --- in-memory repositories ---

type memUserRepo struct {
	users []*model.User
}

func (f *memUserRepo) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	u := &model.User{UserID: uuid.New(), Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.users = append(f.users, u)
	return u, nil
}

func (f *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.UserID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

type memSession struct {
	userID uuid.UUID
	access string
}

type memSessionRepo struct {
	sessions map[string]memSession
}

func (f *memSessionRepo) Add(ctx context.Context, userID uuid.UUID, token, access string) error {
	f.sessions[token] = memSession{userID: userID, access: access}
	return nil
}

func (f *memSessionRepo) Exists(ctx context.Context, userID uuid.UUID, token, access string) (bool, error) {
	s, ok := f.sessions[token]
	return ok && s.userID == userID && s.access == access, nil
}

func (f *memSessionRepo) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	if s, ok := f.sessions[token]; ok && s.userID == userID {
		delete(f.sessions, token)
	}
	return nil
}

type memChecklistRepo struct {
	items []model.Checklist
}

func (f *memChecklistRepo) Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Checklist, error) {
	cl := model.Checklist{ChecklistID: uuid.New(), Text: text, CreatorID: ownerID, CreatedAt: time.Now()}
	f.items = append(f.items, cl)
	return &cl, nil
}

func (f *memChecklistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Checklist, error) {
	list := []model.Checklist{}
	for _, cl := range f.items {
		if cl.CreatorID == ownerID {
			list = append(list, cl)
		}
	}
	return list, nil
}

func (f *memChecklistRepo) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	for i := range f.items {
		if f.items[i].ChecklistID == id && f.items[i].CreatorID == ownerID {
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *memChecklistRepo) UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, text *string, completed bool, completedAt *time.Time) (*model.Checklist, error) {
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

func (f *memChecklistRepo) DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Checklist, error) {
	for i := range f.items {
		if f.items[i].ChecklistID == id && f.items[i].CreatorID == ownerID {
			cp := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}
