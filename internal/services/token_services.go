package services

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/model"
	"ChecklistAPI/internal/repository"
)

// Claims is the JWT payload of a session token. Tokens carry no expiry;
// revocation (removal from the session list) is the only invalidation.
type Claims struct {
	UserID string `json:"id"`
	Access string `json:"access"`
	jwt.RegisteredClaims
}

type TokenService struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	secret   []byte
}

func NewTokenService(u repository.UserRepository, s repository.SessionRepository, secret string) *TokenService {
	return &TokenService{Users: u, Sessions: s, secret: []byte(secret)}
}

// Issue signs a new session token for the user, appends it to the
// user's active-token list, and returns the raw string. The string is
// never retrievable from storage again.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		Access: model.AccessAuth,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Add(ctx, userID, signed, model.AccessAuth); err != nil {
		return "", err
	}
	return signed, nil
}

// Verify resolves a raw token string to its user. A token is accepted
// only if the signature verifies AND the exact string is still listed
// on the user's record with the auth scope; signature validity alone is
// never enough, which is what makes revocation immediate.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*model.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	if claims.Access != model.AccessAuth {
		return nil, apperr.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidToken
		}
		return nil, err
	}
	listed, err := s.Sessions.Exists(ctx, userID, tokenString, model.AccessAuth)
	if err != nil {
		return nil, err
	}
	if !listed {
		return nil, apperr.ErrInvalidToken
	}
	return u, nil
}

// Revoke removes the token from the user's list. Revoking an already
// absent token is a no-op.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID, tokenString string) error {
	return s.Sessions.Remove(ctx, userID, tokenString)
}
