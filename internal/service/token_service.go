package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/config"
	"github.com/jobboard/backend/internal/util"
)

type TokenServiceInterface interface {
	Issue(userID uuid.UUID) (string, error)
	Validate(token string) (uuid.UUID, error)
	Invalidate(token string)
}

// TokenService issues and validates bearer tokens. Logout is handled
// by denylisting the token until its natural expiry; entries are
// pruned as they expire.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewTokenService() *TokenService {
	cfg := config.LoadAuthConfig()
	return &TokenService{
		secret:  []byte(cfg.JWTSecret),
		ttl:     cfg.TokenTTL,
		revoked: make(map[string]time.Time),
	}
}

func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", util.NewError(util.CodeInternal, "Token generation failed", err)
	}
	return signed, nil
}

func (s *TokenService) Validate(tokenStr string) (uuid.UUID, error) {
	if s.isRevoked(tokenStr) {
		return uuid.Nil, util.NewError(util.CodeAuth, "Invalid or expired token", nil)
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, util.NewError(util.CodeAuth, "Invalid or expired token", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, util.NewError(util.CodeAuth, "Invalid or expired token", nil)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, util.NewError(util.CodeAuth, "Invalid or expired token", err)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, util.NewError(util.CodeAuth, "Invalid or expired token", err)
	}
	return userID, nil
}

func (s *TokenService) Invalidate(tokenStr string) {
	expiry := time.Now().Add(s.ttl)
	// keep the entry only as long as the token itself could live
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			expiry = exp.Time
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for t, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, t)
		}
	}
	s.revoked[tokenStr] = expiry
}

func (s *TokenService) isRevoked(tokenStr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[tokenStr]
	if !ok {
		return false
	}
	if exp.Before(time.Now()) {
		delete(s.revoked, tokenStr)
		return false
	}
	return true
}
