package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

type CustomClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs admin tokens and keeps a blacklist of logged-out ones
// until they would have expired anyway.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:  []byte(secret),
		ttl:     ttl,
		issuer:  "TableOrder",
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (tm *TokenManager) Generate(adminID, username string) (string, error) {
	now := tm.now()
	claims := &CustomClaims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tm.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Parse(tokenString string) (*CustomClaims, error) {
	if tm.IsRevoked(tokenString) {
		return nil, ErrRevokedToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tm.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.AdminID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke blacklists the token until its expiry.
func (tm *TokenManager) Revoke(tokenString string) {
	expiry := tm.now().Add(tm.ttl)
	if claims, err := tm.Parse(tokenString); err == nil && claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.revoked[tokenString] = expiry
	tm.cleanupLocked()
}

func (tm *TokenManager) IsRevoked(tokenString string) bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	expiry, exists := tm.revoked[tokenString]
	return exists && tm.now().Before(expiry)
}

// cleanupLocked drops blacklist entries whose tokens have expired.
func (tm *TokenManager) cleanupLocked() {
	now := tm.now()
	for token, expiry := range tm.revoked {
		if !now.Before(expiry) {
			delete(tm.revoked, token)
		}
	}
}
