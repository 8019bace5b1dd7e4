package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/station-booking/internal/pkg/errors"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims carries the authenticated identity inside both token kinds.
type Claims struct {
	UserID    int64  `json:"user_id"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is an issued access/refresh token pair. RefreshID is the JTI of the
// refresh token and keys its entry in the token store.
type Pair struct {
	Access    string
	Refresh   string
	RefreshID string
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *Manager) IssuePair(userID int64, isAdmin bool) (*Pair, error) {
	now := time.Now()

	access, err := m.sign(userID, isAdmin, TypeAccess, uuid.NewString(), now, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshID := uuid.NewString()
	refresh, err := m.sign(userID, isAdmin, TypeRefresh, refreshID, now, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{Access: access, Refresh: refresh, RefreshID: refreshID}, nil
}

// Parse verifies the signature and expiry and returns the claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.ErrInvalidToken
			}
			return m.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

func (m *Manager) sign(
	userID int64,
	isAdmin bool,
	tokenType, id string,
	now time.Time,
	ttl time.Duration,
) (string, error) {
	claims := Claims{
		UserID:    userID,
		IsAdmin:   isAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
