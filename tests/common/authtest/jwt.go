//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the upstream auth system does, signed with
// the shared secret from config.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// SignToken signs claims for subject and role that expire after ttl.
func SignToken(t *testing.T, secret, subject string, role user.Role, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.Claims{
		Role: role.String(),
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role user.Role) string {
	t.Helper()
	return SignToken(t, h.cfg.Secret, subject, role, time.Hour)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role user.Role) string {
	t.Helper()
	return SignToken(t, h.cfg.Secret, subject, role, -time.Minute)
}

// Tokens for the three roles, keyed by role
func (h *JWTHelper) RoleTokens(t *testing.T) map[user.Role]string {
	t.Helper()
	return map[user.Role]string{
		user.RoleViewer:   h.GenerateToken(t, "storefront", user.RoleViewer),
		user.RoleOperator: h.GenerateToken(t, "payments-webhook", user.RoleOperator),
		user.RoleAdmin:    h.GenerateToken(t, "back-office", user.RoleAdmin),
	}
}
