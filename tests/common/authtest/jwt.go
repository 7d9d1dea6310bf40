//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"concert-reservation/internal/pkg/config"
	"concert-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateAccessToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateAccessToken(userID, email)
	require.NoError(t, err)
	// exp has second resolution
	time.Sleep(1100 * time.Millisecond)
	return token
}

// SignedWithOtherSecret returns a well-formed token the server must reject.
func (h *JWTHelper) SignedWithOtherSecret(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.NewService("not-the-"+h.cfg.Secret, time.Hour).GenerateAccessToken(userID, email)
	require.NoError(t, err)
	return token
}
