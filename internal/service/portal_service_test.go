package service

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/parisxmas/foreverfamily/internal/auth"
	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortal() *PortalService {
	return NewPortalService(auth.Base64Codec{}, clockwork.NewFakeClockAt(testNow))
}

func TestLookupTier(t *testing.T) {
	tests := []struct {
		code string
		tier string
		ok   bool
	}{
		{"FF-BRONZE-2025", "bronze", true},
		{"ff-silver-2025", "silver", true},
		{"  Ff-Gold-2025\n", "gold", true},
		{"FF-PLATINUM-2025", "platinum", true},
		{"FF-DIAMOND-2025", "", false},
		{"FF-GOLD-2024", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tier, ok := LookupTier(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestLogin_ValidCode(t *testing.T) {
	res, err := newPortal().Login("a@x.com", " ff-gold-2025 ")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "gold", res.Tier)

	claims, err := auth.Base64Codec{}.Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "gold", claims.Tier)
	assert.Equal(t, testNow.UnixMilli(), claims.Issued)
	assert.Equal(t, int64(86_400_000), claims.Exp-claims.Issued)
}

func TestLogin_UnknownCodeIsUnauthorized(t *testing.T) {
	for _, email := range []string{"a@x.com", "admin@example.org", "x"} {
		_, err := newPortal().Login(email, "FF-NOPE-2025")
		assert.Equal(t, apperrors.TypeUnauthorized, apperrors.As(err).Type)
	}
}

func TestLogin_BlankCodeIsUnauthorized(t *testing.T) {
	_, err := newPortal().Login("a@x.com", "   ")
	assert.Equal(t, apperrors.TypeUnauthorized, apperrors.As(err).Type)
}

func TestLogin_MissingFields(t *testing.T) {
	_, err := newPortal().Login("", "FF-GOLD-2025")
	assert.Equal(t, apperrors.TypeValidation, apperrors.As(err).Type)

	_, err = newPortal().Login("a@x.com", "")
	assert.Equal(t, "Email and access code required.", apperrors.As(err).Message)
}

func TestLogin_JWTCodec(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	codec := auth.NewJWTCodec("portal-secret", clock.Now)
	svc := NewPortalService(codec, clock)

	res, err := svc.Login("a@x.com", "FF-PLATINUM-2025")
	require.NoError(t, err)

	claims, err := codec.Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "platinum", claims.Tier)
}
