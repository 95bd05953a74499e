package service

import (
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/parisxmas/foreverfamily/internal/auth"
	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/parisxmas/foreverfamily/internal/metrics"
)

// tierCodes are the shared demo access codes, one per membership tier.
var tierCodes = map[string]string{
	"FF-BRONZE-2025":   "bronze",
	"FF-SILVER-2025":   "silver",
	"FF-GOLD-2025":     "gold",
	"FF-PLATINUM-2025": "platinum",
}

// LookupTier maps an access code to its tier, ignoring case and
// surrounding whitespace.
func LookupTier(code string) (string, bool) {
	tier, ok := tierCodes[strings.TrimSpace(strings.ToUpper(code))]
	return tier, ok
}

type LoginResult struct {
	Success bool   `json:"success"`
	Tier    string `json:"tier"`
	Token   string `json:"token"`
}

// PortalService issues member portal tokens. Tokens are never checked
// again after issuance.
type PortalService struct {
	codec auth.TokenCodec
	clock clockwork.Clock
}

func NewPortalService(codec auth.TokenCodec, clock clockwork.Clock) *PortalService {
	return &PortalService{codec: codec, clock: clock}
}

func (s *PortalService) Login(email, code string) (*LoginResult, error) {
	if email == "" || code == "" {
		return nil, apperrors.Validation("Email and access code required.")
	}

	tier, ok := LookupTier(code)
	if !ok {
		metrics.PortalLoginsTotal.WithLabelValues("rejected").Inc()
		return nil, apperrors.Unauthorized("Invalid access code. Check your welcome email.")
	}

	token, err := s.codec.Encode(auth.NewPortalClaims(email, tier, s.clock.Now()))
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	metrics.PortalLoginsTotal.WithLabelValues(tier).Inc()
	slog.Info("[PORTAL] member logged in", "email", email, "tier", tier)
	return &LoginResult{Success: true, Tier: tier, Token: token}, nil
}
