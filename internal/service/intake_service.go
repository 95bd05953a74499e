package service

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/parisxmas/foreverfamily/internal/metrics"
	"github.com/parisxmas/foreverfamily/internal/models"
	"github.com/parisxmas/foreverfamily/internal/repository"
)

const msgRequiredMissing = "Required fields missing."

type JoinRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

type ReferralRequest struct {
	Name         string `json:"name"`
	ReferralName string `json:"referralName"`
	Relationship string `json:"relationship"`
	Urgency      string `json:"urgency"`
	Situation    string `json:"situation"`
}

// IntakeService records join requests and helpline referrals.
type IntakeService struct {
	subs      *repository.SubmissionRepo
	referrals *repository.ReferralRepo
	clock     clockwork.Clock
}

func NewIntakeService(subs *repository.SubmissionRepo, referrals *repository.ReferralRepo, clock clockwork.Clock) *IntakeService {
	return &IntakeService{subs: subs, referrals: referrals, clock: clock}
}

func (s *IntakeService) Join(req JoinRequest) (*models.Submission, error) {
	if req.Name == "" || req.Email == "" || req.City == "" || req.Interest == "" {
		return nil, apperrors.Validation(msgRequiredMissing)
	}

	id, ts := stamp(s.clock)
	sub := &models.Submission{
		ID:        id,
		Timestamp: ts,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		Interest:  req.Interest,
		Message:   req.Message,
	}
	if err := s.subs.Create(sub); err != nil {
		return nil, apperrors.Internal("failed to save submission", err)
	}

	metrics.IntakesTotal.WithLabelValues("join").Inc()
	slog.Info("[JOIN] new member request", "name", sub.Name, "email", sub.Email, "interest", sub.Interest)
	return sub, nil
}

func (s *IntakeService) Referral(req ReferralRequest) (*models.Referral, error) {
	if req.Name == "" || req.ReferralName == "" || req.Situation == "" {
		return nil, apperrors.Validation(msgRequiredMissing)
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.DefaultUrgency
	}
	id, ts := stamp(s.clock)
	ref := &models.Referral{
		ID:           id,
		Timestamp:    ts,
		Name:         req.Name,
		ReferralName: req.ReferralName,
		Relationship: req.Relationship,
		Urgency:      urgency,
		Situation:    req.Situation,
	}
	if err := s.referrals.Create(ref); err != nil {
		return nil, apperrors.Internal("failed to save referral", err)
	}

	metrics.IntakesTotal.WithLabelValues("referral").Inc()
	// The raw urgency is logged, so an omitted one shows up empty.
	slog.Info("[G-LINE] new referral", "name", ref.Name, "re", ref.ReferralName, "urgency", req.Urgency)
	return ref, nil
}
