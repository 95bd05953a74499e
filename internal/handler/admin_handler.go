package handler

import (
	"net/http"

	"github.com/parisxmas/foreverfamily/internal/repository"
)

// AdminHandler exposes the raw intake collections for review.
type AdminHandler struct {
	subs      *repository.SubmissionRepo
	referrals *repository.ReferralRepo
}

func NewAdminHandler(subs *repository.SubmissionRepo, referrals *repository.ReferralRepo) *AdminHandler {
	return &AdminHandler{subs: subs, referrals: referrals}
}

func (h *AdminHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": h.subs.List(),
		"referrals":   h.referrals.List(),
	})
}
