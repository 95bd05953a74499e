package handler

import (
	"net/http"

	"github.com/parisxmas/foreverfamily/internal/service"
)

type IntakeHandler struct {
	svc *service.IntakeService
}

func NewIntakeHandler(svc *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

func (h *IntakeHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req service.JoinRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.svc.Join(req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *IntakeHandler) Referral(w http.ResponseWriter, r *http.Request) {
	var req service.ReferralRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.svc.Referral(req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
