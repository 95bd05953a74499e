package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/service"
)

type StepHandler struct {
	svc *service.StepService
}

func NewStepHandler(svc *service.StepService) *StepHandler {
	return &StepHandler{svc: svc}
}

type stepResponse struct {
	Success bool      `json:"success"`
	Step    db.Record `json:"step"`
}

func (h *StepHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"steps": h.svc.List()})
}

func (h *StepHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.StepInput
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	step, err := h.svc.Create(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Success: true, Step: step})
}

func (h *StepHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch map[string]any
	if err := readJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	step, err := h.svc.Update(id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Success: true, Step: step})
}
