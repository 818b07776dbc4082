package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/verdictlab/verdict/internal/service"
)

type AssessmentHandler struct {
	svc *service.AssessmentService
}

func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

type evaluateRequest struct {
	Rule     string   `json:"rule"`
	Subjects []string `json:"subjects"`
}

func (h *AssessmentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Rule == "" {
		writeError(w, http.StatusBadRequest, "rule is required")
		return
	}

	result, err := h.svc.Evaluate(r.Context(), req.Rule, req.Subjects)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRuleNotFound):
			writeError(w, http.StatusNotFound, "rule not found")
		case errors.Is(err, service.ErrWrongSubjects):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "evaluation failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
