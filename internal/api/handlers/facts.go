package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/verdictlab/verdict/internal/domain"
	"github.com/verdictlab/verdict/internal/rules"
	"github.com/verdictlab/verdict/internal/store"
)

type FactsHandler struct {
	reg   *rules.Registry
	facts domain.FactStore
}

func NewFactsHandler(reg *rules.Registry, facts domain.FactStore) *FactsHandler {
	return &FactsHandler{reg: reg, facts: facts}
}

type putFactRequest struct {
	Fact     string   `json:"fact"`
	Subjects []string `json:"subjects"`
	Unset    bool     `json:"unset"`
	Value    any      `json:"value"`
	CF       *float64 `json:"cf"`
}

func (h *FactsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req putFactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	def, ok := h.reg.FactDef(req.Fact)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown fact")
		return
	}
	if len(req.Subjects) != def.Arity {
		writeError(w, http.StatusBadRequest, "wrong number of subjects")
		return
	}

	cf := 1.0
	if req.CF != nil {
		cf = *req.CF
	}
	if cf < 0 || cf > 1 {
		writeError(w, http.StatusBadRequest, "cf must be in [0,1]")
		return
	}

	a := &domain.Answer{Fact: req.Fact, Unset: req.Unset, CF: cf}
	if len(req.Subjects) > 0 {
		a.SubjectA = req.Subjects[0]
	}
	if len(req.Subjects) > 1 {
		a.SubjectB = req.Subjects[1]
	}

	if !req.Unset {
		if err := setTypedValue(a, def.Type, req.Value); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.facts.Put(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record answer")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (h *FactsHandler) ListBySubject(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		writeError(w, http.StatusBadRequest, "subject is required")
		return
	}

	answers, err := h.facts.ListBySubject(r.Context(), subject)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list answers")
		return
	}
	if answers == nil {
		answers = []domain.Answer{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"answers": answers, "count": len(answers)})
}

func (h *FactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fact := q.Get("fact")
	if fact == "" {
		writeError(w, http.StatusBadRequest, "fact is required")
		return
	}

	err := h.facts.Delete(r.Context(), fact, q.Get("subject_a"), q.Get("subject_b"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "answer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete answer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setTypedValue converts the request's JSON value into the answer column
// matching the fact's declared type.
func setTypedValue(a *domain.Answer, t domain.FactType, v any) error {
	switch t {
	case domain.FactNumber:
		n, ok := v.(float64)
		if !ok {
			return errors.New("value must be a number")
		}
		a.Number = &n
	case domain.FactString:
		s, ok := v.(string)
		if !ok {
			return errors.New("value must be a string")
		}
		a.Text = &s
	case domain.FactBool:
		b, ok := v.(bool)
		if !ok {
			return errors.New("value must be a boolean")
		}
		a.Boolean = &b
	case domain.FactDate:
		s, ok := v.(string)
		if !ok {
			return errors.New("value must be a yyyy-mm-dd date string")
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return errors.New("value must be a yyyy-mm-dd date string")
		}
		a.Date = &d
	default:
		return errors.New("unsupported fact type")
	}
	return nil
}
