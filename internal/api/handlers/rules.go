package handlers

import (
	"net/http"

	"github.com/verdictlab/verdict/internal/service"
)

type RulesHandler struct {
	svc *service.AssessmentService
}

func NewRulesHandler(svc *service.AssessmentService) *RulesHandler {
	return &RulesHandler{svc: svc}
}

type ruleInfo struct {
	Name  string `json:"name"`
	Arity int    `json:"arity"`
	Doc   string `json:"doc,omitempty"`
}

func (h *RulesHandler) List(w http.ResponseWriter, r *http.Request) {
	rs := h.svc.Rules()
	out := make([]ruleInfo, len(rs))
	for i, rule := range rs {
		out[i] = ruleInfo{Name: rule.Name, Arity: rule.Arity, Doc: rule.Doc}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": out, "count": len(out)})
}

func (h *RulesHandler) ListFacts(w http.ResponseWriter, r *http.Request) {
	defs := h.svc.FactDefs()
	writeJSON(w, http.StatusOK, map[string]any{"facts": defs, "count": len(defs)})
}
