package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/verdictlab/verdict/internal/algebra"
	"github.com/verdictlab/verdict/internal/domain"
	"github.com/verdictlab/verdict/internal/rules"
	"go.uber.org/zap"
)

var (
	ErrRuleNotFound  = errors.New("rule not found")
	ErrWrongSubjects = errors.New("wrong number of subjects")
)

// Outcome classifies an evaluation result for the interview side: a Stub
// anywhere means more input is needed, Unset is a terminal non-answer, and
// anything else is actionable.
type Outcome string

const (
	OutcomeResolved      Outcome = "resolved"
	OutcomeNeedsInput    Outcome = "needs_input"
	OutcomeNotApplicable Outcome = "not_applicable"
)

type AssessmentResult struct {
	Rule     string            `json:"rule"`
	Subjects []string          `json:"subjects"`
	Outcome  Outcome           `json:"outcome"`
	Kind     string            `json:"kind"`
	Rendered string            `json:"rendered"`
	CF       float64           `json:"cf"`
	Pending  []domain.Question `json:"pending,omitempty"`
}

// AssessmentService evaluates registered rules against the fact store. It
// only evaluates and reports; it never chooses which pending question to
// ask next.
type AssessmentService struct {
	reg      *rules.Registry
	facts    domain.FactStore
	temporal domain.Temporal
	logger   *zap.Logger
}

func NewAssessmentService(reg *rules.Registry, facts domain.FactStore, temporal domain.Temporal, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		reg:      reg,
		facts:    facts,
		temporal: temporal,
		logger:   logger,
	}
}

func (s *AssessmentService) Rules() []rules.Rule {
	return s.reg.Rules()
}

func (s *AssessmentService) FactDefs() []domain.FactDef {
	return s.reg.FactDefs()
}

func (s *AssessmentService) Evaluate(ctx context.Context, ruleName string, subjects []string) (*AssessmentResult, error) {
	rule, ok := s.reg.Rule(ruleName)
	if !ok {
		return nil, ErrRuleNotFound
	}
	if len(subjects) != rule.Arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrWrongSubjects, rule.Name, rule.Arity, len(subjects))
	}

	env := rules.NewEnv(ctx, s.reg, s.facts, s.temporal, s.logger)
	value := rule.Eval(env, subjects...)

	result := &AssessmentResult{
		Rule:     rule.Name,
		Subjects: subjects,
		Outcome:  classify(value),
		Kind:     value.Kind().String(),
		Rendered: algebra.Pretty(value),
		CF:       value.CF(),
		Pending:  env.Pending(),
	}

	s.logger.Info("rule evaluated",
		zap.String("rule", rule.Name),
		zap.Strings("subjects", subjects),
		zap.String("outcome", string(result.Outcome)),
		zap.Float64("cf", result.CF),
		zap.Int("pending", len(result.Pending)))

	return result, nil
}

// classify maps a result value to its interview outcome. A series needs
// input if any of its change points is still stubbed.
func classify(v domain.Value) Outcome {
	switch v.Kind() {
	case domain.KindStub:
		return OutcomeNeedsInput
	case domain.KindLogic:
		if v.IsUnset() {
			return OutcomeNotApplicable
		}
		return OutcomeResolved
	case domain.KindSeries:
		for _, p := range v.Series().Points() {
			if p.Val.IsStub() {
				return OutcomeNeedsInput
			}
		}
		return OutcomeResolved
	default:
		return OutcomeResolved
	}
}
