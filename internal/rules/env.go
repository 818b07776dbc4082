package rules

import (
	"context"
	"errors"

	"github.com/verdictlab/verdict/internal/domain"
	"github.com/verdictlab/verdict/internal/store"
	"go.uber.org/zap"
)

// Env is the per-evaluation context a rule tree runs in: the fact store,
// the temporal literals, and the pending questions accumulated as Stub
// values are handed out. An Env is used by one evaluation at a time.
type Env struct {
	ctx      context.Context
	reg      *Registry
	facts    domain.FactStore
	temporal domain.Temporal
	logger   *zap.Logger

	pending []domain.Question
	seen    map[string]struct{}
}

func NewEnv(ctx context.Context, reg *Registry, facts domain.FactStore, temporal domain.Temporal, logger *zap.Logger) *Env {
	return &Env{
		ctx:      ctx,
		reg:      reg,
		facts:    facts,
		temporal: temporal,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

func (e *Env) Temporal() domain.Temporal { return e.temporal }

// Pending returns the questions for every fact the evaluation needed but
// had no answer for, in first-encountered order. Which of them to ask next
// is the interview engine's decision.
func (e *Env) Pending() []domain.Question {
	return e.pending
}

// Fact resolves a fact for the given subjects. Unanswered facts come back
// as Stub values and are recorded as pending questions; answers marked not
// applicable come back as Unset. Referencing an unknown fact or passing
// the wrong number of subjects is an authoring mistake and reads as Unset.
func (e *Env) Fact(name string, subjects ...string) domain.Value {
	def, ok := e.reg.FactDef(name)
	if !ok {
		e.logger.Warn("rule references unknown fact", zap.String("fact", name))
		return domain.NewUnset(1)
	}
	if len(subjects) != def.Arity {
		e.logger.Warn("fact subject arity mismatch",
			zap.String("fact", name),
			zap.Int("want", def.Arity),
			zap.Int("got", len(subjects)))
		return domain.NewUnset(1)
	}

	var subjectA, subjectB string
	if len(subjects) > 0 {
		subjectA = subjects[0]
	}
	if len(subjects) > 1 {
		subjectB = subjects[1]
	}

	ans, err := e.facts.Get(e.ctx, name, subjectA, subjectB)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			// A transient lookup failure still means "obtainable later".
			e.logger.Error("fact lookup failed", zap.String("fact", name), zap.Error(err))
		}
		e.recordPending(def, subjects)
		return domain.NewStub(1)
	}
	return ans.Value(def.Type)
}

func (e *Env) recordPending(def domain.FactDef, subjects []string) {
	key := def.Name
	for _, s := range subjects {
		key += "\x00" + s
	}
	if _, dup := e.seen[key]; dup {
		return
	}
	e.seen[key] = struct{}{}
	e.pending = append(e.pending, domain.Question{
		Fact:     def.Name,
		Subjects: subjects,
		Type:     def.Type,
		Prompt:   def.RenderQuestion(subjects...),
	})
}
