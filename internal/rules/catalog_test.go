package rules

import (
	"context"
	"testing"

	"github.com/verdictlab/verdict/internal/domain"
	"github.com/verdictlab/verdict/internal/store"
	"go.uber.org/zap"
)

func newTestEnv(t *testing.T, facts domain.FactStore) *Env {
	t.Helper()
	reg := NewRegistry()
	RegisterBuiltins(reg)
	return NewEnv(context.Background(), reg, facts, domain.DefaultTemporal(), zap.NewNop())
}

func putNumber(t *testing.T, s domain.FactStore, fact, subject string, n float64) {
	t.Helper()
	if err := s.Put(context.Background(), &domain.Answer{Fact: fact, SubjectA: subject, Number: &n, CF: 1}); err != nil {
		t.Fatal(err)
	}
}

func putText(t *testing.T, s domain.FactStore, fact, subjectA, subjectB, v string) {
	t.Helper()
	if err := s.Put(context.Background(), &domain.Answer{Fact: fact, SubjectA: subjectA, SubjectB: subjectB, Text: &v, CF: 1}); err != nil {
		t.Fatal(err)
	}
}

func TestQualifyingRelative_FullyResolved(t *testing.T) {
	facts := store.NewMemoryFactStore()
	putNumber(t, facts, "age", "jim", 16)
	putNumber(t, facts, "age", "lucy", 25)
	putText(t, facts, "gender", "lucy", "", "Female")
	putText(t, facts, "relationship", "jim", "lucy", "Friend")
	d := Date("2005-01-01")
	if err := facts.Put(context.Background(), &domain.Answer{Fact: "assessment_date", Date: &d, CF: 1}); err != nil {
		t.Fatal(err)
	}

	env := newTestEnv(t, facts)
	rule, _ := env.reg.Rule("qualifying_relative")

	got := rule.Eval(env, "jim", "lucy")
	if got.Kind() != domain.KindLogic || got.Logic() != domain.True {
		t.Fatalf("result = %s/%s, want True", got.Kind(), got.Logic())
	}
	if got.CF() != 1 {
		t.Errorf("cf = %f, want 1", got.CF())
	}
	if len(env.Pending()) != 0 {
		t.Errorf("pending = %d questions, want 0", len(env.Pending()))
	}
}

func TestQualifyingRelative_UnansweredFactsPend(t *testing.T) {
	env := newTestEnv(t, store.NewMemoryFactStore())
	rule, _ := env.reg.Rule("qualifying_relative")

	got := rule.Eval(env, "jim", "lucy")
	if !got.IsStub() {
		t.Fatalf("result = %s, want stub", got.Kind())
	}

	pending := env.Pending()
	if len(pending) != 5 {
		t.Fatalf("pending = %d questions, want 5", len(pending))
	}
	if pending[0].Prompt != "How old is jim?" {
		t.Errorf("prompt = %q, want %q", pending[0].Prompt, "How old is jim?")
	}
	if pending[2].Prompt != "What is lucy's gender?" {
		t.Errorf("prompt = %q, want %q", pending[2].Prompt, "What is lucy's gender?")
	}
	if pending[3].Prompt != "How is jim related to lucy?" {
		t.Errorf("prompt = %q, want %q", pending[3].Prompt, "How is jim related to lucy?")
	}
}

func TestQualifyingRelative_FalseDominatesPending(t *testing.T) {
	// One disqualifying fact makes the conjunction False even while other
	// facts are still unanswered.
	facts := store.NewMemoryFactStore()
	putNumber(t, facts, "age", "jim", 30)

	env := newTestEnv(t, facts)
	rule, _ := env.reg.Rule("qualifying_relative")

	got := rule.Eval(env, "jim", "lucy")
	if got.Kind() != domain.KindLogic || got.Logic() != domain.False {
		t.Fatalf("result = %s/%s, want False", got.Kind(), got.Logic())
	}

	// Evaluation is eager: the unanswered facts were still visited and
	// recorded, there is no short-circuit on the dominant False.
	if len(env.Pending()) != 4 {
		t.Errorf("pending = %d questions, want 4", len(env.Pending()))
	}
}

func TestExpeditedEligibility_AgeQualifies(t *testing.T) {
	facts := store.NewMemoryFactStore()
	putNumber(t, facts, "age", "neela", 30)

	env := newTestEnv(t, facts)
	rule, _ := env.reg.Rule("expedited_eligibility")

	// age >= 12 resolves True, which dominates the disjunction no matter
	// how many other disjuncts are still pending.
	got := rule.Eval(env, "neela")
	if got.Kind() != domain.KindLogic || got.Logic() != domain.True {
		t.Fatalf("result = %s/%s, want True", got.Kind(), got.Logic())
	}
}

func TestFederalMinimumWage_StepHold(t *testing.T) {
	wage := FederalMinimumWage(domain.DefaultTemporal())
	ts := wage.Series()

	if v := ts.At(Date("1950-01-01")); !v.IsStub() {
		t.Errorf("1950 rate = %s, want stub", v.Kind())
	}
	if v := ts.At(Date("2000-06-15")); v.Scalar().(float64) != 5.15 {
		t.Errorf("2000 rate = %v, want 5.15", v.Scalar())
	}
	if v := ts.At(Date("2020-01-01")); v.Scalar().(float64) != 7.25 {
		t.Errorf("2020 rate = %v, want 7.25", v.Scalar())
	}
}
