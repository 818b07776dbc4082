package algebra

import (
	"testing"

	"github.com/verdictlab/verdict/internal/domain"
)

func TestIf(t *testing.T) {
	if got := If(true, 1, 2); got.Scalar().(float64) != 1 {
		t.Errorf("If(True, 1, 2) = %v, want 1", got.Scalar())
	}
	if got := If(false, 1, 2); got.Scalar().(float64) != 2 {
		t.Errorf("If(False, 1, 2) = %v, want 2", got.Scalar())
	}
}

func TestIf_StubConditionPropagates(t *testing.T) {
	stub := domain.NewStub(0.7)
	got := If(stub, 1, 2)
	if got != stub {
		t.Errorf("If(Stub, 1, 2) = %+v, want the stub itself", got)
	}

	unset := domain.NewUnset(0.4)
	got = If(unset, 1, 2)
	if got != unset {
		t.Errorf("If(Unset, 1, 2) = %+v, want the unset value itself", got)
	}
}

func TestIf_BranchKeepsOwnCF(t *testing.T) {
	cond := domain.NewBool(true, 0.5)
	branch := domain.NewScalar(9, 0.8)

	got := If(cond, branch, 0)
	if got.CF() != 0.8 {
		t.Errorf("cf = %f, want the branch's own 0.8", got.CF())
	}
}

func TestIf_TruthyScalars(t *testing.T) {
	if got := If(3, "yes", "no"); got.Scalar().(string) != "yes" {
		t.Errorf("nonzero number should be truthy, got %v", got.Scalar())
	}
	if got := If(0, "yes", "no"); got.Scalar().(string) != "no" {
		t.Errorf("zero should be falsy, got %v", got.Scalar())
	}
	if got := If("", "yes", "no"); got.Scalar().(string) != "no" {
		t.Errorf("empty string should be falsy, got %v", got.Scalar())
	}
}
