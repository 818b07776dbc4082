package algebra

import "github.com/verdictlab/verdict/internal/domain"

// If selects thenVal when cond is truthy and elseVal otherwise. A Stub or
// Unset condition is returned unchanged: neither branch is taken, and the
// condition's pending-ness or inapplicability becomes the overall result.
//
// When a branch is taken it keeps its own certainty; the condition's CF is
// not blended in.
func If(cond, thenVal, elseVal any) domain.Value {
	c := domain.Lift(cond)
	if c.IsUnset() || c.IsStub() {
		return c
	}
	if truthy(c) {
		return domain.Lift(thenVal)
	}
	return domain.Lift(elseVal)
}
