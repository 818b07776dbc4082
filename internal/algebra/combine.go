// Package algebra implements the certainty-graded value algebra rules are
// written in: arithmetic and comparison over wrapped values, tri-state
// logic combinators, conditional selection and rendering.
//
// Everything here is a pure function over immutable domain.Values. There is
// no error path: a pending answer is a Stub value, an inapplicable one is
// Unset, and both flow through every operation instead of aborting it.
package algebra

import (
	"time"

	"github.com/verdictlab/verdict/internal/domain"
)

// scalarFn applies an operation to two fully resolved payloads. The
// dispatcher guarantees neither operand is Stub, Unset or a series; the
// returned value's CF is overwritten by the dispatcher.
type scalarFn func(a, b domain.Value) domain.Value

// combine is the binary dispatcher shared by all arithmetic and comparison
// operations. The branch order is load-bearing: Stub wins over Unset here,
// the reverse of the logic combinators' precedence.
func combine(f scalarFn, a, b domain.Value) domain.Value {
	cf := a.CF() * b.CF()
	switch {
	case a.IsStub() || b.IsStub():
		return domain.NewStub(cf)
	case a.IsUnset() || b.IsUnset():
		return domain.NewUnset(cf)
	case a.IsSeries() || b.IsSeries():
		return domain.NewSeries(combineSeries(f, a, b), cf)
	default:
		return f(a, b).WithCF(cf)
	}
}

// combineSeries applies the dispatcher pointwise. A scalar side is held
// constant across the other side's change points.
func combineSeries(f scalarFn, a, b domain.Value) *domain.TimeSeries {
	switch {
	case a.IsSeries() && b.IsSeries():
		return a.Series().Combine(b.Series(), func(x, y domain.Value) domain.Value {
			return combine(f, x, y)
		})
	case a.IsSeries():
		return a.Series().Map(func(x domain.Value) domain.Value {
			return combine(f, x, b)
		})
	default:
		return b.Series().Map(func(y domain.Value) domain.Value {
			return combine(f, a, y)
		})
	}
}

// Add returns a + b. Operands may be wrapped values or bare Go values;
// bare operands are lifted with full certainty.
func Add(a, b any) domain.Value {
	return combine(addFn, domain.Lift(a), domain.Lift(b))
}

// Sub returns a - b.
func Sub(a, b any) domain.Value {
	return combine(subFn, domain.Lift(a), domain.Lift(b))
}

// Mul returns a × b. A raw zero on either side short-circuits to zero
// before the Stub/Unset checks, so a zero factor absorbs an unresolved
// multiplicand instead of forcing it to be elicited.
func Mul(a, b any) domain.Value {
	x, y := domain.Lift(a), domain.Lift(b)
	if x.IsZero() || y.IsZero() {
		return domain.NewScalar(0.0, x.CF()*y.CF())
	}
	return combine(mulFn, x, y)
}

// Div returns a ÷ b. Division by zero is inapplicability, not a fault.
func Div(a, b any) domain.Value {
	return combine(divFn, domain.Lift(a), domain.Lift(b))
}

// LessThan returns a < b.
func LessThan(a, b any) domain.Value {
	return combine(cmpFn(func(c int) bool { return c < 0 }), domain.Lift(a), domain.Lift(b))
}

// AtMost returns a ≤ b.
func AtMost(a, b any) domain.Value {
	return combine(cmpFn(func(c int) bool { return c <= 0 }), domain.Lift(a), domain.Lift(b))
}

// GreaterThan returns a > b.
func GreaterThan(a, b any) domain.Value {
	return combine(cmpFn(func(c int) bool { return c > 0 }), domain.Lift(a), domain.Lift(b))
}

// AtLeast returns a ≥ b.
func AtLeast(a, b any) domain.Value {
	return combine(cmpFn(func(c int) bool { return c >= 0 }), domain.Lift(a), domain.Lift(b))
}

// Equal is the three-valued comparison rules use; native == on Value stays
// reserved for identity. Payloads of different types are simply not equal.
func Equal(a, b any) domain.Value {
	return combine(equalFn, domain.Lift(a), domain.Lift(b))
}

// NotEqual returns Not(Equal(a, b)).
func NotEqual(a, b any) domain.Value {
	return Not(Equal(a, b))
}

func addFn(a, b domain.Value) domain.Value {
	x, y, ok := numericPair(a, b)
	if !ok {
		return domain.NewUnset(1)
	}
	return domain.NewScalar(x+y, 1)
}

func subFn(a, b domain.Value) domain.Value {
	x, y, ok := numericPair(a, b)
	if !ok {
		return domain.NewUnset(1)
	}
	return domain.NewScalar(x-y, 1)
}

func mulFn(a, b domain.Value) domain.Value {
	x, y, ok := numericPair(a, b)
	if !ok {
		return domain.NewUnset(1)
	}
	return domain.NewScalar(x*y, 1)
}

func divFn(a, b domain.Value) domain.Value {
	x, y, ok := numericPair(a, b)
	if !ok || y == 0 {
		return domain.NewUnset(1)
	}
	return domain.NewScalar(x/y, 1)
}

func cmpFn(want func(int) bool) scalarFn {
	return func(a, b domain.Value) domain.Value {
		c, ok := compareScalars(a, b)
		if !ok {
			return domain.NewUnset(1)
		}
		return domain.NewBool(want(c), 1)
	}
}

func equalFn(a, b domain.Value) domain.Value {
	if a.Kind() == domain.KindLogic && b.Kind() == domain.KindLogic {
		return domain.NewBool(a.Logic() == b.Logic(), 1)
	}
	if c, ok := compareScalars(a, b); ok {
		return domain.NewBool(c == 0, 1)
	}
	return domain.NewBool(false, 1)
}

func numericPair(a, b domain.Value) (float64, float64, bool) {
	x, xok := a.Scalar().(float64)
	y, yok := b.Scalar().(float64)
	return x, y, xok && yok
}

// compareScalars orders two scalar payloads of the same type: numbers by
// value, strings lexically, dates chronologically. Mismatched or unordered
// payloads report !ok.
func compareScalars(a, b domain.Value) (int, bool) {
	switch x := a.Scalar().(type) {
	case float64:
		if y, ok := b.Scalar().(float64); ok {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			}
			return 0, true
		}
	case string:
		if y, ok := b.Scalar().(string); ok {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			}
			return 0, true
		}
	case time.Time:
		if y, ok := b.Scalar().(time.Time); ok {
			switch {
			case x.Before(y):
				return -1, true
			case x.After(y):
				return 1, true
			}
			return 0, true
		}
	}
	return 0, false
}
