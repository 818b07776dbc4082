package algebra

import (
	"github.com/verdictlab/verdict/internal/domain"
)

func cfConj(a, b float64) float64 { return a * b }
func cfDisj(a, b float64) float64 { return a + b - a*b }

// And reduces its arguments left to right under the conjunction truth
// table: False dominates, then Unset, then Stub, else True. CF is the
// product of the operands' CFs regardless of which branch wins.
//
// Arguments are already evaluated by the time And runs; there is no
// short-circuit on a dominant False. An empty argument list is
// inapplicable.
func And(vals ...any) domain.Value {
	if len(vals) == 0 {
		return domain.NewUnset(1)
	}
	out := domain.Lift(vals[0])
	for _, v := range vals[1:] {
		out = and2(out, domain.Lift(v))
	}
	return out
}

// Or reduces left to right: True dominates, then Unset, then Stub, else
// False. CF follows the probabilistic sum cf(a)+cf(b)−cf(a)·cf(b).
func Or(vals ...any) domain.Value {
	if len(vals) == 0 {
		return domain.NewUnset(1)
	}
	out := domain.Lift(vals[0])
	for _, v := range vals[1:] {
		out = or2(out, domain.Lift(v))
	}
	return out
}

// Note the precedence difference from the arithmetic dispatcher: here the
// dominant truth value is checked first and Unset wins over Stub.
func and2(a, b domain.Value) domain.Value {
	cf := cfConj(a.CF(), b.CF())
	switch {
	case isLogic(a, domain.False) || isLogic(b, domain.False):
		return domain.NewBool(false, cf)
	case a.IsUnset() || b.IsUnset():
		return domain.NewUnset(cf)
	case a.IsStub() || b.IsStub():
		return domain.NewStub(cf)
	case a.IsSeries() || b.IsSeries():
		return domain.NewSeries(logicSeries(and2, a, b), cf)
	default:
		return domain.NewBool(true, cf)
	}
}

func or2(a, b domain.Value) domain.Value {
	cf := cfDisj(a.CF(), b.CF())
	switch {
	case isLogic(a, domain.True) || isLogic(b, domain.True):
		return domain.NewBool(true, cf)
	case a.IsUnset() || b.IsUnset():
		return domain.NewUnset(cf)
	case a.IsStub() || b.IsStub():
		return domain.NewStub(cf)
	case a.IsSeries() || b.IsSeries():
		return domain.NewSeries(logicSeries(or2, a, b), cf)
	default:
		return domain.NewBool(false, cf)
	}
}

// logicSeries extends a combinator pointwise when a time-varying truth
// value reaches it, holding a scalar side constant.
func logicSeries(f func(a, b domain.Value) domain.Value, a, b domain.Value) *domain.TimeSeries {
	switch {
	case a.IsSeries() && b.IsSeries():
		return a.Series().Combine(b.Series(), f)
	case a.IsSeries():
		return a.Series().Map(func(x domain.Value) domain.Value { return f(x, b) })
	default:
		return b.Series().Map(func(y domain.Value) domain.Value { return f(a, y) })
	}
}

// Not complements a truth value, keeping its CF. Unset and Stub are fixed
// points: pending-ness and inapplicability do not flip. Series are
// complemented pointwise.
func Not(v any) domain.Value {
	x := domain.Lift(v)
	switch {
	case x.IsUnset() || x.IsStub():
		return x
	case x.IsSeries():
		return domain.NewSeries(x.Series().Map(func(p domain.Value) domain.Value {
			return Not(p)
		}), x.CF())
	default:
		return domain.NewBool(!truthy(x), x.CF())
	}
}

func isLogic(v domain.Value, l domain.Logic) bool {
	return v.Kind() == domain.KindLogic && v.Logic() == l
}

// truthy reports whether a resolved payload counts as true: logical True,
// a nonzero number, a nonempty string, a real date, a nonempty series.
func truthy(v domain.Value) bool {
	switch v.Kind() {
	case domain.KindLogic:
		return v.Logic() == domain.True
	case domain.KindSeries:
		return v.Series().Len() > 0
	case domain.KindScalar:
		switch s := v.Scalar().(type) {
		case float64:
			return s != 0
		case string:
			return s != ""
		}
		return true
	}
	return false
}
