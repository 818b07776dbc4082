package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/verdictlab/verdict/internal/domain"
)

func TestAnd_TruthTable(t *testing.T) {
	stub := domain.NewStub(1)
	unset := domain.NewUnset(1)

	tests := []struct {
		name  string
		got   domain.Value
		want  domain.Kind
		logic domain.Logic
	}{
		{"false dominates stub", And(false, stub), domain.KindLogic, domain.False},
		{"false dominates unset", And(unset, false), domain.KindLogic, domain.False},
		{"unset dominates stub", And(unset, stub), domain.KindLogic, domain.Unset},
		{"stub over true", And(stub, stub), domain.KindStub, 0},
		{"all true", And(true, true), domain.KindLogic, domain.True},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Kind() != tt.want {
				t.Fatalf("kind = %s, want %s", tt.got.Kind(), tt.want)
			}
			if tt.want == domain.KindLogic && tt.got.Logic() != tt.logic {
				t.Errorf("logic = %s, want %s", tt.got.Logic(), tt.logic)
			}
		})
	}
}

func TestOr_TruthTable(t *testing.T) {
	stub := domain.NewStub(1)
	unset := domain.NewUnset(1)

	tests := []struct {
		name  string
		got   domain.Value
		want  domain.Kind
		logic domain.Logic
	}{
		{"true dominates stub", Or(true, stub), domain.KindLogic, domain.True},
		{"true dominates unset", Or(unset, true), domain.KindLogic, domain.True},
		{"unset dominates stub", Or(unset, stub), domain.KindLogic, domain.Unset},
		{"stub over false", Or(stub, false), domain.KindStub, 0},
		{"all false", Or(false, false), domain.KindLogic, domain.False},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Kind() != tt.want {
				t.Fatalf("kind = %s, want %s", tt.got.Kind(), tt.want)
			}
			if tt.want == domain.KindLogic && tt.got.Logic() != tt.logic {
				t.Errorf("logic = %s, want %s", tt.got.Logic(), tt.logic)
			}
		})
	}
}

func TestAnd_CFIsProduct(t *testing.T) {
	a := domain.NewBool(true, 0.8)
	b := domain.NewBool(false, 0.5)

	// CF is independent of the winning payload and commutative.
	assert.InDelta(t, 0.4, And(a, b).CF(), 1e-9)
	assert.InDelta(t, 0.4, And(b, a).CF(), 1e-9)

	// Associative over three arguments.
	c := domain.NewBool(true, 0.5)
	assert.InDelta(t, 0.2, And(a, b, c).CF(), 1e-9)
	assert.InDelta(t, 0.2, And(c, a, b).CF(), 1e-9)
}

func TestOr_CFIsProbabilisticSum(t *testing.T) {
	a := domain.NewBool(false, 0.8)
	b := domain.NewBool(false, 0.5)

	want := 0.8 + 0.5 - 0.8*0.5
	assert.InDelta(t, want, Or(a, b).CF(), 1e-9)
	assert.InDelta(t, want, Or(b, a).CF(), 1e-9)

	// Associativity of the probabilistic sum.
	c := domain.NewBool(false, 0.3)
	left := cfDisj(cfDisj(0.8, 0.5), 0.3)
	assert.InDelta(t, left, Or(a, b, c).CF(), 1e-9)
	assert.InDelta(t, left, cfDisj(0.8, cfDisj(0.5, 0.3)), 1e-9)
}

func TestAnd_SingleArgumentIsIdentity(t *testing.T) {
	v := domain.NewBool(true, 0.7)
	got := And(v)
	if got.Logic() != domain.True || got.CF() != 0.7 {
		t.Errorf("And(x) = %s cf %f, want True cf 0.7", got.Logic(), got.CF())
	}

	got = Or(domain.NewStub(0.4))
	if !got.IsStub() || got.CF() != 0.4 {
		t.Errorf("Or(stub) = %s cf %f, want stub cf 0.4", got.Kind(), got.CF())
	}
}

func TestNot(t *testing.T) {
	if got := Not(true); got.Logic() != domain.False {
		t.Errorf("Not(True) = %s, want False", got.Logic())
	}
	if got := Not(Not(false)); got.Logic() != domain.False {
		t.Errorf("Not(Not(False)) = %s, want False", got.Logic())
	}

	// Unset and Stub are fixed points, CF included.
	stub := domain.NewStub(0.6)
	if got := Not(stub); got != stub {
		t.Errorf("Not(Stub) changed the value: %+v", got)
	}
	unset := domain.NewUnset(0.3)
	if got := Not(unset); got != unset {
		t.Errorf("Not(Unset) changed the value: %+v", got)
	}

	// CF is preserved through complement.
	if got := Not(domain.NewBool(true, 0.9)); got.CF() != 0.9 {
		t.Errorf("cf = %f, want 0.9", got.CF())
	}
}

func TestNot_SeriesPointwise(t *testing.T) {
	ts := domain.NewTimeSeries(
		domain.SeriesPoint{At: date("2018-01-01"), Val: domain.Lift(true)},
		domain.SeriesPoint{At: date("2019-01-01"), Val: domain.NewStub(1)},
	)
	got := Not(domain.NewSeries(ts, 0.8))

	if !got.IsSeries() || got.CF() != 0.8 {
		t.Fatalf("kind = %s cf %f, want series cf 0.8", got.Kind(), got.CF())
	}
	points := got.Series().Points()
	if points[0].Val.Logic() != domain.False {
		t.Errorf("first point = %s, want False", points[0].Val.Logic())
	}
	if !points[1].Val.IsStub() {
		t.Errorf("second point = %s, want stub", points[1].Val.Kind())
	}
}

func TestAnd_SeriesPointwise(t *testing.T) {
	ts := domain.NewTimeSeries(
		domain.SeriesPoint{At: date("2018-01-01"), Val: domain.Lift(true)},
		domain.SeriesPoint{At: date("2019-01-01"), Val: domain.Lift(false)},
	)
	got := And(domain.NewSeries(ts, 1), true)

	if !got.IsSeries() {
		t.Fatalf("kind = %s, want series", got.Kind())
	}
	points := got.Series().Points()
	if points[0].Val.Logic() != domain.True || points[1].Val.Logic() != domain.False {
		t.Errorf("pointwise and = %s, %s; want True, False", points[0].Val.Logic(), points[1].Val.Logic())
	}
}

func TestAnd_FalseDominatesSeries(t *testing.T) {
	ts := domain.NewTimeSeries(
		domain.SeriesPoint{At: date("2018-01-01"), Val: domain.Lift(true)},
	)
	got := And(false, domain.NewSeries(ts, 1))
	if got.Kind() != domain.KindLogic || got.Logic() != domain.False {
		t.Errorf("And(False, series) = %s, want False", got.Kind())
	}
}
