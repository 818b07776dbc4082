package domain

import (
	"time"
)

// Logic is the tri-state truth payload. Unset means "not applicable /
// explicitly unknown" and is terminal for combination purposes; a pending
// answer is not a Logic state but its own payload kind (KindStub).
type Logic int8

const (
	False Logic = iota
	True
	Unset
)

func (l Logic) String() string {
	switch l {
	case False:
		return "False"
	case True:
		return "True"
	case Unset:
		return "Unset"
	}
	return "invalid"
}

// Kind tags the active payload variant of a Value. Exactly one variant is
// active at any time; code switching on Kind must handle all four.
type Kind int8

const (
	KindScalar Kind = iota
	KindLogic
	KindStub
	KindSeries
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindLogic:
		return "logic"
	case KindStub:
		return "stub"
	case KindSeries:
		return "series"
	}
	return "invalid"
}

// Value is the unit of rule computation: a payload, a certainty factor and a
// payload kind fixed at construction. Values are immutable; every operation
// on them returns a new Value.
//
// Native == on Value stays plain struct identity and is never used for rule
// comparisons; the algebra package exposes named comparison operations
// instead.
type Value struct {
	kind   Kind
	scalar any // float64, string or time.Time when kind == KindScalar
	logic  Logic
	series *TimeSeries
	cf     float64
}

// NewScalar wraps a scalar payload. Numeric payloads are normalized to
// float64; bool becomes a Logic payload.
func NewScalar(v any, cf float64) Value {
	switch s := v.(type) {
	case int:
		return Value{kind: KindScalar, scalar: float64(s), cf: cf}
	case int32:
		return Value{kind: KindScalar, scalar: float64(s), cf: cf}
	case int64:
		return Value{kind: KindScalar, scalar: float64(s), cf: cf}
	case float32:
		return Value{kind: KindScalar, scalar: float64(s), cf: cf}
	case float64:
		return Value{kind: KindScalar, scalar: s, cf: cf}
	case string:
		return Value{kind: KindScalar, scalar: s, cf: cf}
	case time.Time:
		return Value{kind: KindScalar, scalar: s, cf: cf}
	case bool:
		return NewBool(s, cf)
	}
	// Unsupported payload types are inapplicability, not failure.
	return NewUnset(cf)
}

func NewBool(b bool, cf float64) Value {
	if b {
		return Value{kind: KindLogic, logic: True, cf: cf}
	}
	return Value{kind: KindLogic, logic: False, cf: cf}
}

func NewLogic(l Logic, cf float64) Value {
	return Value{kind: KindLogic, logic: l, cf: cf}
}

// NewUnset builds a "not applicable" value.
func NewUnset(cf float64) Value {
	return Value{kind: KindLogic, logic: Unset, cf: cf}
}

// NewStub builds a "not yet elicited, but obtainable" value. Stub is never
// equal to Unset: an Unset answer is terminal, a Stub asks for more input.
func NewStub(cf float64) Value {
	return Value{kind: KindStub, cf: cf}
}

func NewSeries(ts *TimeSeries, cf float64) Value {
	return Value{kind: KindSeries, series: ts, cf: cf}
}

// Lift wraps a bare Go value with full certainty. Values pass through
// untouched, so operations can accept either form on either side.
func Lift(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case Logic:
		return NewLogic(x, 1)
	case *TimeSeries:
		return NewSeries(x, 1)
	default:
		return NewScalar(v, 1)
	}
}

func (v Value) Kind() Kind  { return v.kind }
func (v Value) CF() float64 { return v.cf }

func (v Value) IsSeries() bool { return v.kind == KindSeries }
func (v Value) IsStub() bool   { return v.kind == KindStub }
func (v Value) IsUnset() bool  { return v.kind == KindLogic && v.logic == Unset }

// Logic returns the truth payload; meaningful only when Kind is KindLogic.
func (v Value) Logic() Logic { return v.logic }

// Scalar returns the raw scalar payload (float64, string or time.Time);
// nil for non-scalar kinds.
func (v Value) Scalar() any { return v.scalar }

// Series returns the time-series payload; nil for non-series kinds.
func (v Value) Series() *TimeSeries { return v.series }

// WithCF returns a copy carrying the given certainty factor.
func (v Value) WithCF(cf float64) Value {
	v.cf = cf
	return v
}

// IsZero reports whether the payload is the scalar number zero. Used by the
// multiplication short-circuit, which runs before the Stub/Unset checks.
func (v Value) IsZero() bool {
	if v.kind != KindScalar {
		return false
	}
	n, ok := v.scalar.(float64)
	return ok && n == 0
}
