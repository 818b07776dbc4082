package algebra

import (
	"testing"

	"github.com/verdictlab/verdict/internal/domain"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name string
		v    domain.Value
		want string
	}{
		{"scalar", domain.NewScalar(5, 1), "5 (100% certain)"},
		{"fraction", domain.NewScalar(5.15, 0.5), "5.15 (50% certain)"},
		{"string", domain.NewScalar("Female", 1), "Female (100% certain)"},
		{"true", domain.NewBool(true, 0.746), "True (75% certain)"},
		{"unset", domain.NewUnset(1), "Unset (100% certain)"},
		{"stub", domain.NewStub(0.25), "Stub (25% certain)"},
		{"date", domain.NewScalar(date("2005-01-01"), 1), "2005-01-01 (100% certain)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pretty(tt.v); got != tt.want {
				t.Errorf("Pretty = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPretty_SeriesPointwise(t *testing.T) {
	ts := domain.NewTimeSeries(
		domain.SeriesPoint{At: date("1900-01-01"), Val: domain.NewStub(1)},
		domain.SeriesPoint{At: date("1997-09-01"), Val: domain.Lift(5.15)},
	)
	got := Pretty(domain.NewSeries(ts, 1))
	want := "1900-01-01: Stub (100% certain); 1997-09-01: 5.15 (100% certain)"
	if got != want {
		t.Errorf("Pretty = %q, want %q", got, want)
	}
}
