package rules

import (
	"time"

	"github.com/verdictlab/verdict/internal/algebra"
	"github.com/verdictlab/verdict/internal/domain"
)

// Date parses a yyyy-mm-dd rule literal. It panics on a malformed literal,
// which is a compile-time-style authoring error, not a runtime condition.
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("rules: bad date literal " + s)
	}
	return t
}

// RegisterBuiltins installs the built-in fact vocabulary and rule catalog.
func RegisterBuiltins(reg *Registry) {
	reg.DefineFact(domain.FactDef{Name: "age", Type: domain.FactNumber, Arity: 1, Question: "How old is {0}?"})
	reg.DefineFact(domain.FactDef{Name: "gender", Type: domain.FactString, Arity: 1, Question: "What is {0}'s gender?"})
	reg.DefineFact(domain.FactDef{Name: "relationship", Type: domain.FactString, Arity: 2, Question: "How is {0} related to {1}?"})
	reg.DefineFact(domain.FactDef{Name: "citizenship", Type: domain.FactString, Arity: 1, Question: "What is {0}'s U.S. citizenship status?"})
	reg.DefineFact(domain.FactDef{Name: "assessment_date", Type: domain.FactDate, Arity: 0, Question: "What is the assessment date?"})
	reg.DefineFact(domain.FactDef{Name: "expedited_app", Type: domain.FactBool, Arity: 1, Question: "Does {0} require an expedited application?"})
	reg.DefineFact(domain.FactDef{Name: "hourly_wage", Type: domain.FactNumber, Arity: 1, Question: "How much is {0} paid per hour?"})

	reg.Register(Rule{
		Name:  "qualifying_relative",
		Arity: 2,
		Doc:   "Whether the first subject is a qualifying relative of the second.",
		Eval:  qualifyingRelative,
	})
	reg.Register(Rule{
		Name:  "expedited_eligibility",
		Arity: 1,
		Doc:   "Whether the subject qualifies for expedited processing.",
		Eval:  expeditedEligibility,
	})
}

func qualifyingRelative(env *Env, subjects ...string) domain.Value {
	a, b := subjects[0], subjects[1]
	return algebra.And(
		algebra.LessThan(env.Fact("age", a), 18),
		algebra.AtLeast(env.Fact("age", b), 18),
		algebra.Equal(env.Fact("gender", b), "Female"),
		algebra.Not(algebra.Equal(env.Fact("relationship", a, b), "Child")),
		algebra.GreaterThan(env.Fact("assessment_date"), Date("2001-01-01")),
	)
}

func expeditedEligibility(env *Env, subjects ...string) domain.Value {
	p := subjects[0]
	return algebra.Or(
		env.Fact("expedited_app", p),
		algebra.LessThan(env.Fact("hourly_wage", p), FederalMinimumWage(env.Temporal())),
		algebra.GreaterThan(env.Fact("assessment_date"), env.Temporal().Now),
		algebra.AtLeast(env.Fact("age", p), 12),
		algebra.Equal(env.Fact("citizenship", p), "U.S. Citizen"),
	)
}

// FederalMinimumWage is the statutory rate for covered, nonexempt workers.
// Source: https://www.dol.gov/whd/minwage/chart.htm
// Stubbed before the earliest rate we carry.
func FederalMinimumWage(temporal domain.Temporal) domain.Value {
	return domain.NewSeries(domain.NewTimeSeries(
		domain.SeriesPoint{At: temporal.DawnOfTime, Val: domain.NewStub(1)},
		domain.SeriesPoint{At: Date("1997-09-01"), Val: domain.Lift(5.15)},
		domain.SeriesPoint{At: Date("2007-07-24"), Val: domain.Lift(5.85)},
		domain.SeriesPoint{At: Date("2008-07-24"), Val: domain.Lift(6.55)},
		domain.SeriesPoint{At: Date("2009-07-24"), Val: domain.Lift(7.25)},
	), 1)
}
