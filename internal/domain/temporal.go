package domain

import "time"

// Temporal carries the temporal literals rule authors reference. They are
// evaluation-context configuration, not behavior: the algebra never
// interprets them, rules use them as ordinary date values.
type Temporal struct {
	// DawnOfTime floors series literals so a series can say "stub before
	// date X, then value Y from X onward".
	DawnOfTime time.Time

	// Assessment window rule authors compare against.
	AssessmentStart time.Time
	AssessmentEnd   time.Time

	// Now is the evaluation's current time, fixed per assessment so a rule
	// tree sees one consistent instant.
	Now time.Time
}

func DefaultTemporal() Temporal {
	return Temporal{
		DawnOfTime:      time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		AssessmentStart: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		AssessmentEnd:   time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
		Now:             time.Now().UTC(),
	}
}
