package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FactType string

const (
	FactString FactType = "str"
	FactNumber FactType = "num"
	FactBool   FactType = "bool"
	FactDate   FactType = "date"
)

func ValidFactType(t string) bool {
	switch FactType(t) {
	case FactString, FactNumber, FactBool, FactDate:
		return true
	}
	return false
}

// FactDef declares an elicitable fact: its payload type, how many subjects
// it is about (0, 1 or 2), and the question template the interview side
// shows when the fact is still unanswered. The algebra itself never reads
// the question text.
type FactDef struct {
	Name     string   `json:"name"`
	Type     FactType `json:"type"`
	Arity    int      `json:"arity"`
	Question string   `json:"question"`
}

// RenderQuestion fills the {0}/{1} placeholders with subject references.
func (d FactDef) RenderQuestion(subjects ...string) string {
	q := d.Question
	for i, s := range subjects {
		q = strings.ReplaceAll(q, fmt.Sprintf("{%d}", i), s)
	}
	return q
}

// Question is a pending elicitation surfaced by an evaluation: a fact the
// rule tree needed but no answer existed for. Choosing which one to ask
// next is the interview engine's call, not this service's.
type Question struct {
	Fact     string   `json:"fact"`
	Subjects []string `json:"subjects"`
	Type     FactType `json:"type"`
	Prompt   string   `json:"prompt"`
}

// Answer is a recorded fact value for a (fact, subjectA, subjectB) key.
// Exactly one typed column is set according to the fact's type, unless
// Unset marks the fact as not applicable for these subjects.
type Answer struct {
	ID       uuid.UUID `json:"id"`
	Fact     string    `json:"fact"`
	SubjectA string    `json:"subject_a"`
	SubjectB string    `json:"subject_b"`

	Unset   bool       `json:"unset"`
	Number  *float64   `json:"number,omitempty"`
	Text    *string    `json:"text,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *time.Time `json:"date,omitempty"`

	CF float64 `json:"cf"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Value converts the recorded answer into an algebra value of the declared
// type. A declared-but-missing payload reads as Unset rather than failing.
func (a *Answer) Value(t FactType) Value {
	if a.Unset {
		return NewUnset(a.CF)
	}
	switch t {
	case FactNumber:
		if a.Number != nil {
			return NewScalar(*a.Number, a.CF)
		}
	case FactString:
		if a.Text != nil {
			return NewScalar(*a.Text, a.CF)
		}
	case FactBool:
		if a.Boolean != nil {
			return NewBool(*a.Boolean, a.CF)
		}
	case FactDate:
		if a.Date != nil {
			return NewScalar(*a.Date, a.CF)
		}
	}
	return NewUnset(a.CF)
}
