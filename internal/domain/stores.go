package domain

import "context"

// FactStore persists elicited answers. Lookup is by exact
// (fact, subjectA, subjectB) key; unanswered facts report not-found and the
// rule environment turns that into a Stub value.
type FactStore interface {
	Put(ctx context.Context, a *Answer) error
	Get(ctx context.Context, fact, subjectA, subjectB string) (*Answer, error)
	Delete(ctx context.Context, fact, subjectA, subjectB string) error
	ListBySubject(ctx context.Context, subject string) ([]Answer, error)
}
