package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/verdictlab/verdict/internal/domain"
)

// FactStore persists answers in postgres, one row per
// (fact, subject_a, subject_b) key with typed value columns.
type FactStore struct {
	db *pgxpool.Pool
}

func NewFactStore(db *pgxpool.Pool) *FactStore {
	return &FactStore{db: db}
}

func (s *FactStore) Put(ctx context.Context, a *domain.Answer) error {
	if a.CF == 0 {
		a.CF = 1
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO answers (fact, subject_a, subject_b, unset, value_num, value_text, value_bool, value_date, cf)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (fact, subject_a, subject_b) DO UPDATE
		 SET unset = EXCLUDED.unset,
		     value_num = EXCLUDED.value_num,
		     value_text = EXCLUDED.value_text,
		     value_bool = EXCLUDED.value_bool,
		     value_date = EXCLUDED.value_date,
		     cf = EXCLUDED.cf,
		     updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		a.Fact, a.SubjectA, a.SubjectB, a.Unset, a.Number, a.Text, a.Boolean, a.Date, a.CF,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (s *FactStore) Get(ctx context.Context, fact, subjectA, subjectB string) (*domain.Answer, error) {
	a := &domain.Answer{}
	err := s.db.QueryRow(ctx,
		`SELECT id, fact, subject_a, subject_b, unset, value_num, value_text, value_bool, value_date, cf, created_at, updated_at
		 FROM answers WHERE fact = $1 AND subject_a = $2 AND subject_b = $3`,
		fact, subjectA, subjectB,
	).Scan(&a.ID, &a.Fact, &a.SubjectA, &a.SubjectB, &a.Unset, &a.Number, &a.Text, &a.Boolean, &a.Date, &a.CF, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *FactStore) Delete(ctx context.Context, fact, subjectA, subjectB string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM answers WHERE fact = $1 AND subject_a = $2 AND subject_b = $3`,
		fact, subjectA, subjectB,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FactStore) ListBySubject(ctx context.Context, subject string) ([]domain.Answer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, fact, subject_a, subject_b, unset, value_num, value_text, value_bool, value_date, cf, created_at, updated_at
		 FROM answers WHERE subject_a = $1 OR subject_b = $1
		 ORDER BY fact, subject_a, subject_b`,
		subject,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.Fact, &a.SubjectA, &a.SubjectB, &a.Unset, &a.Number, &a.Text, &a.Boolean, &a.Date, &a.CF, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
