package simstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// PGStore is a PostgreSQL implementation of Store.
type PGStore struct {
	db *bun.DB
}

// NewPGStore creates a new PostgreSQL-backed simulation store.
func NewPGStore(db *bun.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Get(ctx context.Context, id string) (*payment.Request, error) {
	dao := new(SimulatedPaymentDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get simulated payment %s: %w", id, err)
	}
	return fromSimulatedPaymentDao(dao), nil
}

// Put inserts the record or, for an existing unpaid record, records the
// settlement. Paid rows are never updated; a paid write against one fails
// with ErrAlreadyPaid.
func (s *PGStore) Put(ctx context.Context, req *payment.Request) error {
	res, err := s.db.NewInsert().
		Model(toSimulatedPaymentDao(req)).
		On("CONFLICT (id) DO UPDATE").
		Set("is_paid = EXCLUDED.is_paid").
		Set("settlement_tx = EXCLUDED.settlement_tx").
		Set("updated_at = EXCLUDED.updated_at").
		Where("NOT ?TableAlias.is_paid").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to put simulated payment %s: %w", req.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to put simulated payment %s: %w", req.ID, err)
	}
	if n == 0 && req.IsPaid {
		return ErrAlreadyPaid
	}
	return nil
}
