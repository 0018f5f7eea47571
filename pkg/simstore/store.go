// Package simstore persists simulated payment requests keyed by identifier.
package simstore

import (
	"context"
	"errors"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

var (
	// ErrNotFound is returned by Get when no record exists for the identifier.
	ErrNotFound = errors.New("simulated payment not found")
	// ErrAlreadyPaid is returned by Put when a paid record is written over one
	// that is already paid. The stored settlement is left untouched.
	ErrAlreadyPaid = errors.New("simulated payment already paid")
)

// Store is the simulation stand-in for the ledger.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Get(ctx context.Context, id string) (*payment.Request, error)
	Put(ctx context.Context, req *payment.Request) error
}

// merge applies an incoming write to the stored record. Identity fields and
// the memo never change after the first write and the paid flag never reverts.
// A second settlement fails with ErrAlreadyPaid.
func merge(existing, incoming *payment.Request) (*payment.Request, error) {
	if existing == nil {
		return incoming.Clone(), nil
	}
	out := existing.Clone()
	if existing.IsPaid {
		if incoming.IsPaid {
			return nil, ErrAlreadyPaid
		}
		return out, nil
	}
	out.IsPaid = incoming.IsPaid
	out.SettlementTx = incoming.SettlementTx
	return out, nil
}
