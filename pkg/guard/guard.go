// Package guard refuses state-changing calls while the wallet is on the
// wrong chain.
package guard

import (
	"context"
	"fmt"
	"math/big"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// ChainIDReader reports the wallet's active chain.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// Checker is satisfied by Guard and Disabled.
type Checker interface {
	Check(ctx context.Context) error
}

// Guard compares the active chain with the required one.
type Guard struct {
	chain    ChainIDReader
	required *big.Int
}

// New creates a Guard requiring chain id required.
func New(chain ChainIDReader, required *big.Int) *Guard {
	return &Guard{chain: chain, required: new(big.Int).Set(required)}
}

// Check reads the active chain immediately and fails with NetworkMismatch if
// it is not the required one. A read failure counts as a mismatch.
func (g *Guard) Check(ctx context.Context) error {
	active, err := g.chain.ChainID(ctx)
	if err != nil {
		return payment.NewError(payment.KindNetworkMismatch, "guard", fmt.Errorf("failed to read active chain: %w", err))
	}
	if active == nil || active.Cmp(g.required) != 0 {
		return payment.Errorf(payment.KindNetworkMismatch, "guard",
			"active chain %s, required %s", hexChain(active), hexChain(g.required))
	}
	return nil
}

type disabled struct{}

func (disabled) Check(context.Context) error { return nil }

// Disabled always passes. Simulated sessions use it.
var Disabled Checker = disabled{}

func hexChain(id *big.Int) string {
	if id == nil {
		return "unknown"
	}
	return "0x" + id.Text(16)
}
