// Package simulation implements the payment backend used for demo links.
// It mirrors the ledger flow against a simstore.Store without any network calls.
package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/simstore"
	"github.com/0xNexuz/Tempocash/pkg/token"
)

// Fixture served for simulation ids that were never created.
const (
	FixtureMerchant = "0xMerchantAddress782394"
	FixtureToken    = "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"
	FixtureAmount   = "150.00"
	FixtureMemo     = "Demo: Invoice #4421 - Tempo Integration"
)

// Backend serves simulated payment requests.
type Backend struct {
	store  simstore.Store
	tokens *token.Registry
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewBackend creates a simulated backend. delay models the confirmation wait
// of approve and settle.
func NewBackend(store simstore.Store, tokens *token.Registry, delay time.Duration, logger *zap.Logger) *Backend {
	return &Backend{
		store:  store,
		tokens: tokens,
		delay:  delay,
		logger: logger,
		now:    time.Now,
	}
}

// Fetch returns the stored record, or the default fixture under id.
func (b *Backend) Fetch(ctx context.Context, id string) (*payment.Request, error) {
	const op = "open"

	req, err := b.store.Get(ctx, id)
	switch {
	case err == nil:
		return req, nil
	case errors.Is(err, simstore.ErrNotFound):
		b.logger.Debug("No stored simulated payment, serving fixture", zap.String("payment_id", id))
		return b.fixture(id)
	default:
		return nil, payment.NewError(payment.KindFetchFailed, op, err)
	}
}

func (b *Backend) fixture(id string) (*payment.Request, error) {
	info := b.tokens.ResolveOrDefault(FixtureToken)
	amount, raw, err := token.Normalize(FixtureAmount, info.Decimals)
	if err != nil {
		return nil, payment.NewError(payment.KindFetchFailed, "open", err)
	}
	return &payment.Request{
		ID:        id,
		Merchant:  FixtureMerchant,
		Token:     info.Address,
		Symbol:    info.Symbol,
		Decimals:  info.Decimals,
		Native:    info.Native,
		Amount:    amount,
		RawAmount: raw.String(),
		Memo:      FixtureMemo,
		CreatedAt: b.now().Unix(),
	}, nil
}

// Approve only waits; an allowance has no persisted effect in simulation.
func (b *Backend) Approve(ctx context.Context, req *payment.Request, _ string) error {
	if err := b.wait(ctx); err != nil {
		return payment.NewError(payment.KindAuthorizationFailed, "approve", err)
	}
	return nil
}

// Settle waits, synthesizes a transaction hash and marks the record paid.
// A record that is already paid fails with AlreadySettledOrInvalid, as the
// contract would.
func (b *Backend) Settle(ctx context.Context, req *payment.Request, account string) (*payment.Receipt, error) {
	const op = "settle"

	current, err := b.store.Get(ctx, req.ID)
	switch {
	case err == nil:
		if current.IsPaid {
			return nil, payment.Errorf(payment.KindAlreadySettledOrInvalid, op, "payment %s is already paid", req.ID)
		}
	case errors.Is(err, simstore.ErrNotFound):
	default:
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}

	if err := b.wait(ctx); err != nil {
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}

	entropy := uuid.New()
	hash := crypto.Keccak256Hash([]byte(req.ID), []byte(account), entropy[:])

	paid := req.Clone()
	paid.IsPaid = true
	paid.SettlementTx = hash.Hex()
	if err := b.store.Put(ctx, paid); err != nil {
		if errors.Is(err, simstore.ErrAlreadyPaid) {
			return nil, payment.NewError(payment.KindAlreadySettledOrInvalid, op, err)
		}
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}

	b.logger.Info("Simulated settlement recorded",
		zap.String("payment_id", req.ID),
		zap.String("tx_hash", paid.SettlementTx))

	return &payment.Receipt{
		TxHash:    paid.SettlementTx,
		Simulated: true,
		SettledAt: b.now().UTC(),
	}, nil
}

// Create stores a new simulated request under a fresh demo- identifier.
func (b *Backend) Create(ctx context.Context, draft *payment.Draft) (*payment.Request, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	req := &payment.Request{
		ID:        payment.NewSimulationID(),
		Merchant:  draft.Merchant,
		Token:     draft.Token,
		Symbol:    draft.Symbol,
		Decimals:  draft.Decimals,
		Native:    draft.Native,
		Amount:    draft.Amount,
		RawAmount: draft.RawAmount,
		Memo:      draft.Memo,
		CreatedAt: b.now().Unix(),
	}
	if err := b.store.Put(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *Backend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DemoAccount is the account source of simulated sessions.
type DemoAccount string

// ActiveAccount returns the configured demo account.
func (a DemoAccount) ActiveAccount(context.Context) (string, error) {
	if a == "" {
		return "", payment.ErrNoAccount
	}
	return string(a), nil
}
