package simulation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/simstore"
	"github.com/0xNexuz/Tempocash/pkg/simstore/mocks"
	"github.com/0xNexuz/Tempocash/pkg/token"
)

func newTestBackend(store simstore.Store, delay time.Duration) *Backend {
	b := NewBackend(store, token.DefaultRegistry(), delay, zap.NewNop())
	b.now = func() time.Time { return time.Unix(1700000000, 0) }
	return b
}

func TestFetch_SynthesizesFixture(t *testing.T) {
	b := newTestBackend(simstore.NewMemoryStore(), 0)

	req, err := b.Fetch(context.Background(), "demo-abc123")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if req.ID != "demo-abc123" {
		t.Fatalf("expected fixture under requested id, got %q", req.ID)
	}
	if req.Amount != "150.00" || req.RawAmount != "150000000" {
		t.Fatalf("unexpected fixture amount %s / %s", req.Amount, req.RawAmount)
	}
	if req.IsPaid || req.Native {
		t.Fatalf("fixture must be unpaid and non-native: %+v", req)
	}
	if req.Merchant != FixtureMerchant || req.Memo != FixtureMemo || req.Symbol != "USDC" {
		t.Fatalf("unexpected fixture %+v", req)
	}
	if got := payment.InitialStep(req); got != payment.StepNeedsAuthorization {
		t.Fatalf("expected needs-authorization, got %s", got)
	}
}

func TestFetch_StoreHit(t *testing.T) {
	store := mocks.NewStore(t)
	stored := &payment.Request{ID: "demo-x", Amount: "1.00", RawAmount: "1000000", IsPaid: true}
	store.EXPECT().Get(mock.Anything, "demo-x").Return(stored, nil).Once()

	got, err := newTestBackend(store, 0).Fetch(context.Background(), "demo-x")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if got != stored {
		t.Fatalf("expected stored record, got %+v", got)
	}
}

func TestFetch_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Get(mock.Anything, "demo-x").Return(nil, errors.New("redis down")).Once()

	_, err := newTestBackend(store, 0).Fetch(context.Background(), "demo-x")
	if !errors.Is(err, payment.ErrFetchFailed) {
		t.Fatalf("expected FetchFailed, got %v", err)
	}
}

func TestApprove_DoesNotTouchStore(t *testing.T) {
	store := mocks.NewStore(t)
	b := newTestBackend(store, time.Millisecond)

	if err := b.Approve(context.Background(), &payment.Request{ID: "demo-x"}, "0xTempoDemoAccount723940182347"); err != nil {
		t.Fatalf("Approve() failed: %v", err)
	}
}

func TestApprove_HonoursCancellation(t *testing.T) {
	b := newTestBackend(simstore.NewMemoryStore(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Approve(ctx, &payment.Request{ID: "demo-x"}, "acct")
	if !errors.Is(err, payment.ErrAuthorizationFailed) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled AuthorizationFailed, got %v", err)
	}
}

func TestSettle_PersistsPaidFlag(t *testing.T) {
	ctx := context.Background()
	store := simstore.NewMemoryStore()
	b := newTestBackend(store, 0)

	req, err := b.Fetch(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	receipt, err := b.Settle(ctx, req, "0xTempoDemoAccount723940182347")
	if err != nil {
		t.Fatalf("Settle() failed: %v", err)
	}
	if !receipt.Simulated || len(receipt.TxHash) != 66 || !strings.HasPrefix(receipt.TxHash, "0x") {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if req.IsPaid {
		t.Fatal("Settle() must not mutate the caller's request")
	}

	stored, err := store.Get(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !stored.IsPaid || stored.SettlementTx != receipt.TxHash {
		t.Fatalf("expected paid record with tx, got %+v", stored)
	}

	again, err := b.Fetch(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if payment.InitialStep(again) != payment.StepSettled {
		t.Fatalf("expected settled step after reload, got %s", payment.InitialStep(again))
	}
}

func TestSettle_SecondSessionIsAlreadySettled(t *testing.T) {
	ctx := context.Background()
	store := simstore.NewMemoryStore()
	b := newTestBackend(store, 0)

	first, err := b.Fetch(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	second, err := b.Fetch(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	receipt, err := b.Settle(ctx, first, "0xTempoDemoAccount723940182347")
	if err != nil {
		t.Fatalf("first Settle() failed: %v", err)
	}
	if _, err := b.Settle(ctx, second, "0xTempoDemoAccount723940182347"); !errors.Is(err, payment.ErrAlreadySettledOrInvalid) {
		t.Fatalf("expected AlreadySettledOrInvalid, got %v", err)
	}

	stored, err := store.Get(ctx, "demo-abc123")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if stored.SettlementTx != receipt.TxHash {
		t.Fatalf("stored tx %s does not match the only receipt %s", stored.SettlementTx, receipt.TxHash)
	}
}

func TestSettle_LosesSettlementRace(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Get(mock.Anything, "demo-x").Return(nil, simstore.ErrNotFound).Once()
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(simstore.ErrAlreadyPaid).Once()

	_, err := newTestBackend(store, 0).Settle(context.Background(), &payment.Request{ID: "demo-x"}, "acct")
	if !errors.Is(err, payment.ErrAlreadySettledOrInvalid) {
		t.Fatalf("expected AlreadySettledOrInvalid, got %v", err)
	}
}

func TestSettle_StoreReadFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Get(mock.Anything, "demo-x").Return(nil, errors.New("redis down")).Once()

	_, err := newTestBackend(store, 0).Settle(context.Background(), &payment.Request{ID: "demo-x"}, "acct")
	if !errors.Is(err, payment.ErrSettlementFailed) {
		t.Fatalf("expected SettlementFailed, got %v", err)
	}
}

func TestSettle_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Get(mock.Anything, "demo-x").Return(nil, simstore.ErrNotFound).Once()
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := newTestBackend(store, 0).Settle(context.Background(), &payment.Request{ID: "demo-x"}, "acct")
	if !errors.Is(err, payment.ErrSettlementFailed) {
		t.Fatalf("expected SettlementFailed, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	store := simstore.NewMemoryStore()
	b := newTestBackend(store, 0)

	req, err := b.Create(ctx, &payment.Draft{
		Merchant:  "0xTempoDemoAccount723940182347",
		Token:     "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		Symbol:    "USDT",
		Decimals:  6,
		Amount:    "42.10",
		RawAmount: "42100000",
		Memo:      "Order 7",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !payment.IsSimulationID(req.ID) {
		t.Fatalf("expected simulation id, got %q", req.ID)
	}
	if req.CreatedAt != 1700000000 {
		t.Fatalf("unexpected created_at %d", req.CreatedAt)
	}

	stored, err := store.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if *stored != *req {
		t.Fatalf("stored record mismatch: %+v vs %+v", stored, req)
	}
}

func TestDemoAccount(t *testing.T) {
	acct, err := DemoAccount("0xTempoDemoAccount723940182347").ActiveAccount(context.Background())
	if err != nil || acct != "0xTempoDemoAccount723940182347" {
		t.Fatalf("unexpected account %q, %v", acct, err)
	}
	if _, err := DemoAccount("").ActiveAccount(context.Background()); !errors.Is(err, payment.ErrNoAccount) {
		t.Fatalf("expected NoAccount, got %v", err)
	}
}
