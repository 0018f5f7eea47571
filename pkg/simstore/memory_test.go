package simstore

import (
	"context"
	"errors"
	"testing"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

func testRequest(id string) *payment.Request {
	return &payment.Request{
		ID:        id,
		Merchant:  "0x1111111111111111111111111111111111111111",
		Token:     "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
		Symbol:    "USDC",
		Decimals:  6,
		Amount:    "12.50",
		RawAmount: "12500000",
		Memo:      "Invoice #1",
		CreatedAt: 1700000000,
	}
}

// exerciseStore runs the behaviour every Store implementation shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "demo-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	req := testRequest("demo-abc123")
	if err := s.Put(ctx, req); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := s.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if *got != *req {
		t.Fatalf("stored record mismatch:\n got %+v\nwant %+v", got, req)
	}

	paid := req.Clone()
	paid.IsPaid = true
	paid.SettlementTx = "0xfeed"
	paid.Memo = "rewritten"
	if err := s.Put(ctx, paid); err != nil {
		t.Fatalf("Put() paid failed: %v", err)
	}
	got, err = s.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !got.IsPaid || got.SettlementTx != "0xfeed" {
		t.Fatalf("expected paid record, got %+v", got)
	}
	if got.Memo != req.Memo {
		t.Fatalf("memo must not change, got %q", got.Memo)
	}

	second := req.Clone()
	second.IsPaid = true
	second.SettlementTx = "0xbeef"
	if err := s.Put(ctx, second); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid for a second settlement, got %v", err)
	}
	got, err = s.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.SettlementTx != "0xfeed" {
		t.Fatalf("second settlement overwrote the first: %+v", got)
	}

	unpaid := req.Clone()
	if err := s.Put(ctx, unpaid); err != nil {
		t.Fatalf("Put() unpaid failed: %v", err)
	}
	got, err = s.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !got.IsPaid || got.SettlementTx != "0xfeed" {
		t.Fatalf("paid flag reverted: %+v", got)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	req := testRequest("demo-copy")
	if err := s.Put(ctx, req); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	req.Amount = "999.00"

	got, err := s.Get(ctx, "demo-copy")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	got.IsPaid = true

	again, _ := s.Get(ctx, "demo-copy")
	if again.Amount != "12.50" || again.IsPaid {
		t.Fatalf("store leaked a reference: %+v", again)
	}
}
