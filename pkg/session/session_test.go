package session

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/pkg/guard"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/session/mocks"
	"github.com/0xNexuz/Tempocash/pkg/simstore"
	"github.com/0xNexuz/Tempocash/pkg/simulation"
	"github.com/0xNexuz/Tempocash/pkg/token"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

const (
	liveID      = "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"
	payer       = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	demoAccount = "0xTempoDemoAccount723940182347"
)

var tempoChain = big.NewInt(123)

type staticChain int64

func (c staticChain) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(int64(c)), nil
}

type staticAccount struct {
	account string
	err     error
}

func (a staticAccount) ActiveAccount(context.Context) (string, error) {
	return a.account, a.err
}

type feedNotifier struct {
	feed event.Feed
}

func (n *feedNotifier) Subscribe(ch chan<- wallet.Event) event.Subscription {
	return n.feed.Subscribe(ch)
}

func usdcRequest(id string) *payment.Request {
	return &payment.Request{
		ID:        id,
		Merchant:  "0x1111111111111111111111111111111111111111",
		Token:     "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
		Symbol:    "USDC",
		Decimals:  6,
		Amount:    "25.00",
		RawAmount: "25000000",
		Memo:      "Invoice #9",
	}
}

func nativeRequest(id string) *payment.Request {
	return &payment.Request{
		ID:        id,
		Merchant:  "0x1111111111111111111111111111111111111111",
		Token:     "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		Symbol:    "pathUSD",
		Decimals:  18,
		Native:    true,
		Amount:    "1.00",
		RawAmount: "1000000000000000000",
		Memo:      "Coffee",
	}
}

func simulatedRoute() Route {
	return Route{
		Backend:  simulation.NewBackend(simstore.NewMemoryStore(), token.DefaultRegistry(), 0, zap.NewNop()),
		Accounts: simulation.DemoAccount(demoAccount),
	}
}

func liveRoute(backend Backend, chainID int64) *Route {
	return &Route{
		Backend:  backend,
		Accounts: staticAccount{account: payer},
		Guard:    guard.New(staticChain(chainID), tempoChain),
	}
}

func openLive(t *testing.T, backend *mocks.Backend, req *payment.Request) *Session {
	t.Helper()
	backend.EXPECT().Fetch(mock.Anything, req.ID).Return(req, nil).Once()

	s, err := NewOpener(liveRoute(backend, 123), simulatedRoute(), zap.NewNop()).
		Open(context.Background(), req.ID, payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestOpen_SimulationIDNeverTouchesLiveRoute(t *testing.T) {
	live := mocks.NewBackend(t)
	opener := NewOpener(&Route{
		Backend:  live,
		Accounts: staticAccount{err: errors.New("wallet must not be asked")},
		Guard:    guard.New(staticChain(1), tempoChain),
	}, simulatedRoute(), zap.NewNop())

	s, err := opener.Open(context.Background(), "demo-abc123", payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	v := s.Snapshot()
	if v.Mode != payment.ModeSimulated {
		t.Fatalf("expected simulated mode, got %s", v.Mode)
	}
	if v.Step != payment.StepNeedsAuthorization {
		t.Fatalf("expected needs-authorization, got %s", v.Step)
	}
	if v.Request.Amount != "150.00" || v.Request.IsPaid {
		t.Fatalf("unexpected fixture %+v", v.Request)
	}
	if v.Account != demoAccount {
		t.Fatalf("expected demo account, got %q", v.Account)
	}
}

func TestOpen_Failures(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		_, err := NewOpener(nil, simulatedRoute(), zap.NewNop()).Open(context.Background(), "  ", payment.ModeSimulated)
		if !errors.Is(err, payment.ErrWrongIdentifierFormat) {
			t.Fatalf("expected WrongIdentifierFormat, got %v", err)
		}
	})

	t.Run("live not configured", func(t *testing.T) {
		_, err := NewOpener(nil, simulatedRoute(), zap.NewNop()).Open(context.Background(), liveID, payment.ModeLive)
		if !errors.Is(err, payment.ErrContractUnavailable) {
			t.Fatalf("expected ContractUnavailable, got %v", err)
		}
	})

	t.Run("classified fetch error passes through", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		backend.EXPECT().Fetch(mock.Anything, liveID).
			Return(nil, payment.Errorf(payment.KindNotFound, "open", "no merchant")).Once()

		_, err := NewOpener(liveRoute(backend, 123), simulatedRoute(), zap.NewNop()).Open(context.Background(), liveID, "")
		if !errors.Is(err, payment.ErrNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("raw fetch error is FetchFailed", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		backend.EXPECT().Fetch(mock.Anything, liveID).Return(nil, errors.New("connection reset")).Once()

		_, err := NewOpener(liveRoute(backend, 123), simulatedRoute(), zap.NewNop()).Open(context.Background(), liveID, payment.ModeLive)
		if !errors.Is(err, payment.ErrFetchFailed) {
			t.Fatalf("expected FetchFailed, got %v", err)
		}
	})
}

func TestSettle_BeforeApproveIsInvalidStep(t *testing.T) {
	backend := mocks.NewBackend(t)
	s := openLive(t, backend, usdcRequest(liveID))

	_, err := s.Settle(context.Background())
	if !errors.Is(err, payment.ErrInvalidStep) {
		t.Fatalf("expected InvalidStep, got %v", err)
	}
	v := s.Snapshot()
	if v.Step != payment.StepNeedsAuthorization {
		t.Fatalf("step changed to %s", v.Step)
	}
	if v.LastError == nil || v.LastError.Kind != payment.KindInvalidStep {
		t.Fatalf("expected last error InvalidStep, got %v", v.LastError)
	}
}

func TestLifecycle_ApproveThenSettle(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewBackend(t)
	s := openLive(t, backend, usdcRequest(liveID))

	backend.EXPECT().Approve(mock.Anything, mock.MatchedBy(func(r *payment.Request) bool {
		return r.ID == liveID && r.RawAmount == "25000000"
	}), payer).Return(nil).Once()

	if err := s.Approve(ctx); err != nil {
		t.Fatalf("Approve() failed: %v", err)
	}
	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("expected ready-to-settle, got %s", s.Step())
	}

	want := &payment.Receipt{TxHash: "0xabc", BlockNumber: 7, SettledAt: time.Unix(1700000000, 0)}
	backend.EXPECT().Settle(mock.Anything, mock.Anything, payer).Return(want, nil).Once()

	receipt, err := s.Settle(ctx)
	if err != nil {
		t.Fatalf("Settle() failed: %v", err)
	}
	if receipt.TxHash != "0xabc" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}

	v := s.Snapshot()
	if v.Step != payment.StepSettled || !v.Request.IsPaid || v.Request.SettlementTx != "0xabc" {
		t.Fatalf("unexpected settled view %+v", v)
	}

	// terminal state: neither operation reaches the backend or changes the receipt
	if err := s.Approve(ctx); !errors.Is(err, payment.ErrInvalidStep) {
		t.Fatalf("expected InvalidStep on approve after settle, got %v", err)
	}
	if _, err := s.Settle(ctx); !errors.Is(err, payment.ErrInvalidStep) {
		t.Fatalf("expected InvalidStep on second settle, got %v", err)
	}
	after := s.Snapshot()
	if !after.Request.IsPaid || after.Receipt == nil || after.Receipt.TxHash != "0xabc" {
		t.Fatalf("terminal state changed: %+v", after)
	}
}

func TestApprove_NativeTokenIsNoop(t *testing.T) {
	backend := mocks.NewBackend(t)
	s := openLive(t, backend, nativeRequest(liveID))

	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("native request must open at ready-to-settle, got %s", s.Step())
	}
	if err := s.Approve(context.Background()); err != nil {
		t.Fatalf("Approve() failed: %v", err)
	}
	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("expected ready-to-settle, got %s", s.Step())
	}
}

func TestOpen_PaidRequestStartsSettled(t *testing.T) {
	backend := mocks.NewBackend(t)
	req := usdcRequest(liveID)
	req.IsPaid = true
	s := openLive(t, backend, req)

	if s.Step() != payment.StepSettled {
		t.Fatalf("expected settled, got %s", s.Step())
	}
	if _, err := s.Settle(context.Background()); !errors.Is(err, payment.ErrInvalidStep) {
		t.Fatalf("expected InvalidStep, got %v", err)
	}
}

func TestNetworkMismatch_FailsBeforeWallet(t *testing.T) {
	backend := mocks.NewBackend(t)
	req := usdcRequest(liveID)
	backend.EXPECT().Fetch(mock.Anything, liveID).Return(req, nil).Once()

	s, err := NewOpener(liveRoute(backend, 1), simulatedRoute(), zap.NewNop()).
		Open(context.Background(), liveID, payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	err = s.Approve(context.Background())
	if !errors.Is(err, payment.ErrNetworkMismatch) {
		t.Fatalf("expected NetworkMismatch, got %v", err)
	}
	if payment.KindOf(err).Action() != payment.ActionSwitchNetwork {
		t.Fatal("expected switch-network action")
	}
	if s.Step() != payment.StepNeedsAuthorization {
		t.Fatalf("step changed to %s", s.Step())
	}
}

func TestNetworkMismatch_SettleFailsBeforeWallet(t *testing.T) {
	backend := mocks.NewBackend(t)
	req := nativeRequest(liveID)
	backend.EXPECT().Fetch(mock.Anything, liveID).Return(req, nil).Once()

	s, err := NewOpener(liveRoute(backend, 1), simulatedRoute(), zap.NewNop()).
		Open(context.Background(), liveID, payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("expected ready-to-settle, got %s", s.Step())
	}

	// backend.Settle has no expectation, so any call fails the mock.
	receipt, err := s.Settle(context.Background())
	if !errors.Is(err, payment.ErrNetworkMismatch) {
		t.Fatalf("expected NetworkMismatch, got %v", err)
	}
	if receipt != nil {
		t.Fatalf("expected no receipt, got %+v", receipt)
	}
	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("step changed to %s", s.Step())
	}
	if v := s.Snapshot(); v.LastError == nil || v.LastError.Kind != payment.KindNetworkMismatch || v.Request.IsPaid {
		t.Fatalf("unexpected snapshot %+v", v)
	}
}

func TestApprove_NoAccount(t *testing.T) {
	backend := mocks.NewBackend(t)
	req := usdcRequest(liveID)
	backend.EXPECT().Fetch(mock.Anything, liveID).Return(req, nil).Once()

	route := liveRoute(backend, 123)
	route.Accounts = staticAccount{err: payment.ErrNoAccount}
	s, err := NewOpener(route, simulatedRoute(), zap.NewNop()).Open(context.Background(), liveID, payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if err := s.Approve(context.Background()); !errors.Is(err, payment.ErrNoAccount) {
		t.Fatalf("expected NoAccount, got %v", err)
	}
}

func TestTransition_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		approve  error
		settle   error
		wantKind payment.Kind
	}{
		{name: "approve rejected", approve: payment.NewError(payment.KindUserRejected, "approve", errors.New("user denied")), wantKind: payment.KindUserRejected},
		{name: "approve raw error", approve: errors.New("boom"), wantKind: payment.KindAuthorizationFailed},
		{name: "settle preflight revert", settle: payment.NewError(payment.KindAlreadySettledOrInvalid, "settle", errors.New("execution reverted")), wantKind: payment.KindAlreadySettledOrInvalid},
		{name: "settle insufficient funds", settle: payment.NewError(payment.KindInsufficientFunds, "settle", errors.New("insufficient funds")), wantKind: payment.KindInsufficientFunds},
		{name: "settle raw error", settle: errors.New("nonce too low"), wantKind: payment.KindSettlementFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewBackend(t)
			ctx := context.Background()

			if tt.approve != nil {
				s := openLive(t, backend, usdcRequest(liveID))
				backend.EXPECT().Approve(mock.Anything, mock.Anything, payer).Return(tt.approve).Once()
				err := s.Approve(ctx)
				if payment.KindOf(err) != tt.wantKind {
					t.Fatalf("expected %s, got %v", tt.wantKind, err)
				}
				if s.Step() != payment.StepNeedsAuthorization {
					t.Fatalf("step changed to %s", s.Step())
				}
				return
			}

			s := openLive(t, backend, nativeRequest(liveID))
			backend.EXPECT().Settle(mock.Anything, mock.Anything, payer).Return(nil, tt.settle).Once()
			_, err := s.Settle(ctx)
			if payment.KindOf(err) != tt.wantKind {
				t.Fatalf("expected %s, got %v", tt.wantKind, err)
			}
			v := s.Snapshot()
			if v.Step != payment.StepReadyToSettle || v.Receipt != nil {
				t.Fatalf("failed settle changed state: %+v", v)
			}
			if v.LastError == nil || v.LastError.Kind != tt.wantKind {
				t.Fatalf("expected last error %s, got %v", tt.wantKind, v.LastError)
			}
		})
	}
}

func TestLastErrorClearedOnNextAttempt(t *testing.T) {
	backend := mocks.NewBackend(t)
	s := openLive(t, backend, usdcRequest(liveID))

	backend.EXPECT().Approve(mock.Anything, mock.Anything, payer).Return(errors.New("temporary")).Once()
	if err := s.Approve(context.Background()); err == nil {
		t.Fatal("expected first approve to fail")
	}
	backend.EXPECT().Approve(mock.Anything, mock.Anything, payer).Return(nil).Once()
	if err := s.Approve(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if v := s.Snapshot(); v.LastError != nil {
		t.Fatalf("expected last error to be cleared, got %v", v.LastError)
	}
}

func TestSingleFlight(t *testing.T) {
	backend := mocks.NewBackend(t)
	s := openLive(t, backend, usdcRequest(liveID))

	entered := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().Approve(mock.Anything, mock.Anything, payer).
		RunAndReturn(func(context.Context, *payment.Request, string) error {
			close(entered)
			<-release
			return nil
		}).Once()

	done := make(chan error, 1)
	go func() { done <- s.Approve(context.Background()) }()
	<-entered

	if err := s.Approve(context.Background()); !errors.Is(err, payment.ErrOperationPending) {
		t.Fatalf("expected OperationPending, got %v", err)
	}
	if _, err := s.Settle(context.Background()); !errors.Is(err, payment.ErrOperationPending) {
		t.Fatalf("expected OperationPending for settle, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first Approve() failed: %v", err)
	}
	if s.Step() != payment.StepReadyToSettle {
		t.Fatalf("expected ready-to-settle, got %s", s.Step())
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWalletEvents(t *testing.T) {
	backend := mocks.NewBackend(t)
	req := usdcRequest(liveID)
	backend.EXPECT().Fetch(mock.Anything, liveID).Return(req, nil).Once()

	notifier := &feedNotifier{}
	route := liveRoute(backend, 123)
	route.Events = notifier
	s, err := NewOpener(route, simulatedRoute(), zap.NewNop()).Open(context.Background(), liveID, payment.ModeLive)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	other := common.HexToAddress("0x2222222222222222222222222222222222222222")
	notifier.feed.Send(wallet.Event{Type: wallet.AccountsChanged, Accounts: []common.Address{other}})
	waitFor(t, func() bool { return s.Snapshot().Account == other.Hex() })

	notifier.feed.Send(wallet.Event{Type: wallet.ChainChanged, ChainID: big.NewInt(1)})
	waitFor(t, func() bool { return s.Snapshot().Stale })

	if err := s.Approve(context.Background()); !errors.Is(err, payment.ErrSessionStale) {
		t.Fatalf("expected SessionStale, got %v", err)
	}
	if payment.KindOf(lastError(s)).Action() != payment.ActionReopen {
		t.Fatal("expected reopen action")
	}

	s.Close()
	s.Close()
	if n := notifier.feed.Send(wallet.Event{Type: wallet.ChainChanged}); n != 0 {
		t.Fatalf("expected no subscribers after Close, got %d", n)
	}
}

func lastError(s *Session) error {
	if v := s.Snapshot(); v.LastError != nil {
		return v.LastError
	}
	return nil
}
