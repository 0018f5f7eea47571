// Package session drives one payment request through its lifecycle.
//
// A Session is opened for an identifier, derives the first step from the
// fetched request and then accepts Approve and Settle calls one at a time.
// Live and simulated requests differ only in the Route the session was opened
// with; the state machine itself is shared.
package session

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/internal/metrics"
	"github.com/0xNexuz/Tempocash/pkg/guard"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

// Backend reads and settles payment requests of one mode.
//
//go:generate mockery --name Backend --output mocks --outpkg mocks --filename mock_backend.go --with-expecter
type Backend interface {
	Fetch(ctx context.Context, id string) (*payment.Request, error)
	Approve(ctx context.Context, req *payment.Request, account string) error
	Settle(ctx context.Context, req *payment.Request, account string) (*payment.Receipt, error)
}

// AccountSource returns the account that signs for the session.
type AccountSource interface {
	ActiveAccount(ctx context.Context) (string, error)
}

// Notifier delivers wallet chain and account notifications.
type Notifier interface {
	Subscribe(ch chan<- wallet.Event) event.Subscription
}

// Route is everything a session of one mode talks to. Events may be nil.
type Route struct {
	Backend  Backend
	Accounts AccountSource
	Guard    guard.Checker
	Events   Notifier
}

// Opener opens sessions on the live or simulated route.
type Opener struct {
	live      *Route
	simulated Route
	logger    *zap.Logger
}

// NewOpener creates an Opener. A nil live route means live mode is not
// configured and live opens fail with ContractUnavailable.
func NewOpener(live *Route, simulated Route, logger *zap.Logger) *Opener {
	if simulated.Guard == nil {
		simulated.Guard = guard.Disabled
	}
	if live != nil && live.Guard == nil {
		live.Guard = guard.Disabled
	}
	return &Opener{live: live, simulated: simulated, logger: logger}
}

// LiveEnabled reports whether a live route is configured.
func (o *Opener) LiveEnabled() bool {
	return o.live != nil
}

// Open fetches the request and returns a session positioned at its initial step.
// A simulation identifier always opens in simulated mode.
func (o *Opener) Open(ctx context.Context, id string, requested payment.Mode) (*Session, error) {
	const op = "open"

	id = strings.TrimSpace(id)
	mode := payment.EffectiveMode(id, requested)

	s, err := o.open(ctx, op, id, mode)
	outcome := "ok"
	if err != nil {
		outcome = payment.KindOf(err).String()
	}
	metrics.SessionsOpened.WithLabelValues(string(mode), outcome).Inc()
	return s, err
}

func (o *Opener) open(ctx context.Context, op, id string, mode payment.Mode) (*Session, error) {
	if id == "" {
		return nil, payment.Errorf(payment.KindWrongIdentifierFormat, op, "payment id is required")
	}
	if !mode.Valid() {
		return nil, payment.Errorf(payment.KindWrongIdentifierFormat, op, "unknown mode %q", mode)
	}

	route := o.simulated
	if mode == payment.ModeLive {
		if o.live == nil {
			return nil, payment.Errorf(payment.KindContractUnavailable, op, "live mode is not configured")
		}
		route = *o.live
	}

	req, err := route.Backend.Fetch(ctx, id)
	if err != nil {
		return nil, payment.Classify(err, op, payment.KindFetchFailed)
	}

	s := &Session{
		mode:   mode,
		route:  route,
		logger: o.logger.With(zap.String("payment_id", req.ID), zap.String("mode", string(mode))),
		req:    req.Clone(),
		step:   payment.InitialStep(req),
		done:   make(chan struct{}),
	}

	// The account is informational here; operations resolve it again.
	if acct, err := route.Accounts.ActiveAccount(ctx); err == nil {
		s.account = acct
	}

	if route.Events != nil {
		ch := make(chan wallet.Event, 4)
		s.sub = route.Events.Subscribe(ch)
		go s.watch(ch)
	} else {
		close(s.done)
	}

	metrics.ActiveSessions.Inc()
	s.logger.Info("Payment session opened", zap.String("step", string(s.step)))
	return s, nil
}

// Session is the lifecycle of one payment request for one payer.
type Session struct {
	mode   payment.Mode
	route  Route
	logger *zap.Logger

	// inflight enforces one approve or settle at a time.
	inflight sync.Mutex

	mu      sync.RWMutex
	req     *payment.Request
	step    payment.Step
	account string
	stale   bool
	lastErr *payment.Error
	receipt *payment.Receipt

	sub       event.Subscription
	done      chan struct{}
	closeOnce sync.Once
}

// View is a point-in-time copy of a session.
type View struct {
	Request   *payment.Request `json:"request"`
	Mode      payment.Mode     `json:"mode"`
	Step      payment.Step     `json:"step"`
	Account   string           `json:"account,omitempty"`
	Stale     bool             `json:"stale"`
	LastError *payment.Error   `json:"-"`
	Receipt   *payment.Receipt `json:"receipt,omitempty"`
}

// ID returns the identifier of the session's payment request.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.req.ID
}

// Mode returns the effective mode fixed at open.
func (s *Session) Mode() payment.Mode {
	return s.mode
}

// Step returns the current step.
func (s *Session) Step() payment.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// Busy reports whether an approve or settle is in flight.
func (s *Session) Busy() bool {
	if !s.inflight.TryLock() {
		return true
	}
	s.inflight.Unlock()
	return false
}

// Stale reports whether a chain change invalidated the session.
func (s *Session) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Request: s.req.Clone(),
		Mode:    s.mode,
		Step:    s.step,
		Account: s.account,
		Stale:   s.stale,
	}
	if s.lastErr != nil {
		e := *s.lastErr
		v.LastError = &e
	}
	if s.receipt != nil {
		r := *s.receipt
		v.Receipt = &r
	}
	return v
}

// Approve authorizes the payment contract to pull the requested amount.
// It succeeds without doing anything once the session is ready to settle,
// which is where native token requests start.
func (s *Session) Approve(ctx context.Context) error {
	const op = "approve"
	return s.transition(ctx, op, func(ctx context.Context) error {
		req, step := s.current()
		switch step {
		case payment.StepReadyToSettle:
			return nil
		case payment.StepNeedsAuthorization:
		default:
			return payment.Errorf(payment.KindInvalidStep, op, "cannot approve at step %s", step)
		}

		account, err := s.prepare(ctx, op)
		if err != nil {
			return err
		}
		if err := s.route.Backend.Approve(ctx, req, account); err != nil {
			return payment.Classify(err, op, payment.KindAuthorizationFailed)
		}

		s.mu.Lock()
		s.step = payment.StepReadyToSettle
		s.mu.Unlock()
		return nil
	})
}

// Settle pays the request. It is only valid at ready-to-settle.
func (s *Session) Settle(ctx context.Context) (*payment.Receipt, error) {
	const op = "settle"
	var receipt *payment.Receipt
	err := s.transition(ctx, op, func(ctx context.Context) error {
		req, step := s.current()
		if step != payment.StepReadyToSettle {
			return payment.Errorf(payment.KindInvalidStep, op, "cannot settle at step %s", step)
		}

		account, err := s.prepare(ctx, op)
		if err != nil {
			return err
		}
		r, err := s.route.Backend.Settle(ctx, req, account)
		if err != nil {
			return payment.Classify(err, op, payment.KindSettlementFailed)
		}

		s.mu.Lock()
		s.req.IsPaid = true
		s.req.SettlementTx = r.TxHash
		s.step = payment.StepSettled
		s.receipt = r
		s.mu.Unlock()

		cp := *r
		receipt = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Close stops observing wallet notifications. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.sub != nil {
			s.sub.Unsubscribe()
			<-s.done
		}
		metrics.ActiveSessions.Dec()
		s.logger.Debug("Payment session closed")
	})
}

// transition runs fn under the single-flight lock, records the outcome and
// classifies any failure.
func (s *Session) transition(ctx context.Context, op string, fn func(context.Context) error) error {
	if !s.inflight.TryLock() {
		return payment.Errorf(payment.KindOperationPending, op, "another operation is in progress")
	}
	defer s.inflight.Unlock()

	start := time.Now()

	s.mu.Lock()
	s.lastErr = nil
	stale := s.stale
	s.mu.Unlock()

	var err error
	if stale {
		err = payment.Errorf(payment.KindSessionStale, op, "wallet network changed since the session was opened")
	} else {
		err = fn(ctx)
	}

	metrics.TransitionDuration.WithLabelValues(op, string(s.mode)).Observe(time.Since(start).Seconds())
	if err == nil {
		metrics.TransitionsTotal.WithLabelValues(op, string(s.mode), "ok").Inc()
		s.logger.Info("Payment session transition succeeded",
			zap.String("operation", op),
			zap.String("step", string(s.Step())),
			zap.Duration("duration", time.Since(start)))
		return nil
	}

	perr := payment.Classify(err, op, payment.KindUnknown)
	s.mu.Lock()
	s.lastErr = perr
	s.mu.Unlock()

	metrics.TransitionsTotal.WithLabelValues(op, string(s.mode), perr.Kind.String()).Inc()
	s.logger.Warn("Payment session transition failed",
		zap.String("operation", op),
		zap.String("kind", perr.Kind.String()),
		zap.Error(perr))
	return perr
}

// prepare resolves the signing account and runs the network guard.
func (s *Session) prepare(ctx context.Context, op string) (string, error) {
	account, err := s.route.Accounts.ActiveAccount(ctx)
	if err != nil {
		return "", payment.Classify(err, op, payment.KindNoAccount)
	}
	if account == "" {
		return "", payment.Errorf(payment.KindNoAccount, op, "no active account")
	}

	s.mu.Lock()
	s.account = account
	s.mu.Unlock()

	if err := s.route.Guard.Check(ctx); err != nil {
		return "", payment.Classify(err, op, payment.KindNetworkMismatch)
	}
	return account, nil
}

func (s *Session) current() (*payment.Request, payment.Step) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.req.Clone(), s.step
}

func (s *Session) watch(ch <-chan wallet.Event) {
	defer close(s.done)
	for {
		select {
		case ev := <-ch:
			s.handle(ev)
		case <-s.sub.Err():
			return
		}
	}
}

func (s *Session) handle(ev wallet.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case wallet.ChainChanged:
		if s.stale {
			return
		}
		s.stale = true
		metrics.StaleSessions.Inc()
		s.logger.Warn("Wallet chain changed, session is stale", zap.String("chain_id", chainString(ev.ChainID)))
	case wallet.AccountsChanged:
		if len(ev.Accounts) == 0 {
			s.account = ""
		} else {
			s.account = ev.Accounts[0].Hex()
		}
		s.logger.Info("Wallet account changed", zap.String("account", s.account))
	}
}

func chainString(id *big.Int) string {
	if id == nil {
		return ""
	}
	return "0x" + id.Text(16)
}
