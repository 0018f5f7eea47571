package wallet

import (
	"context"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/internal/metrics"
)

const defaultWatchInterval = 2 * time.Second

// EventType names a wallet notification.
type EventType string

const (
	ChainChanged    EventType = "chainChanged"
	AccountsChanged EventType = "accountsChanged"
)

// Event is a wallet notification.
type Event struct {
	Type     EventType
	ChainID  *big.Int
	Accounts []common.Address
}

// Watcher polls a provider and publishes chain and account changes.
type Watcher struct {
	provider Provider
	interval time.Duration
	logger   *zap.Logger

	feed event.Feed

	mu       sync.Mutex
	chainID  *big.Int
	accounts []common.Address
	primed   bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a watcher polling p every interval.
func NewWatcher(p Provider, interval time.Duration, logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &Watcher{provider: p, interval: interval, logger: logger}
}

// Subscribe delivers future events to ch.
func (w *Watcher) Subscribe(ch chan<- Event) event.Subscription {
	return w.feed.Subscribe(ch)
}

// Start records the current state and begins polling until ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	w.poll(ctx)

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll(ctx)
			}
		}
	}()
}

// Stop ends polling and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Watcher) poll(ctx context.Context) {
	chainID, err := w.provider.ChainID(ctx)
	if err != nil {
		w.logger.Warn("Failed to poll wallet chain id", zap.Error(err))
		return
	}
	accounts, err := w.provider.Accounts(ctx)
	if err != nil {
		w.logger.Warn("Failed to poll wallet accounts", zap.Error(err))
		return
	}

	w.mu.Lock()
	primed := w.primed
	chainChanged := primed && w.chainID.Cmp(chainID) != 0
	accountsChanged := primed && !slices.Equal(w.accounts, accounts)
	w.chainID, w.accounts, w.primed = chainID, accounts, true
	w.mu.Unlock()

	if chainChanged {
		w.publish(Event{Type: ChainChanged, ChainID: chainID, Accounts: accounts})
	}
	if accountsChanged {
		w.publish(Event{Type: AccountsChanged, ChainID: chainID, Accounts: accounts})
	}
}

func (w *Watcher) publish(ev Event) {
	metrics.WalletEvents.WithLabelValues(string(ev.Type)).Inc()
	n := w.feed.Send(ev)
	w.logger.Info("Wallet event",
		zap.String("type", string(ev.Type)),
		zap.String("chain_id", ev.ChainID.String()),
		zap.Int("accounts", len(ev.Accounts)),
		zap.Int("subscribers", n))
}
