package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/internal/metrics"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/session"
)

const (
	defaultIdleTTL       = 30 * time.Minute
	defaultFinishedTTL   = 5 * time.Minute
	defaultSweepInterval = time.Minute
)

// Eviction reasons
const (
	EvictIdle     = "idle"
	EvictFinished = "finished"
)

// RegistryConfig bounds how long unread sessions are kept.
type RegistryConfig struct {
	// IdleTTL drops any session not read for this long.
	IdleTTL time.Duration
	// FinishedTTL drops settled or stale sessions not read for this long.
	FinishedTTL time.Duration
	// SweepInterval is how often the janitor looks for idle sessions.
	SweepInterval time.Duration
	Logger        *zap.Logger
}

type entry struct {
	session  *session.Session
	lastSeen time.Time
}

// Registry holds open sessions under random handles and evicts the ones
// nobody reads anymore.
type Registry struct {
	idleTTL     time.Duration
	finishedTTL time.Duration
	interval    time.Duration
	logger      *zap.Logger
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRegistry creates an empty session registry. Zero config fields take
// their defaults.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	if cfg.FinishedTTL <= 0 {
		cfg.FinishedTTL = defaultFinishedTTL
	}
	if cfg.FinishedTTL > cfg.IdleTTL {
		cfg.FinishedTTL = cfg.IdleTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Registry{
		idleTTL:     cfg.IdleTTL,
		finishedTTL: cfg.FinishedTTL,
		interval:    cfg.SweepInterval,
		logger:      cfg.Logger,
		now:         time.Now,
		sessions:    make(map[string]*entry),
	}
}

// Add stores s and returns its handle.
func (r *Registry) Add(s *session.Session) string {
	handle := uuid.NewString()
	r.mu.Lock()
	r.sessions[handle] = &entry{session: s, lastSeen: r.now()}
	r.mu.Unlock()
	return handle
}

// Get returns the session for handle and marks it as read.
func (r *Registry) Get(handle string) (*session.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[handle]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Remove closes and forgets the session for handle.
func (r *Registry) Remove(handle string) bool {
	r.mu.Lock()
	e, ok := r.sessions[handle]
	delete(r.sessions, handle)
	r.mu.Unlock()

	if ok {
		e.session.Close()
	}
	return ok
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Start runs the janitor until ctx is done or Stop is called.
func (r *Registry) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.logger.Info("Evicted idle sessions", zap.Int("count", n), zap.Int("remaining", r.Len()))
				}
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit.
func (r *Registry) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// Sweep closes and drops sessions past their idle window and returns how
// many went. Sessions with a transition in flight are kept.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var evicted []*session.Session
	for handle, e := range r.sessions {
		idle := now.Sub(e.lastSeen)
		reason := ""
		switch {
		case idle >= r.idleTTL:
			reason = EvictIdle
		case idle >= r.finishedTTL && finished(e.session):
			reason = EvictFinished
		default:
			continue
		}
		if e.session.Busy() {
			continue
		}
		delete(r.sessions, handle)
		evicted = append(evicted, e.session)
		metrics.SessionsEvicted.WithLabelValues(reason).Inc()
		r.logger.Debug("Evicting session",
			zap.String("handle", handle),
			zap.String("payment_id", e.session.ID()),
			zap.String("reason", reason),
			zap.Duration("idle", idle))
	}
	r.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	return len(evicted)
}

// CloseAll closes every session. It is used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range sessions {
		e.session.Close()
	}
}

func finished(s *session.Session) bool {
	return s.Stale() || s.Step() == payment.StepSettled
}
