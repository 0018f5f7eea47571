// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	apphttp "github.com/0xNexuz/Tempocash/pkg/app/http"
	"github.com/0xNexuz/Tempocash/pkg/auth"
	"github.com/0xNexuz/Tempocash/pkg/config"
	"github.com/0xNexuz/Tempocash/pkg/ethereum"
	"github.com/0xNexuz/Tempocash/pkg/guard"
	paymentservice "github.com/0xNexuz/Tempocash/pkg/payment/service"
	"github.com/0xNexuz/Tempocash/pkg/pgutil"
	"github.com/0xNexuz/Tempocash/pkg/session"
	"github.com/0xNexuz/Tempocash/pkg/simstore"
	"github.com/0xNexuz/Tempocash/pkg/simulation"
	"github.com/0xNexuz/Tempocash/pkg/token"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

const (
	defaultRequestTimeout    = 60 * time.Second
	defaultTransitionTimeout = 5 * time.Minute
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// closers collects resources released on shutdown in reverse order.
type closers []io.Closer

func (c closers) Close() error {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		err = multierr.Append(err, c[i].Close())
	}
	return err
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("live_enabled", cfg.Ethereum.LiveEnabled()),
		zap.String("simulation_store", cfg.Simulation.Store),
	)

	var res closers
	defer func() {
		if err := res.Close(); err != nil {
			logger.Warn("Failed to release resources", zap.Error(err))
		}
	}()

	tokens, err := s.loadTokens()
	if err != nil {
		return err
	}

	store, err := s.openSimStore(ctx, &res, logger)
	if err != nil {
		return err
	}
	simBackend := simulation.NewBackend(store, tokens, cfg.Simulation.Delay, logger.Named("simulation"))
	demo := simulation.DemoAccount(cfg.Simulation.DemoAccount)

	simRoute := session.Route{Backend: simBackend, Accounts: demo}
	svcCfg := paymentservice.Config{
		Simulated: paymentservice.Merchant{Creator: simBackend, Accounts: demo},
		Tokens:    tokens,
		Registry: paymentservice.NewRegistry(paymentservice.RegistryConfig{
			IdleTTL:       cfg.Sessions.IdleTTL,
			FinishedTTL:   cfg.Sessions.FinishedTTL,
			SweepInterval: cfg.Sessions.SweepInterval,
			Logger:        logger.Named("sessions"),
		}),
		LinkBaseURL: cfg.Links.BaseURL,
	}
	svcCfg.Registry.Start(ctx)
	res = append(res, closeFunc(func() error {
		svcCfg.Registry.Stop()
		svcCfg.Registry.CloseAll()
		return nil
	}))

	var liveRoute *session.Route
	if cfg.Ethereum.LiveEnabled() {
		live, err := s.openLive(ctx, &res, tokens, logger)
		if err != nil {
			return err
		}
		liveRoute = &live.route
		svcCfg.Live = &paymentservice.Merchant{
			Creator:  live.backend,
			Accounts: live.route.Accounts,
			Guard:    live.route.Guard,
		}
		svcCfg.Connect = live.connect
	} else {
		logger.Info("Live mode disabled, only simulated payments are served")
	}

	svcCfg.Opener = session.NewOpener(liveRoute, simRoute, logger.Named("session"))
	svc, err := paymentservice.NewService(svcCfg, logger)
	if err != nil {
		return fmt.Errorf("create payment service: %w", err)
	}

	validator := auth.NewJWTValidator(cfg.Auth.JWKSURL, cfg.Auth.Issuer)
	if validator.IsConfigured() {
		logger.Info("Merchant authentication enabled", zap.String("jwks_url", cfg.Auth.JWKSURL))
	}

	router := s.setupRouter(paymentservice.NewLog(svc, logger), auth.RequireMerchant(validator), logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) loadTokens() (*token.Registry, error) {
	var (
		tokens *token.Registry
		err    error
	)
	switch {
	case s.cfg.Tokens.File != "":
		tokens, err = token.LoadRegistry(s.cfg.Tokens.File)
	case len(s.cfg.Tokens.List) > 0:
		tokens, err = token.NewRegistry(s.cfg.Tokens.List)
	default:
		return token.DefaultRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token registry: %w", err)
	}
	return tokens, nil
}

func (s *Server) openSimStore(ctx context.Context, res *closers, logger *zap.Logger) (simstore.Store, error) {
	cfg := s.cfg
	switch cfg.Simulation.Store {
	case config.SimStorePostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect simulation database: %w", err)
		}
		*res = append(*res, db)
		logger.Info("Connected to database",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)
		return simstore.NewPGStore(db), nil
	case config.SimStoreRedis:
		client, err := simstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect simulation redis: %w", err)
		}
		*res = append(*res, client)
		logger.Info("Connected to redis", zap.String("key_prefix", cfg.Simulation.KeyPrefix))
		return simstore.NewRedisStore(client, cfg.Simulation.KeyPrefix), nil
	default:
		return simstore.NewMemoryStore(), nil
	}
}

type liveStack struct {
	route   session.Route
	backend *ethereum.LedgerBackend
	connect paymentservice.ConnectFunc
}

func (s *Server) openLive(ctx context.Context, res *closers, tokens *token.Registry, logger *zap.Logger) (*liveStack, error) {
	cfg := s.cfg

	eth, err := ethereum.Dial(ctx, &cfg.Ethereum)
	if err != nil {
		return nil, err
	}
	*res = append(*res, closeFunc(func() error {
		eth.Close()
		return nil
	}))

	client, err := ethereum.NewClient(eth, common.HexToAddress(cfg.Ethereum.PaymentContract),
		cfg.Ethereum.ReceiptPollInterval, logger.Named("ethereum"))
	if err != nil {
		return nil, fmt.Errorf("create ledger client: %w", err)
	}

	provider, err := s.openWallet(ctx, res, eth, logger)
	if err != nil {
		return nil, err
	}

	network := wallet.NetworkFromConfig(&cfg.Ethereum)
	watcher := wallet.NewWatcher(provider, cfg.Wallet.WatchInterval, logger.Named("wallet"))
	watcher.Start(ctx)
	*res = append(*res, closeFunc(func() error {
		watcher.Stop()
		return nil
	}))

	backend := ethereum.NewLedgerBackend(client, provider, tokens, logger.Named("ledger"))

	logger.Info("Live mode enabled",
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
		zap.String("payment_contract", cfg.Ethereum.PaymentContract),
		zap.String("wallet_provider", cfg.Wallet.Provider),
	)

	return &liveStack{
		route: session.Route{
			Backend:  backend,
			Accounts: wallet.AccountSource{Provider: provider},
			Guard:    guard.New(provider, network.ChainID),
			Events:   watcher,
		},
		backend: backend,
		connect: func(ctx context.Context) (*wallet.Connection, error) {
			return wallet.Connect(ctx, provider, network)
		},
	}, nil
}

func (s *Server) openWallet(ctx context.Context, res *closers, eth *ethclient.Client, logger *zap.Logger) (wallet.Provider, error) {
	cfg := s.cfg
	switch cfg.Wallet.Provider {
	case config.WalletRPC:
		p, err := wallet.DialRPCProvider(ctx, cfg.Wallet.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("connect wallet: %w", err)
		}
		*res = append(*res, closeFunc(func() error {
			p.Close()
			return nil
		}))
		return p, nil
	default:
		p, err := wallet.NewKeyedProvider(eth, cfg.Wallet.PrivateKey, wallet.KeyedOptions{
			GasLimit:    cfg.Ethereum.GasLimit,
			MaxGasPrice: cfg.Ethereum.MaxGasPrice,
		}, logger.Named("wallet"))
		if err != nil {
			return nil, fmt.Errorf("create keyed wallet: %w", err)
		}
		logger.Info("Using keyed wallet", zap.String("address", p.Address().Hex()))
		return p, nil
	}
}

func (s *Server) routes(merchantAuth func(http.Handler) http.Handler) paymentservice.Routes {
	routes := paymentservice.Routes{
		MerchantAuth:      merchantAuth,
		RequestTimeout:    s.cfg.Server.RequestTimeout,
		TransitionTimeout: s.cfg.Server.TransitionTimeout,
	}
	if routes.RequestTimeout <= 0 {
		routes.RequestTimeout = defaultRequestTimeout
	}
	if routes.TransitionTimeout <= 0 {
		routes.TransitionTimeout = defaultTransitionTimeout
	}
	return routes
}

func (s *Server) setupRouter(
	svc paymentservice.Service,
	merchantAuth func(http.Handler) http.Handler,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		paymentservice.RegisterRoutes(r, svc, s.routes(merchantAuth), logger)
	})

	return r
}
