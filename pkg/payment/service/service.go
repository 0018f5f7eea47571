package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/internal/metrics"
	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	"github.com/0xNexuz/Tempocash/pkg/auth"
	"github.com/0xNexuz/Tempocash/pkg/guard"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/session"
	"github.com/0xNexuz/Tempocash/pkg/token"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

// Creator registers a new payment request with a backend.
//
//go:generate mockery --name Creator --output mocks --outpkg mocks --filename mock_creator.go --with-expecter
type Creator interface {
	Create(ctx context.Context, draft *payment.Draft) (*payment.Request, error)
}

// Merchant is the creation side of one mode.
type Merchant struct {
	Creator  Creator
	Accounts session.AccountSource
	Guard    guard.Checker
}

// ConnectFunc connects the payer wallet and moves it to the payment network.
type ConnectFunc func(ctx context.Context) (*wallet.Connection, error)

// Service defines the merchant and payer operations of the API server
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreatePayment(ctx context.Context, req *payment.CreateRequest) (*payment.CreateResponse, error)
	OpenSession(ctx context.Context, req *OpenSessionRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, handle string) (*SessionResponse, error)
	Approve(ctx context.Context, handle string) (*SessionResponse, error)
	Settle(ctx context.Context, handle string) (*SessionResponse, error)
	CloseSession(ctx context.Context, handle string) error
	ListTokens(ctx context.Context) ([]token.Info, error)
	ConnectWallet(ctx context.Context) (*wallet.Connection, error)
}

// Config holds the collaborators of the payment service. Live is nil when no
// ledger is configured.
type Config struct {
	Opener      *session.Opener
	Live        *Merchant
	Simulated   Merchant
	Tokens      *token.Registry
	Registry    *Registry
	Connect     ConnectFunc
	LinkBaseURL string
}

type paymentService struct {
	opener    *session.Opener
	live      *Merchant
	simulated Merchant
	tokens    *token.Registry
	registry  *Registry
	connect   ConnectFunc
	baseURL   string
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewService creates a new payment service
func NewService(cfg Config, logger *zap.Logger) (Service, error) {
	if cfg.Opener == nil {
		return nil, errors.New("session opener is required")
	}
	if cfg.Simulated.Creator == nil {
		return nil, errors.New("simulated creator is required")
	}
	if cfg.Tokens == nil {
		cfg.Tokens = token.DefaultRegistry()
	}
	if cfg.Registry == nil {
		cfg.Registry = NewRegistry(RegistryConfig{Logger: logger})
	}

	v := validator.New()
	if err := auth.RegisterValidations(v); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	return &paymentService{
		opener:    cfg.Opener,
		live:      cfg.Live,
		simulated: cfg.Simulated,
		tokens:    cfg.Tokens,
		registry:  cfg.Registry,
		connect:   cfg.Connect,
		baseURL:   strings.TrimRight(cfg.LinkBaseURL, "/"),
		validate:  v,
		logger:    logger,
	}, nil
}

// CreatePayment validates the merchant input and registers the request with
// the backend of the requested mode.
func (s *paymentService) CreatePayment(ctx context.Context, req *payment.CreateRequest) (*payment.CreateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid payment request")
	}

	mode := req.Mode
	if mode == "" {
		mode = payment.ModeSimulated
		if s.live != nil {
			mode = payment.ModeLive
		}
	}
	if mode == payment.ModeLive && s.live == nil {
		return nil, apperrors.New(apperrors.CategoryPreconditionFailed, ErrLiveNotConfigured, "live mode is not configured")
	}

	info, ok := s.tokens.Resolve(req.Token)
	if !ok {
		return nil, apperrors.BadRequestError(ErrUnsupportedToken, "token is not supported")
	}

	amount, raw, err := token.Normalize(req.Amount, info.Decimals)
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	if raw.Sign() == 0 {
		return nil, apperrors.BadRequestError(token.ErrZeroAmount, token.ErrZeroAmount.Error())
	}

	memo := strings.TrimSpace(req.Memo)
	if memo == "" {
		return nil, apperrors.BadRequestError(nil, "memo is required")
	}

	var merchant Merchant
	var account string
	switch mode {
	case payment.ModeLive:
		merchant = *s.live
		account, err = s.liveMerchant(ctx, merchant)
	default:
		merchant = s.simulated
		account, err = s.simulatedMerchant(ctx, req.Merchant)
	}
	if err != nil {
		return nil, toServiceError(err)
	}

	created, err := merchant.Creator.Create(ctx, &payment.Draft{
		Merchant:  account,
		Token:     info.Address,
		Symbol:    info.Symbol,
		Decimals:  info.Decimals,
		Native:    info.Native,
		Amount:    amount,
		RawAmount: raw.String(),
		Memo:      memo,
	})
	if err != nil {
		var pe *payment.Error
		if errors.As(err, &pe) {
			return nil, toServiceError(err)
		}
		return nil, apperrors.New(apperrors.CategoryDependencyFailure, err, "failed to create payment request")
	}

	metrics.PaymentsCreated.WithLabelValues(string(mode)).Inc()
	return payment.NewCreateResponse(created, mode, s.link(created.ID)), nil
}

func (s *paymentService) liveMerchant(ctx context.Context, m Merchant) (string, error) {
	if m.Guard != nil {
		if err := m.Guard.Check(ctx); err != nil {
			return "", err
		}
	}
	account, err := m.Accounts.ActiveAccount(ctx)
	if err != nil {
		return "", payment.Classify(err, "create", payment.KindNoAccount)
	}
	if account == "" {
		return "", payment.NewError(payment.KindNoAccount, "create", nil)
	}
	return account, nil
}

// simulatedMerchant prefers an explicit merchant, then the authenticated one,
// then the simulated wallet account.
func (s *paymentService) simulatedMerchant(ctx context.Context, explicit string) (string, error) {
	if m := strings.TrimSpace(explicit); m != "" {
		return m, nil
	}
	if m, ok := auth.MerchantFromContext(ctx); ok {
		return m, nil
	}
	if s.simulated.Accounts == nil {
		return "", payment.NewError(payment.KindNoAccount, "create", nil)
	}
	account, err := s.simulated.Accounts.ActiveAccount(ctx)
	if err != nil {
		return "", payment.Classify(err, "create", payment.KindNoAccount)
	}
	return account, nil
}

func (s *paymentService) link(id string) string {
	return s.baseURL + "/#/pay/" + id
}

// OpenSession fetches the request behind a link and keeps a session for it.
func (s *paymentService) OpenSession(ctx context.Context, req *OpenSessionRequest) (*SessionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid session request")
	}

	sess, err := s.opener.Open(ctx, req.ID, req.Mode)
	if err != nil {
		return nil, toServiceError(err)
	}
	handle := s.registry.Add(sess)
	return newSessionResponse(handle, sess.Snapshot()), nil
}

// GetSession returns the current view of a session.
func (s *paymentService) GetSession(_ context.Context, handle string) (*SessionResponse, error) {
	sess, err := s.session(handle)
	if err != nil {
		return nil, err
	}
	return newSessionResponse(handle, sess.Snapshot()), nil
}

// Approve runs the authorization step of a session.
func (s *paymentService) Approve(ctx context.Context, handle string) (*SessionResponse, error) {
	sess, err := s.session(handle)
	if err != nil {
		return nil, err
	}
	if err := sess.Approve(ctx); err != nil {
		return nil, toServiceError(err)
	}
	return newSessionResponse(handle, sess.Snapshot()), nil
}

// Settle runs the settlement step of a session.
func (s *paymentService) Settle(ctx context.Context, handle string) (*SessionResponse, error) {
	sess, err := s.session(handle)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Settle(ctx); err != nil {
		return nil, toServiceError(err)
	}
	return newSessionResponse(handle, sess.Snapshot()), nil
}

// CloseSession releases a session and its wallet subscription.
func (s *paymentService) CloseSession(_ context.Context, handle string) error {
	if !s.registry.Remove(handle) {
		return apperrors.ResourceNotFoundError(ErrSessionNotFound, "session not found")
	}
	return nil
}

// ListTokens returns the supported tokens.
func (s *paymentService) ListTokens(context.Context) ([]token.Info, error) {
	return s.tokens.List(), nil
}

// ConnectWallet asks the payer wallet for accounts and the payment network.
func (s *paymentService) ConnectWallet(ctx context.Context) (*wallet.Connection, error) {
	if s.connect == nil {
		return nil, apperrors.New(apperrors.CategoryPreconditionFailed, ErrLiveNotConfigured, "live mode is not configured")
	}
	conn, err := s.connect(ctx)
	if err != nil {
		var pe *payment.Error
		if errors.As(err, &pe) {
			return nil, toServiceError(err)
		}
		return nil, apperrors.New(apperrors.CategoryDependencyFailure, err, "failed to connect wallet")
	}
	return conn, nil
}

func (s *paymentService) session(handle string) (*session.Session, error) {
	sess, ok := s.registry.Get(handle)
	if !ok {
		return nil, apperrors.ResourceNotFoundError(ErrSessionNotFound, "session not found")
	}
	return sess, nil
}
