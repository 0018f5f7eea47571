package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/token"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

const serviceName = "PaymentService"

const memoMaxLen = 50

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the payment Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreatePayment wraps the service method with logging
func (ls *logService) CreatePayment(
	ctx context.Context,
	req *payment.CreateRequest,
) (resp *payment.CreateResponse, err error) {
	start := time.Now()

	ls.logger.Info("CreatePayment started",
		zap.String("service", serviceName),
		zap.String("method", "CreatePayment"),
		zap.String("mode", string(req.Mode)),
		zap.String("token", req.Token),
		zap.String("amount", req.Amount),
		zap.String("memo", truncateString(req.Memo, memoMaxLen)),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("CreatePayment failed",
				zap.String("service", serviceName),
				zap.String("method", "CreatePayment"),
				zap.String("kind", errorKind(err)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("CreatePayment completed",
			zap.String("service", serviceName),
			zap.String("method", "CreatePayment"),
			zap.String("payment_id", resp.ID),
			zap.String("mode", string(resp.Mode)),
			zap.String("merchant", resp.Merchant),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.CreatePayment(ctx, req)
}

// OpenSession wraps the service method with logging
func (ls *logService) OpenSession(ctx context.Context, req *OpenSessionRequest) (resp *SessionResponse, err error) {
	start := time.Now()

	ls.logger.Info("OpenSession started",
		zap.String("service", serviceName),
		zap.String("method", "OpenSession"),
		zap.String("payment_id", req.ID),
		zap.String("requested_mode", string(req.Mode)),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("OpenSession failed",
				zap.String("service", serviceName),
				zap.String("method", "OpenSession"),
				zap.String("payment_id", req.ID),
				zap.String("kind", errorKind(err)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("OpenSession completed",
			zap.String("service", serviceName),
			zap.String("method", "OpenSession"),
			zap.String("handle", resp.Handle),
			zap.String("mode", string(resp.Mode)),
			zap.String("step", string(resp.Step)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.OpenSession(ctx, req)
}

// GetSession is not logged, it is polled by clients.
func (ls *logService) GetSession(ctx context.Context, handle string) (*SessionResponse, error) {
	return ls.svc.GetSession(ctx, handle)
}

// Approve wraps the service method with logging
func (ls *logService) Approve(ctx context.Context, handle string) (resp *SessionResponse, err error) {
	return ls.transition(ctx, "Approve", handle, ls.svc.Approve)
}

// Settle wraps the service method with logging
func (ls *logService) Settle(ctx context.Context, handle string) (resp *SessionResponse, err error) {
	return ls.transition(ctx, "Settle", handle, ls.svc.Settle)
}

func (ls *logService) transition(
	ctx context.Context,
	method, handle string,
	fn func(context.Context, string) (*SessionResponse, error),
) (resp *SessionResponse, err error) {
	start := time.Now()

	ls.logger.Info(method+" started",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("handle", handle),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error(method+" failed",
				zap.String("service", serviceName),
				zap.String("method", method),
				zap.String("handle", handle),
				zap.String("kind", errorKind(err)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.String("handle", handle),
			zap.String("step", string(resp.Step)),
			zap.Duration("duration", duration),
		}
		if resp.Receipt != nil {
			fields = append(fields, zap.String("tx_hash", resp.Receipt.TxHash))
		}
		ls.logger.Info(method+" completed", fields...)
	}()

	return fn(ctx, handle)
}

// CloseSession wraps the service method with logging
func (ls *logService) CloseSession(ctx context.Context, handle string) (err error) {
	defer func() {
		if err != nil {
			ls.logger.Warn("CloseSession failed",
				zap.String("service", serviceName),
				zap.String("handle", handle),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("CloseSession completed",
			zap.String("service", serviceName),
			zap.String("handle", handle),
		)
	}()
	return ls.svc.CloseSession(ctx, handle)
}

func (ls *logService) ListTokens(ctx context.Context) ([]token.Info, error) {
	return ls.svc.ListTokens(ctx)
}

// ConnectWallet wraps the service method with logging
func (ls *logService) ConnectWallet(ctx context.Context) (conn *wallet.Connection, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("ConnectWallet failed",
				zap.String("service", serviceName),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("ConnectWallet completed",
			zap.String("service", serviceName),
			zap.String("account", conn.Account.Hex()),
			zap.Stringer("chain_id", conn.ChainID),
			zap.Bool("wrong_network", conn.WrongNetwork),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.ConnectWallet(ctx)
}

func errorKind(err error) string {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) && svcErr.Kind != "" {
		return svcErr.Kind
	}
	return "Unknown"
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
