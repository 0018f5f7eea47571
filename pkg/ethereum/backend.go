package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/internal/metrics"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/token"
	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

// ErrNoPaymentID is returned when a createPayment transaction emits no PaymentCreated event.
var ErrNoPaymentID = errors.New("transaction succeeded but no payment ID was emitted")

// LedgerBackend serves payment sessions from the payment contract, submitting
// transactions through the wallet provider.
type LedgerBackend struct {
	client *Client
	wallet wallet.Provider
	tokens *token.Registry
	logger *zap.Logger
}

// NewLedgerBackend creates a live backend.
func NewLedgerBackend(client *Client, w wallet.Provider, tokens *token.Registry, logger *zap.Logger) *LedgerBackend {
	return &LedgerBackend{client: client, wallet: w, tokens: tokens, logger: logger}
}

// Fetch loads the payment request with the given live id.
func (b *LedgerBackend) Fetch(ctx context.Context, id string) (*payment.Request, error) {
	const op = "open"

	deployed, err := b.client.HasCode(ctx)
	if err != nil {
		return nil, payment.NewError(payment.KindFetchFailed, op, err)
	}
	if !deployed {
		return nil, payment.Errorf(payment.KindContractUnavailable, op, "no code at %s", b.client.Contract().Hex())
	}

	key, err := payment.LiveIDBytes(id)
	if err != nil {
		return nil, payment.NewError(payment.KindWrongIdentifierFormat, op, err)
	}

	p, err := b.client.GetPayment(ctx, key)
	if err != nil {
		return nil, payment.NewError(payment.KindFetchFailed, op, err)
	}
	if p.Merchant == (common.Address{}) {
		return nil, payment.Errorf(payment.KindNotFound, op, "payment %s does not exist", id)
	}

	info := b.tokens.ResolveOrDefault(p.Token.Hex())
	req := &payment.Request{
		ID:        common.Hash(key).Hex(),
		Merchant:  p.Merchant.Hex(),
		Token:     p.Token.Hex(),
		Symbol:    info.Symbol,
		Decimals:  info.Decimals,
		Native:    info.Native,
		Amount:    token.FromMinorUnits(p.Amount, info.Decimals),
		RawAmount: p.Amount.String(),
		Memo:      p.Memo,
		IsPaid:    p.IsPaid,
	}
	if p.CreatedAt != nil {
		req.CreatedAt = p.CreatedAt.Int64()
	}
	return req, nil
}

// Approve authorizes the payment contract to move exactly the requested
// amount of the request's token from account.
func (b *LedgerBackend) Approve(ctx context.Context, req *payment.Request, account string) error {
	const op = "approve"
	if req.Native {
		return nil
	}

	amount, err := token.ToBig(req.RawAmount)
	if err != nil {
		return payment.NewError(payment.KindAuthorizationFailed, op, err)
	}
	data, err := b.client.ApproveData(amount)
	if err != nil {
		return payment.NewError(payment.KindAuthorizationFailed, op, err)
	}

	hash, err := b.wallet.SendTransaction(ctx, wallet.TxRequest{
		From: common.HexToAddress(account),
		To:   common.HexToAddress(req.Token),
		Data: data,
	})
	if err != nil {
		if wallet.IsUserRejected(err) {
			return payment.NewError(payment.KindUserRejected, op, err)
		}
		return payment.NewError(payment.KindAuthorizationFailed, op, err)
	}

	b.logger.Info("Approval submitted",
		zap.String("payment_id", req.ID),
		zap.String("token", req.Token),
		zap.String("tx_hash", hash.Hex()))

	receipt, err := b.client.WaitReceipt(ctx, hash)
	if err != nil {
		return payment.NewError(payment.KindAuthorizationFailed, op, err)
	}
	metrics.GasUsed.WithLabelValues(op).Observe(float64(receipt.GasUsed))
	if receipt.Status != types.ReceiptStatusSuccessful {
		return payment.Errorf(payment.KindAuthorizationFailed, op, "approval %s reverted", hash.Hex())
	}
	return nil
}

// Settle pays the request from account. A pre-flight gas estimate runs first
// so that predictable failures are classified before anything is signed.
func (b *LedgerBackend) Settle(ctx context.Context, req *payment.Request, account string) (*payment.Receipt, error) {
	const op = "settle"

	key, err := payment.LiveIDBytes(req.ID)
	if err != nil {
		return nil, payment.NewError(payment.KindWrongIdentifierFormat, op, err)
	}
	data, err := b.client.PayData(key)
	if err != nil {
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}

	value := new(big.Int)
	if req.Native {
		value, err = token.ToBig(req.RawAmount)
		if err != nil {
			return nil, payment.NewError(payment.KindSettlementFailed, op, err)
		}
	}

	from := common.HexToAddress(account)
	gas, err := b.client.EstimateContractCall(ctx, from, data, value)
	if err != nil {
		perr := ClassifyPreflight(err)
		if perr.Kind == payment.KindAlreadySettledOrInvalid {
			if short := b.allowanceShortfall(ctx, req, key, from); short != nil {
				return nil, short
			}
		}
		return nil, perr
	}

	hash, err := b.wallet.SendTransaction(ctx, wallet.TxRequest{
		From:  from,
		To:    b.client.Contract(),
		Data:  data,
		Value: value,
		Gas:   gas,
	})
	if err != nil {
		if wallet.IsUserRejected(err) {
			return nil, payment.NewError(payment.KindUserRejected, op, err)
		}
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}

	b.logger.Info("Settlement submitted",
		zap.String("payment_id", req.ID),
		zap.String("tx_hash", hash.Hex()),
		zap.Bool("native", req.Native))

	receipt, err := b.client.WaitReceipt(ctx, hash)
	if err != nil {
		return nil, payment.NewError(payment.KindSettlementFailed, op, err)
	}
	metrics.GasUsed.WithLabelValues(op).Observe(float64(receipt.GasUsed))
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, payment.Errorf(payment.KindSettlementFailed, op, "settlement %s reverted", hash.Hex())
	}

	out := &payment.Receipt{
		TxHash:    hash.Hex(),
		SettledAt: time.Now().UTC(),
	}
	if receipt.BlockNumber != nil {
		out.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return out, nil
}

// allowanceShortfall reports a reverted pre-flight on a payment that is still
// unpaid while the allowance is below the amount. Lookup failures defer to
// ClassifyPreflight.
func (b *LedgerBackend) allowanceShortfall(ctx context.Context, req *payment.Request, key [32]byte, owner common.Address) *payment.Error {
	if req.Native {
		return nil
	}
	amount, err := token.ToBig(req.RawAmount)
	if err != nil {
		return nil
	}

	p, err := b.client.GetPayment(ctx, key)
	if err != nil {
		b.logger.Debug("Payment lookup after failed pre-flight", zap.String("payment_id", req.ID), zap.Error(err))
		return nil
	}
	if p.IsPaid || p.Merchant == (common.Address{}) {
		return nil
	}

	allowance, err := b.client.Allowance(ctx, common.HexToAddress(req.Token), owner)
	if err != nil {
		b.logger.Debug("Allowance lookup after failed pre-flight", zap.String("payment_id", req.ID), zap.Error(err))
		return nil
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}
	return payment.Errorf(payment.KindSettlementFailed, "settle",
		"allowance %s is below the payment amount %s", allowance, amount)
}

// Create submits createPayment from the draft's merchant account and returns
// the request under the id emitted by the contract.
func (b *LedgerBackend) Create(ctx context.Context, draft *payment.Draft) (*payment.Request, error) {
	amount, err := token.ToBig(draft.RawAmount)
	if err != nil {
		return nil, err
	}
	data, err := b.client.CreateData(common.HexToAddress(draft.Token), amount, draft.Memo)
	if err != nil {
		return nil, fmt.Errorf("failed to encode createPayment: %w", err)
	}

	hash, err := b.wallet.SendTransaction(ctx, wallet.TxRequest{
		From: common.HexToAddress(draft.Merchant),
		To:   b.client.Contract(),
		Data: data,
	})
	if err != nil {
		if wallet.IsUserRejected(err) {
			return nil, payment.NewError(payment.KindUserRejected, "create", err)
		}
		return nil, fmt.Errorf("failed to submit createPayment: %w", err)
	}

	receipt, err := b.client.WaitReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	metrics.GasUsed.WithLabelValues("create").Observe(float64(receipt.GasUsed))
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("createPayment %s reverted", hash.Hex())
	}

	id, ok := b.client.PaymentCreatedID(receipt)
	if !ok {
		return nil, ErrNoPaymentID
	}

	b.logger.Info("Payment request created",
		zap.String("payment_id", common.Hash(id).Hex()),
		zap.String("merchant", draft.Merchant),
		zap.String("tx_hash", hash.Hex()))

	return &payment.Request{
		ID:        common.Hash(id).Hex(),
		Merchant:  common.HexToAddress(draft.Merchant).Hex(),
		Token:     draft.Token,
		Symbol:    draft.Symbol,
		Decimals:  draft.Decimals,
		Native:    draft.Native,
		Amount:    draft.Amount,
		RawAmount: draft.RawAmount,
		Memo:      draft.Memo,
		CreatedAt: time.Now().Unix(),
	}, nil
}

// ClassifyPreflight maps a failed settlement gas estimate to a payment error.
// Balance failures come first, an allowance shortfall is a generic failure and
// any other revert means the payment is settled or unknown. Settle narrows a
// bare revert further with allowanceShortfall.
func ClassifyPreflight(err error) *payment.Error {
	const op = "settle"
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"),
		strings.Contains(msg, "insufficient balance"),
		strings.Contains(msg, "exceeds balance"):
		return payment.NewError(payment.KindInsufficientFunds, op, err)
	case strings.Contains(msg, "insufficient allowance"),
		strings.Contains(msg, "exceeds allowance"):
		return payment.NewError(payment.KindSettlementFailed, op, err)
	case strings.Contains(msg, "revert"):
		return payment.NewError(payment.KindAlreadySettledOrInvalid, op, err)
	default:
		return payment.NewError(payment.KindSettlementFailed, op, err)
	}
}
