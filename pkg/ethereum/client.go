package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/0xNexuz/Tempocash/pkg/config"
	"github.com/0xNexuz/Tempocash/pkg/ethereum/contracts"
)

const defaultReceiptPollInterval = 2 * time.Second

// Backend is the subset of ethclient.Client used by the ledger gateway.
type Backend interface {
	bind.ContractCaller
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Payment is the on-chain record returned by getPayment.
type Payment struct {
	Merchant  common.Address
	Token     common.Address
	Amount    *big.Int
	Memo      string
	IsPaid    bool
	CreatedAt *big.Int
}

// Client reads from and prepares calls for the TempoCash payment contract.
type Client struct {
	backend      Backend
	contract     common.Address
	tempo        *contracts.TempoCashCaller
	events       *contracts.TempoCashFilterer
	erc20        *abi.ABI
	tempoABI     *abi.ABI
	pollInterval time.Duration
	logger       *zap.Logger
}

// Dial connects to the ledger RPC endpoint.
func Dial(ctx context.Context, cfg *config.EthereumConfig) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	return client, nil
}

// NewClient binds the payment contract at contract.
func NewClient(backend Backend, contract common.Address, pollInterval time.Duration, logger *zap.Logger) (*Client, error) {
	tempo, err := contracts.NewTempoCashCaller(contract, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind payment contract: %w", err)
	}
	events, err := contracts.NewTempoCashFilterer(contract, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to bind payment contract events: %w", err)
	}
	tempoABI, err := contracts.TempoCashMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment contract abi: %w", err)
	}
	erc20ABI, err := contracts.ERC20MetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 abi: %w", err)
	}
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}

	logger.Info("Payment contract bound", zap.String("contract", contract.Hex()))

	return &Client{
		backend:      backend,
		contract:     contract,
		tempo:        tempo,
		events:       events,
		erc20:        erc20ABI,
		tempoABI:     tempoABI,
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

// Contract returns the payment contract address.
func (c *Client) Contract() common.Address {
	return c.contract
}

// HasCode reports whether bytecode is deployed at the payment contract address.
func (c *Client) HasCode(ctx context.Context) (bool, error) {
	code, err := c.backend.CodeAt(ctx, c.contract, nil)
	if err != nil {
		return false, fmt.Errorf("failed to read contract code: %w", err)
	}
	return len(code) > 0, nil
}

// GetPayment queries the payment with the given id.
func (c *Client) GetPayment(ctx context.Context, id [32]byte) (*Payment, error) {
	out, err := c.tempo.GetPayment(&bind.CallOpts{Context: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}
	return &Payment{
		Merchant:  out.Merchant,
		Token:     out.Token,
		Amount:    out.Amount,
		Memo:      out.Memo,
		IsPaid:    out.IsPaid,
		CreatedAt: out.CreatedAt,
	}, nil
}

// Allowance returns how much of token owner has authorized the payment contract to move.
func (c *Client) Allowance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	erc20, err := contracts.NewERC20Caller(token, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token: %w", err)
	}
	allowance, err := erc20.Allowance(&bind.CallOpts{Context: ctx}, owner, c.contract)
	if err != nil {
		return nil, fmt.Errorf("failed to query allowance: %w", err)
	}
	return allowance, nil
}

// ApproveData encodes approve(paymentContract, amount) for a token.
func (c *Client) ApproveData(amount *big.Int) ([]byte, error) {
	return c.erc20.Pack("approve", c.contract, amount)
}

// PayData encodes pay(id).
func (c *Client) PayData(id [32]byte) ([]byte, error) {
	return c.tempoABI.Pack("pay", id)
}

// CreateData encodes createPayment(token, amount, memo).
func (c *Client) CreateData(token common.Address, amount *big.Int, memo string) ([]byte, error) {
	return c.tempoABI.Pack("createPayment", token, amount, memo)
}

// EstimateContractCall estimates gas for a call from sender to the payment contract.
func (c *Client) EstimateContractCall(ctx context.Context, from common.Address, data []byte, value *big.Int) (uint64, error) {
	to := c.contract
	return c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  data,
	})
}

// WaitReceipt polls until the transaction is mined or ctx is done.
func (c *Client) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to fetch receipt for %s: %w", hash.Hex(), err)
		}

		c.logger.Debug("Transaction not yet mined", zap.String("tx_hash", hash.Hex()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// PaymentCreatedID extracts the id of a PaymentCreated event emitted by the
// payment contract in receipt.
func (c *Client) PaymentCreatedID(receipt *types.Receipt) ([32]byte, bool) {
	for _, log := range receipt.Logs {
		if log == nil || log.Address != c.contract {
			continue
		}
		ev, err := c.events.ParsePaymentCreated(*log)
		if err != nil {
			continue
		}
		return ev.PaymentId, true
	}
	return [32]byte{}, false
}
