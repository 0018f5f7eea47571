package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// Backend is the part of ethclient.Client a keyed provider needs.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// KeyedProvider signs locally with a private key and submits through a node.
type KeyedProvider struct {
	backend     Backend
	key         *ecdsa.PrivateKey
	address     common.Address
	gasLimit    uint64
	maxGasPrice *big.Int
	logger      *zap.Logger
}

// KeyedOptions tunes gas handling for a KeyedProvider.
type KeyedOptions struct {
	// GasLimit is used when a request carries no gas; zero means estimate.
	GasLimit uint64
	// MaxGasPrice caps the suggested gas price, in wei. Empty means no cap.
	MaxGasPrice string
}

// NewKeyedProvider creates a provider from a hex private key.
func NewKeyedProvider(backend Backend, hexKey string, opts KeyedOptions, logger *zap.Logger) (*KeyedProvider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	var maxGasPrice *big.Int
	if opts.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(opts.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", opts.MaxGasPrice)
		}
		maxGasPrice = v
	}

	return &KeyedProvider{
		backend:     backend,
		key:         key,
		address:     crypto.PubkeyToAddress(key.PublicKey),
		gasLimit:    opts.GasLimit,
		maxGasPrice: maxGasPrice,
		logger:      logger,
	}, nil
}

// Address returns the signer address.
func (p *KeyedProvider) Address() common.Address {
	return p.address
}

func (p *KeyedProvider) Accounts(context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

func (p *KeyedProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	return p.Accounts(ctx)
}

func (p *KeyedProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return p.backend.ChainID(ctx)
}

// SwitchChain succeeds only when the node already serves network.
func (p *KeyedProvider) SwitchChain(ctx context.Context, network Network) error {
	current, err := p.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read chain id: %w", err)
	}
	if current.Cmp(network.ChainID) != 0 {
		return fmt.Errorf("%w: node serves chain %s, want %s", ErrSwitchUnsupported, current, network.ChainID)
	}
	return nil
}

// SendTransaction signs tx with the local key and submits it.
func (p *KeyedProvider) SendTransaction(ctx context.Context, req TxRequest) (common.Hash, error) {
	if req.From != (common.Address{}) && req.From != p.address {
		return common.Hash{}, fmt.Errorf("cannot sign for %s with key of %s", req.From.Hex(), p.address.Hex())
	}

	chainID, err := p.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read chain id: %w", err)
	}

	nonce, err := p.backend.PendingNonceAt(ctx, p.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := p.gasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	gas := req.Gas
	if gas == 0 {
		gas = p.gasLimit
	}
	if gas == 0 {
		to := req.To
		gas, err = p.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:  p.address,
			To:    &to,
			Value: value,
			Data:  req.Data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	to := req.To
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     req.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), p.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := p.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	p.logger.Debug("Transaction submitted",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("nonce", nonce))

	return signed.Hash(), nil
}

func (p *KeyedProvider) gasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := p.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	if p.maxGasPrice != nil && gasPrice.Cmp(p.maxGasPrice) > 0 {
		p.logger.Warn("Suggested gas price exceeds maximum",
			zap.String("suggested", gasPrice.String()),
			zap.String("max", p.maxGasPrice.String()))
		return new(big.Int).Set(p.maxGasPrice), nil
	}
	return gasPrice, nil
}
