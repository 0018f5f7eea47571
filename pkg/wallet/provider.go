// Package wallet talks to the party that holds the payer's key: a local
// keyed signer or an external wallet reached over JSON-RPC.
package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0xNexuz/Tempocash/pkg/config"
	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// Provider supplies accounts, the active chain and transaction submission.
type Provider interface {
	Accounts(ctx context.Context) ([]common.Address, error)
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SwitchChain(ctx context.Context, network Network) error
	SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error)
}

// TxRequest is an unsigned transaction handed to the wallet.
type TxRequest struct {
	From  common.Address
	To    common.Address
	Data  []byte
	Value *big.Int
	Gas   uint64
}

// Network describes the chain a wallet is asked to use.
type Network struct {
	ChainID     *big.Int
	Name        string
	RPCURL      string
	ExplorerURL string
	Currency    config.NativeCurrency
}

// NetworkFromConfig builds the payment network from the ethereum section.
func NetworkFromConfig(cfg *config.EthereumConfig) Network {
	return Network{
		ChainID:     big.NewInt(cfg.ChainID),
		Name:        cfg.ChainName,
		RPCURL:      cfg.RPCURL,
		ExplorerURL: cfg.ExplorerURL,
		Currency:    cfg.NativeCurrency,
	}
}

// PrimaryAccount returns the first authorized account of p.
func PrimaryAccount(ctx context.Context, p Provider) (common.Address, error) {
	accounts, err := p.Accounts(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read accounts: %w", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, payment.ErrNoAccount
	}
	return accounts[0], nil
}

// AccountSource exposes the provider's primary account as a string.
type AccountSource struct {
	Provider Provider
}

// ActiveAccount returns the hex address of the primary account.
func (s AccountSource) ActiveAccount(ctx context.Context) (string, error) {
	addr, err := PrimaryAccount(ctx, s.Provider)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}
