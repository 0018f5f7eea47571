package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// Connection is the outcome of a wallet connect.
type Connection struct {
	Account      common.Address `json:"account"`
	ChainID      *big.Int       `json:"chain_id"`
	WrongNetwork bool           `json:"wrong_network"`
}

// Connect requests account access and moves the wallet to network. A user
// refusing the switch is reported through WrongNetwork, not as an error.
func Connect(ctx context.Context, p Provider, network Network) (*Connection, error) {
	accounts, err := p.RequestAccounts(ctx)
	if err != nil {
		if IsUserRejected(err) {
			return nil, payment.NewError(payment.KindUserRejected, "connect", err)
		}
		return nil, fmt.Errorf("failed to request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, payment.NewError(payment.KindNoAccount, "connect", nil)
	}

	conn := &Connection{Account: accounts[0]}

	current, err := p.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if current.Cmp(network.ChainID) == 0 {
		conn.ChainID = current
		return conn, nil
	}

	if err := p.SwitchChain(ctx, network); err != nil {
		if IsUserRejected(err) {
			conn.ChainID = current
			conn.WrongNetwork = true
			return conn, nil
		}
		return nil, fmt.Errorf("failed to switch chain: %w", err)
	}

	after, err := p.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	conn.ChainID = after
	conn.WrongNetwork = after.Cmp(network.ChainID) != 0
	return conn, nil
}
