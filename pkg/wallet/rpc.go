package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RPCProvider forwards wallet requests to an external JSON-RPC wallet.
type RPCProvider struct {
	client *rpc.Client
}

// DialRPCProvider connects to the wallet at url.
func DialRPCProvider(ctx context.Context, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet: %w", err)
	}
	return NewRPCProvider(client), nil
}

// NewRPCProvider wraps an existing rpc client.
func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{client: client}
}

// Close closes the underlying connection.
func (p *RPCProvider) Close() {
	p.client.Close()
}

func (p *RPCProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) ChainID(ctx context.Context) (*big.Int, error) {
	var id hexutil.Big
	if err := p.client.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return nil, err
	}
	return (*big.Int)(&id), nil
}

type switchChainParams struct {
	ChainID *hexutil.Big `json:"chainId"`
}

type nativeCurrencyParams struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type addChainParams struct {
	ChainID           *hexutil.Big         `json:"chainId"`
	ChainName         string               `json:"chainName"`
	NativeCurrency    nativeCurrencyParams `json:"nativeCurrency"`
	RPCURLs           []string             `json:"rpcUrls"`
	BlockExplorerURLs []string             `json:"blockExplorerUrls,omitempty"`
}

// SwitchChain asks the wallet to switch, registering the chain first when the
// wallet reports it as unknown.
func (p *RPCProvider) SwitchChain(ctx context.Context, network Network) error {
	chainID := (*hexutil.Big)(network.ChainID)
	err := p.client.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: chainID})
	if err == nil || !IsUnknownChain(err) {
		return err
	}

	add := addChainParams{
		ChainID:   chainID,
		ChainName: network.Name,
		NativeCurrency: nativeCurrencyParams{
			Name:     network.Currency.Name,
			Symbol:   network.Currency.Symbol,
			Decimals: network.Currency.Decimals,
		},
		RPCURLs: []string{network.RPCURL},
	}
	if network.ExplorerURL != "" {
		add.BlockExplorerURLs = []string{network.ExplorerURL}
	}
	if err := p.client.CallContext(ctx, nil, "wallet_addEthereumChain", add); err != nil {
		return fmt.Errorf("failed to add chain: %w", err)
	}
	return nil
}

type sendTxParams struct {
	From  common.Address  `json:"from"`
	To    common.Address  `json:"to"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Gas   *hexutil.Uint64 `json:"gas,omitempty"`
}

// SendTransaction lets the wallet sign and submit req.
func (p *RPCProvider) SendTransaction(ctx context.Context, req TxRequest) (common.Hash, error) {
	params := sendTxParams{From: req.From, To: req.To, Data: req.Data}
	if req.Value != nil && req.Value.Sign() > 0 {
		params.Value = (*hexutil.Big)(req.Value)
	}
	if req.Gas > 0 {
		gas := hexutil.Uint64(req.Gas)
		params.Gas = &gas
	}

	var hash common.Hash
	if err := p.client.CallContext(ctx, &hash, "eth_sendTransaction", params); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}
