package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/0xNexuz/Tempocash/pkg/wallet"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	CodeAtFunc             func(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContractFunc       func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGasFunc        func(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

func (m *MockBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if m.CodeAtFunc != nil {
		return m.CodeAtFunc(ctx, contract, blockNumber)
	}
	return []byte{0x60, 0x80}, nil
}

func (m *MockBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, call, blockNumber)
	}
	return nil, nil
}

func (m *MockBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if m.EstimateGasFunc != nil {
		return m.EstimateGasFunc(ctx, call)
	}
	return 21000, nil
}

func (m *MockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash, BlockNumber: big.NewInt(1)}, nil
}

// MockWallet is a mock implementation of wallet.Provider
type MockWallet struct {
	AccountsFunc        func(ctx context.Context) ([]common.Address, error)
	ChainIDFunc         func(ctx context.Context) (*big.Int, error)
	SwitchChainFunc     func(ctx context.Context, network wallet.Network) error
	SendTransactionFunc func(ctx context.Context, tx wallet.TxRequest) (common.Hash, error)

	Sent []wallet.TxRequest
}

func (m *MockWallet) Accounts(ctx context.Context) ([]common.Address, error) {
	if m.AccountsFunc != nil {
		return m.AccountsFunc(ctx)
	}
	return nil, nil
}

func (m *MockWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	return m.Accounts(ctx)
}

func (m *MockWallet) ChainID(ctx context.Context) (*big.Int, error) {
	if m.ChainIDFunc != nil {
		return m.ChainIDFunc(ctx)
	}
	return big.NewInt(123), nil
}

func (m *MockWallet) SwitchChain(ctx context.Context, network wallet.Network) error {
	if m.SwitchChainFunc != nil {
		return m.SwitchChainFunc(ctx, network)
	}
	return nil
}

func (m *MockWallet) SendTransaction(ctx context.Context, tx wallet.TxRequest) (common.Hash, error) {
	m.Sent = append(m.Sent, tx)
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}
	return common.HexToHash("0xabc"), nil
}
