package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

type fakeBackend struct {
	chainID  *big.Int
	gasPrice *big.Int
	estimate uint64
	sent     []*types.Transaction
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) { return b.chainID, nil }

func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return uint64(len(b.sent)), nil
}

func (b *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) { return b.gasPrice, nil }

func (b *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return b.estimate, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}

func TestKeyedProvider_SendTransaction(t *testing.T) {
	backend := &fakeBackend{chainID: big.NewInt(123), gasPrice: big.NewInt(5_000_000_000), estimate: 54321}
	p, err := NewKeyedProvider(backend, "0x"+testKey, KeyedOptions{MaxGasPrice: "1000000000"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewKeyedProvider() failed: %v", err)
	}

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	hash, err := p.SendTransaction(context.Background(), TxRequest{To: to, Value: big.NewInt(7)})
	if err != nil {
		t.Fatalf("SendTransaction() failed: %v", err)
	}
	if len(backend.sent) != 1 {
		t.Fatalf("expected one transaction, got %d", len(backend.sent))
	}
	tx := backend.sent[0]
	if tx.Hash() != hash {
		t.Fatal("returned hash does not match submitted transaction")
	}
	if tx.GasPrice().Cmp(big.NewInt(1_000_000_000)) != 0 {
		t.Fatalf("expected capped gas price, got %s", tx.GasPrice())
	}
	if tx.Gas() != 54321 {
		t.Fatalf("expected estimated gas, got %d", tx.Gas())
	}

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(123)), tx)
	if err != nil {
		t.Fatalf("failed to recover sender: %v", err)
	}
	key, _ := crypto.HexToECDSA(testKey)
	if sender != crypto.PubkeyToAddress(key.PublicKey) || sender != p.Address() {
		t.Fatalf("unexpected sender %s", sender.Hex())
	}
}

func TestKeyedProvider_ConfiguredGasLimit(t *testing.T) {
	backend := &fakeBackend{chainID: big.NewInt(123), gasPrice: big.NewInt(1), estimate: 1}
	p, err := NewKeyedProvider(backend, testKey, KeyedOptions{GasLimit: 300000}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewKeyedProvider() failed: %v", err)
	}
	if _, err := p.SendTransaction(context.Background(), TxRequest{}); err != nil {
		t.Fatalf("SendTransaction() failed: %v", err)
	}
	if backend.sent[0].Gas() != 300000 {
		t.Fatalf("expected configured gas limit, got %d", backend.sent[0].Gas())
	}
}

func TestKeyedProvider_RejectsForeignSender(t *testing.T) {
	p, err := NewKeyedProvider(&fakeBackend{chainID: big.NewInt(123), gasPrice: big.NewInt(1)}, testKey, KeyedOptions{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewKeyedProvider() failed: %v", err)
	}
	_, err = p.SendTransaction(context.Background(), TxRequest{From: common.HexToAddress("0x01")})
	if err == nil {
		t.Fatal("expected error for foreign sender")
	}
}

func TestKeyedProvider_SwitchChain(t *testing.T) {
	p, err := NewKeyedProvider(&fakeBackend{chainID: big.NewInt(1)}, testKey, KeyedOptions{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewKeyedProvider() failed: %v", err)
	}
	err = p.SwitchChain(context.Background(), Network{ChainID: big.NewInt(123)})
	if !errors.Is(err, ErrSwitchUnsupported) {
		t.Fatalf("expected ErrSwitchUnsupported, got %v", err)
	}
	if err := p.SwitchChain(context.Background(), Network{ChainID: big.NewInt(1)}); err != nil {
		t.Fatalf("switch to current chain failed: %v", err)
	}
}

func TestNewKeyedProvider_InvalidKey(t *testing.T) {
	if _, err := NewKeyedProvider(&fakeBackend{}, "zz", KeyedOptions{}, zap.NewNop()); err == nil {
		t.Fatal("expected invalid key error")
	}
	if _, err := NewKeyedProvider(&fakeBackend{}, testKey, KeyedOptions{MaxGasPrice: "lots"}, zap.NewNop()); err == nil {
		t.Fatal("expected invalid max gas price error")
	}
}
