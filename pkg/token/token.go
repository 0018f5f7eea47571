// Package token holds the registry of supported payment assets and the
// conversion between human amounts and minor units.
package token

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// DefaultDecimals is used for tokens missing from the registry.
const DefaultDecimals int32 = 18

// Info describes a supported token.
type Info struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Address  string `yaml:"address" json:"address"`
	Decimals int32  `yaml:"decimals" json:"decimals" default:"18"`
	// Native marks the chain's fee-native asset; it needs no allowance.
	Native bool `yaml:"native" json:"native"`
}

// Registry resolves token addresses to their metadata.
type Registry struct {
	tokens []Info
	byAddr map[string]Info
}

// Default token set of the Tempo testnet.
var defaultTokens = []Info{
	{Symbol: "pathUSD", Address: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", Decimals: 18, Native: true},
	{Symbol: "USDC", Address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", Decimals: 6},
	{Symbol: "USDT", Address: "0xc2132D05D31c914a87C6611C10748AEb04B58e8F", Decimals: 6},
}

var (
	ErrDuplicateToken = errors.New("duplicate token address")
	ErrMultipleNative = errors.New("more than one native token")
	ErrInvalidAddress = errors.New("invalid token address")
)

// DefaultRegistry returns the built-in token registry.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultTokens)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry validates tokens and builds a registry.
func NewRegistry(tokens []Info) (*Registry, error) {
	r := &Registry{byAddr: make(map[string]Info, len(tokens))}
	nativeSeen := false
	for _, t := range tokens {
		if err := defaults.Set(&t); err != nil {
			return nil, fmt.Errorf("failed to apply token defaults: %w", err)
		}
		if !common.IsHexAddress(t.Address) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, t.Address)
		}
		key := normalize(t.Address)
		if _, ok := r.byAddr[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToken, t.Address)
		}
		if t.Native {
			if nativeSeen {
				return nil, ErrMultipleNative
			}
			nativeSeen = true
		}
		t.Address = common.HexToAddress(t.Address).Hex()
		r.byAddr[key] = t
		r.tokens = append(r.tokens, t)
	}
	return r, nil
}

type registryFile struct {
	Tokens []Info `yaml:"tokens"`
}

// LoadRegistry reads a YAML token list. An empty path yields the default registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	var f registryFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	if len(f.Tokens) == 0 {
		return nil, fmt.Errorf("token file %s has no tokens", path)
	}
	return NewRegistry(f.Tokens)
}

// List returns the registered tokens in declaration order.
func (r *Registry) List() []Info {
	out := make([]Info, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Resolve looks a token up by address, ignoring case.
func (r *Registry) Resolve(address string) (Info, bool) {
	t, ok := r.byAddr[normalize(address)]
	return t, ok
}

// ResolveOrDefault returns the registered token or an unknown token with
// DefaultDecimals.
func (r *Registry) ResolveOrDefault(address string) Info {
	if t, ok := r.Resolve(address); ok {
		return t
	}
	return Info{Symbol: "UNKNOWN", Address: address, Decimals: DefaultDecimals}
}

// Native returns the native fee token, if one is registered.
func (r *Registry) Native() (Info, bool) {
	for _, t := range r.tokens {
		if t.Native {
			return t, true
		}
	}
	return Info{}, false
}

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ToBig is a helper for minor-unit strings.
func ToBig(raw string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer amount %q", raw)
	}
	return v, nil
}
