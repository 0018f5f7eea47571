package payment

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// SimulationPrefix marks identifiers served by the simulation store.
// '-' is not a hex digit, so prefixed ids never collide with live ids.
const SimulationPrefix = "demo-"

const (
	simulationSuffixLen = 10
	liveIDHexLen        = 64
)

// IsSimulationID reports whether id carries the simulation prefix.
func IsSimulationID(id string) bool {
	return strings.HasPrefix(id, SimulationPrefix)
}

// EffectiveMode resolves the mode a session must use. A simulation id forces
// simulated mode regardless of what the caller asked for.
func EffectiveMode(id string, requested Mode) Mode {
	if IsSimulationID(id) {
		return ModeSimulated
	}
	if requested == "" {
		return ModeLive
	}
	return requested
}

// ValidateLiveID checks that id is a 0x-prefixed 32 byte hex string.
func ValidateLiveID(id string) error {
	if !strings.HasPrefix(id, "0x") && !strings.HasPrefix(id, "0X") {
		return fmt.Errorf("payment id %q must start with 0x", id)
	}
	hex := id[2:]
	if len(hex) != liveIDHexLen {
		return fmt.Errorf("payment id must have %d hex characters, got %d", liveIDHexLen, len(hex))
	}
	for _, c := range hex {
		if !isHexRune(c) {
			return fmt.Errorf("payment id contains non-hex character %q", c)
		}
	}
	return nil
}

// LiveIDBytes converts a validated live id into its bytes32 form.
func LiveIDBytes(id string) ([32]byte, error) {
	if err := ValidateLiveID(id); err != nil {
		return [32]byte{}, err
	}
	return common.HexToHash(id), nil
}

// NewSimulationID returns a fresh simulation identifier: the prefix followed
// by ten base36 characters.
func NewSimulationID() string {
	u := uuid.New()
	suffix := new(big.Int).SetBytes(u[:]).Text(36)
	for len(suffix) < simulationSuffixLen {
		suffix = "0" + suffix
	}
	return SimulationPrefix + suffix[len(suffix)-simulationSuffixLen:]
}

func isHexRune(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
