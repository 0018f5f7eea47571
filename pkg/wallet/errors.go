package wallet

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes.
const (
	CodeUserRejected = 4001
	CodeUnknownChain = 4902
)

// ErrSwitchUnsupported is returned by providers that cannot change chains.
var ErrSwitchUnsupported = errors.New("wallet cannot switch chains")

func errorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// IsUserRejected reports whether the wallet user declined the request.
func IsUserRejected(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := errorCode(err); ok && code == CodeUserRejected {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied")
}

// IsUnknownChain reports whether the wallet does not know the requested chain.
func IsUnknownChain(err error) bool {
	code, ok := errorCode(err)
	return ok && code == CodeUnknownChain
}
