package payment

import (
	"errors"
	"fmt"
)

// Kind classifies every failure surfaced by a payment session.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindWrongIdentifierFormat
	KindContractUnavailable
	KindFetchFailed
	KindNoAccount
	KindNetworkMismatch
	KindUserRejected
	KindAuthorizationFailed
	KindInsufficientFunds
	KindAlreadySettledOrInvalid
	KindSettlementFailed
	KindInvalidStep
	KindOperationPending
	KindSessionStale
)

var kindNames = map[Kind]string{
	KindNotFound:                "NotFound",
	KindWrongIdentifierFormat:   "WrongIdentifierFormat",
	KindContractUnavailable:     "ContractUnavailable",
	KindFetchFailed:             "FetchFailed",
	KindNoAccount:               "NoAccount",
	KindNetworkMismatch:         "NetworkMismatch",
	KindUserRejected:            "UserRejected",
	KindAuthorizationFailed:     "AuthorizationFailed",
	KindInsufficientFunds:       "InsufficientFunds",
	KindAlreadySettledOrInvalid: "AlreadySettledOrInvalid",
	KindSettlementFailed:        "SettlementFailed",
	KindInvalidStep:             "InvalidStep",
	KindOperationPending:        "OperationPending",
	KindSessionStale:            "SessionStale",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Message is the short user facing text for the kind.
func (k Kind) Message() string {
	switch k {
	case KindNotFound:
		return "Payment request not found. Check the link with the merchant."
	case KindWrongIdentifierFormat:
		return "This payment link is malformed."
	case KindContractUnavailable:
		return "The payment contract is not available on this network."
	case KindFetchFailed:
		return "Could not load the payment request. Try again."
	case KindNoAccount:
		return "Connect a wallet to continue."
	case KindNetworkMismatch:
		return "Your wallet is on the wrong network. Switch to the payment network."
	case KindUserRejected:
		return "The request was rejected in the wallet."
	case KindAuthorizationFailed:
		return "Token approval failed. Try again."
	case KindInsufficientFunds:
		return "Insufficient balance to complete this payment."
	case KindAlreadySettledOrInvalid:
		return "This payment was already settled or is no longer valid."
	case KindSettlementFailed:
		return "Payment failed. Try again."
	case KindInvalidStep:
		return "This action is not available at the current step."
	case KindOperationPending:
		return "Another action is still in progress."
	case KindSessionStale:
		return "The wallet network changed. Reload the payment."
	default:
		return "Unexpected error."
	}
}

// ActionSwitchNetwork is the corrective action offered for network mismatches.
const ActionSwitchNetwork = "switch-network"

// ActionReopen asks the caller to open a new session.
const ActionReopen = "reopen"

// Action returns the corrective action the caller can offer, if any.
func (k Kind) Action() string {
	switch k {
	case KindNetworkMismatch:
		return ActionSwitchNetwork
	case KindSessionStale:
		return ActionReopen
	default:
		return ""
	}
}

// Error is a classified payment failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError creates a classified error for op.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf creates a classified error with a formatted cause.
func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
	}
	return false
}

// Sentinels usable with errors.Is.
var (
	ErrNotFound                = &Error{Kind: KindNotFound}
	ErrWrongIdentifierFormat   = &Error{Kind: KindWrongIdentifierFormat}
	ErrContractUnavailable     = &Error{Kind: KindContractUnavailable}
	ErrFetchFailed             = &Error{Kind: KindFetchFailed}
	ErrNoAccount               = &Error{Kind: KindNoAccount}
	ErrNetworkMismatch         = &Error{Kind: KindNetworkMismatch}
	ErrUserRejected            = &Error{Kind: KindUserRejected}
	ErrAuthorizationFailed     = &Error{Kind: KindAuthorizationFailed}
	ErrInsufficientFunds       = &Error{Kind: KindInsufficientFunds}
	ErrAlreadySettledOrInvalid = &Error{Kind: KindAlreadySettledOrInvalid}
	ErrSettlementFailed        = &Error{Kind: KindSettlementFailed}
	ErrInvalidStep             = &Error{Kind: KindInvalidStep}
	ErrOperationPending        = &Error{Kind: KindOperationPending}
	ErrSessionStale            = &Error{Kind: KindSessionStale}
)

// KindOf returns the kind of err, or KindUnknown if err is not classified.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// Classify returns err as a classified error, using fallback for raw errors.
func Classify(err error, op string, fallback Kind) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		if pe.Op == "" {
			return &Error{Kind: pe.Kind, Op: op, Err: pe.Err}
		}
		return pe
	}
	return &Error{Kind: fallback, Op: op, Err: err}
}
