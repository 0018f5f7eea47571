package payment

import "time"

// Mode selects which backend serves a payment request.
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSimulated Mode = "simulated"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLive || m == ModeSimulated
}

// Step is the position of a payment session in its lifecycle.
type Step string

const (
	StepAwaitingDetails    Step = "awaiting-details"
	StepNeedsAuthorization Step = "needs-authorization"
	StepReadyToSettle      Step = "ready-to-settle"
	StepSettled            Step = "settled"
)

// Request represents a merchant payment request as stored on the ledger
// or in the simulation store.
type Request struct {
	ID       string `json:"id"`
	Merchant string `json:"merchant"`
	Token    string `json:"token"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
	Native   bool   `json:"native"`

	// Amount is the human readable amount, RawAmount the same value in minor units.
	Amount    string `json:"amount"`
	RawAmount string `json:"raw_amount"`

	Memo         string `json:"memo"`
	IsPaid       bool   `json:"is_paid"`
	CreatedAt    int64  `json:"created_at"`
	SettlementTx string `json:"settlement_tx,omitempty"`
}

// Clone returns a copy of the request.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// InitialStep derives the first step for a freshly fetched request.
func InitialStep(r *Request) Step {
	switch {
	case r == nil:
		return StepAwaitingDetails
	case r.IsPaid:
		return StepSettled
	case r.Native:
		return StepReadyToSettle
	default:
		return StepNeedsAuthorization
	}
}

// Receipt is the confirmation of a successful settlement.
type Receipt struct {
	TxHash      string    `json:"tx_hash"`
	BlockNumber uint64    `json:"block_number,omitzero"`
	Simulated   bool      `json:"simulated"`
	SettledAt   time.Time `json:"settled_at"`
}

// CreateRequest is the merchant input for a new payment request.
type CreateRequest struct {
	Mode   Mode   `json:"mode" validate:"omitempty,oneof=live simulated"`
	Token  string `json:"token" validate:"required,evm_address"`
	Amount string `json:"amount" validate:"required"`
	Memo   string `json:"memo" validate:"required,max=256"`
	// Merchant is only honoured in simulated mode; live requests are created by the wallet account.
	Merchant string `json:"merchant,omitzero"`
}

// CreateResponse is returned after a payment request has been created.
type CreateResponse struct {
	ID        string `json:"id"`
	Mode      Mode   `json:"mode"`
	Link      string `json:"link"`
	Merchant  string `json:"merchant"`
	Token     string `json:"token"`
	Symbol    string `json:"symbol"`
	Amount    string `json:"amount"`
	RawAmount string `json:"raw_amount"`
	Memo      string `json:"memo"`
	CreatedAt int64  `json:"created_at"`
}

// NewCreateResponse builds a response for the given request.
func NewCreateResponse(r *Request, mode Mode, link string) *CreateResponse {
	return &CreateResponse{
		ID:        r.ID,
		Mode:      mode,
		Link:      link,
		Merchant:  r.Merchant,
		Token:     r.Token,
		Symbol:    r.Symbol,
		Amount:    r.Amount,
		RawAmount: r.RawAmount,
		Memo:      r.Memo,
		CreatedAt: r.CreatedAt,
	}
}

// Draft is a validated payment request that has not been created yet.
type Draft struct {
	Merchant  string
	Token     string
	Symbol    string
	Decimals  int32
	Native    bool
	Amount    string
	RawAmount string
	Memo      string
}
