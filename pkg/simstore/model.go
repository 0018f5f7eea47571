package simstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// SimulatedPaymentDao maps directly to the 'simulated_payments' table in PostgreSQL.
type SimulatedPaymentDao struct {
	bun.BaseModel `bun:"table:simulated_payments,alias:sp"`
	ID            string    `bun:"id,pk,type:varchar(64)"`
	Merchant      string    `bun:"merchant,notnull,type:varchar(64)"`
	Token         string    `bun:"token,notnull,type:varchar(42)"`
	Symbol        string    `bun:"symbol,notnull,type:varchar(32)"`
	Decimals      int32     `bun:"decimals,notnull"`
	Native        bool      `bun:"native,notnull"`
	Amount        string    `bun:"amount,notnull,type:varchar(96)"`
	RawAmount     string    `bun:"raw_amount,notnull,type:numeric(78,0)"`
	Memo          string    `bun:"memo,notnull,type:text"`
	IsPaid        bool      `bun:"is_paid,notnull"`
	CreatedAt     int64     `bun:"created_at,notnull"`
	SettlementTx  *string   `bun:"settlement_tx,type:varchar(66)"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toSimulatedPaymentDao(r *payment.Request) *SimulatedPaymentDao {
	dao := &SimulatedPaymentDao{
		ID:        r.ID,
		Merchant:  r.Merchant,
		Token:     r.Token,
		Symbol:    r.Symbol,
		Decimals:  r.Decimals,
		Native:    r.Native,
		Amount:    r.Amount,
		RawAmount: r.RawAmount,
		Memo:      r.Memo,
		IsPaid:    r.IsPaid,
		CreatedAt: r.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if r.SettlementTx != "" {
		dao.SettlementTx = &r.SettlementTx
	}
	return dao
}

func fromSimulatedPaymentDao(dao *SimulatedPaymentDao) *payment.Request {
	r := &payment.Request{
		ID:        dao.ID,
		Merchant:  dao.Merchant,
		Token:     dao.Token,
		Symbol:    dao.Symbol,
		Decimals:  dao.Decimals,
		Native:    dao.Native,
		Amount:    dao.Amount,
		RawAmount: dao.RawAmount,
		Memo:      dao.Memo,
		IsPaid:    dao.IsPaid,
		CreatedAt: dao.CreatedAt,
	}
	if dao.SettlementTx != nil {
		r.SettlementTx = *dao.SettlementTx
	}
	return r
}
