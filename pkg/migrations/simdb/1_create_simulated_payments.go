package simdb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/0xNexuz/Tempocash/pkg/pgutil/migrations"
	"github.com/0xNexuz/Tempocash/pkg/simstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &simstore.SimulatedPaymentDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &simstore.SimulatedPaymentDao{}, "merchant")
	}, func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.DropModelIndexes(ctx, db, &simstore.SimulatedPaymentDao{}, "merchant"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &simstore.SimulatedPaymentDao{})
	})
}
