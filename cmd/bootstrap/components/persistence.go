package components

import (
	"flash-coupon/internal/infra/readstore"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/infra/uow"
	"flash-coupon/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// IssuedCoupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.IssuedCouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewIssuedCouponReadStore,
			fx.As(new(queries.IssuedCouponReadStore)),
		),
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LedgerReadQueries)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are created per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
