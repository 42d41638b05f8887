package components

import (
	"football-field-booking/internal/infra/readstore"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/infra/uow"
	"football-field-booking/internal/usecase/queries"
	"football-field-booking/internal/usecase/shared"

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
		// Field
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FieldReadQueries)),
		),
		fx.Annotate(
			readstore.NewFieldReadStore,
			fx.As(new(queries.FieldReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// District
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DistrictReadQueries)),
		),
		fx.Annotate(
			readstore.NewDistrictReadStore,
			fx.As(new(queries.DistrictReadStore)),
		),
	),
)

// repositories are built per transaction by the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		NewReadSnapshotter,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqldb.Queries {
	return sqldb.New()
}

func NewDBTX(pool *pgxpool.Pool) sqldb.DBTX {
	return pool
}

// NewReadSnapshotter hands the unit of work's read-only transactions to the read stores.
func NewReadSnapshotter(u shared.UnitOfWork) readstore.Snapshotter {
	return u
}
