package components

import (
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/pkg/clock"
	"football-field-booking/internal/pkg/config"
	"football-field-booking/internal/usecase"
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingLocation,
	booking.NewValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFieldUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFieldQueries,
		queries.NewBookingQueries,
		queries.NewDistrictQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewBookingLocation is the zone naive booking and availability timestamps are read in.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
