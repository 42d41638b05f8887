package components

import (
	"football-field-booking/internal/handler"
	"football-field-booking/internal/handler/api"
	"football-field-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFieldHandler,
		api.NewBookingHandler,
		api.NewDistrictHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(field *api.FieldHandler, booking *api.BookingHandler, district *api.DistrictHandler) handler.Handlers {
	return handler.Handlers{
		Field:    field,
		Booking:  booking,
		District: district,
	}
}
