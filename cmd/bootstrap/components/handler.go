package components

import (
	"vehicle-rental/internal/handler"
	"vehicle-rental/internal/handler/api"
	"vehicle-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVehicleHandler,
		api.NewLocationHandler,
		api.NewSearchSessionHandler,
		api.NewReservationHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	vehicle *api.VehicleHandler,
	location *api.LocationHandler,
	search *api.SearchSessionHandler,
	reservation *api.ReservationHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Vehicle:     vehicle,
		Location:    location,
		Search:      search,
		Reservation: reservation,
		Booking:     booking,
		Review:      review,
	}
}
