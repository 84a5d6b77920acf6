package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
		func(u *api.UserHandler, i *api.ItemHandler, b *api.BookingHandler, r *api.RequestHandler) handler.Handlers {
			return handler.Handlers{User: u, Item: i, Booking: b, Request: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
