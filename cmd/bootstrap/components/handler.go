package components

import (
	"invopay/internal/handler"
	"invopay/internal/handler/api"
	"invopay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewInvoiceHandler,
		api.NewRecurringHandler,
		api.NewPaymentDetailsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
