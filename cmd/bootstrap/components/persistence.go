package components

import (
	"invopay/internal/infra/readstore"
	"invopay/internal/infra/uow"
	"invopay/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Invoice
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		// Recurring payments
		fx.Annotate(
			readstore.NewRecurringPaymentReadStore,
			fx.As(new(queries.RecurringPaymentReadStore)),
		),
	),
)
