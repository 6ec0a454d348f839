package queries

import (
	"context"

	"invopay/internal/infra/db"
	"invopay/internal/usecase/shared"
)

type RecurringPaymentReadStore interface {
	FindViewByExternalID(ctx context.Context, dbtx db.DBTX, externalPaymentID string) (*RecurringPaymentView, error)
}

type RecurringPaymentQueries interface {
	GetByExternalID(ctx context.Context, externalPaymentID string) (*RecurringPaymentView, error)
}

type recurringQueriesImpl struct {
	uow   shared.UnitOfWork
	store RecurringPaymentReadStore
}

func NewRecurringPaymentQueries(uow shared.UnitOfWork, store RecurringPaymentReadStore) RecurringPaymentQueries {
	return &recurringQueriesImpl{uow: uow, store: store}
}

func (q *recurringQueriesImpl) GetByExternalID(ctx context.Context, externalPaymentID string) (*RecurringPaymentView, error) {
	var view *RecurringPaymentView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = q.store.FindViewByExternalID(ctx, dbtx, externalPaymentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
