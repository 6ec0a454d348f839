package queries

import (
	"context"

	"invopay/internal/infra/db"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

type InvoiceReadStore interface {
	FindViewByID(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) (*InvoiceView, error)
	ListViewsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, limit int) ([]InvoiceView, error)
	CountByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error)
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*InvoiceView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) (*InvoiceListView, error)
}

type invoiceQueriesImpl struct {
	uow   shared.UnitOfWork
	store InvoiceReadStore
}

func NewInvoiceQueries(uow shared.UnitOfWork, store InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{uow: uow, store: store}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*InvoiceView, error) {
	var view *InvoiceView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = q.store.FindViewByID(ctx, dbtx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListByUser reads the page and the total inside one read-only transaction
// so the count matches the listed rows.
func (q *invoiceQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) (*InvoiceListView, error) {
	limit = ValidateLimit(limit)

	var result InvoiceListView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		views, err := q.store.ListViewsByUser(ctx, dbtx, userID, limit)
		if err != nil {
			return err
		}
		total, err := q.store.CountByUser(ctx, dbtx, userID)
		if err != nil {
			return err
		}
		result = InvoiceListView{Invoices: views, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
