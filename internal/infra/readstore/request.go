package readstore

import (
	"context"
	"errors"

	"invopay/internal/infra"
	"invopay/internal/infra/db"
	"invopay/internal/usecase/queries"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct{}

func NewRequestReadStore() *RequestReadStore {
	return &RequestReadStore{}
}

const findRequestByRequestIDSQL = `
SELECT id, request_id, user_id, invoice_number,
       payee_address, payer_address, amount, currency,
       status, original_request_id, payment_reference,
       issued_date, due_date
FROM requests
WHERE request_id = $1`

func (r *RequestReadStore) FindByRequestID(ctx context.Context, dbtx db.DBTX, requestID string) (*shared.RequestSnapshot, error) {
	var (
		snap                   shared.RequestSnapshot
		originalID, paymentRef *string
	)
	err := dbtx.QueryRow(ctx, findRequestByRequestIDSQL, requestID).Scan(
		&snap.ID,
		&snap.RequestID,
		&snap.UserID,
		&snap.InvoiceNumber,
		&snap.PayeeAddress,
		&snap.PayerAddress,
		&snap.Amount,
		&snap.Currency,
		&snap.Status,
		&originalID,
		&paymentRef,
		&snap.IssuedDate,
		&snap.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}

	if originalID != nil {
		snap.OriginalRequestID = *originalID
	}
	if paymentRef != nil {
		snap.PaymentReference = *paymentRef
	}
	return &snap, nil
}

const countRequestsByUserSQL = `
SELECT count(*) FROM requests WHERE user_id = $1`

func (r *RequestReadStore) CountByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error) {
	var count int64
	if err := dbtx.QueryRow(ctx, countRequestsByUserSQL, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count requests", err)
	}
	return count, nil
}

const findInvoiceViewSQL = `
SELECT id, request_id, user_id, invoice_number,
       payee_address, payer_address, amount, currency,
       status, original_request_id, payment_reference,
       issued_date, due_date, created_at
FROM requests
WHERE id = $1 AND user_id = $2`

func (r *RequestReadStore) FindViewByID(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) (*queries.InvoiceView, error) {
	row := dbtx.QueryRow(ctx, findInvoiceViewSQL, id, userID)
	view, err := scanInvoiceView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return view, nil
}

const listInvoiceViewsSQL = `
SELECT id, request_id, user_id, invoice_number,
       payee_address, payer_address, amount, currency,
       status, original_request_id, payment_reference,
       issued_date, due_date, created_at
FROM requests
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (r *RequestReadStore) ListViewsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, limit int) ([]queries.InvoiceView, error) {
	rows, err := dbtx.Query(ctx, listInvoiceViewsSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	var views []queries.InvoiceView
	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoices", err)
	}
	return views, nil
}

func scanInvoiceView(row pgx.Row) (*queries.InvoiceView, error) {
	var view queries.InvoiceView
	err := row.Scan(
		&view.ID,
		&view.RequestID,
		&view.UserID,
		&view.InvoiceNumber,
		&view.PayeeAddress,
		&view.PayerAddress,
		&view.Amount,
		&view.Currency,
		&view.Status,
		&view.OriginalRequestID,
		&view.PaymentReference,
		&view.IssuedDate,
		&view.DueDate,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
