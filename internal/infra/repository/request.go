package repository

import (
	"context"
	"errors"

	"invopay/internal/domain/request"
	"invopay/internal/infra"
	"invopay/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO requests (
	id, request_id, user_id, invoice_number,
	payee_address, payer_address, amount, currency,
	status, original_request_id, payment_reference,
	issued_date, due_date, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9,
	NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, $14
)
RETURNING id`

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRequestSQL,
		req.ID(),
		req.RequestID(),
		req.UserID(),
		req.InvoiceNumber(),
		req.PayeeAddress(),
		req.PayerAddress(),
		req.Amount(),
		req.Currency(),
		req.Status().String(),
		req.OriginalRequestID(),
		req.PaymentReference(),
		req.IssuedDate(),
		req.DueDate(),
		req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("request already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}

const updateRequestStatusSQL = `
UPDATE requests
SET status = $2, updated_at = now()
WHERE request_id = $1`

func (r *RequestRepository) UpdateStatusByRequestID(ctx context.Context, tx db.DBTX, requestID string, status request.Status) (int64, error) {
	tag, err := tx.Exec(ctx, updateRequestStatusSQL, requestID, status.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update request status", err)
	}
	return tag.RowsAffected(), nil
}
