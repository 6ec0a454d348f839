package repository

import (
	"context"
	"errors"

	"invopay/internal/domain/paymentdetails"
	"invopay/internal/infra"
	"invopay/internal/infra/db"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type PaymentDetailsRepository struct{}

func NewPaymentDetailsRepository() *PaymentDetailsRepository {
	return &PaymentDetailsRepository{}
}

const createPayerSQL = `
INSERT INTO payment_details_payers (
	id, external_payment_detail_id, status,
	account_holder_enc, iban_enc, bic_enc,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING id`

func (r *PaymentDetailsRepository) Create(ctx context.Context, tx db.DBTX, payer *paymentdetails.Payer, bank shared.EncryptedBankDetails) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPayerSQL,
		payer.ID(),
		payer.ExternalPaymentDetailID(),
		string(payer.Status()),
		bank.AccountHolder,
		bank.IBAN,
		bank.BIC,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("payment detail already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create payment detail payer", err)
	}
	return id, nil
}

// Approved rows are excluded in the predicate rather than checked
// read-then-write, so racing webhook deliveries cannot downgrade.
const updatePayerStatusSQL = `
UPDATE payment_details_payers
SET status = $2, updated_at = now()
WHERE external_payment_detail_id = $1
  AND status <> 'approved'`

func (r *PaymentDetailsRepository) UpdateStatusUnlessApproved(ctx context.Context, tx db.DBTX, externalPaymentDetailID string, status paymentdetails.Status) (int64, error) {
	tag, err := tx.Exec(ctx, updatePayerStatusSQL, externalPaymentDetailID, string(status))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update payment detail status", err)
	}
	return tag.RowsAffected(), nil
}
