package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"invopay/internal/domain/recurring"
	"invopay/internal/infra"
	"invopay/internal/infra/db"
	"invopay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecurringPaymentReadStore struct{}

func NewRecurringPaymentReadStore() *RecurringPaymentReadStore {
	return &RecurringPaymentReadStore{}
}

const findRecurringForUpdateSQL = `
SELECT id, external_payment_id, status, current_number_of_payments, payments
FROM recurring_payments
WHERE external_payment_id = $1
FOR UPDATE`

// FindByExternalIDForUpdate must run inside a transaction; the row lock keeps
// concurrent deliveries for the same stream from racing on the list append.
func (r *RecurringPaymentReadStore) FindByExternalIDForUpdate(ctx context.Context, dbtx db.DBTX, externalPaymentID string) (*recurring.RecurringPayment, error) {
	return r.scanRecurring(dbtx.QueryRow(ctx, findRecurringForUpdateSQL, externalPaymentID))
}

const findRecurringViewSQL = `
SELECT id, external_payment_id, status, current_number_of_payments, payments
FROM recurring_payments
WHERE external_payment_id = $1`

func (r *RecurringPaymentReadStore) FindViewByExternalID(ctx context.Context, dbtx db.DBTX, externalPaymentID string) (*queries.RecurringPaymentView, error) {
	rp, err := r.scanRecurring(dbtx.QueryRow(ctx, findRecurringViewSQL, externalPaymentID))
	if err != nil {
		return nil, err
	}
	return &queries.RecurringPaymentView{
		ID:                      rp.ID(),
		ExternalPaymentID:       rp.ExternalPaymentID(),
		Status:                  string(rp.Status()),
		CurrentNumberOfPayments: rp.CurrentNumberOfPayments(),
		Payments:                rp.Payments(),
	}, nil
}

func (r *RecurringPaymentReadStore) scanRecurring(row pgx.Row) (*recurring.RecurringPayment, error) {
	var (
		id                uuid.UUID
		externalPaymentID string
		status            string
		count             int
		paymentsRaw       []byte
	)
	err := row.Scan(&id, &externalPaymentID, &status, &count, &paymentsRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("recurring payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recurring payment", err)
	}

	var payments []recurring.PaymentRecord
	if len(paymentsRaw) > 0 {
		if err := json.Unmarshal(paymentsRaw, &payments); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal payments", err)
		}
	}

	return recurring.Reconstruct(id, externalPaymentID, recurring.Status(status), payments, count), nil
}
