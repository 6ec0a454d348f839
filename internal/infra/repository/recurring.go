package repository

import (
	"context"
	"encoding/json"

	"invopay/internal/domain/recurring"
	"invopay/internal/infra"
	"invopay/internal/infra/db"
)

type RecurringPaymentRepository struct{}

func NewRecurringPaymentRepository() *RecurringPaymentRepository {
	return &RecurringPaymentRepository{}
}

const saveRecurringPaymentSQL = `
UPDATE recurring_payments
SET status = $2,
    current_number_of_payments = $3,
    payments = $4,
    updated_at = now()
WHERE id = $1`

// Save persists the full payments list. Callers must hold the row lock from
// RecurringPaymentForUpdate so the read-append-write cycle is atomic.
func (r *RecurringPaymentRepository) Save(ctx context.Context, tx db.DBTX, rp *recurring.RecurringPayment) error {
	payments, err := json.Marshal(rp.Payments())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal payments", err)
	}

	tag, err := tx.Exec(ctx, saveRecurringPaymentSQL,
		rp.ID(),
		string(rp.Status()),
		rp.CurrentNumberOfPayments(),
		payments,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save recurring payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recurring payment not found", nil, infra.KindNotFound)
	}
	return nil
}
