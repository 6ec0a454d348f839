package recurring

import (
	"time"

	"invopay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyTxHash = errs.New("payment transaction hash must not be empty")

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

// PaymentRecord is one settled installment of a recurring payment.
type PaymentRecord struct {
	Date           time.Time `json:"date"`
	TxHash         string    `json:"txHash"`
	RequestScanURL string    `json:"requestScanUrl,omitempty"`
}

// RecurringPayment tracks a subscription/installment stream correlated to the
// provider's externalPaymentID. The payments list is append-only and the
// counter always equals its length.
type RecurringPayment struct {
	id                      uuid.UUID
	externalPaymentID       string
	status                  Status
	payments                []PaymentRecord
	currentNumberOfPayments int
}

func Reconstruct(id uuid.UUID, externalPaymentID string, status Status, payments []PaymentRecord, currentNumberOfPayments int) *RecurringPayment {
	return &RecurringPayment{
		id:                      id,
		externalPaymentID:       externalPaymentID,
		status:                  status,
		payments:                payments,
		currentNumberOfPayments: currentNumberOfPayments,
	}
}

func (rp *RecurringPayment) ID() uuid.UUID                { return rp.id }
func (rp *RecurringPayment) ExternalPaymentID() string    { return rp.externalPaymentID }
func (rp *RecurringPayment) Status() Status               { return rp.status }
func (rp *RecurringPayment) Payments() []PaymentRecord    { return rp.payments }
func (rp *RecurringPayment) CurrentNumberOfPayments() int { return rp.currentNumberOfPayments }

// RecordPayment appends a confirmed payment and marks the stream active.
// Returns false without mutating anything when the transaction hash is
// already recorded, so redelivered webhooks stay idempotent.
func (rp *RecurringPayment) RecordPayment(rec PaymentRecord) (bool, error) {
	if rec.TxHash == "" {
		return false, ErrEmptyTxHash
	}

	for _, p := range rp.payments {
		if p.TxHash == rec.TxHash {
			return false, nil
		}
	}

	rp.payments = append(rp.payments, rec)
	rp.currentNumberOfPayments = len(rp.payments)
	rp.status = StatusActive
	return true, nil
}
