package queries

import (
	"time"

	"invopay/internal/domain/recurring"

	"github.com/google/uuid"
)

// Read models returned to the API layer.

type InvoiceView struct {
	ID                uuid.UUID
	RequestID         string
	UserID            uuid.UUID
	InvoiceNumber     string
	PayeeAddress      string
	PayerAddress      string
	Amount            string
	Currency          string
	Status            string
	OriginalRequestID *string
	PaymentReference  *string
	IssuedDate        time.Time
	DueDate           time.Time
	CreatedAt         time.Time
}

type InvoiceListView struct {
	Invoices []InvoiceView
	Total    int64
}

type RecurringPaymentView struct {
	ID                      uuid.UUID
	ExternalPaymentID       string
	Status                  string
	CurrentNumberOfPayments int
	Payments                []recurring.PaymentRecord
}
