package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RequestSnapshot struct {
	ID                uuid.UUID
	RequestID         string
	UserID            uuid.UUID
	InvoiceNumber     string
	PayeeAddress      string
	PayerAddress      string
	Amount            string
	Currency          string
	Status            string
	OriginalRequestID string
	PaymentReference  string
	IssuedDate        time.Time
	DueDate           time.Time
}

// EncryptedBankDetails holds bank fields already passed through the
// bank-detail cipher; repositories never see plaintext account data.
type EncryptedBankDetails struct {
	AccountHolder string
	IBAN          string
	BIC           string
}
