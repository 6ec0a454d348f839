package request

import (
	"time"

	"invopay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRequestID     = errs.New("request id must not be empty")
	ErrEmptyInvoiceNumber = errs.New("invoice number must not be empty")
)

// Request is an invoice or bill tracked locally, correlated to the payment
// provider by requestID. Distinct from the HTTP request.
type Request struct {
	id                uuid.UUID
	requestID         string
	userID            uuid.UUID
	invoiceNumber     string
	payeeAddress      string
	payerAddress      string
	amount            string
	currency          string
	status            Status
	originalRequestID string
	paymentReference  string
	issuedDate        time.Time
	dueDate           time.Time
	createdAt         time.Time
}

func NewRequest(userID uuid.UUID, requestID, invoiceNumber, payeeAddress, payerAddress, amount, currency string, issuedDate, dueDate, now time.Time) (*Request, error) {
	if requestID == "" {
		return nil, ErrEmptyRequestID
	}
	if invoiceNumber == "" {
		return nil, ErrEmptyInvoiceNumber
	}

	return &Request{
		id:            uuid.New(),
		requestID:     requestID,
		userID:        userID,
		invoiceNumber: invoiceNumber,
		payeeAddress:  payeeAddress,
		payerAddress:  payerAddress,
		amount:        amount,
		currency:      currency,
		status:        StatusPending,
		issuedDate:    issuedDate,
		dueDate:       dueDate,
		createdAt:     now,
	}, nil
}

func Reconstruct(id uuid.UUID, requestID string, userID uuid.UUID, invoiceNumber, payeeAddress, payerAddress, amount, currency string, status Status, originalRequestID, paymentReference string, issuedDate, dueDate, createdAt time.Time) *Request {
	return &Request{
		id:                id,
		requestID:         requestID,
		userID:            userID,
		invoiceNumber:     invoiceNumber,
		payeeAddress:      payeeAddress,
		payerAddress:      payerAddress,
		amount:            amount,
		currency:          currency,
		status:            status,
		originalRequestID: originalRequestID,
		paymentReference:  paymentReference,
		issuedDate:        issuedDate,
		dueDate:           dueDate,
		createdAt:         createdAt,
	}
}

func (r *Request) ID() uuid.UUID             { return r.id }
func (r *Request) RequestID() string         { return r.requestID }
func (r *Request) UserID() uuid.UUID         { return r.userID }
func (r *Request) InvoiceNumber() string     { return r.invoiceNumber }
func (r *Request) PayeeAddress() string      { return r.payeeAddress }
func (r *Request) PayerAddress() string      { return r.payerAddress }
func (r *Request) Amount() string            { return r.amount }
func (r *Request) Currency() string          { return r.currency }
func (r *Request) Status() Status            { return r.status }
func (r *Request) OriginalRequestID() string { return r.originalRequestID }
func (r *Request) PaymentReference() string  { return r.paymentReference }
func (r *Request) IssuedDate() time.Time     { return r.issuedDate }
func (r *Request) DueDate() time.Time        { return r.dueDate }
func (r *Request) CreatedAt() time.Time      { return r.createdAt }
