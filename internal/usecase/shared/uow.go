package shared

import (
	"context"

	"invopay/internal/domain/paymentdetails"
	"invopay/internal/domain/recurring"
	"invopay/internal/domain/request"
	"invopay/internal/domain/user"
	"invopay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Requests() RequestRepository
	RecurringPayments() RecurringPaymentRepository
	Users() UserRepository
	PaymentDetails() PaymentDetailsRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RequestByRequestID(ctx context.Context, requestID string) (*RequestSnapshot, error)
	// RecurringPaymentForUpdate locks the row so concurrent webhook deliveries
	// serialize on the payments-list append.
	RecurringPaymentForUpdate(ctx context.Context, externalPaymentID string) (*recurring.RecurringPayment, error)
	InvoiceCountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error)
	// UpdateStatusByRequestID returns the number of rows matched so callers
	// can distinguish an unknown request id from a successful update.
	UpdateStatusByRequestID(ctx context.Context, tx db.DBTX, requestID string, status request.Status) (int64, error)
}

type RecurringPaymentRepository interface {
	Save(ctx context.Context, tx db.DBTX, rp *recurring.RecurringPayment) error
}

type UserRepository interface {
	UpdateComplianceByEmail(ctx context.Context, tx db.DBTX, email string, compliance user.Compliance) (int64, error)
}

type PaymentDetailsRepository interface {
	Create(ctx context.Context, tx db.DBTX, payer *paymentdetails.Payer, bank EncryptedBankDetails) (uuid.UUID, error)
	// UpdateStatusUnlessApproved carries the downgrade guard in its predicate:
	// an approved payer is never modified, whatever the payload says.
	UpdateStatusUnlessApproved(ctx context.Context, tx db.DBTX, externalPaymentDetailID string, status paymentdetails.Status) (int64, error)
}
