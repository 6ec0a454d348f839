package paymentdetails

import (
	"invopay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errs.New("invalid payment detail status")

// Status is the approval state of a payer's permission to use a bank account
// for crypto-to-fiat payouts. Approved is terminal: provider callbacks must
// never downgrade it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown payment detail status %q", s), ErrInvalidStatus)
	}
}

// Payer grants a specific payer permission to use a bank account for payouts.
type Payer struct {
	id                      uuid.UUID
	externalPaymentDetailID string
	status                  Status
}

func Reconstruct(id uuid.UUID, externalPaymentDetailID string, status Status) *Payer {
	return &Payer{
		id:                      id,
		externalPaymentDetailID: externalPaymentDetailID,
		status:                  status,
	}
}

func (p *Payer) ID() uuid.UUID                    { return p.id }
func (p *Payer) ExternalPaymentDetailID() string  { return p.externalPaymentDetailID }
func (p *Payer) Status() Status                   { return p.status }

// CanTransitionTo reports whether a provider-driven status change is allowed.
func (p *Payer) CanTransitionTo(next Status) bool {
	return p.status != StatusApproved
}
