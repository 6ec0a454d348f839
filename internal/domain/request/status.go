package request

import "invopay/internal/pkg/errs"

// Status is the lifecycle state of a request (invoice). Crypto-to-fiat
// payouts pass through the offramp states before reaching paid.
type Status string

const (
	StatusPending          Status = "pending"
	StatusPaid             Status = "paid"
	StatusCryptoPaid       Status = "crypto_paid"
	StatusOfframpInitiated Status = "offramp_initiated"
	StatusOfframpPending   Status = "offramp_pending"
	StatusOfframpFailed    Status = "offramp_failed"
	StatusCanceled         Status = "canceled"
	StatusOverdue          Status = "overdue"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusCryptoPaid,
		StatusOfframpInitiated, StatusOfframpPending, StatusOfframpFailed,
		StatusCanceled, StatusOverdue:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown request status %q", s), errs.ErrInvalidRequestStatus)
	}
}

func (s Status) String() string {
	return string(s)
}
