// Package webhook models the callback events sent by the payment provider.
// Event and SubStatus are closed enums: an unrecognized subStatus is an
// explicit error instead of silently falling into a default branch.
package webhook

import (
	"time"

	"invopay/internal/domain/request"
	"invopay/internal/pkg/errs"
)

type Event string

const (
	EventPaymentConfirmed     Event = "payment.confirmed"
	EventPaymentProcessing    Event = "payment.processing"
	EventRequestRecurring     Event = "request.recurring"
	EventComplianceUpdated    Event = "compliance.updated"
	EventPaymentDetailUpdated Event = "payment_detail.updated"
)

func (e Event) String() string {
	return string(e)
}

// Known reports whether the event is one this system reacts to. Unknown
// events are acknowledged as no-ops so the provider does not retry them.
func (e Event) Known() bool {
	switch e {
	case EventPaymentConfirmed, EventPaymentProcessing, EventRequestRecurring,
		EventComplianceUpdated, EventPaymentDetailUpdated:
		return true
	default:
		return false
	}
}

// SubStatus is the offramp progress reported with payment.processing events.
type SubStatus string

const (
	SubStatusInitiated                 SubStatus = "initiated"
	SubStatusFailed                    SubStatus = "failed"
	SubStatusBounced                   SubStatus = "bounced"
	SubStatusPendingInternalAssessment SubStatus = "pending_internal_assessment"
	SubStatusOngoingChecks             SubStatus = "ongoing_checks"
	SubStatusSendingFiat               SubStatus = "sending_fiat"
	SubStatusFiatSent                  SubStatus = "fiat_sent"
)

// RequestStatus maps an offramp subStatus to the resulting request status.
func (s SubStatus) RequestStatus() (request.Status, error) {
	switch s {
	case SubStatusInitiated:
		return request.StatusOfframpInitiated, nil
	case SubStatusFailed, SubStatusBounced:
		return request.StatusOfframpFailed, nil
	case SubStatusPendingInternalAssessment, SubStatusOngoingChecks, SubStatusSendingFiat:
		return request.StatusOfframpPending, nil
	case SubStatusFiatSent:
		return request.StatusPaid, nil
	default:
		return "", errs.Mark(errs.Newf("unknown subStatus %q", string(s)), errs.ErrUnknownSubStatus)
	}
}

// Payload is the parsed webhook body. Only the fields referenced by the
// handled events are modeled; everything else in the provider payload is
// ignored.
type Payload struct {
	Event             Event
	RequestID         string
	OriginalRequestID string
	IsCryptoToFiat    bool
	PaymentReference  string
	SubStatus         SubStatus
	TxHash            string
	Timestamp         time.Time
	Explorer          string

	RecurringPaymentID string

	ClientUserID    string
	IsCompliant     bool
	KYCStatus       string
	AgreementStatus string

	PaymentDetailsID string
	Status           string
}
