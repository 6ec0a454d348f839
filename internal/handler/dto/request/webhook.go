package request

import (
	"time"

	"invopay/internal/domain/webhook"
)

// WebhookPayload is the provider callback body. Field names follow the
// provider's wire format, not this codebase's conventions.
type WebhookPayload struct {
	Event             string     `json:"event"`
	RequestID         string     `json:"requestId"`
	OriginalRequestID string     `json:"originalRequestId"`
	IsCryptoToFiat    bool       `json:"isCryptoToFiat"`
	PaymentReference  string     `json:"paymentReference"`
	SubStatus         string     `json:"subStatus"`
	TxHash            string     `json:"txHash"`
	Timestamp         *time.Time `json:"timestamp"`
	Explorer          string     `json:"explorer"`

	RecurringPayment *struct {
		ID string `json:"id"`
	} `json:"recurringPayment"`

	ClientUserID    string `json:"clientUserId"`
	IsCompliant     bool   `json:"isCompliant"`
	KYCStatus       string `json:"kycStatus"`
	AgreementStatus string `json:"agreementStatus"`

	PaymentDetailsID string `json:"paymentDetailsId"`
	Status           string `json:"status"`
}

func (p WebhookPayload) ToDomain() webhook.Payload {
	payload := webhook.Payload{
		Event:             webhook.Event(p.Event),
		RequestID:         p.RequestID,
		OriginalRequestID: p.OriginalRequestID,
		IsCryptoToFiat:    p.IsCryptoToFiat,
		PaymentReference:  p.PaymentReference,
		SubStatus:         webhook.SubStatus(p.SubStatus),
		TxHash:            p.TxHash,
		Explorer:          p.Explorer,
		ClientUserID:      p.ClientUserID,
		IsCompliant:       p.IsCompliant,
		KYCStatus:         p.KYCStatus,
		AgreementStatus:   p.AgreementStatus,
		PaymentDetailsID:  p.PaymentDetailsID,
		Status:            p.Status,
	}
	if p.Timestamp != nil {
		payload.Timestamp = *p.Timestamp
	}
	if p.RecurringPayment != nil {
		payload.RecurringPaymentID = p.RecurringPayment.ID
	}
	return payload
}
