package response

import (
	"time"

	"invopay/internal/domain/recurring"
	"invopay/internal/usecase/queries"
)

type InvoiceResponse struct {
	ID                string    `json:"id"`
	RequestID         string    `json:"requestId"`
	InvoiceNumber     string    `json:"invoiceNumber"`
	PayeeAddress      string    `json:"payeeAddress"`
	PayerAddress      string    `json:"payerAddress"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	OriginalRequestID *string   `json:"originalRequestId,omitempty"`
	PaymentReference  *string   `json:"paymentReference,omitempty"`
	IssuedDate        time.Time `json:"issuedDate"`
	DueDate           time.Time `json:"dueDate"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromInvoiceView(view *queries.InvoiceView) InvoiceResponse {
	return InvoiceResponse{
		ID:                view.ID.String(),
		RequestID:         view.RequestID,
		InvoiceNumber:     view.InvoiceNumber,
		PayeeAddress:      view.PayeeAddress,
		PayerAddress:      view.PayerAddress,
		Amount:            view.Amount,
		Currency:          view.Currency,
		Status:            view.Status,
		OriginalRequestID: view.OriginalRequestID,
		PaymentReference:  view.PaymentReference,
		IssuedDate:        view.IssuedDate,
		DueDate:           view.DueDate,
		CreatedAt:         view.CreatedAt,
	}
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
}

func FromInvoiceList(list *queries.InvoiceListView) InvoiceListResponse {
	invoices := make([]InvoiceResponse, 0, len(list.Invoices))
	for i := range list.Invoices {
		invoices = append(invoices, FromInvoiceView(&list.Invoices[i]))
	}
	return InvoiceListResponse{Invoices: invoices, Total: list.Total}
}

type RecurringPaymentResponse struct {
	ID                      string                     `json:"id"`
	ExternalPaymentID       string                     `json:"externalPaymentId"`
	Status                  string                     `json:"status"`
	CurrentNumberOfPayments int                        `json:"currentNumberOfPayments"`
	Payments                []recurring.PaymentRecord  `json:"payments"`
}

func FromRecurringPaymentView(view *queries.RecurringPaymentView) RecurringPaymentResponse {
	return RecurringPaymentResponse{
		ID:                      view.ID.String(),
		ExternalPaymentID:       view.ExternalPaymentID,
		Status:                  view.Status,
		CurrentNumberOfPayments: view.CurrentNumberOfPayments,
		Payments:                view.Payments,
	}
}
