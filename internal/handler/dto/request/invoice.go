package request

import "time"

type CreateInvoiceRequest struct {
	RequestID    string    `json:"requestId" binding:"required"`
	PayeeAddress string    `json:"payeeAddress" binding:"required"`
	PayerAddress string    `json:"payerAddress" binding:"required"`
	Amount       string    `json:"amount" binding:"required"`
	Currency     string    `json:"currency" binding:"required"`
	IssuedDate   time.Time `json:"issuedDate" binding:"required"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
}

type SubmitPaymentDetailsRequest struct {
	ExternalPaymentDetailID string `json:"externalPaymentDetailId" binding:"required"`
	AccountHolder           string `json:"accountHolder" binding:"required"`
	IBAN                    string `json:"iban" binding:"required"`
	BIC                     string `json:"bic" binding:"required"`
}
