package commands

import (
	"context"
	"time"

	"invopay/internal/domain/request"
	"invopay/internal/pkg/clock"
	"invopay/internal/pkg/invoiceno"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceCommands interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest, userID uuid.UUID) (*CreateInvoiceResult, error)
}

// CreateInvoiceRequest carries the provider-assigned request id: the
// dashboard registers the request with the payment provider first, then
// persists it here.
type CreateInvoiceRequest struct {
	RequestID    string
	PayeeAddress string
	PayerAddress string
	Amount       string
	Currency     string
	IssuedDate   time.Time
	DueDate      time.Time
}

type CreateInvoiceResult struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
}

type invoiceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *invoiceUseCaseImpl) CreateInvoice(ctx context.Context, req CreateInvoiceRequest, userID uuid.UUID) (*CreateInvoiceResult, error) {
	var result CreateInvoiceResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Reads().InvoiceCountByUser(ctx, userID)
		if err != nil {
			return err
		}

		number := invoiceno.Generate(int(count))
		entity, err := request.NewRequest(
			userID,
			req.RequestID,
			number,
			req.PayeeAddress,
			req.PayerAddress,
			req.Amount,
			req.Currency,
			req.IssuedDate,
			req.DueDate,
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}

		id, err := tx.Requests().Create(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}

		result = CreateInvoiceResult{InvoiceID: id, InvoiceNumber: number}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
