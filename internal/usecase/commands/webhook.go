package commands

import (
	"context"
	"log/slog"

	"invopay/internal/domain/paymentdetails"
	"invopay/internal/domain/recurring"
	"invopay/internal/domain/request"
	"invopay/internal/domain/user"
	"invopay/internal/domain/webhook"
	"invopay/internal/infra"
	"invopay/internal/pkg/clock"
	"invopay/internal/pkg/errs"
	"invopay/internal/pkg/invoiceno"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// WebhookCommands applies provider callback events to local state. Every
// handler is safe to re-invoke: the provider retries on non-2xx responses.
type WebhookCommands interface {
	ProcessEvent(ctx context.Context, payload webhook.Payload) error
}

type webhookUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWebhookUseCase(uow shared.UnitOfWork, clk clock.Clock) WebhookCommands {
	return &webhookUseCaseImpl{uow: uow, clock: clk}
}

func (uc *webhookUseCaseImpl) ProcessEvent(ctx context.Context, payload webhook.Payload) error {
	switch payload.Event {
	case webhook.EventPaymentConfirmed:
		if payload.RecurringPaymentID != "" {
			return uc.recordRecurringPayment(ctx, payload)
		}
		return uc.confirmPayment(ctx, payload)
	case webhook.EventPaymentProcessing:
		return uc.applyOfframpStatus(ctx, payload)
	case webhook.EventRequestRecurring:
		return uc.regenerateInvoice(ctx, payload)
	case webhook.EventComplianceUpdated:
		return uc.updateCompliance(ctx, payload)
	case webhook.EventPaymentDetailUpdated:
		return uc.updatePaymentDetail(ctx, payload)
	default:
		// Acknowledge so the provider does not retry events we never handle.
		slog.Info("ignoring unhandled webhook event", "event", payload.Event.String())
		return nil
	}
}

func (uc *webhookUseCaseImpl) recordRecurringPayment(ctx context.Context, payload webhook.Payload) error {
	if payload.TxHash == "" {
		return errs.ErrMissingTransactionHash
	}

	date := payload.Timestamp
	if date.IsZero() {
		date = uc.clock.Now()
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rp, err := tx.Reads().RecurringPaymentForUpdate(ctx, payload.RecurringPaymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(
					errs.Newf("recurring payment %s not found", payload.RecurringPaymentID),
					errs.ErrRecurringPaymentNotFound,
				)
			}
			return err
		}

		added, err := rp.RecordPayment(recurring.PaymentRecord{
			Date:           date,
			TxHash:         payload.TxHash,
			RequestScanURL: payload.Explorer,
		})
		if err != nil {
			return err
		}
		if !added {
			// Duplicate delivery; already recorded, nothing to do.
			slog.Info("skipping duplicate recurring payment",
				"external_payment_id", payload.RecurringPaymentID,
				"tx_hash", payload.TxHash)
			return nil
		}

		return tx.RecurringPayments().Save(ctx, tx.DB(), rp)
	})
}

func (uc *webhookUseCaseImpl) confirmPayment(ctx context.Context, payload webhook.Payload) error {
	status := request.StatusPaid
	if payload.IsCryptoToFiat {
		status = request.StatusCryptoPaid
	}
	return uc.updateRequestStatus(ctx, payload.RequestID, status)
}

func (uc *webhookUseCaseImpl) applyOfframpStatus(ctx context.Context, payload webhook.Payload) error {
	status, err := payload.SubStatus.RequestStatus()
	if err != nil {
		slog.Warn("unhandled offramp subStatus",
			"sub_status", string(payload.SubStatus),
			"request_id", payload.RequestID)
		return err
	}
	return uc.updateRequestStatus(ctx, payload.RequestID, status)
}

// Last write wins on request status: an out-of-order delivery can move a
// paid request back to an offramp state. Matches current provider-facing
// behavior; see the regression test documenting the gap.
func (uc *webhookUseCaseImpl) updateRequestStatus(ctx context.Context, requestID string, status request.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Requests().UpdateStatusByRequestID(ctx, tx.DB(), requestID, status)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errs.Mark(
				errs.Newf("request %s not found", requestID),
				errs.ErrRequestNotFound,
			)
		}
		return nil
	})
}

func (uc *webhookUseCaseImpl) regenerateInvoice(ctx context.Context, payload webhook.Payload) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		orig, err := tx.Reads().RequestByRequestID(ctx, payload.OriginalRequestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(
					errs.Newf("original request %s not found", payload.OriginalRequestID),
					errs.ErrOriginalRequestNotFound,
				)
			}
			return err
		}

		count, err := tx.Reads().InvoiceCountByUser(ctx, orig.UserID)
		if err != nil {
			return err
		}

		issued, due := request.NextIssueDates(orig.IssuedDate, orig.DueDate, uc.clock.Now())

		// Clone every field of the original, then override the ones that
		// belong to the new invoice instance.
		var params shared.RequestSnapshot
		if err := copier.Copy(&params, orig); err != nil {
			return errs.Wrap(err, "failed to clone original request")
		}
		params.ID = uuid.New()
		params.RequestID = payload.RequestID
		params.OriginalRequestID = payload.OriginalRequestID
		params.PaymentReference = payload.PaymentReference
		params.InvoiceNumber = invoiceno.Generate(int(count))
		params.Status = request.StatusPending.String()
		params.IssuedDate = issued
		params.DueDate = due

		next := request.Reconstruct(
			params.ID,
			params.RequestID,
			params.UserID,
			params.InvoiceNumber,
			params.PayeeAddress,
			params.PayerAddress,
			params.Amount,
			params.Currency,
			request.StatusPending,
			params.OriginalRequestID,
			params.PaymentReference,
			params.IssuedDate,
			params.DueDate,
			uc.clock.Now(),
		)

		_, err = tx.Requests().Create(ctx, tx.DB(), next)
		return err
	})
}

func (uc *webhookUseCaseImpl) updateCompliance(ctx context.Context, payload webhook.Payload) error {
	compliance := user.Compliance{
		IsCompliant:     payload.IsCompliant,
		KYCStatus:       payload.KYCStatus,
		AgreementStatus: payload.AgreementStatus,
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Users().UpdateComplianceByEmail(ctx, tx.DB(), payload.ClientUserID, compliance)
		if err != nil {
			return err
		}
		if rows == 0 {
			// The provider may know about users not yet created locally.
			slog.Warn("compliance update matched no user", "email", payload.ClientUserID)
		}
		return nil
	})
}

func (uc *webhookUseCaseImpl) updatePaymentDetail(ctx context.Context, payload webhook.Payload) error {
	status, err := paymentdetails.NewStatus(payload.Status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.PaymentDetails().UpdateStatusUnlessApproved(ctx, tx.DB(), payload.PaymentDetailsID, status)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Either no such payer locally or it is already approved.
			slog.Warn("payment detail update matched no payer",
				"external_payment_detail_id", payload.PaymentDetailsID,
				"status", string(status))
		}
		return nil
	})
}
