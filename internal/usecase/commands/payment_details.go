package commands

import (
	"context"

	"invopay/internal/domain/paymentdetails"
	"invopay/internal/pkg/bankcrypt"
	"invopay/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentDetailsCommands interface {
	SubmitPaymentDetails(ctx context.Context, req SubmitPaymentDetailsRequest) (*SubmitPaymentDetailsResult, error)
}

type SubmitPaymentDetailsRequest struct {
	ExternalPaymentDetailID string
	AccountHolder           string
	IBAN                    string
	BIC                     string
}

type SubmitPaymentDetailsResult struct {
	PayerID uuid.UUID
}

type paymentDetailsUseCaseImpl struct {
	uow    shared.UnitOfWork
	cipher *bankcrypt.Cipher
}

func NewPaymentDetailsUseCase(uow shared.UnitOfWork, cipher *bankcrypt.Cipher) PaymentDetailsCommands {
	return &paymentDetailsUseCaseImpl{uow: uow, cipher: cipher}
}

// SubmitPaymentDetails stores a pending payer grant with bank fields
// encrypted at rest. Approval arrives later via payment_detail.updated.
func (uc *paymentDetailsUseCaseImpl) SubmitPaymentDetails(ctx context.Context, req SubmitPaymentDetailsRequest) (*SubmitPaymentDetailsResult, error) {
	holder, err := uc.cipher.Encrypt(req.AccountHolder)
	if err != nil {
		return nil, err
	}
	iban, err := uc.cipher.Encrypt(req.IBAN)
	if err != nil {
		return nil, err
	}
	bic, err := uc.cipher.Encrypt(req.BIC)
	if err != nil {
		return nil, err
	}

	payer := paymentdetails.Reconstruct(uuid.New(), req.ExternalPaymentDetailID, paymentdetails.StatusPending)
	bank := shared.EncryptedBankDetails{AccountHolder: holder, IBAN: iban, BIC: bic}

	var result SubmitPaymentDetailsResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.PaymentDetails().Create(ctx, tx.DB(), payer, bank)
		if err != nil {
			return err
		}
		result.PayerID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
