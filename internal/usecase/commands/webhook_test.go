//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"invopay/internal/domain/paymentdetails"
	"invopay/internal/domain/recurring"
	"invopay/internal/domain/request"
	"invopay/internal/domain/user"
	"invopay/internal/domain/webhook"
	"invopay/internal/infra"
	"invopay/internal/infra/db"
	"invopay/internal/pkg/clock"
	"invopay/internal/pkg/errs"
	"invopay/internal/usecase/commands"
	"invopay/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ================================================================================
// Fakes
// ================================================================================

type statusUpdate struct {
	requestID string
	status    request.Status
}

type fakeRequestRepo struct {
	updateRows int64
	updateErr  error
	createErr  error
	created    []*request.Request
	updates    []statusUpdate
}

func (f *fakeRequestRepo) Create(_ context.Context, _ db.DBTX, req *request.Request) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, req)
	return req.ID(), nil
}

func (f *fakeRequestRepo) UpdateStatusByRequestID(_ context.Context, _ db.DBTX, requestID string, status request.Status) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.updates = append(f.updates, statusUpdate{requestID: requestID, status: status})
	return f.updateRows, nil
}

type fakeRecurringRepo struct {
	saveErr error
	saved   []*recurring.RecurringPayment
}

func (f *fakeRecurringRepo) Save(_ context.Context, _ db.DBTX, rp *recurring.RecurringPayment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rp)
	return nil
}

type complianceUpdate struct {
	email      string
	compliance user.Compliance
}

type fakeUserRepo struct {
	rows    int64
	err     error
	updates []complianceUpdate
}

func (f *fakeUserRepo) UpdateComplianceByEmail(_ context.Context, _ db.DBTX, email string, compliance user.Compliance) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.updates = append(f.updates, complianceUpdate{email: email, compliance: compliance})
	return f.rows, nil
}

type payerStatusUpdate struct {
	externalID string
	status     paymentdetails.Status
}

type fakePaymentDetailsRepo struct {
	rows    int64
	err     error
	updates []payerStatusUpdate
}

func (f *fakePaymentDetailsRepo) Create(_ context.Context, _ db.DBTX, _ *paymentdetails.Payer, _ shared.EncryptedBankDetails) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakePaymentDetailsRepo) UpdateStatusUnlessApproved(_ context.Context, _ db.DBTX, externalPaymentDetailID string, status paymentdetails.Status) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.updates = append(f.updates, payerStatusUpdate{externalID: externalPaymentDetailID, status: status})
	return f.rows, nil
}

type fakeReads struct {
	snapshots map[string]*shared.RequestSnapshot
	recurring map[string]*recurring.RecurringPayment
	counts    map[uuid.UUID]int64
}

func (f *fakeReads) RequestByRequestID(_ context.Context, requestID string) (*shared.RequestSnapshot, error) {
	snap, ok := f.snapshots[requestID]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (f *fakeReads) RecurringPaymentForUpdate(_ context.Context, externalPaymentID string) (*recurring.RecurringPayment, error) {
	rp, ok := f.recurring[externalPaymentID]
	if !ok {
		return nil, infra.WrapRepoErr("recurring payment not found", nil, infra.KindNotFound)
	}
	return rp, nil
}

func (f *fakeReads) InvoiceCountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	return f.counts[userID], nil
}

type fakeTx struct {
	requests       *fakeRequestRepo
	recurringRepo  *fakeRecurringRepo
	users          *fakeUserRepo
	paymentDetails *fakePaymentDetailsRepo
	reads          *fakeReads
}

func (t *fakeTx) Requests() shared.RequestRepository                   { return t.requests }
func (t *fakeTx) RecurringPayments() shared.RecurringPaymentRepository { return t.recurringRepo }
func (t *fakeTx) Users() shared.UserRepository                         { return t.users }
func (t *fakeTx) PaymentDetails() shared.PaymentDetailsRepository      { return t.paymentDetails }
func (t *fakeTx) Reads() shared.CommandReads                           { return t.reads }
func (t *fakeTx) DB() db.DBTX                                          { return nil }

type fakeUoW struct {
	tx          *fakeTx
	withinCalls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

// ================================================================================
// Suite
// ================================================================================

type WebhookUseCaseTestSuite struct {
	suite.Suite
	uow   *fakeUoW
	clock *clock.MockClock
	uc    commands.WebhookCommands
}

func (s *WebhookUseCaseTestSuite) SetupTest() {
	s.uow = &fakeUoW{
		tx: &fakeTx{
			requests:       &fakeRequestRepo{updateRows: 1},
			recurringRepo:  &fakeRecurringRepo{},
			users:          &fakeUserRepo{rows: 1},
			paymentDetails: &fakePaymentDetailsRepo{rows: 1},
			reads: &fakeReads{
				snapshots: map[string]*shared.RequestSnapshot{},
				recurring: map[string]*recurring.RecurringPayment{},
				counts:    map[uuid.UUID]int64{},
			},
		},
	}
	s.clock = clock.NewMockClock(time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC))
	s.uc = commands.NewWebhookUseCase(s.uow, s.clock)
}

func TestWebhookUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WebhookUseCaseTestSuite))
}

// ================================================================================
// payment.confirmed
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestPaymentConfirmed() {
	s.Run("direct payment marks the request paid", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:     webhook.EventPaymentConfirmed,
			RequestID: "req-1",
		})

		s.NoError(err)
		s.Require().Len(s.uow.tx.requests.updates, 1)
		s.Equal(statusUpdate{requestID: "req-1", status: request.StatusPaid}, s.uow.tx.requests.updates[0])
	})

	s.Run("crypto-to-fiat payment marks the request crypto_paid", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:          webhook.EventPaymentConfirmed,
			RequestID:      "req-2",
			IsCryptoToFiat: true,
		})

		s.NoError(err)
		s.Require().Len(s.uow.tx.requests.updates, 1)
		s.Equal(request.StatusCryptoPaid, s.uow.tx.requests.updates[0].status)
	})

	s.Run("unknown request id returns not found", func() {
		s.SetupTest()
		s.uow.tx.requests.updateRows = 0

		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:     webhook.EventPaymentConfirmed,
			RequestID: "req-missing",
		})

		s.ErrorIs(err, errs.ErrRequestNotFound)
	})
}

func (s *WebhookUseCaseTestSuite) TestRecordRecurringPayment() {
	existing := recurring.PaymentRecord{
		Date:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		TxHash: "0xaaa",
	}
	newPayload := func() webhook.Payload {
		return webhook.Payload{
			Event:              webhook.EventPaymentConfirmed,
			RecurringPaymentID: "rp-1",
			TxHash:             "0xbbb",
			Timestamp:          time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			Explorer:           "https://scan.example/tx/0xbbb",
		}
	}
	seed := func() {
		s.uow.tx.reads.recurring["rp-1"] = recurring.Reconstruct(
			uuid.New(), "rp-1", recurring.StatusPaused,
			[]recurring.PaymentRecord{existing}, 1,
		)
	}

	s.Run("appends the payment and saves", func() {
		s.SetupTest()
		seed()

		err := s.uc.ProcessEvent(context.Background(), newPayload())

		s.NoError(err)
		s.Require().Len(s.uow.tx.recurringRepo.saved, 1)
		saved := s.uow.tx.recurringRepo.saved[0]
		s.Equal(recurring.StatusActive, saved.Status())
		s.Equal(2, saved.CurrentNumberOfPayments())
		s.Require().Len(saved.Payments(), 2)
		s.Equal(existing, saved.Payments()[0])
		s.Equal(recurring.PaymentRecord{
			Date:           time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			TxHash:         "0xbbb",
			RequestScanURL: "https://scan.example/tx/0xbbb",
		}, saved.Payments()[1])
	})

	s.Run("falls back to the current time when timestamp is absent", func() {
		s.SetupTest()
		seed()
		payload := newPayload()
		payload.Timestamp = time.Time{}

		err := s.uc.ProcessEvent(context.Background(), payload)

		s.NoError(err)
		s.Require().Len(s.uow.tx.recurringRepo.saved, 1)
		payments := s.uow.tx.recurringRepo.saved[0].Payments()
		s.Equal(s.clock.Now(), payments[len(payments)-1].Date)
	})

	s.Run("redelivered transaction hash is acknowledged without saving", func() {
		s.SetupTest()
		seed()
		payload := newPayload()
		payload.TxHash = existing.TxHash

		err := s.uc.ProcessEvent(context.Background(), payload)

		s.NoError(err)
		s.Empty(s.uow.tx.recurringRepo.saved)
	})

	s.Run("missing transaction hash is rejected before any transaction", func() {
		s.SetupTest()
		payload := newPayload()
		payload.TxHash = ""

		err := s.uc.ProcessEvent(context.Background(), payload)

		s.ErrorIs(err, errs.ErrMissingTransactionHash)
		s.Zero(s.uow.withinCalls)
	})

	s.Run("unknown recurring payment id returns not found", func() {
		s.SetupTest()

		err := s.uc.ProcessEvent(context.Background(), newPayload())

		s.ErrorIs(err, errs.ErrRecurringPaymentNotFound)
	})
}

// ================================================================================
// payment.processing
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestPaymentProcessing() {
	cases := []struct {
		subStatus webhook.SubStatus
		expected  request.Status
	}{
		{webhook.SubStatusInitiated, request.StatusOfframpInitiated},
		{webhook.SubStatusFailed, request.StatusOfframpFailed},
		{webhook.SubStatusBounced, request.StatusOfframpFailed},
		{webhook.SubStatusPendingInternalAssessment, request.StatusOfframpPending},
		{webhook.SubStatusOngoingChecks, request.StatusOfframpPending},
		{webhook.SubStatusSendingFiat, request.StatusOfframpPending},
		{webhook.SubStatusFiatSent, request.StatusPaid},
	}

	for _, tc := range cases {
		s.Run(string(tc.subStatus), func() {
			s.SetupTest()
			err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
				Event:     webhook.EventPaymentProcessing,
				RequestID: "req-1",
				SubStatus: tc.subStatus,
			})

			s.NoError(err)
			s.Require().Len(s.uow.tx.requests.updates, 1)
			s.Equal(tc.expected, s.uow.tx.requests.updates[0].status)
		})
	}

	s.Run("unknown subStatus is rejected without touching the request", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:     webhook.EventPaymentProcessing,
			RequestID: "req-1",
			SubStatus: "mystery_state",
		})

		s.ErrorIs(err, errs.ErrUnknownSubStatus)
		s.Empty(s.uow.tx.requests.updates)
	})
}

// Documents a known gap: status updates are last-write-wins, so an offramp
// progress event delivered after fiat_sent moves an already-paid request back
// to a pending state.
func (s *WebhookUseCaseTestSuite) TestOutOfOrderDeliveryOverwritesPaidStatus() {
	err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
		Event:     webhook.EventPaymentProcessing,
		RequestID: "req-1",
		SubStatus: webhook.SubStatusFiatSent,
	})
	s.NoError(err)

	err = s.uc.ProcessEvent(context.Background(), webhook.Payload{
		Event:     webhook.EventPaymentProcessing,
		RequestID: "req-1",
		SubStatus: webhook.SubStatusSendingFiat,
	})
	s.NoError(err)

	s.Require().Len(s.uow.tx.requests.updates, 2)
	s.Equal(request.StatusPaid, s.uow.tx.requests.updates[0].status)
	s.Equal(request.StatusOfframpPending, s.uow.tx.requests.updates[1].status)
}

// ================================================================================
// request.recurring
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestRegenerateInvoice() {
	userID := uuid.New()
	orig := &shared.RequestSnapshot{
		ID:            uuid.New(),
		RequestID:     "orig-1",
		UserID:        userID,
		InvoiceNumber: "INV-000003",
		PayeeAddress:  "0xpayee",
		PayerAddress:  "0xpayer",
		Amount:        "1500.00",
		Currency:      "USDC",
		Status:        request.StatusPaid.String(),
		IssuedDate:    time.Date(2024, 1, 10, 15, 4, 5, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
	}

	s.Run("creates the next invoice cloned from the original", func() {
		s.SetupTest()
		s.uow.tx.reads.snapshots["orig-1"] = orig
		s.uow.tx.reads.counts[userID] = 7

		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:             webhook.EventRequestRecurring,
			RequestID:         "req-new",
			OriginalRequestID: "orig-1",
			PaymentReference:  "payref-9",
		})

		s.NoError(err)
		s.Require().Len(s.uow.tx.requests.created, 1)
		created := s.uow.tx.requests.created[0]

		s.NotEqual(orig.ID, created.ID())
		want := shared.RequestSnapshot{
			ID:                created.ID(),
			RequestID:         "req-new",
			UserID:            userID,
			InvoiceNumber:     "INV-000008",
			PayeeAddress:      orig.PayeeAddress,
			PayerAddress:      orig.PayerAddress,
			Amount:            orig.Amount,
			Currency:          orig.Currency,
			Status:            request.StatusPending.String(),
			OriginalRequestID: "orig-1",
			PaymentReference:  "payref-9",
			IssuedDate:        time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			DueDate:           time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		}
		got := shared.RequestSnapshot{
			ID:                created.ID(),
			RequestID:         created.RequestID(),
			UserID:            created.UserID(),
			InvoiceNumber:     created.InvoiceNumber(),
			PayeeAddress:      created.PayeeAddress(),
			PayerAddress:      created.PayerAddress(),
			Amount:            created.Amount(),
			Currency:          created.Currency(),
			Status:            created.Status().String(),
			OriginalRequestID: created.OriginalRequestID(),
			PaymentReference:  created.PaymentReference(),
			IssuedDate:        created.IssuedDate(),
			DueDate:           created.DueDate(),
		}
		s.Empty(cmp.Diff(want, got))
	})

	s.Run("missing original request returns not found", func() {
		s.SetupTest()

		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:             webhook.EventRequestRecurring,
			RequestID:         "req-new",
			OriginalRequestID: "orig-missing",
		})

		s.ErrorIs(err, errs.ErrOriginalRequestNotFound)
		s.Empty(s.uow.tx.requests.created)
	})
}

// ================================================================================
// compliance.updated
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestComplianceUpdated() {
	payload := webhook.Payload{
		Event:           webhook.EventComplianceUpdated,
		ClientUserID:    "payer@example.com",
		IsCompliant:     true,
		KYCStatus:       "approved",
		AgreementStatus: "signed",
	}

	s.Run("updates the matched user", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), payload)

		s.NoError(err)
		s.Require().Len(s.uow.tx.users.updates, 1)
		s.Equal(complianceUpdate{
			email: "payer@example.com",
			compliance: user.Compliance{
				IsCompliant:     true,
				KYCStatus:       "approved",
				AgreementStatus: "signed",
			},
		}, s.uow.tx.users.updates[0])
	})

	s.Run("no matching user is still acknowledged", func() {
		s.SetupTest()
		s.uow.tx.users.rows = 0

		err := s.uc.ProcessEvent(context.Background(), payload)

		s.NoError(err)
	})
}

// ================================================================================
// payment_detail.updated
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestPaymentDetailUpdated() {
	s.Run("applies a valid status", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:            webhook.EventPaymentDetailUpdated,
			PaymentDetailsID: "pd-1",
			Status:           "approved",
		})

		s.NoError(err)
		s.Require().Len(s.uow.tx.paymentDetails.updates, 1)
		s.Equal(payerStatusUpdate{externalID: "pd-1", status: paymentdetails.StatusApproved}, s.uow.tx.paymentDetails.updates[0])
	})

	s.Run("invalid status is rejected before any transaction", func() {
		s.SetupTest()
		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:            webhook.EventPaymentDetailUpdated,
			PaymentDetailsID: "pd-1",
			Status:           "weird",
		})

		s.True(errors.Is(err, paymentdetails.ErrInvalidStatus))
		s.Zero(s.uow.withinCalls)
	})

	s.Run("no matching payer is still acknowledged", func() {
		s.SetupTest()
		s.uow.tx.paymentDetails.rows = 0

		err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
			Event:            webhook.EventPaymentDetailUpdated,
			PaymentDetailsID: "pd-unknown",
			Status:           "rejected",
		})

		s.NoError(err)
	})
}

// ================================================================================
// unknown events
// ================================================================================

func (s *WebhookUseCaseTestSuite) TestUnknownEventIsIgnored() {
	err := s.uc.ProcessEvent(context.Background(), webhook.Payload{
		Event:     "invoice.created",
		RequestID: "req-1",
	})

	s.NoError(err)
	s.Zero(s.uow.withinCalls)
}
