//go:build unit

package webhook_test

import (
	"testing"

	"invopay/internal/domain/request"
	"invopay/internal/domain/webhook"
	"invopay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubStatusRequestStatus(t *testing.T) {
	tests := []struct {
		subStatus webhook.SubStatus
		want      request.Status
	}{
		{webhook.SubStatusInitiated, request.StatusOfframpInitiated},
		{webhook.SubStatusFailed, request.StatusOfframpFailed},
		{webhook.SubStatusBounced, request.StatusOfframpFailed},
		{webhook.SubStatusPendingInternalAssessment, request.StatusOfframpPending},
		{webhook.SubStatusOngoingChecks, request.StatusOfframpPending},
		{webhook.SubStatusSendingFiat, request.StatusOfframpPending},
		{webhook.SubStatusFiatSent, request.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(string(tt.subStatus), func(t *testing.T) {
			got, err := tt.subStatus.RequestStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown value is an error naming the value", func(t *testing.T) {
		_, err := webhook.SubStatus("settlement_queued").RequestStatus()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnknownSubStatus)
		assert.Contains(t, err.Error(), `"settlement_queued"`)
	})
}

func TestEventKnown(t *testing.T) {
	assert.True(t, webhook.EventPaymentConfirmed.Known())
	assert.True(t, webhook.EventRequestRecurring.Known())
	assert.False(t, webhook.Event("invoice.viewed").Known())
	assert.False(t, webhook.Event("").Known())
}
