//go:build unit

package recurring_test

import (
	"testing"
	"time"

	"invopay/internal/domain/recurring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment(t *testing.T) {
	date := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("appends and activates", func(t *testing.T) {
		rp := recurring.Reconstruct(uuid.New(), "ext-1", recurring.StatusPaused, nil, 0)

		added, err := rp.RecordPayment(recurring.PaymentRecord{Date: date, TxHash: "0xabc"})
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, recurring.StatusActive, rp.Status())
		assert.Equal(t, 1, rp.CurrentNumberOfPayments())
		assert.Len(t, rp.Payments(), 1)
	})

	t.Run("duplicate tx hash is a no-op", func(t *testing.T) {
		rp := recurring.Reconstruct(uuid.New(), "ext-1", recurring.StatusActive,
			[]recurring.PaymentRecord{{Date: date, TxHash: "0xabc"}}, 1)

		added, err := rp.RecordPayment(recurring.PaymentRecord{Date: date.Add(time.Hour), TxHash: "0xabc"})
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, rp.CurrentNumberOfPayments())
		assert.Len(t, rp.Payments(), 1)
	})

	t.Run("counter tracks list length", func(t *testing.T) {
		rp := recurring.Reconstruct(uuid.New(), "ext-1", recurring.StatusActive, nil, 0)

		for i, hash := range []string{"0x1", "0x2", "0x3"} {
			added, err := rp.RecordPayment(recurring.PaymentRecord{Date: date, TxHash: hash})
			require.NoError(t, err)
			assert.True(t, added)
			assert.Equal(t, i+1, rp.CurrentNumberOfPayments())
		}
		assert.Len(t, rp.Payments(), rp.CurrentNumberOfPayments())
	})

	t.Run("empty tx hash rejected", func(t *testing.T) {
		rp := recurring.Reconstruct(uuid.New(), "ext-1", recurring.StatusActive, nil, 0)

		_, err := rp.RecordPayment(recurring.PaymentRecord{Date: date})
		assert.ErrorIs(t, err, recurring.ErrEmptyTxHash)
	})
}
