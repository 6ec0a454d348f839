//go:build unit

package request_test

import (
	"testing"
	"time"

	"invopay/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestNextIssueDates(t *testing.T) {
	now := time.Date(2026, 3, 15, 17, 42, 11, 0, time.UTC)

	tests := []struct {
		name       string
		origIssued time.Time
		origDue    time.Time
		wantIssued time.Time
		wantDue    time.Time
	}{
		{
			name:       "preserves seven day offset",
			origIssued: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			origDue:    time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
			wantIssued: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantDue:    time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "ignores wall-clock time portions",
			origIssued: time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC),
			origDue:    time.Date(2026, 1, 8, 0, 0, 1, 0, time.UTC),
			wantIssued: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantDue:    time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "same-day invoice keeps zero offset",
			origIssued: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			origDue:    time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC),
			wantIssued: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantDue:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "due before issue clamps to zero",
			origIssued: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			origDue:    time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
			wantIssued: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantDue:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "non-UTC originals normalize to UTC days",
			origIssued: time.Date(2026, 1, 1, 22, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
			origDue:    time.Date(2026, 1, 31, 22, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
			wantIssued: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantDue:    time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued, due := request.NextIssueDates(tt.origIssued, tt.origDue, now)
			assert.Equal(t, tt.wantIssued, issued)
			assert.Equal(t, tt.wantDue, due)
		})
	}
}
