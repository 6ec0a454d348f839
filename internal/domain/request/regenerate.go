package request

import "time"

// NextIssueDates computes the dates for a regenerated recurring invoice.
// The new invoice is issued today at UTC midnight; the due date preserves the
// issue-to-due day offset of the original invoice. Both original dates are
// normalized to UTC midnight first so wall-clock time portions cannot skew
// the offset, which is floored and never negative.
func NextIssueDates(origIssued, origDue, now time.Time) (issued, due time.Time) {
	issued = MidnightUTC(now)

	offsetDays := int(MidnightUTC(origDue).Sub(MidnightUTC(origIssued)).Hours() / 24)
	if offsetDays < 0 {
		offsetDays = 0
	}

	due = issued.AddDate(0, 0, offsetDays)
	return issued, due
}

func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
