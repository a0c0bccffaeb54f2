package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInquiryPriorityBands(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Minute, PriorityHot},
		{3 * time.Hour, PriorityHot},
		{6 * time.Hour, PriorityRecent},
		{8 * time.Hour, PriorityRecent},
		{12 * time.Hour, PriorityCold},
		{18 * time.Hour, PriorityCold},
		{24 * time.Hour, PriorityOld},
		{48 * time.Hour, PriorityOld},
	}

	for _, tc := range cases {
		inq := Inquiry{SubmittedAt: now.Add(-tc.age)}
		assert.Equal(t, tc.want, inq.Priority(now), "age %s", tc.age)
	}
}

func TestInquiryVisibleAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	hideAfter := 7 * 24 * time.Hour

	// Open inquiries never age out, no matter how old.
	old := Inquiry{Status: StatusPending, SubmittedAt: now.AddDate(0, -3, 0)}
	assert.True(t, old.VisibleAt(now, hideAfter))

	inProgress := Inquiry{Status: StatusInProgress, SubmittedAt: now.AddDate(0, -1, 0)}
	assert.True(t, inProgress.VisibleAt(now, hideAfter))

	// Completed inquiries age out relative to resolution time.
	resolvedRecently := now.Add(-6 * 24 * time.Hour)
	completed := Inquiry{
		Status:      StatusCompleted,
		SubmittedAt: now.AddDate(0, -2, 0),
		ResolvedAt:  &resolvedRecently,
	}
	assert.True(t, completed.VisibleAt(now, hideAfter))

	resolvedLongAgo := now.Add(-8 * 24 * time.Hour)
	completed.ResolvedAt = &resolvedLongAgo
	assert.False(t, completed.VisibleAt(now, hideAfter))

	// Dropped inquiries age out relative to submission time.
	dropped := Inquiry{Status: StatusDropped, SubmittedAt: now.Add(-6 * 24 * time.Hour)}
	assert.True(t, dropped.VisibleAt(now, hideAfter))

	dropped.SubmittedAt = now.Add(-8 * 24 * time.Hour)
	assert.False(t, dropped.VisibleAt(now, hideAfter))
}

func TestInquiryResolutionTime(t *testing.T) {
	submitted := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	resolved := submitted.Add(49*time.Hour + 30*time.Minute)

	inq := Inquiry{Status: StatusCompleted, SubmittedAt: submitted, ResolvedAt: &resolved}
	d, ok := inq.ResolutionTime()
	assert.True(t, ok)
	assert.Equal(t, 49*time.Hour+30*time.Minute, d)

	// Not completed: no resolution time even if a timestamp lingers.
	inq.Status = StatusPending
	_, ok = inq.ResolutionTime()
	assert.False(t, ok)

	inq.Status = StatusCompleted
	inq.ResolvedAt = nil
	_, ok = inq.ResolutionTime()
	assert.False(t, ok)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidEnquiryType(EnquiryTypeQuery))
	assert.True(t, ValidEnquiryType(EnquiryTypeDemo))
	assert.True(t, ValidEnquiryType(EnquiryTypeRenewal))
	assert.False(t, ValidEnquiryType("Purchase"))
	assert.False(t, ValidEnquiryType(""))

	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusSchedule))
	assert.False(t, ValidStatus("Closed"))

	assert.True(t, ValidDisposition(DispositionPrice))
	assert.True(t, ValidDisposition(DispositionOther))
	assert.False(t, ValidDisposition("Dropped"))
	assert.False(t, ValidDisposition(""))
}
