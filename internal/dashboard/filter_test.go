package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

const testHideAfter = 7 * 24 * time.Hour

func makeInquiry(id uint, enquiryType, status string, submittedAt time.Time) domain.Inquiry {
	return domain.Inquiry{
		ID:          id,
		EnquiryType: enquiryType,
		Status:      status,
		SubmittedAt: submittedAt,
	}
}

func ids(inquiries []domain.Inquiry) []uint {
	out := make([]uint, len(inquiries))
	for i, inq := range inquiries {
		out[i] = inq.ID
	}
	return out
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, p)

	p, err = ParsePeriod("last_6_months")
	require.NoError(t, err)
	assert.Equal(t, PeriodLast6Months, p)

	_, err = ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestParseSortOrder(t *testing.T) {
	s, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortDescending, s)

	s, err = ParseSortOrder("asc")
	require.NoError(t, err)
	assert.Equal(t, SortAscending, s)

	_, err = ParseSortOrder("newest")
	assert.Error(t, err)
}

func TestFilterVisibilityWindow(t *testing.T) {
	resolvedRecent := testNow.Add(-6 * 24 * time.Hour)
	resolvedOld := testNow.Add(-8 * 24 * time.Hour)

	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending, testNow.AddDate(0, -2, 0)),
		{ID: 2, EnquiryType: domain.EnquiryTypeQuery, Status: domain.StatusCompleted,
			SubmittedAt: testNow.AddDate(0, -2, 0), ResolvedAt: &resolvedRecent},
		{ID: 3, EnquiryType: domain.EnquiryTypeQuery, Status: domain.StatusCompleted,
			SubmittedAt: testNow.AddDate(0, -2, 0), ResolvedAt: &resolvedOld},
		makeInquiry(4, domain.EnquiryTypeDemo, domain.StatusDropped, testNow.Add(-8*24*time.Hour)),
	}

	f := Filter{HideAfter: testHideAfter, Now: testNow}
	assert.Equal(t, []uint{1, 2}, ids(f.Apply(inquiries)))

	// include_hidden bypasses the window entirely.
	f.IncludeHidden = true
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(f.Apply(inquiries)))
}

func TestFilterByType(t *testing.T) {
	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending, testNow.Add(-1*time.Hour)),
		makeInquiry(2, domain.EnquiryTypeDemo, domain.StatusPending, testNow.Add(-2*time.Hour)),
		makeInquiry(3, domain.EnquiryTypeRenewal, domain.StatusPending, testNow.Add(-3*time.Hour)),
	}

	f := Filter{EnquiryType: domain.EnquiryTypeDemo, HideAfter: testHideAfter, Now: testNow}
	assert.Equal(t, []uint{2}, ids(f.Apply(inquiries)))

	f.EnquiryType = TypeAll
	assert.Equal(t, []uint{1, 2, 3}, ids(f.Apply(inquiries)))

	f.EnquiryType = ""
	assert.Equal(t, []uint{1, 2, 3}, ids(f.Apply(inquiries)))
}

func TestFilterPeriodToday(t *testing.T) {
	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)),
		makeInquiry(2, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)),
	}

	// "today" is the calendar day, not a rolling 24 hours: an inquiry from
	// late yesterday is excluded even though it is only hours old.
	f := Filter{Period: PeriodToday, HideAfter: testHideAfter, Now: testNow}
	assert.Equal(t, []uint{1}, ids(f.Apply(inquiries)))
}

func TestFilterRollingPeriods(t *testing.T) {
	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending, testNow.AddDate(0, 0, -10)),
		makeInquiry(2, domain.EnquiryTypeQuery, domain.StatusPending, testNow.AddDate(0, 0, -45)),
		makeInquiry(3, domain.EnquiryTypeQuery, domain.StatusPending, testNow.AddDate(0, 0, -200)),
		makeInquiry(4, domain.EnquiryTypeQuery, domain.StatusPending, testNow.AddDate(0, 0, -400)),
	}

	f := Filter{Period: PeriodLastMonth, HideAfter: testHideAfter, Now: testNow}
	assert.Equal(t, []uint{1}, ids(f.Apply(inquiries)))

	f.Period = PeriodLast6Months
	assert.Equal(t, []uint{1, 2}, ids(f.Apply(inquiries)))

	f.Period = PeriodLastYear
	assert.Equal(t, []uint{1, 2, 3}, ids(f.Apply(inquiries)))

	f.Period = PeriodAll
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(f.Apply(inquiries)))
}

func TestFilterCustomRangeInclusiveEndpoints(t *testing.T) {
	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		makeInquiry(2, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)),
		makeInquiry(3, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2025, 2, 1, 0, 30, 0, 0, time.UTC)),
		makeInquiry(4, domain.EnquiryTypeQuery, domain.StatusPending,
			time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)),
	}

	f := Filter{
		Period:    PeriodCustom,
		Start:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Sort:      SortAscending,
		HideAfter: testHideAfter,
		Now:       testNow,
	}

	// The end date is inclusive through end of day: 31 Jan 23:00 is in,
	// 1 Feb 00:30 is out.
	assert.Equal(t, []uint{1, 2}, ids(f.Apply(inquiries)))
}

func TestFilterSortOrder(t *testing.T) {
	t1 := testNow.Add(-3 * time.Hour)
	t2 := testNow.Add(-2 * time.Hour)
	t3 := testNow.Add(-1 * time.Hour)

	inquiries := []domain.Inquiry{
		makeInquiry(2, domain.EnquiryTypeQuery, domain.StatusPending, t2),
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending, t1),
		makeInquiry(3, domain.EnquiryTypeQuery, domain.StatusPending, t3),
	}

	f := Filter{Sort: SortDescending, HideAfter: testHideAfter, Now: testNow}
	assert.Equal(t, []uint{3, 2, 1}, ids(f.Apply(inquiries)))

	f.Sort = SortAscending
	assert.Equal(t, []uint{1, 2, 3}, ids(f.Apply(inquiries)))
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	inquiries := []domain.Inquiry{
		makeInquiry(1, domain.EnquiryTypeQuery, domain.StatusPending, testNow.Add(-2*time.Hour)),
		makeInquiry(2, domain.EnquiryTypeQuery, domain.StatusPending, testNow.Add(-1*time.Hour)),
	}

	f := Filter{Sort: SortDescending, HideAfter: testHideAfter, Now: testNow}
	f.Apply(inquiries)
	assert.Equal(t, []uint{1, 2}, ids(inquiries))
}

func TestFormatResolution(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 minutes"},
		{30 * time.Second, "0 minutes"},
		{time.Minute, "1 minute"},
		{45 * time.Minute, "45 minutes"},
		{time.Hour, "1 hour"},
		{2*time.Hour + 5*time.Minute, "2 hours 5 minutes"},
		{24 * time.Hour, "1 day"},
		{49*time.Hour + 30*time.Minute, "2 days 1 hour 30 minutes"},
		{72 * time.Hour, "3 days"},
		{-time.Hour, "0 minutes"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatResolution(tc.d), "duration %s", tc.d)
	}
}
