// Package dashboard implements the admin dashboard's view logic over the
// inquiry list: the 7-day visibility window for closed inquiries, the
// enquiry-type and date-range filters, and submission-time ordering. All
// predicates are evaluated against a caller-supplied clock so the view is
// always fresh relative to wall-clock time and fully testable.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
)

// Period selects a date-range preset applied against SubmittedAt.
type Period string

const (
	PeriodAll         Period = "all"
	PeriodToday       Period = "today"
	PeriodLastMonth   Period = "last_month"    // rolling 30 days
	PeriodLast6Months Period = "last_6_months" // rolling 180 days
	PeriodLastYear    Period = "last_year"     // rolling 365 days
	PeriodCustom      Period = "custom"
)

// SortOrder orders inquiries by submission time.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// TypeAll matches every enquiry type.
const TypeAll = "All"

// ParsePeriod validates a period query parameter.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodAll, PeriodToday, PeriodLastMonth, PeriodLast6Months, PeriodLastYear, PeriodCustom:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// ParseSortOrder validates a sort query parameter. Default is newest first.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAscending, SortDescending:
		return SortOrder(s), nil
	case "":
		return SortDescending, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Filter is the composed dashboard view: visibility window, type filter,
// date filter and sort. Predicates are independent; they are applied as
// visibility, then type, then date, then sort.
type Filter struct {
	EnquiryType   string // exact enquiry type, or "All"/"" for no filter
	Period        Period
	Start         time.Time // custom range start (date precision)
	End           time.Time // custom range end, inclusive (end of day)
	Sort          SortOrder
	IncludeHidden bool // bypass the closed-inquiry visibility window
	HideAfter     time.Duration
	Now           time.Time
}

// Apply returns the filtered and sorted view of the given inquiries.
// The input slice is not modified.
func (f Filter) Apply(inquiries []domain.Inquiry) []domain.Inquiry {
	out := make([]domain.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if !f.IncludeHidden && !inq.VisibleAt(f.Now, f.HideAfter) {
			continue
		}
		if !f.matchesType(inq.EnquiryType) {
			continue
		}
		if !f.matchesPeriod(inq.SubmittedAt) {
			continue
		}
		out = append(out, inq)
	}

	asc := f.Sort == SortAscending
	sort.SliceStable(out, func(a, b int) bool {
		if asc {
			return out[a].SubmittedAt.Before(out[b].SubmittedAt)
		}
		return out[a].SubmittedAt.After(out[b].SubmittedAt)
	})
	return out
}

func (f Filter) matchesType(enquiryType string) bool {
	if f.EnquiryType == "" || f.EnquiryType == TypeAll {
		return true
	}
	return f.EnquiryType == enquiryType
}

func (f Filter) matchesPeriod(submittedAt time.Time) bool {
	switch f.Period {
	case "", PeriodAll:
		return true
	case PeriodToday:
		y1, m1, d1 := f.Now.Date()
		y2, m2, d2 := submittedAt.In(f.Now.Location()).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodLastMonth:
		return !submittedAt.Before(f.Now.AddDate(0, 0, -30))
	case PeriodLast6Months:
		return !submittedAt.Before(f.Now.AddDate(0, 0, -180))
	case PeriodLastYear:
		return !submittedAt.Before(f.Now.AddDate(0, 0, -365))
	case PeriodCustom:
		start := startOfDay(f.Start)
		end := endOfDay(f.End)
		return !submittedAt.Before(start) && !submittedAt.After(end)
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay extends a date-precision endpoint to the last instant of that
// day so the custom range is inclusive of both endpoints.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FormatResolution renders a time-to-resolution duration as a days/hours/
// minutes breakdown, omitting zero components. Sub-minute durations
// render as "0 minutes".
func FormatResolution(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60

	out := ""
	if days > 0 {
		out += fmt.Sprintf("%d %s", days, plural(days, "day"))
	}
	if hours > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d %s", hours, plural(hours, "hour"))
	}
	if minutes > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d %s", minutes, plural(minutes, "minute"))
	}
	if out == "" {
		return "0 minutes"
	}
	return out
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
