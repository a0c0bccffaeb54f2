package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goa "goa.design/goa/v3/pkg"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/config"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Inquiry{}, &domain.VisitorStat{}))

	return db
}

func newTestInquiryService(t *testing.T) (*InquiryService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	emailSvc := NewEmailService(&config.EmailConfig{Enabled: false, TimeoutSeconds: 5})
	svc := &InquiryService{
		db:           db,
		emailService: emailSvc,
		hideAfter:    7 * 24 * time.Hour,
		roster:       []string{"Anas", "Rahul"},
		now:          func() time.Time { return fixedNow },
	}
	return svc, db
}

func seedInquiry(t *testing.T, db *gorm.DB, status string, submittedAt time.Time) *domain.Inquiry {
	t.Helper()

	phone := "9876543210"
	row := &domain.Inquiry{
		EnquiryType: domain.EnquiryTypeQuery,
		Name:        "Suresh Traders",
		Phone:       &phone,
		Description: "Need GST billing software",
		Status:      status,
		SubmittedAt: submittedAt,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func strPtr(s string) *string { return &s }

func assertGoaError(t *testing.T, err error, name string) {
	t.Helper()

	var serr *goa.ServiceError
	require.True(t, errors.As(err, &serr), "expected goa service error, got %v", err)
	assert.Equal(t, name, serr.GoaErrorName())
}

func TestSubmitFeedback(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()

	res, err := svc.SubmitFeedback(ctx, &inquiry.SubmitFeedbackPayload{
		EnquiryType: domain.EnquiryTypeRenewal,
		Name:        "Suresh Traders",
		Phone:       strPtr("98765 43210"),
		Description: "Renewal due next month",
	})
	require.NoError(t, err)
	assert.Greater(t, res.ID, 0)
	assert.NotEmpty(t, res.Message)

	var row domain.Inquiry
	require.NoError(t, db.First(&row, res.ID).Error)
	assert.Equal(t, domain.EnquiryTypeRenewal, row.EnquiryType)
	assert.Equal(t, domain.StatusPending, row.Status)
	assert.Nil(t, row.ResolvedAt)
	assert.Nil(t, row.Disposition)
	assert.False(t, row.SubmittedAt.IsZero())
}

func TestSubmitFeedbackDefaultsToQuery(t *testing.T) {
	svc, db := newTestInquiryService(t)

	res, err := svc.SubmitFeedback(context.Background(), &inquiry.SubmitFeedbackPayload{
		Name:        "Meena Stores",
		Email:       strPtr("Meena@Example.COM"),
		Description: "Pricing for the basic plan",
	})
	require.NoError(t, err)

	var row domain.Inquiry
	require.NoError(t, db.First(&row, res.ID).Error)
	assert.Equal(t, domain.EnquiryTypeQuery, row.EnquiryType)
	require.NotNil(t, row.Email)
	assert.Equal(t, "meena@example.com", *row.Email)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc, _ := newTestInquiryService(t)
	ctx := context.Background()

	// Neither phone nor email.
	_, err := svc.SubmitFeedback(ctx, &inquiry.SubmitFeedbackPayload{
		Name:        "Suresh Traders",
		Description: "Need billing software",
	})
	assertGoaError(t, err, "bad_request")

	// Malformed phone.
	_, err = svc.SubmitFeedback(ctx, &inquiry.SubmitFeedbackPayload{
		Name:        "Suresh Traders",
		Phone:       strPtr("not-a-number"),
		Description: "Need billing software",
	})
	assertGoaError(t, err, "bad_request")

	// Malformed email.
	_, err = svc.SubmitFeedback(ctx, &inquiry.SubmitFeedbackPayload{
		Name:        "Suresh Traders",
		Email:       strPtr("suresh@@example"),
		Description: "Need billing software",
	})
	assertGoaError(t, err, "bad_request")

	// Whitespace-only description.
	_, err = svc.SubmitFeedback(ctx, &inquiry.SubmitFeedbackPayload{
		Name:        "Suresh Traders",
		Phone:       strPtr("9876543210"),
		Description: "   ",
	})
	assertGoaError(t, err, "bad_request")
}

func TestSubmitFreeTrial(t *testing.T) {
	svc, db := newTestInquiryService(t)

	res, err := svc.SubmitFreeTrial(context.Background(), &inquiry.SubmitFreeTrialPayload{
		Name:  strPtr("Meena Stores"),
		Phone: strPtr("9876543210"),
		City:  strPtr("Jaipur"),
		Query: strPtr("Interested in inventory module"),
	})
	require.NoError(t, err)

	var row domain.Inquiry
	require.NoError(t, db.First(&row, res.ID).Error)
	assert.Equal(t, domain.EnquiryTypeDemo, row.EnquiryType)
	assert.Contains(t, row.Description, "Jaipur")
	assert.Contains(t, row.Description, "inventory module")
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestInquiryService(t)

	_, err := svc.Get(context.Background(), &inquiry.GetInquiryPayload{ID: 999})
	assertGoaError(t, err, "not_found")
}

func TestUpdateCompletionLifecycle(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-49*time.Hour-30*time.Minute))

	// Pending -> Completed stamps the resolution time from the clock.
	res, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:     int(row.ID),
		Status: strPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, res.Status)
	require.NotNil(t, res.ResolvedAt)
	assert.Equal(t, fixedNow.Format(time.RFC3339), *res.ResolvedAt)
	require.NotNil(t, res.ResolutionTime)
	assert.Equal(t, "2 days 1 hour 30 minutes", *res.ResolutionTime)

	var stored domain.Inquiry
	require.NoError(t, db.First(&stored, row.ID).Error)
	require.NotNil(t, stored.ResolvedAt)

	// Completed -> Pending clears it again.
	res, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:     int(row.ID),
		Status: strPtr(domain.StatusPending),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Nil(t, res.ResolvedAt)
	assert.Nil(t, res.ResolutionTime)
}

func TestUpdateExplicitResolvedAt(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusInProgress, fixedNow.Add(-72*time.Hour))

	resolvedAt := fixedNow.Add(-24 * time.Hour).Format(time.RFC3339)
	res, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:         int(row.ID),
		Status:     strPtr(domain.StatusCompleted),
		ResolvedAt: &resolvedAt,
	})
	require.NoError(t, err)
	require.NotNil(t, res.ResolvedAt)
	assert.Equal(t, resolvedAt, *res.ResolvedAt)

	// Garbage timestamp is rejected.
	_, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:         int(row.ID),
		Status:     strPtr(domain.StatusCompleted),
		ResolvedAt: strPtr("yesterday"),
	})
	assertGoaError(t, err, "bad_request")
}

func TestUpdateDropRequiresDisposition(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-2*time.Hour))

	_, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:     int(row.ID),
		Status: strPtr(domain.StatusDropped),
	})
	assertGoaError(t, err, "bad_request")

	res, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(row.ID),
		Status:      strPtr(domain.StatusDropped),
		Disposition: strPtr(domain.DispositionPrice),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDropped, res.Status)
	require.NotNil(t, res.Disposition)
	assert.Equal(t, domain.DispositionPrice, *res.Disposition)
}

func TestUpdateDispositionOnlyWhenDropped(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-2*time.Hour))

	// Disposition alongside a non-Dropped status.
	_, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(row.ID),
		Status:      strPtr(domain.StatusInProgress),
		Disposition: strPtr(domain.DispositionOther),
	})
	assertGoaError(t, err, "bad_request")

	// Disposition alone while the row is not Dropped.
	_, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(row.ID),
		Disposition: strPtr(domain.DispositionOther),
	})
	assertGoaError(t, err, "bad_request")

	// Unknown disposition value.
	_, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(row.ID),
		Status:      strPtr(domain.StatusDropped),
		Disposition: strPtr("Dropped - Changed Mind"),
	})
	assertGoaError(t, err, "bad_request")
}

func TestUpdateReopenClearsDisposition(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-2*time.Hour))

	_, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(row.ID),
		Status:      strPtr(domain.StatusDropped),
		Disposition: strPtr(domain.DispositionDuplicate),
	})
	require.NoError(t, err)

	res, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:     int(row.ID),
		Status: strPtr(domain.StatusInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, res.Status)
	assert.Nil(t, res.Disposition)

	var stored domain.Inquiry
	require.NoError(t, db.First(&stored, row.ID).Error)
	assert.Nil(t, stored.Disposition)
}

func TestUpdateAssignment(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-2*time.Hour))

	res, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:         int(row.ID),
		AssignedTo: strPtr("Rahul"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.AssignedTo)
	assert.Equal(t, "Rahul", *res.AssignedTo)

	_, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:         int(row.ID),
		AssignedTo: strPtr("Nobody"),
	})
	assertGoaError(t, err, "bad_request")

	// Empty string unassigns.
	res, err = svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:         int(row.ID),
		AssignedTo: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, res.AssignedTo)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestInquiryService(t)

	_, err := svc.Update(context.Background(), &inquiry.UpdateInquiryPayload{
		ID:     999,
		Status: strPtr(domain.StatusInProgress),
	})
	assertGoaError(t, err, "not_found")
}

func TestDashboardHidesAgedOutInquiries(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()

	open := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-2*time.Hour))

	dropped := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-8*24*time.Hour))
	_, err := svc.Update(ctx, &inquiry.UpdateInquiryPayload{
		ID:          int(dropped.ID),
		Status:      strPtr(domain.StatusDropped),
		Disposition: strPtr(domain.DispositionRequirement),
	})
	require.NoError(t, err)

	// The dashboard hides the 8-day-old dropped inquiry.
	results, err := svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "all",
		Sort:        "desc",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int(open.ID), results[0].ID)

	// include_hidden restores it.
	results, err = svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType:   "All",
		Period:        "all",
		Sort:          "desc",
		IncludeHidden: true,
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// The plain list is unfiltered; the row is never deleted.
	all, err := svc.List(ctx, &inquiry.ListInquiriesPayload{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDashboardSortAndPriority(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()

	oldest := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-30*time.Hour))
	middle := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-8*time.Hour))
	newest := seedInquiry(t, db, domain.StatusPending, fixedNow.Add(-1*time.Hour))

	results, err := svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "all",
		Sort:        "desc",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int(newest.ID), results[0].ID)
	assert.Equal(t, int(middle.ID), results[1].ID)
	assert.Equal(t, int(oldest.ID), results[2].ID)

	assert.Equal(t, domain.PriorityHot, results[0].Priority)
	assert.Equal(t, domain.PriorityRecent, results[1].Priority)
	assert.Equal(t, domain.PriorityOld, results[2].Priority)

	results, err = svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "all",
		Sort:        "asc",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int(oldest.ID), results[0].ID)
}

func TestDashboardCustomRangeValidation(t *testing.T) {
	svc, _ := newTestInquiryService(t)
	ctx := context.Background()

	// Custom period without dates.
	_, err := svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "custom",
		Sort:        "desc",
	})
	assertGoaError(t, err, "bad_request")

	// End before start.
	_, err = svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "custom",
		StartDate:   strPtr("2025-02-01"),
		EndDate:     strPtr("2025-01-01"),
		Sort:        "desc",
	})
	assertGoaError(t, err, "bad_request")

	// Unparseable date.
	_, err = svc.Dashboard(ctx, &inquiry.DashboardPayload{
		EnquiryType: "All",
		Period:      "custom",
		StartDate:   strPtr("01/01/2025"),
		EndDate:     strPtr("2025-02-01"),
		Sort:        "desc",
	})
	assertGoaError(t, err, "bad_request")
}

func TestScheduleMeetingDoesNotTouchInquiry(t *testing.T) {
	svc, db := newTestInquiryService(t)
	ctx := context.Background()
	row := seedInquiry(t, db, domain.StatusInProgress, fixedNow.Add(-2*time.Hour))

	res, err := svc.ScheduleMeeting(ctx, &inquiry.ScheduleMeetingPayload{
		InquiryID:    int(row.ID),
		To:           "suresh@example.com",
		ScheduleDate: "2025-03-14 11:00 AM",
		ScheduledBy:  "Anas",
		ScheduleDesc: strPtr("Demo of the billing module"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)

	// Scheduling only sends the email; the row is untouched. A status
	// change to Schedule is a separate update call.
	var stored domain.Inquiry
	require.NoError(t, db.First(&stored, row.ID).Error)
	assert.Equal(t, domain.StatusInProgress, stored.Status)
	assert.Nil(t, stored.UpdatedAt)
}

func TestScheduleMeetingNotFound(t *testing.T) {
	svc, _ := newTestInquiryService(t)

	_, err := svc.ScheduleMeeting(context.Background(), &inquiry.ScheduleMeetingPayload{
		InquiryID:    999,
		To:           "suresh@example.com",
		ScheduleDate: "2025-03-14 11:00 AM",
		ScheduledBy:  "Anas",
	})
	assertGoaError(t, err, "not_found")
}
