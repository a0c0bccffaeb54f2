package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/config"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/dashboard"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/metrics"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/util"
)

const customDateLayout = "2006-01-02"

// InquiryService implements the inquiry service: public form intake plus
// the staff dashboard operations.
type InquiryService struct {
	db           *gorm.DB
	emailService *EmailService
	hideAfter    time.Duration
	roster       []string
	now          func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB, emailService *EmailService) *InquiryService {
	cfg := config.Get()
	return &InquiryService{
		db:           db,
		emailService: emailService,
		hideAfter:    time.Duration(cfg.Dashboard.HideAfterDays) * 24 * time.Hour,
		roster:       cfg.Roster.Employees,
		now:          time.Now,
	}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *InquiryService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	claims, err := util.ValidateToken(token)
	if err != nil {
		return nil, InquiryUnauthorized("invalid or expired token")
	}

	var user domain.User
	if err := s.db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, InquiryUnauthorized("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, InquiryUnauthorized("user account is inactive")
	}

	if schema != nil && len(schema.RequiredScopes) > 0 {
		hasScope := false
		for _, requiredScope := range schema.RequiredScopes {
			if requiredScope == "admin" && user.CanManageAccounts() {
				hasScope = true
				break
			}
			if requiredScope == "staff" && user.CanWorkInquiries() {
				hasScope = true
				break
			}
		}
		if !hasScope {
			return nil, InquiryUnauthorized("insufficient permissions")
		}
	}

	ctx = context.WithValue(ctx, "user", &user)
	return ctx, nil
}

// SubmitFeedback implements the feedback form submission method
func (s *InquiryService) SubmitFeedback(ctx context.Context, p *inquiry.SubmitFeedbackPayload) (*inquiry.Submitresult, error) {
	name := strings.TrimSpace(p.Name)
	log.Printf("[INQUIRY] SubmitFeedback request: type=%s, name=%s", p.EnquiryType, name)

	enquiryType := p.EnquiryType
	if enquiryType == "" {
		enquiryType = domain.EnquiryTypeQuery
	}
	if !domain.ValidEnquiryType(enquiryType) {
		log.Printf("[INQUIRY] SubmitFeedback failed: unknown enquiry type %q", enquiryType)
		return nil, inquiry.MakeBadRequest(fmt.Errorf("unknown enquiry type %q", enquiryType))
	}

	phone, email, err := s.validateContact(p.Phone, p.Email)
	if err != nil {
		log.Printf("[INQUIRY] SubmitFeedback failed: validation error: %v", err)
		return nil, inquiry.MakeBadRequest(err)
	}

	description := strings.TrimSpace(p.Description)
	if description == "" {
		return nil, InquiryBadRequest("description is required")
	}

	row := &domain.Inquiry{
		EnquiryType: enquiryType,
		Name:        name,
		Phone:       phone,
		Email:       email,
		Description: description,
		Status:      domain.StatusPending,
	}

	if err := s.db.Create(row).Error; err != nil {
		log.Printf("[INQUIRY] SubmitFeedback failed: database error: %v", err)
		return nil, InquiryUnavailable("failed to save inquiry")
	}

	log.Printf("[INQUIRY] SubmitFeedback successful: id=%d, type=%s", row.ID, row.EnquiryType)
	metrics.RecordInquirySubmission(row.EnquiryType)

	return &inquiry.Submitresult{
		ID:      int(row.ID),
		Message: "Thank you for reaching out! Our team will get back to you soon.",
	}, nil
}

// SubmitFreeTrial implements the free-trial form submission method. The
// request is stored as a Demo inquiry with the city and notes folded into
// the description.
func (s *InquiryService) SubmitFreeTrial(ctx context.Context, p *inquiry.SubmitFreeTrialPayload) (*inquiry.Submitresult, error) {
	log.Printf("[INQUIRY] SubmitFreeTrial request")

	phone, email, err := s.validateContact(p.Phone, p.Email)
	if err != nil {
		log.Printf("[INQUIRY] SubmitFreeTrial failed: validation error: %v", err)
		return nil, inquiry.MakeBadRequest(err)
	}

	name := ""
	if p.Name != nil {
		name = strings.TrimSpace(*p.Name)
	}

	description := "Free trial request"
	if p.City != nil && strings.TrimSpace(*p.City) != "" {
		description += fmt.Sprintf(" from %s", strings.TrimSpace(*p.City))
	}
	if p.Query != nil && strings.TrimSpace(*p.Query) != "" {
		description += fmt.Sprintf(": %s", strings.TrimSpace(*p.Query))
	}

	row := &domain.Inquiry{
		EnquiryType: domain.EnquiryTypeDemo,
		Name:        name,
		Phone:       phone,
		Email:       email,
		Description: description,
		Status:      domain.StatusPending,
	}

	if err := s.db.Create(row).Error; err != nil {
		log.Printf("[INQUIRY] SubmitFreeTrial failed: database error: %v", err)
		return nil, InquiryUnavailable("failed to save free-trial request")
	}

	log.Printf("[INQUIRY] SubmitFreeTrial successful: id=%d", row.ID)
	metrics.RecordInquirySubmission(row.EnquiryType)

	return &inquiry.Submitresult{
		ID:      int(row.ID),
		Message: "Your free trial request has been received. We'll contact you shortly.",
	}, nil
}

// List returns all inquiries, unfiltered and unpaginated. Ordering is not
// guaranteed; the dashboard method provides the filtered, sorted view.
func (s *InquiryService) List(ctx context.Context, p *inquiry.ListInquiriesPayload) ([]*inquiry.Inquiryresult, error) {
	log.Printf("[INQUIRY] List request")

	var rows []domain.Inquiry
	if err := s.db.Find(&rows).Error; err != nil {
		log.Printf("[INQUIRY] List failed: database error: %v", err)
		return nil, InquiryUnavailable("failed to fetch inquiries")
	}

	now := s.now()
	results := make([]*inquiry.Inquiryresult, len(rows))
	for i := range rows {
		results[i] = convertInquiryToResult(&rows[i], now)
	}

	log.Printf("[INQUIRY] List successful: returned %d inquiries", len(results))
	return results, nil
}

// Get implements the get inquiry method
func (s *InquiryService) Get(ctx context.Context, p *inquiry.GetInquiryPayload) (*inquiry.Inquiryresult, error) {
	log.Printf("[INQUIRY] Get request: id=%d", p.ID)

	var row domain.Inquiry
	if err := s.db.First(&row, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INQUIRY] Get failed: inquiry id=%d not found", p.ID)
			return nil, InquiryNotFound("inquiry not found")
		}
		log.Printf("[INQUIRY] Get failed: database error: %v", err)
		return nil, err
	}

	return convertInquiryToResult(&row, s.now()), nil
}

// Update implements the update inquiry method. The resolution timestamp is
// derived from the status transition: set when the inquiry moves to
// Completed, cleared when it moves anywhere else. A disposition is
// accepted only when the resulting status is Dropped.
func (s *InquiryService) Update(ctx context.Context, p *inquiry.UpdateInquiryPayload) (*inquiry.Inquiryresult, error) {
	log.Printf("[INQUIRY] Update request: id=%d", p.ID)

	var row domain.Inquiry
	if err := s.db.First(&row, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INQUIRY] Update failed: inquiry id=%d not found", p.ID)
			return nil, InquiryNotFound("inquiry not found")
		}
		log.Printf("[INQUIRY] Update failed: database error: %v", err)
		return nil, err
	}

	resultingStatus := row.Status
	if p.Status != nil {
		if !domain.ValidStatus(*p.Status) {
			return nil, inquiry.MakeBadRequest(fmt.Errorf("unknown status %q", *p.Status))
		}
		resultingStatus = *p.Status
	}

	// Disposition is only meaningful on a Dropped inquiry; the backend is
	// the source of truth for this invariant, not the form.
	if p.Disposition != nil && strings.TrimSpace(*p.Disposition) != "" {
		if resultingStatus != domain.StatusDropped {
			log.Printf("[INQUIRY] Update failed: disposition sent with status %q", resultingStatus)
			return nil, InquiryBadRequest("disposition can only be set on a Dropped inquiry")
		}
		if !domain.ValidDisposition(*p.Disposition) {
			return nil, inquiry.MakeBadRequest(fmt.Errorf("unknown disposition %q", *p.Disposition))
		}
		disposition := *p.Disposition
		row.Disposition = &disposition
	}

	if p.AssignedTo != nil {
		assignee := strings.TrimSpace(*p.AssignedTo)
		if assignee == "" {
			row.AssignedTo = nil
		} else {
			if !s.onRoster(assignee) {
				return nil, inquiry.MakeBadRequest(fmt.Errorf("unknown assignee %q", assignee))
			}
			row.AssignedTo = &assignee
		}
	}

	if p.Status != nil {
		row.Status = *p.Status
		if row.Status == domain.StatusCompleted {
			resolvedAt := s.now()
			if p.ResolvedAt != nil && strings.TrimSpace(*p.ResolvedAt) != "" {
				parsed, err := time.Parse(time.RFC3339, *p.ResolvedAt)
				if err != nil {
					return nil, inquiry.MakeBadRequest(fmt.Errorf("invalid resolved_at timestamp: %v", err))
				}
				resolvedAt = parsed
			}
			row.ResolvedAt = &resolvedAt
		} else {
			row.ResolvedAt = nil
		}
		if row.Status != domain.StatusDropped {
			row.Disposition = nil
		} else if row.Disposition == nil {
			return nil, InquiryBadRequest("disposition is required when dropping an inquiry")
		}
	}

	if err := s.db.Save(&row).Error; err != nil {
		log.Printf("[INQUIRY] Update failed: save error: %v", err)
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	log.Printf("[INQUIRY] Update successful: id=%d, status=%s", row.ID, row.Status)
	metrics.RecordInquiryUpdate(row.Status)
	return convertInquiryToResult(&row, s.now()), nil
}

// Dashboard returns the filtered, sorted dashboard view of the inquiry
// list. The filter order is visibility, type, date, then sort.
func (s *InquiryService) Dashboard(ctx context.Context, p *inquiry.DashboardPayload) ([]*inquiry.Inquiryresult, error) {
	log.Printf("[INQUIRY] Dashboard request: type=%s, period=%s, sort=%s", p.EnquiryType, p.Period, p.Sort)

	period, err := dashboard.ParsePeriod(p.Period)
	if err != nil {
		return nil, inquiry.MakeBadRequest(err)
	}
	sortOrder, err := dashboard.ParseSortOrder(p.Sort)
	if err != nil {
		return nil, inquiry.MakeBadRequest(err)
	}

	filter := dashboard.Filter{
		EnquiryType:   p.EnquiryType,
		Period:        period,
		Sort:          sortOrder,
		IncludeHidden: p.IncludeHidden,
		HideAfter:     s.hideAfter,
		Now:           s.now(),
	}

	if period == dashboard.PeriodCustom {
		if p.StartDate == nil || p.EndDate == nil {
			return nil, InquiryBadRequest("custom period requires start_date and end_date")
		}
		start, err := time.ParseInLocation(customDateLayout, *p.StartDate, filter.Now.Location())
		if err != nil {
			return nil, inquiry.MakeBadRequest(fmt.Errorf("invalid start_date: %v", err))
		}
		end, err := time.ParseInLocation(customDateLayout, *p.EndDate, filter.Now.Location())
		if err != nil {
			return nil, inquiry.MakeBadRequest(fmt.Errorf("invalid end_date: %v", err))
		}
		if end.Before(start) {
			return nil, inquiry.MakeBadRequest(fmt.Errorf("end_date precedes start_date"))
		}
		filter.Start = start
		filter.End = end
	}

	var rows []domain.Inquiry
	if err := s.db.Find(&rows).Error; err != nil {
		log.Printf("[INQUIRY] Dashboard failed: database error: %v", err)
		return nil, InquiryUnavailable("failed to fetch inquiries")
	}

	filtered := filter.Apply(rows)
	results := make([]*inquiry.Inquiryresult, len(filtered))
	for i := range filtered {
		results[i] = convertInquiryToResult(&filtered[i], filter.Now)
	}

	log.Printf("[INQUIRY] Dashboard successful: %d of %d inquiries shown", len(results), len(rows))
	return results, nil
}

// ScheduleMeeting sends a meeting confirmation email to the customer. It
// never mutates the inquiry row; a status change to Schedule is a
// separate update call from the dashboard.
func (s *InquiryService) ScheduleMeeting(ctx context.Context, p *inquiry.ScheduleMeetingPayload) (*inquiry.Messageresult, error) {
	log.Printf("[INQUIRY] ScheduleMeeting request: inquiry_id=%d, to=%s", p.InquiryID, p.To)

	var row domain.Inquiry
	if err := s.db.First(&row, p.InquiryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INQUIRY] ScheduleMeeting failed: inquiry id=%d not found", p.InquiryID)
			return nil, InquiryNotFound("inquiry not found")
		}
		log.Printf("[INQUIRY] ScheduleMeeting failed: database error: %v", err)
		return nil, err
	}

	customerName := row.Name
	if p.CustomerName != nil && strings.TrimSpace(*p.CustomerName) != "" {
		customerName = strings.TrimSpace(*p.CustomerName)
	}

	agenda := ""
	if p.ScheduleDesc != nil {
		agenda = strings.TrimSpace(*p.ScheduleDesc)
	}

	meeting := &MeetingInvite{
		InquiryID:    row.ID,
		CustomerName: customerName,
		ScheduleDate: p.ScheduleDate,
		Agenda:       agenda,
		ScheduledBy:  p.ScheduledBy,
	}

	if err := s.emailService.SendMeetingConfirmation(p.To, meeting); err != nil {
		log.Printf("[INQUIRY] ScheduleMeeting failed: email error: %v", err)
		metrics.RecordMeetingEmail(false)
		return nil, InquiryMailFailure("failed to send meeting confirmation email")
	}

	log.Printf("[INQUIRY] ScheduleMeeting successful: inquiry_id=%d, to=%s", row.ID, p.To)
	metrics.RecordMeetingEmail(true)
	return &inquiry.Messageresult{
		Message: "Meeting confirmation email sent.",
	}, nil
}

// validateContact trims and validates the contact fields. At least one of
// phone and email must be present.
func (s *InquiryService) validateContact(phonePtr, emailPtr *string) (*string, *string, error) {
	var phone, email *string

	if phonePtr != nil && strings.TrimSpace(*phonePtr) != "" {
		trimmed := strings.TrimSpace(*phonePtr)
		phoneRegex := regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
		if !phoneRegex.MatchString(trimmed) || len(trimmed) < 10 || len(trimmed) > 20 {
			return nil, nil, fmt.Errorf("invalid phone number format")
		}
		phone = &trimmed
	}

	if emailPtr != nil && strings.TrimSpace(*emailPtr) != "" {
		normalized := strings.ToLower(strings.TrimSpace(*emailPtr))
		emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
		if !emailRegex.MatchString(normalized) {
			return nil, nil, fmt.Errorf("invalid email address")
		}
		email = &normalized
	}

	if phone == nil && email == nil {
		return nil, nil, fmt.Errorf("a phone number or email address is required")
	}

	return phone, email, nil
}

func (s *InquiryService) onRoster(name string) bool {
	for _, employee := range s.roster {
		if employee == name {
			return true
		}
	}
	return false
}

func convertInquiryToResult(row *domain.Inquiry, now time.Time) *inquiry.Inquiryresult {
	result := &inquiry.Inquiryresult{
		ID:          int(row.ID),
		EnquiryType: row.EnquiryType,
		Status:      row.Status,
		Priority:    row.Priority(now),
		SubmittedAt: row.SubmittedAt.Format(time.RFC3339),
	}

	if row.Name != "" {
		result.Name = &row.Name
	}
	if row.Phone != nil {
		result.Phone = row.Phone
	}
	if row.Email != nil {
		result.Email = row.Email
	}
	if row.Description != "" {
		result.Description = &row.Description
	}
	if row.Disposition != nil {
		result.Disposition = row.Disposition
	}
	if row.AssignedTo != nil {
		result.AssignedTo = row.AssignedTo
	}
	if row.ResolvedAt != nil {
		resolvedAt := row.ResolvedAt.Format(time.RFC3339)
		result.ResolvedAt = &resolvedAt
	}
	if row.UpdatedAt != nil {
		updatedAt := row.UpdatedAt.Format(time.RFC3339)
		result.UpdatedAt = &updatedAt
	}
	if d, ok := row.ResolutionTime(); ok {
		formatted := dashboard.FormatResolution(d)
		result.ResolutionTime = &formatted
	}

	return result
}
