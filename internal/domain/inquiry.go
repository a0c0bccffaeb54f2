package domain

import (
	"time"

	"gorm.io/gorm"
)

// Enquiry types. Set at creation, immutable afterwards.
const (
	EnquiryTypeQuery   = "Query"
	EnquiryTypeDemo    = "Demo"
	EnquiryTypeRenewal = "Renewal"
)

// Inquiry statuses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusSchedule   = "Schedule"
	StatusDropped    = "Dropped"
)

// Dispositions. Only meaningful while status is Dropped.
const (
	DispositionPrice       = "Dropped - Price"
	DispositionRequirement = "Dropped - Requirement Unmatched"
	DispositionDuplicate   = "Dropped - Duplicate"
	DispositionOther       = "Dropped - Other"
)

// Priority bands derived from inquiry age at read time.
const (
	PriorityHot    = "Hot"
	PriorityRecent = "Recent"
	PriorityCold   = "Cold"
	PriorityOld    = "Old"
)

// Inquiry represents a customer inquiry submitted through the website
// (product query, demo request or renewal). Status, disposition and
// assignment are mutated only through the dashboard update endpoint.
type Inquiry struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EnquiryType string     `gorm:"not null;index" json:"enquiry_type"`
	Name        string     `json:"name"`
	Phone       *string    `gorm:"index" json:"phone"`
	Email       *string    `gorm:"index" json:"email"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"not null;default:'Pending';index" json:"status"`
	Disposition *string    `json:"disposition"`
	AssignedTo  *string    `json:"assigned_to"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}

// BeforeCreate hook
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.SubmittedAt.IsZero() {
		i.SubmittedAt = time.Now()
	}
	if i.Status == "" {
		i.Status = StatusPending
	}
	return nil
}

// BeforeUpdate hook
func (i *Inquiry) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now()
	i.UpdatedAt = &now
	return nil
}

// ValidEnquiryType reports whether t is a known enquiry type.
func ValidEnquiryType(t string) bool {
	switch t {
	case EnquiryTypeQuery, EnquiryTypeDemo, EnquiryTypeRenewal:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known inquiry status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSchedule, StatusDropped:
		return true
	}
	return false
}

// ValidDisposition reports whether d is a known drop disposition.
func ValidDisposition(d string) bool {
	switch d {
	case DispositionPrice, DispositionRequirement, DispositionDuplicate, DispositionOther:
		return true
	}
	return false
}

// Priority classifies the inquiry by its age at the given instant.
// Never persisted; recomputed on every read.
func (i *Inquiry) Priority(now time.Time) string {
	age := now.Sub(i.SubmittedAt)
	switch {
	case age < 6*time.Hour:
		return PriorityHot
	case age < 12*time.Hour:
		return PriorityRecent
	case age < 24*time.Hour:
		return PriorityCold
	default:
		return PriorityOld
	}
}

// VisibleAt reports whether the inquiry belongs in the default dashboard
// view at the given instant. Closed inquiries age out after hideAfter:
// Completed ones relative to resolution, Dropped ones relative to
// submission. Rows are never deleted; this is display-only.
func (i *Inquiry) VisibleAt(now time.Time, hideAfter time.Duration) bool {
	switch i.Status {
	case StatusCompleted:
		if i.ResolvedAt != nil && now.Sub(*i.ResolvedAt) > hideAfter {
			return false
		}
	case StatusDropped:
		if now.Sub(i.SubmittedAt) > hideAfter {
			return false
		}
	}
	return true
}

// ResolutionTime returns how long the inquiry took to complete. The
// second return value is false unless the inquiry is Completed with a
// resolution timestamp.
func (i *Inquiry) ResolutionTime() (time.Duration, bool) {
	if i.Status != StatusCompleted || i.ResolvedAt == nil {
		return 0, false
	}
	return i.ResolvedAt.Sub(i.SubmittedAt), true
}
