package domain

import "time"

// VisitorStat is the single-row persisted counter behind the site's
// visitor analytics. The live-connection count is held in memory by the
// analytics service; only the running total survives restarts.
type VisitorStat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TotalUsers int64     `gorm:"not null;default:0" json:"total_users"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for VisitorStat
func (VisitorStat) TableName() string {
	return "visitor_stats"
}
