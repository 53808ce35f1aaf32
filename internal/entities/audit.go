package entities

import "time"

type AuditLevel string

const (
	AuditLevelInfo  AuditLevel = "INFO"
	AuditLevelError AuditLevel = "ERROR"
)

// AuditEvent records the outcome of a single request. The table is append-only
// from the application's point of view; only the retention job deletes rows.
type AuditEvent struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Message   string     `gorm:"size:200" json:"message"`
	Details   string     `gorm:"size:500" json:"details,omitempty"`
	Level     AuditLevel `gorm:"index;size:10" json:"level"`
	RequestID string     `gorm:"size:36" json:"request_id,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
