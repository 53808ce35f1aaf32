// Package audit records request outcomes as a best-effort side channel.
// Correctness of a request never depends on the audit trail: writes happen in
// background goroutines and their failures are only printed, never returned.
package audit

import (
	"log"
	"time"

	auditdb "github.com/mrlokans/bookcatalog/internal/database/audit"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Service provides high-level audit logging over the audit repository.
type Service struct {
	repo *auditdb.Repository
}

func NewService(repo *auditdb.Repository) *Service {
	return &Service{repo: repo}
}

// Log records an audit event synchronously. Mostly useful in tests; handlers
// go through LogAsync.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background. Failures are printed to
// the process log and never reach the request path.
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogSuccess records a successful request outcome.
func (s *Service) LogSuccess(requestID, message, details string) {
	s.LogAsync(&entities.AuditEvent{
		Message:   message,
		Details:   truncate(details, 500),
		Level:     entities.AuditLevelInfo,
		RequestID: requestID,
	})
}

// LogFailure records a failed request outcome. A nil err is allowed for
// failures that carry no underlying error, such as validation rejections.
func (s *Service) LogFailure(requestID, message string, err error) {
	details := ""
	if err != nil {
		details = truncate(err.Error(), 500)
	}
	s.LogAsync(&entities.AuditEvent{
		Message:   message,
		Details:   details,
		Level:     entities.AuditLevelError,
		RequestID: requestID,
	})
}

// GetEvents retrieves paginated audit events, most recent first.
func (s *Service) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
