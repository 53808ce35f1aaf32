package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookcatalog/internal/audit"
)

// AuditCleanupScheduler periodically prunes audit events past the retention
// window. It is the only writer that ever deletes from the audit table.
type AuditCleanupScheduler struct {
	auditService *audit.Service
	schedule     string
	retention    time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewAuditCleanupScheduler(auditService *audit.Service, schedule string, retention time.Duration) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		auditService: auditService,
		schedule:     schedule,
		retention:    retention,
		cron:         cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. Retention <= 0 disables pruning entirely.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.retention <= 0 {
		log.Printf("Audit cleanup scheduler: disabled (no retention configured)")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runCleanup)
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Audit cleanup scheduler: started with schedule '%s', retention %v", s.schedule, s.retention)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Audit cleanup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunNow triggers an immediate cleanup pass.
func (s *AuditCleanupScheduler) RunNow() {
	go s.runCleanup()
}

func (s *AuditCleanupScheduler) runCleanup() {
	deleted, err := s.auditService.DeleteOldEvents(s.retention)
	if err != nil {
		log.Printf("Audit cleanup: failed to prune events: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Audit cleanup: pruned %d events older than %v", deleted, s.retention)
	}
}
