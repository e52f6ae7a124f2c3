package jobs

import (
	"fmt"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	menuPriceAuditJob *MenuPriceAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	hideOverpricedMenusHandler commands.HideOverpricedMenusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		menuPriceAuditJob: NewMenuPriceAuditJob(hideOverpricedMenusHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.menuPriceAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start menu price audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.menuPriceAuditJob.Stop()
}
