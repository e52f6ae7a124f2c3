package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MenuPriceAuditJob periodically sweeps the catalog and hides every displayed
// menu whose price exceeds the current derived total of its products. The
// product price-change cascade already hides affected menus synchronously;
// this job is the safety net that restores the invariant if any write path
// missed it.
type MenuPriceAuditJob struct {
	handler commands.HideOverpricedMenusCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMenuPriceAuditJob creates a new job for auditing menu prices.
// Uses HideOverpricedMenusCommandHandler to run the sweep every minute.
func NewMenuPriceAuditJob(handler commands.HideOverpricedMenusCommandHandler, logger *slog.Logger) *MenuPriceAuditJob {
	return &MenuPriceAuditJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "menu_price_audit_job"),
	}
}

// Start begins the menu price audit job to run every minute.
func (j *MenuPriceAuditJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewHideOverpricedMenusCommand()

		hidden, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Menu price audit job failed", "error", err)
			return
		}

		if hidden > 0 {
			j.logger.WarnContext(ctx, "Menu price audit hid overpriced menus", "count", hidden)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu price audit job started (running every minute)")
	return nil
}

// Stop stops the menu price audit job.
func (j *MenuPriceAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu price audit job stopped")
}
