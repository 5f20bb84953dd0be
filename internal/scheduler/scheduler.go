// Package scheduler periodically exports the four report documents and
// optionally notifies a webhook with the headline figures.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"farmtrack/internal/config"
	"farmtrack/internal/service/report"
	"farmtrack/pkg/clients/notify"
)

// Scheduler manages the scheduled report export.
type Scheduler struct {
	cron     *cron.Cron
	reports  *report.Service
	notifier notify.Client // nil when no webhook is configured
	cfg      config.ReportingConfig
	farmName func() string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. farmName is evaluated at
// export time so the notification follows the active session.
func NewScheduler(cfg config.ReportingConfig, reports *report.Service, notifier notify.Client, farmName func() string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		reports:  reports,
		notifier: notifier,
		cfg:      cfg,
		farmName: farmName,
		logger:   logger,
	}
}

// Start registers the export job and starts the cron loop. A blank schedule
// leaves the scheduler idle.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("report scheduling disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.exportReports); err != nil {
		s.logger.Error("failed to schedule report export", zap.Error(err))
		return
	}

	s.logger.Info("report export scheduled", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) exportReports() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.logger.Info("exporting scheduled reports", zap.String("dir", s.cfg.OutputDir))

	if err := s.reports.ExportAll(ctx, s.cfg.OutputDir); err != nil {
		s.logger.Error("failed to export reports", zap.Error(err))
		return
	}

	if s.notifier == nil {
		return
	}

	totalRevenue, inventoryValue, tier := s.reports.FinancialSummary()
	summary := notify.Summary{
		FarmName:       s.farmName(),
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalRevenue:   totalRevenue,
		InventoryValue: inventoryValue,
		BusinessHealth: tier,
	}

	if err := s.notifier.SendSummary(ctx, summary); err != nil {
		s.logger.Error("failed to send report summary", zap.Error(err))
	}
}
