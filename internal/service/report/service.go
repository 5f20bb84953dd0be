package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/records"
	"farmtrack/internal/service/activity"
	"farmtrack/internal/service/aggregate"
)

// fallbackFarmName labels reports generated without an active session.
const fallbackFarmName = "Your Farm"

// Document is one generated report ready for delivery.
type Document struct {
	Kind     Kind
	Filename string
	Content  string
}

// Service snapshots the record store, runs the aggregator and renders report
// documents.
type Service struct {
	store    *records.Store
	activity *activity.Logger
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a report service instance.
func NewService(store *records.Store, activityLog *activity.Logger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, activity: activityLog, logger: logger, now: time.Now}
}

func (s *Service) snapshot() aggregate.Snapshot {
	return aggregate.Snapshot{
		Crops:     s.store.Crops(),
		Livestock: s.store.Livestock(),
		Sales:     s.store.Sales(),
	}
}

func (s *Service) farmName() string {
	if user, ok := s.store.CurrentUser(); ok && user.FarmName != "" {
		return user.FarmName
	}
	return fallbackFarmName
}

// Generate renders the report of the given kind over the current store state
// and records the generation in the activity log.
func (s *Service) Generate(ctx context.Context, kind Kind) (Document, error) {
	asOf := s.now()

	content, err := Format(kind, s.snapshot(), s.farmName(), asOf)
	if err != nil {
		return Document{}, err
	}

	s.activity.Record(ctx, models.ActivityReportGenerated, reportActivityDetail(kind))
	s.logger.Info("report generated", zap.String("kind", string(kind)))

	return Document{Kind: kind, Filename: kind.Filename(), Content: content}, nil
}

// ExportAll writes all four report documents into dir, creating it when
// missing. Used by the scheduler.
func (s *Service) ExportAll(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	for _, kind := range []Kind{KindSales, KindCrop, KindLivestock, KindFinancial} {
		doc, err := s.Generate(ctx, kind)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", doc.Filename, err)
		}
		s.logger.Debug("report exported", zap.String("path", path))
	}
	return nil
}

// FinancialSummary returns the headline figures used by the webhook notifier.
func (s *Service) FinancialSummary() (totalRevenue, inventoryValue float64, tier string) {
	snap := s.snapshot()
	totalRevenue = aggregate.SalesTotal(snap.Sales)
	inventoryValue = aggregate.InventoryValue(snap)
	return totalRevenue, inventoryValue, aggregate.BusinessHealthTier(totalRevenue)
}

func reportActivityDetail(kind Kind) string {
	switch kind {
	case KindSales:
		return "Generated sales performance report"
	case KindCrop:
		return "Generated crop analytics report"
	case KindLivestock:
		return "Generated livestock health report"
	case KindFinancial:
		return "Generated financial summary report"
	}
	return "Generated report"
}
