// Package activity implements the audit logger: every user-visible mutation
// is appended to the activity log with a timestamp and a free-text detail.
package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/records"
)

// Logger records audit entries into the record store.
type Logger struct {
	store  *records.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewLogger wires an activity logger over the record store.
func NewLogger(store *records.Store, logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{store: store, logger: logger, now: time.Now}
}

// Record appends one audit entry. Failures are logged and swallowed: a lost
// audit entry never fails the mutation it describes.
func (l *Logger) Record(ctx context.Context, kind models.ActivityType, details string) {
	entry := models.ActivityEntry{
		Timestamp: l.now(),
		Type:      kind,
		Details:   details,
	}
	if err := l.store.AppendActivity(ctx, entry); err != nil {
		l.logger.Error("failed to record activity",
			zap.String("type", string(kind)),
			zap.Error(err))
		return
	}
	l.logger.Debug("activity recorded", zap.String("type", string(kind)), zap.String("details", details))
}

// Recent returns the last n entries in reverse-chronological order, skipping
// the reserved system category.
func (l *Logger) Recent(n int) []models.ActivityEntry {
	all := l.store.Activities()

	visible := make([]models.ActivityEntry, 0, len(all))
	for _, entry := range all {
		if entry.Type == models.ActivitySystem {
			continue
		}
		visible = append(visible, entry)
	}

	if n > len(visible) {
		n = len(visible)
	}

	out := make([]models.ActivityEntry, 0, n)
	for i := len(visible) - 1; i >= len(visible)-n; i-- {
		out = append(out, visible[i])
	}
	return out
}
