// Package sheets mirrors recorded sales into a Google Sheets ledger when
// credentials are configured. The spreadsheet is a convenience copy; the
// key-value store stays the source of truth.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"farmtrack/internal/config"
	"farmtrack/internal/domain/models"
)

const (
	salesWriteRange = "Sales!A:H"
	dateFormat      = "2006-01-02"
)

// SaleLedger appends sale rows to an external spreadsheet.
type SaleLedger interface {
	AppendSale(ctx context.Context, sale models.Sale) error
}

// GoogleSheetLedger implements SaleLedger using the official Sheets API.
type GoogleSheetLedger struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetLedger builds a Sheets-backed ledger instance.
func NewGoogleSheetLedger(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetLedger{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSale writes one sale as a ledger row.
func (l *GoogleSheetLedger) AppendSale(ctx context.Context, sale models.Sale) error {
	row := []interface{}{
		sale.Date.Format(dateFormat),
		string(sale.ItemType),
		sale.ItemName,
		sale.Quantity,
		sale.Price,
		sale.Amount,
		sale.Buyer,
		string(sale.PaymentStatus),
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := l.service.Spreadsheets.Values.Append(l.spreadsheetID, salesWriteRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append sale row: %w", err)
	}

	l.logger.Debug("sale appended to ledger", zap.Int64("sale_id", sale.ID))
	return nil
}
