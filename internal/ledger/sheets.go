package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vosokin/ledgerbot/internal/model"
)

// SheetsSink appends records as rows of a Google Sheets worksheet.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSheetsSink authenticates with the given service-account JSON and
// targets one worksheet of one spreadsheet.
func NewSheetsSink(ctx context.Context, credentialsJSON []byte, spreadsheetID, worksheet string) (*SheetsSink, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return &SheetsSink{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// Append writes one row below the worksheet's existing data.
func (s *SheetsSink) Append(ctx context.Context, rec model.Record) error {
	values := &sheets.ValueRange{Values: [][]interface{}{row(rec)}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.worksheet, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending row: %w", err)
	}
	return nil
}
