package ledger

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/vosokin/ledgerbot/internal/model"
)

// SupabaseSink inserts records into a Supabase table. Column labels match
// the sheet row schema; the record UUID becomes the primary key.
type SupabaseSink struct {
	client *supabase.Client
	table  string
}

// NewSupabaseSink connects to the project at url with the given API key.
func NewSupabaseSink(url, key, table string) (*SupabaseSink, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("creating supabase client: %w", err)
	}
	return &SupabaseSink{client: client, table: table}, nil
}

type supabaseRow struct {
	ID         string  `json:"id"`
	Who        string  `json:"who"`
	EntryType  string  `json:"entry_type"`
	Category   string  `json:"category"`
	Comment    string  `json:"comment"`
	Amount     float64 `json:"amount"`
	RecordedAt string  `json:"recorded_at"`
}

// Append inserts one row. The underlying client does not take a context,
// so cancellation cannot interrupt an in-flight insert.
func (s *SupabaseSink) Append(_ context.Context, rec model.Record) error {
	r := supabaseRow{
		ID:         rec.ID,
		Who:        rec.DisplayName,
		EntryType:  rec.EntryType.Label(),
		Category:   rec.CategoryLabel(),
		Comment:    rec.Comment,
		Amount:     rec.Amount,
		RecordedAt: rec.Timestamp(),
	}
	if _, _, err := s.client.From(s.table).Insert(r, false, "", "", "").Execute(); err != nil {
		return fmt.Errorf("inserting ledger row: %w", err)
	}
	return nil
}
