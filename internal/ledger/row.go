// Package ledger persists completed records to the configured backend.
package ledger

import "github.com/vosokin/ledgerbot/internal/model"

// row renders a record in the persisted column order. The order and the
// title-cased labels are consumed downstream and must not change.
func row(rec model.Record) []interface{} {
	return []interface{}{
		rec.DisplayName,
		rec.EntryType.Label(),
		rec.CategoryLabel(),
		rec.Comment,
		rec.Amount,
		rec.Timestamp(),
	}
}
