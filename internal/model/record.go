package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the date format persisted to the ledger.
const TimestampLayout = "02.01.2006 15:04"

// Record is the completed, immutable transaction handed to the ledger sink.
type Record struct {
	ID          string
	DisplayName string
	EntryType   EntryType
	Category    string
	Comment     string
	Amount      float64
	CreatedAt   time.Time
}

// GenerateID fills ID with a fresh UUID if it is not set yet.
func (r *Record) GenerateID() {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
}

// CategoryLabel returns the title-cased category string for the ledger.
func (r Record) CategoryLabel() string {
	return TitleLabel(r.Category)
}

// Timestamp renders CreatedAt in the persisted ledger format.
func (r Record) Timestamp() string {
	return r.CreatedAt.Format(TimestampLayout)
}
