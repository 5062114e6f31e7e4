package model

import "time"

// State identifies the step a conversation is waiting on.
type State string

const (
	StateAwaitingEntryType State = "awaiting_entry_type"
	StateAwaitingCategory  State = "awaiting_category"
	StateAwaitingComment   State = "awaiting_comment"
	StateAwaitingAmount    State = "awaiting_amount"
)

// UserSession is one user's in-progress conversation. Fields fill strictly
// in order (entry type, category, comment); the amount never lands here, a
// successful parse completes the record and the session is dropped.
type UserSession struct {
	UserID    int64
	State     State
	EntryType EntryType
	Category  string
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
