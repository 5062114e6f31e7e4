package model

// Event is one inbound platform event, already reduced to the variants the
// conversation engine understands.
type Event interface {
	isEvent()
}

// StartCommand restarts the conversation, discarding any session.
type StartCommand struct{}

// TextMessage is a plain text message from the user.
type TextMessage struct {
	Text string
}

// CategorySelection is a decoded category button tap. MessageID is the
// message carrying the keyboard, so the prompt can be edited in place.
type CategorySelection struct {
	EntryType EntryType
	Category  string
	MessageID int
}

func (StartCommand) isEvent()      {}
func (TextMessage) isEvent()       {}
func (CategorySelection) isEvent() {}

// UserRef identifies the participant an event came from.
type UserRef struct {
	ID          int64
	ChatID      int64
	DisplayName string
}
