// Package engine turns inbound chat events into session transitions,
// outbound prompts and completed ledger records.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vosokin/ledgerbot/internal/model"
	"github.com/vosokin/ledgerbot/internal/parse"
	"github.com/vosokin/ledgerbot/internal/session"
)

// Sink appends completed records to the ledger backend.
type Sink interface {
	Append(ctx context.Context, rec model.Record) error
}

// Keyboard tells the transport which interactive choices accompany a prompt.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardEntryType
	KeyboardIncomeCategories
	KeyboardExpenseCategories
)

// Transport delivers prompts back to the user.
type Transport interface {
	SendPrompt(ctx context.Context, chatID int64, text string, kb Keyboard) error
	EditPrompt(ctx context.Context, chatID int64, messageID int, text string) error
}

const (
	promptEntryType   = "Выберите тип:"
	promptNext        = "Что дальше?"
	promptIncomeCat   = "Категория дохода:"
	promptExpenseCat  = "Категория расхода:"
	promptComment     = "Введите комментарий (например, 'Сигареты' или 'Зарплата январь'):"
	promptAmount      = "Введите сумму (число):"
	promptBadAmount   = "❌ Неверная сумма. Введите число."
	promptStartHint   = "Нажмите /start, чтобы добавить запись."
	promptSinkFailure = "❌ Не удалось сохранить запись. Отправьте сумму ещё раз."
)

// Engine is the per-user conversation state machine.
type Engine struct {
	store         *session.Store
	sink          Sink
	transport     Transport
	log           *logrus.Logger
	appendTimeout time.Duration
	now           func() time.Time
}

// New creates an engine. appendTimeout bounds the ledger append; zero or
// negative falls back to 10s.
func New(store *session.Store, sink Sink, transport Transport, log *logrus.Logger, appendTimeout time.Duration) *Engine {
	if appendTimeout <= 0 {
		appendTimeout = 10 * time.Second
	}
	return &Engine{
		store:         store,
		sink:          sink,
		transport:     transport,
		log:           log,
		appendTimeout: appendTimeout,
		now:           time.Now,
	}
}

// HandleEvent applies one inbound event for one user. Events for the same
// user are serialized; the per-user lock is held across the ledger append so
// two near-simultaneous taps cannot interleave mid-transition.
func (e *Engine) HandleEvent(ctx context.Context, user model.UserRef, ev model.Event) error {
	unlock := e.store.Lock(user.ID)
	defer unlock()

	switch ev := ev.(type) {
	case model.StartCommand:
		return e.restart(ctx, user)
	case model.CategorySelection:
		return e.handleSelection(ctx, user, ev)
	case model.TextMessage:
		return e.handleText(ctx, user, ev)
	}
	return nil
}

// restart unconditionally discards any session and opens a fresh one at the
// entry-type step.
func (e *Engine) restart(ctx context.Context, user model.UserRef) error {
	e.store.Delete(user.ID)
	e.store.Put(user.ID, model.UserSession{State: model.StateAwaitingEntryType})
	return e.transport.SendPrompt(ctx, user.ChatID, promptEntryType, KeyboardEntryType)
}

func (e *Engine) handleSelection(ctx context.Context, user model.UserRef, sel model.CategorySelection) error {
	sess, ok := e.store.Get(user.ID)
	if !ok {
		return e.transport.SendPrompt(ctx, user.ChatID, promptStartHint, KeyboardNone)
	}

	switch sess.State {
	case model.StateAwaitingEntryType, model.StateAwaitingCategory:
		// The compound token carries both fields, so a tap on an old
		// keyboard of the other type still yields a consistent pair.
		sess.EntryType = sel.EntryType
		sess.Category = sel.Category
		sess.State = model.StateAwaitingComment
		e.store.Put(user.ID, sess)
		e.log.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"category": sel.Category,
		}).Debug("category selected")
		text := fmt.Sprintf("Выбрано: %s %s\n\n%s",
			sel.EntryType.Label(), model.TitleLabel(sel.Category), promptComment)
		return e.transport.EditPrompt(ctx, user.ChatID, sel.MessageID, text)
	default:
		// Stale keyboard tap; repeat the step the session is actually on.
		return e.promptCurrent(ctx, user, sess)
	}
}

func (e *Engine) handleText(ctx context.Context, user model.UserRef, msg model.TextMessage) error {
	sess, ok := e.store.Get(user.ID)
	if !ok {
		return e.transport.SendPrompt(ctx, user.ChatID, promptStartHint, KeyboardNone)
	}

	switch sess.State {
	case model.StateAwaitingEntryType:
		entryType, ok := model.EntryTypeFromChoice(msg.Text)
		if !ok {
			return e.transport.SendPrompt(ctx, user.ChatID, promptEntryType, KeyboardEntryType)
		}
		sess.EntryType = entryType
		sess.State = model.StateAwaitingCategory
		e.store.Put(user.ID, sess)
		return e.promptCategories(ctx, user.ChatID, entryType)
	case model.StateAwaitingCategory:
		return e.promptCategories(ctx, user.ChatID, sess.EntryType)
	case model.StateAwaitingComment:
		// Any text is accepted as a comment, empty included.
		sess.Comment = msg.Text
		sess.State = model.StateAwaitingAmount
		e.store.Put(user.ID, sess)
		return e.transport.SendPrompt(ctx, user.ChatID, promptAmount, KeyboardNone)
	case model.StateAwaitingAmount:
		return e.completeRecord(ctx, user, sess, msg.Text)
	}
	return nil
}

// completeRecord parses the amount, appends the record and loops the
// conversation back to the entry-type step. A parse or append failure keeps
// the session in the amount step so the user can resubmit.
func (e *Engine) completeRecord(ctx context.Context, user model.UserRef, sess model.UserSession, raw string) error {
	amount, err := parse.Amount(raw)
	if err != nil {
		return e.transport.SendPrompt(ctx, user.ChatID, promptBadAmount, KeyboardNone)
	}

	rec := model.Record{
		DisplayName: user.DisplayName,
		EntryType:   sess.EntryType,
		Category:    sess.Category,
		Comment:     sess.Comment,
		Amount:      amount,
		CreatedAt:   e.now(),
	}
	rec.GenerateID()

	appendCtx, cancel := context.WithTimeout(ctx, e.appendTimeout)
	defer cancel()
	if err := e.sink.Append(appendCtx, rec); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"user_id":   user.ID,
			"record_id": rec.ID,
		}).Error("ledger append failed")
		if sendErr := e.transport.SendPrompt(ctx, user.ChatID, promptSinkFailure, KeyboardNone); sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return fmt.Errorf("appending record: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"record_id": rec.ID,
		"type":      rec.EntryType,
	}).Info("record appended")

	e.store.Delete(user.ID)
	e.store.Put(user.ID, model.UserSession{State: model.StateAwaitingEntryType})

	if err := e.transport.SendPrompt(ctx, user.ChatID, confirmationText(rec), KeyboardNone); err != nil {
		return err
	}
	return e.transport.SendPrompt(ctx, user.ChatID, promptNext, KeyboardEntryType)
}

// promptCurrent re-emits the prompt for whatever step the session is on.
func (e *Engine) promptCurrent(ctx context.Context, user model.UserRef, sess model.UserSession) error {
	switch sess.State {
	case model.StateAwaitingCategory:
		return e.promptCategories(ctx, user.ChatID, sess.EntryType)
	case model.StateAwaitingComment:
		return e.transport.SendPrompt(ctx, user.ChatID, promptComment, KeyboardNone)
	case model.StateAwaitingAmount:
		return e.transport.SendPrompt(ctx, user.ChatID, promptAmount, KeyboardNone)
	default:
		return e.transport.SendPrompt(ctx, user.ChatID, promptEntryType, KeyboardEntryType)
	}
}

func (e *Engine) promptCategories(ctx context.Context, chatID int64, t model.EntryType) error {
	if t == model.EntryTypeExpense {
		return e.transport.SendPrompt(ctx, chatID, promptExpenseCat, KeyboardExpenseCategories)
	}
	return e.transport.SendPrompt(ctx, chatID, promptIncomeCat, KeyboardIncomeCategories)
}

func confirmationText(rec model.Record) string {
	return fmt.Sprintf("✅ Запись добавлена!\nТип: %s\nКатегория: %s\nКомментарий: %s\nСумма: %s₽\nДата: %s",
		rec.EntryType.Label(),
		rec.CategoryLabel(),
		rec.Comment,
		strconv.FormatFloat(rec.Amount, 'f', -1, 64),
		rec.Timestamp(),
	)
}
