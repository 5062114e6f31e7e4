package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vosokin/ledgerbot/internal/engine"
	"github.com/vosokin/ledgerbot/internal/model"
)

// Transport sends engine prompts through the Telegram Bot API.
type Transport struct {
	api API
}

// NewTransport wraps the API client for the engine.
func NewTransport(api API) *Transport {
	return &Transport{api: api}
}

// SendPrompt sends text with the requested keyboard attached.
func (t *Transport) SendPrompt(_ context.Context, chatID int64, text string, kb engine.Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	switch kb {
	case engine.KeyboardEntryType:
		msg.ReplyMarkup = entryTypeKeyboard()
	case engine.KeyboardIncomeCategories:
		msg.ReplyMarkup = categoriesKeyboard(model.EntryTypeIncome)
	case engine.KeyboardExpenseCategories:
		msg.ReplyMarkup = categoriesKeyboard(model.EntryTypeExpense)
	}
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

// EditPrompt rewrites an earlier prompt in place, dropping its keyboard.
func (t *Transport) EditPrompt(_ context.Context, chatID int64, messageID int, text string) error {
	if _, err := t.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		return fmt.Errorf("editing message: %w", err)
	}
	return nil
}
