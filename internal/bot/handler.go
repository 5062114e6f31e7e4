package bot

import (
	"context"
	"encoding/json"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vosokin/ledgerbot/internal/model"
	"github.com/vosokin/ledgerbot/internal/parse"
)

// HandleWebhook decodes one webhook body and feeds it to the engine.
// Undecodable payloads are dropped; the platform must never see an error
// that would trigger a redelivery.
func (b *Bot) HandleWebhook(ctx context.Context, body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		b.log.WithError(err).Warn("dropping undecodable update")
		return nil
	}
	return b.handleUpdate(ctx, update)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return b.handleCallback(ctx, update.CallbackQuery)
	}
	if update.Message != nil {
		return b.handleMessage(ctx, update.Message)
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, m *tgbotapi.Message) error {
	if m.From == nil || m.Chat == nil {
		return nil
	}
	user := userRef(m.From, m.Chat.ID)

	if m.IsCommand() && m.Command() == "start" {
		return b.engine.HandleEvent(ctx, user, model.StartCommand{})
	}
	// Other commands fall through as plain text and are judged by the
	// step the conversation is on.
	return b.engine.HandleEvent(ctx, user, model.TextMessage{Text: m.Text})
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	// Answer first so the client spinner clears even for stale taps.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.WithError(err).Warn("answering callback query")
	}

	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}
	entryType, category, err := parse.CategorySelection(cb.Data)
	if err != nil {
		b.log.WithField("data", cb.Data).Debug("dropping malformed callback payload")
		return nil
	}

	user := userRef(cb.From, cb.Message.Chat.ID)
	return b.engine.HandleEvent(ctx, user, model.CategorySelection{
		EntryType: entryType,
		Category:  category,
		MessageID: cb.Message.MessageID,
	})
}

func userRef(u *tgbotapi.User, chatID int64) model.UserRef {
	name := u.UserName
	if name == "" {
		name = strconv.FormatInt(u.ID, 10)
	}
	return model.UserRef{ID: u.ID, ChatID: chatID, DisplayName: name}
}
