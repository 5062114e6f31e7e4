// Package bot wires the Telegram transport to the conversation engine.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vosokin/ledgerbot/internal/engine"
)

// API is the slice of *tgbotapi.BotAPI the bot depends on.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot receives platform updates, reduces them to events and hands them to
// the engine.
type Bot struct {
	api    API
	engine *engine.Engine
	token  string
	log    *logrus.Logger
}

// New creates a Bot. token doubles as the webhook path secret.
func New(api API, eng *engine.Engine, token string, log *logrus.Logger) *Bot {
	return &Bot{
		api:    api,
		engine: eng,
		token:  token,
		log:    log,
	}
}

// Start runs the bot in long-polling mode and blocks until ctx is done.
// Each update is handled on its own goroutine; the engine's per-user locks
// keep one user's events serialized.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go func(update tgbotapi.Update) {
				if err := b.handleUpdate(ctx, update); err != nil {
					b.log.WithError(err).Error("handling update")
				}
			}(update)
		}
	}
}
