package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vosokin/ledgerbot/internal/bot"
	"github.com/vosokin/ledgerbot/internal/config"
	"github.com/vosokin/ledgerbot/internal/engine"
	"github.com/vosokin/ledgerbot/internal/ledger"
	"github.com/vosokin/ledgerbot/internal/logger"
	"github.com/vosokin/ledgerbot/internal/session"
)

const (
	sweepInterval = 10 * time.Minute
	sessionMaxAge = time.Hour
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	appLog := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := newSink(ctx, cfg)
	if err != nil {
		appLog.Fatalf("initializing ledger backend: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		appLog.Fatalf("creating bot api: %v", err)
	}

	store := session.NewStore()
	eng := engine.New(store, sink, bot.NewTransport(api), appLog, cfg.AppendTimeout)
	b := bot.New(api, eng, cfg.BotToken, appLog)

	go sweepSessions(ctx, store, appLog)

	if cfg.Mode == config.ModePolling {
		appLog.Info("bot started in polling mode")
		if err := b.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			appLog.Fatalf("polling stopped: %v", err)
		}
		return
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      b.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	appLog.Infof("bot listening on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.Fatalf("server stopped: %v", err)
	}
}

func newSink(ctx context.Context, cfg *config.Config) (engine.Sink, error) {
	switch cfg.LedgerBackend {
	case config.BackendSupabase:
		return ledger.NewSupabaseSink(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseTable)
	default:
		return ledger.NewSheetsSink(ctx, []byte(cfg.LedgerCredentials), cfg.SpreadsheetID, cfg.WorksheetName)
	}
}

func sweepSessions(ctx context.Context, store *session.Store, appLog *logrus.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(sessionMaxAge); n > 0 {
				appLog.Infof("evicted %d stale sessions", n)
			}
		}
	}
}
