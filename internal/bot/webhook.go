package bot

import (
	"io"
	"net/http"
)

// Handler returns the HTTP surface: the webhook route guarded by the bot
// token and a liveness probe at the root. Any other path is a 404.
func (b *Bot) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/"+b.token, b.serveWebhook)
	mux.HandleFunc("/", b.serveIndex)
	return mux
}

func (b *Bot) serveWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		b.log.WithError(err).Warn("reading webhook body")
	} else if err := b.HandleWebhook(r.Context(), body); err != nil {
		// Downstream failures are logged only; the user-visible reply was
		// already produced by the engine, and a non-200 here would make
		// Telegram redeliver the same update.
		b.log.WithError(err).Error("handling update")
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (b *Bot) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte("Bot is running!"))
}
