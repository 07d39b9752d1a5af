package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor consumes decoded webhook updates
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// Options configures the HTTP server
type Options struct {
	ListenAddr     string
	WebhookPath    string
	AllowedOrigins []string
}

// Server exposes the webhook endpoint and the liveness probe. The webhook
// always acknowledges with 200 so the platform never retries deliveries.
type Server struct {
	httpServer *http.Server
	bot        UpdateProcessor
	origins    map[string]bool
	logger     *zap.Logger
}

// New creates the HTTP server. The webhook path carries the bot token as
// its secret segment; requests to any other path never reach the bot.
func New(opts Options, bot UpdateProcessor, logger *zap.Logger) *Server {
	s := &Server{
		bot:     bot,
		origins: make(map[string]bool, len(opts.AllowedOrigins)),
		logger:  logger,
	}
	for _, origin := range opts.AllowedOrigins {
		s.origins[origin] = true
	}

	mux := http.NewServeMux()
	mux.HandleFunc(opts.WebhookPath, s.handleWebhook)
	mux.HandleFunc("/api/ping/check", s.handlePing)

	s.httpServer = &http.Server{
		Addr:    opts.ListenAddr,
		Handler: mux,
	}
	return s
}

// Handler returns the HTTP handler, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until Shutdown is called
func (s *Server) Run() error {
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleWebhook decodes a platform update and hands it to the bot. It
// answers 200 regardless of the processing outcome; failures are logged,
// never surfaced back to the platform.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Nothing past this point may take the webhook down: an unexpected
	// panic in an update handler is logged with its stack and the
	// request still acknowledges receipt.
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("update handling panicked",
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
		}
	}()

	var update tele.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Warn("malformed update payload", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	s.bot.ProcessUpdate(update)
	w.WriteHeader(http.StatusOK)
}

// handlePing is the liveness probe
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && s.origins[origin] {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	}
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]bool{"successfully": true}); err != nil {
		s.logger.Warn("failed to write ping response", zap.Error(err))
	}
}
