// internal/httpserver/server.go
//
// HTTP server wiring for the game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/reset, GET /game/{id}.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Starting a game hands out a signed game token (JWT, claim "gid"); every
//     other game endpoint requires it, via Bearer header or cookie.
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fourword/internal/daily"
	"github.com/robalobadob/fourword/internal/store"
	"github.com/robalobadob/fourword/internal/words"
)

// Options configures tokens, cookies and CORS.
type Options struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
	ClientOrigin string
	DailySalt    string
}

// Server bundles router, game store and word bank.
type Server struct {
	r      *chi.Mux
	store  store.Store
	bank   *words.Bank
	daily  daily.Sampler
	tokens tokenIssuer
	origin string

	// mu serializes load → submit → save so two requests for one game
	// can't both spend the same attempt.
	mu sync.Mutex

	srv *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, bank *words.Bank, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.CookieName == "" {
		opts.CookieName = "fourword_game"
	}
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		bank:  bank,
		daily: daily.Sampler{Bank: bank, Salt: opts.DailySalt},
		tokens: tokenIssuer{
			secret: []byte(opts.JWTSecret),
			ttl:    opts.TokenTTL,
			cookie: opts.CookieName,
			secure: opts.CookieSecure,
		},
		origin: opts.ClientOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "fourword",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "POST /game/reset", "GET /game/{id}", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.bank.Len(), "wordLength": s.bank.WordLen()})
	})

	s.mountGame(s.r)
	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.origin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
