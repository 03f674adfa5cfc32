// internal/httpserver/routes_game.go
//
// HTTP routes for a single player's round.
//   - POST /game/new   → start a round, returns gameId + token
//   - POST /game/guess → submit a guess, returns marks + status
//   - POST /game/reset → start the next round under the same gameId
//   - GET  /game/{id}  → current status (target only once finished)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fourword/internal/game"
	"github.com/robalobadob/fourword/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Group(func(r chi.Router) {
		r.Use(s.requireGameToken())
		r.Post("/game/guess", s.handleGuess)
		r.Post("/game/reset", s.handleReset)
		r.Get("/game/{id}", s.handleState)
	})
}

// gameRes is returned whenever a round starts.
type gameRes struct {
	GameID            string      `json:"gameId"`
	Token             string      `json:"token"`
	Mode              string      `json:"mode"`
	WordLength        int         `json:"wordLength"`
	AttemptsRemaining int         `json:"attemptsRemaining"`
	Status            game.Status `json:"status"`
}

// stateRes is returned by GET /game/{id}.
type stateRes struct {
	GameID  string   `json:"gameId"`
	Guesses []string `json:"guesses"`
	game.Result
}

// handleNewGame creates a random-target round.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, modeRandom)
}

// startGame creates a round for mode, persists it and issues its token.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, mode string) {
	g := game.New(s.sampler(mode))
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Str("mode", mode).Msg("game started")
	log.Debug().Str("gameId", g.ID).Str("target", g.Target).Msg("target drawn")
	s.writeGame(w, g, mode)
}

// guessReq is the POST /game/guess payload.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess applies a guess and persists the new state.
//
// Errors:
//   - 400 invalid_guess_length: wrong number of letters, nothing changed.
//   - 409 no_attempts_remaining: round already over; call /game/reset.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if !s.ownsGame(r, req.GameID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.load(w, r, req.GameID)
	if !ok {
		return
	}
	res, err := g.Submit(req.Guess)
	switch {
	case errors.Is(err, game.ErrInvalidGuessLength):
		writeError(w, http.StatusBadRequest, "invalid_guess_length")
		return
	case errors.Is(err, game.ErrNoAttemptsRemaining):
		writeError(w, http.StatusConflict, "no_attempts_remaining")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if res.Status.Terminal() {
		log.Info().Str("gameId", g.ID).Str("status", string(res.Status)).
			Int("guesses", len(g.Guesses)).Msg("round finished")
	}
	writeJSON(w, http.StatusOK, res)
}

// resetReq is the POST /game/reset payload.
type resetReq struct {
	GameID string `json:"gameId"`
}

// handleReset draws a new target for an existing game id.
// Resetting mid-round is allowed; the front end decides when to offer it.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if !s.ownsGame(r, req.GameID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.load(w, r, req.GameID)
	if !ok {
		return
	}
	mode := claimsFrom(r.Context()).Mode
	g.Reset(s.sampler(mode))
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Str("target", g.Target).Msg("game reset")
	s.writeGame(w, g, mode)
}

// handleState returns the current round without changing it.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.ownsGame(r, id) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	g, ok := s.load(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateRes{GameID: g.ID, Guesses: g.Guesses, Result: g.View()})
}

// ------------------------------- helpers -----------------------------------

// sampler picks the target source for mode.
func (s *Server) sampler(mode string) game.Sampler {
	if mode == modeDaily {
		return s.daily
	}
	return s.bank
}

// ownsGame reports whether the request's token was issued for id.
func (s *Server) ownsGame(r *http.Request, id string) bool {
	c := claimsFrom(r.Context())
	return c != nil && id != "" && c.GameID == id
}

// load fetches a game, writing 404/500 itself on failure.
func (s *Server) load(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	g, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return g, true
}

// writeGame signs a fresh token for g, sets the cookie and writes gameRes.
func (s *Server) writeGame(w http.ResponseWriter, g *game.Game, mode string) {
	tok, exp, err := s.tokens.sign(g.ID, mode)
	if err != nil {
		log.Error().Err(err).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.tokens.setCookie(w, tok, exp)
	writeJSON(w, http.StatusOK, gameRes{
		GameID:            g.ID,
		Token:             tok,
		Mode:              mode,
		WordLength:        len(g.Target),
		AttemptsRemaining: g.AttemptsRemaining,
		Status:            g.Status,
	})
}
