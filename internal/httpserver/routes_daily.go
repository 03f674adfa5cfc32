// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily" mode.
//   - GET  /daily     → today's date key
//   - POST /daily/new → start a round whose target is the day's word
//
// A daily round is an ordinary round; the game token records mode=daily so
// /game/reset keeps drawing the day's word.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/fourword/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyInfo reports which date the daily word belongs to.
func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"date": daily.DateKey(time.Now())})
}

// handleDailyNew starts a round on today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, modeDaily)
}
