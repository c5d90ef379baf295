// internal/httpserver/routes_game.go
//
// Game endpoints:
//   - GET /game/new              → a fresh round from a random language
//   - GET /game/hint?language=…  → ten more words from the same language
//
// Both are stateless: every response is computed from the catalog alone.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/langgame/internal/catalog"
)

// unknownLanguage is the exact body of a failed hint lookup.
const unknownLanguage = "Unknown language"

// gamePayload is returned by /game/new.
type gamePayload struct {
	Words        []string `json:"words"`
	Answer       string   `json:"answer"`
	ValidAnswers []string `json:"valid_answers"`
	LanguageCode string   `json:"language_code"` // echoed back on /game/hint
}

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/new", s.handleNewGame)
		r.Get("/hint", s.handleHint)
	})
}

// handleNewGame picks a random language and samples one round from it.
// An empty catalog means startup let something through it should not have.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.cat.Random()
	if !ok {
		hlog.FromRequest(r).Error().Msg("catalog is empty")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_languages"})
		return
	}
	writeJSON(w, http.StatusOK, gamePayload{
		Words:        catalog.Sample(lang.Words),
		Answer:       lang.Name,
		ValidAnswers: lang.ValidAnswers,
		LanguageCode: lang.Code,
	})
}

// handleHint samples another round for the language named by ?language=.
// Unknown codes are a normal client mistake (stale or edited code), so they
// get a 400 with a plain-text message.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.cat.Find(r.URL.Query().Get("language"))
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(unknownLanguage))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Sample(lang.Words))
}
