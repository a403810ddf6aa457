package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/decks", s.handleListDecks)
	r.Get("/vocab/{deckID}", s.handleListWords)
	r.Post("/speak", s.handleSpeak)
	r.Post("/speak_number", s.handleSpeakNumber)
	r.Get("/number_to_thai/{number}", s.handleNumberToThai)
	r.Get("/progress", s.handleGetProgress)
	r.Post("/complete/{deckID}/{mode}", s.handleMarkComplete)
	r.Post("/reset/{deckID}", s.handleResetDeck)
	r.Get("/download_deck/{deckID}", s.handleDownloadDeck)

	return r
}
