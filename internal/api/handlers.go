package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thaivocab/thaivocab/internal/deck"
	"github.com/thaivocab/thaivocab/internal/errors"
	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/services"
	"github.com/thaivocab/thaivocab/internal/thainum"
)

// Default speaking rates when a request leaves rate unset.
const (
	defaultSpeakRate  = 0.9
	defaultNumberRate = 0.85
)

type Server struct {
	Decks    *deck.Registry
	Progress services.ProgressService
	Audio    services.AudioService
	Speech   services.SpeechService
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeAudio responds with MP3 bytes. A zero-length body is the deliberate
// degraded response for unavailable audio, never an error.
func writeAudio(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Decks.Summaries())
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")

	// An unknown deck yields an empty list rather than a 404; the deck
	// listing is the authoritative index.
	words := []models.Word{}
	if d := s.Decks.Get(deckID); d != nil {
		words = d.Words
	}
	writeJSON(w, http.StatusOK, words)
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string  `json:"text"`
		Rate float64 `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
		return
	}
	if req.Rate == 0 {
		req.Rate = defaultSpeakRate
	}

	writeAudio(w, s.Speech.SpeakText(r.Context(), req.Text, req.Rate))
}

func (s *Server) handleSpeakNumber(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req struct {
		Number json.Number `json:"number"`
		Rate   float64     `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
		return
	}
	if req.Rate == 0 {
		req.Rate = defaultNumberRate
	}

	number, err := strconv.Atoi(req.Number.String())
	if err != nil {
		// A non-numeric payload degrades to an empty clip, matching the
		// unavailable-audio policy.
		log.Warn("invalid number payload: %q", req.Number.String())
		writeAudio(w, nil)
		return
	}

	audio, _ := s.Speech.SpeakNumber(r.Context(), number, req.Rate)
	writeAudio(w, audio)
}

func (s *Server) handleNumberToThai(w http.ResponseWriter, r *http.Request) {
	numberParam := chi.URLParam(r, "number")
	number, err := strconv.Atoi(numberParam)
	if err != nil {
		handleError(w, r, errors.NewValidationError("number", "must be an integer"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"number":          number,
		"transliteration": thainum.ToThai(number),
	})
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.Progress.GetProgress(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleMarkComplete(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	mode := chi.URLParam(r, "mode")

	record, err := s.Progress.MarkComplete(r.Context(), deckID, mode)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deck_id": deckID,
		"mode":    mode,
		"record":  record,
	})
}

func (s *Server) handleResetDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")

	record, err := s.Progress.ResetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deck_id": deckID,
		"record":  record,
	})
}

func (s *Server) handleDownloadDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	deckID := chi.URLParam(r, "deckID")

	shuffle := true
	if v := r.URL.Query().Get("shuffle"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			shuffle = parsed
		}
	}

	data, filename, err := s.Audio.BuildDeckAudio(r.Context(), deckID, shuffle)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok &&
			(appErr.Code == errors.ErrCodeSynthesis || appErr.Code == errors.ErrCodeConcatenation) {
			// Degrade to silence rather than failing the learner's download.
			log.Warn("deck audio degraded to empty response: %v", appErr)
			writeAudio(w, nil)
			return
		}
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	writeAudio(w, data)
}
