package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thaivocab/thaivocab/internal/api"
	"github.com/thaivocab/thaivocab/internal/audio"
	"github.com/thaivocab/thaivocab/internal/config"
	"github.com/thaivocab/thaivocab/internal/db"
	"github.com/thaivocab/thaivocab/internal/deck"
	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/repository/sqlite"
	"github.com/thaivocab/thaivocab/internal/services"
	"github.com/thaivocab/thaivocab/internal/sheets"
	"github.com/thaivocab/thaivocab/internal/tts"
)

// Categories whose decks can be exported as a single MP3.
var audioCategories = []string{"vocab"}

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ThaiVocab Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("sources_path=%s", cfg.SourcesPath)
	log.Debug("tts_provider=%s", cfg.TTSProvider)
	log.Debug("ffmpeg_path=%s", cfg.FFmpegPath)
	log.Debug("log_level=%s", cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load all decks once; the registry is immutable for the process life.
	sources := deck.LoadSources(cfg.SourcesPath)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	registry := deck.Load(loadCtx, sheets.New(), sources)
	loadCancel()
	if registry.Len() == 0 {
		log.Error("no decks loaded, refusing to start")
		os.Exit(1)
	}

	synth, err := tts.NewSynthesizer(cfg)
	if err != nil {
		log.Error("failed to build TTS provider: %v", err)
		os.Exit(1)
	}
	log.Info("TTS provider ready: %s", synth.Name())

	cache := tts.NewCache(synth)
	ffmpeg := audio.NewFFmpeg(cfg.FFmpegPath)
	builder := audio.NewBuilder(cache, ffmpeg, cfg.ThaiVoice, cfg.EnglishVoice)

	srv := &api.Server{
		Decks:    registry,
		Progress: services.NewProgressService(registry, sqlite.NewProgressRepository(database.DB)),
		Audio:    services.NewAudioService(registry, builder, ffmpeg, audioCategories),
		Speech:   services.NewSpeechService(cache, cfg.ThaiVoice),
	}

	httpServer := &http.Server{
		Addr:        cfg.Addr,
		Handler:     srv.Routes(),
		ReadTimeout: 15 * time.Second,
		// A deck download synthesizes every word before responding, so the
		// write timeout has to cover a full build.
		WriteTimeout: time.Duration(cfg.DownloadTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("ThaiVocab Server Stopped")
	log.Info("===========================================")
}
