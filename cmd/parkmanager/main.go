package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kode4food/timebox"
	"github.com/redis/go-redis/v9"

	app "github.com/advier-web/parkmanager-tool-new-sub001"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/archive"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/server"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/session"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

type parkmanager struct {
	cfg          *config.Config
	timebox      *timebox.Timebox
	sessionStore *timebox.Store
	redis        *redis.Client
	archive      *archive.Archive
	content      *cms.CachedSource
	sessions     *session.Store
	apiServer    *server.Server
	httpServer   *http.Server
	quit         chan os.Signal
}

var (
	ErrCreateTimebox      = errors.New("failed to create timebox")
	ErrCreateSessionStore = errors.New("failed to create session store")
	ErrOpenArchive        = errors.New("failed to open document archive")
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to read .env file", log.Error(err))
	}

	cfg := config.NewDefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		slog.Error("Invalid configuration", log.Error(err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", log.Error(err))
		os.Exit(1)
	}

	s := &parkmanager{
		cfg:  cfg,
		quit: make(chan os.Signal, 1),
	}
	s.setupLogging()

	if err := s.run(); err != nil {
		slog.Error("Failed to start application", log.Error(err))
		os.Exit(1)
	}
}

func (s *parkmanager) run() error {
	if err := s.initializeStores(); err != nil {
		return err
	}
	s.initializeSessions()
	s.startServer()

	signal.Notify(s.quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s.quit)
	<-s.quit

	s.shutdown()
	return nil
}

func (s *parkmanager) setupLogging() {
	level := log.ParseLevel(s.cfg.LogLevel)
	env := os.Getenv("ENV")
	logger := log.NewWithLevel(app.Name, env, app.Version, level)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level)

	slog.Info("Parkmanager starting",
		slog.String("log_level", s.cfg.LogLevel))

	source := "contentful"
	if s.cfg.ContentFile != "" {
		source = s.cfg.ContentFile
	}
	slog.Info("Configuration loaded",
		slog.String("session_redis_addr", s.cfg.SessionStore.Addr),
		slog.Int("session_redis_db", s.cfg.SessionStore.DB),
		slog.String("content_source", source),
		slog.String("default_locale", s.cfg.DefaultLocale),
		slog.String("archive_bucket", s.cfg.ArchiveBucketURL),
		slog.String("api_host", s.cfg.APIHost),
		slog.Int("api_port", s.cfg.APIPort))
}

func (s *parkmanager) initializeStores() error {
	var err error

	tbCfg := timebox.DefaultConfig()
	tbCfg.Workers = true
	s.timebox, err = timebox.NewTimebox(tbCfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateTimebox, err)
	}

	s.sessionStore, err = s.timebox.NewStore(s.cfg.SessionStore)
	if err != nil {
		_ = s.timebox.Close()
		return fmt.Errorf("%w: %w", ErrCreateSessionStore, err)
	}

	s.archive, err = archive.Open(
		context.Background(), s.cfg.ArchiveBucketURL, s.cfg.ArchivePrefix,
	)
	if err != nil {
		_ = s.sessionStore.Close()
		_ = s.timebox.Close()
		return fmt.Errorf("%w: %w", ErrOpenArchive, err)
	}

	s.redis = redis.NewClient(&redis.Options{
		Addr:     s.cfg.SessionStore.Addr,
		Password: s.cfg.SessionStore.Password,
		DB:       s.cfg.SessionStore.DB,
	})
	return nil
}

func (s *parkmanager) initializeSessions() {
	s.content = cms.NewFromConfig(s.cfg)
	s.sessions = session.NewStore(s.sessionStore)
	s.sessions.OnReset(s.archive.PurgeSession)
}

func (s *parkmanager) startServer() {
	s.apiServer = server.NewServer(
		s.cfg, s.sessions, s.timebox.GetHub(), s.content, s.archive,
	)
	s.apiServer.SetRedis(s.redis)
	mux := s.apiServer.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.APIHost, s.cfg.APIPort),
		Handler: mux,
	}

	go func() {
		slog.Info("HTTP server starting",
			slog.String("addr", s.httpServer.Addr))
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", log.Error(err))
		}
	}()
}

func (s *parkmanager) shutdown() {
	slog.Info("Shutting down")

	ctx, cancel := context.WithTimeout(
		context.Background(), s.cfg.ShutdownTimeout,
	)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", log.Error(err))
	}

	s.apiServer.CloseWebSockets()

	if err := s.archive.Close(); err != nil {
		slog.Error("Archive shutdown failed", log.Error(err))
	}
	_ = s.redis.Close()
	_ = s.sessionStore.Close()
	_ = s.timebox.Close()

	slog.Info("Server exited")
}
