package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	glog "github.com/gin-contrib/slog"
	"github.com/gin-gonic/gin"
	"github.com/kode4food/timebox"
	"github.com/redis/go-redis/v9"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/archive"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/session"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

// Server implements the HTTP API server for the wizard
type Server struct {
	config   *config.Config
	sessions *session.Store
	hub      *timebox.EventHub
	content  *cms.CachedSource
	archive  *archive.Archive
	redis    *redis.Client
	sockets  map[*Client]struct{}
	mu       sync.Mutex
}

var (
	ErrInvalidID      = errors.New("invalid identifier")
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrLoadContent    = errors.New("failed to load content")
	ErrRenderDocument = errors.New("failed to render document")
	ErrUnknownEntry   = errors.New("unknown content entry")
)

// NewServer creates a new HTTP API server
func NewServer(
	cfg *config.Config, sessions *session.Store, hub *timebox.EventHub,
	content *cms.CachedSource, arch *archive.Archive,
) *Server {
	return &Server{
		config:   cfg,
		sessions: sessions,
		hub:      hub,
		content:  content,
		archive:  arch,
		sockets:  map[*Client]struct{}{},
	}
}

// SetRedis enables the session store check of the health endpoint
func (s *Server) SetRedis(client *redis.Client) {
	s.redis = client
}

// SetupRoutes configures and returns the HTTP router with all API endpoints
func (s *Server) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(glog.SetLogger(
		glog.WithLogger(func(c *gin.Context, l *slog.Logger) *slog.Logger {
			return slog.Default()
		}),
	))
	router.Use(cors.New(s.corsConfig()))

	router.GET("/health", s.handleHealth)
	router.POST("/webhook/contentful", s.handleContentfulWebhook)

	a := router.Group("/api")
	{
		// Content endpoints
		a.GET("/content", s.getContent)
		a.GET("/reasons", s.listReasons)
		a.GET("/solutions", s.listSolutions)
		a.GET("/governance", s.listGovernanceModels)
		a.GET("/solutions/:solutionID/factsheet.pdf", s.getFactsheet)

		// Session endpoints
		a.POST("/session", s.startSession)
		sess := a.Group("/session/:sessionID")
		{
			sess.GET("", s.getSession)
			sess.DELETE("", s.resetSession)
			sess.PUT("/park", s.updatePark)
			sess.POST("/reasons/:reasonID", s.toggleReason)
			sess.POST("/solutions/:solutionID", s.toggleSolution)
			sess.PUT("/variants/:solutionID", s.setVariant)
			sess.PUT("/governance", s.setGovernanceModel)
			sess.GET("/recommendations", s.getRecommendations)
			sess.GET("/comparison", s.getComparison)
			sess.GET("/summary.pdf", s.getSummary)
			sess.GET("/ws", s.handleWebSocket)
		}
	}

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if s.config.AllowsAllOrigins() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.config.AllowedOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.ExposeHeaders = []string{"Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// locale returns the requested locale or the configured default
func (s *Server) locale(c *gin.Context) string {
	if l := c.Query("locale"); l != "" {
		return l
	}
	return s.config.DefaultLocale
}

func (s *Server) registerWebSocket(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sockets[c] = struct{}{}
}

func (s *Server) unregisterWebSocket(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sockets, c)
}

// CloseWebSockets closes all active WebSocket connections
func (s *Server) CloseWebSockets() {
	s.mu.Lock()
	conns := make([]*Client, 0, len(s.sockets))
	for c := range s.sockets {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}

func errorJSON(c *gin.Context, status int, err error) {
	c.JSON(status, api.ErrorResponse{
		Error:  err.Error(),
		Status: status,
	})
}

// sessionError maps session store failures onto HTTP statuses
func sessionError(c *gin.Context, id api.SessionID, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		errorJSON(c, http.StatusNotFound, err)
	case errors.Is(err, session.ErrInvalidPark):
		errorJSON(c, http.StatusBadRequest, err)
	default:
		slog.Error("Session operation failed",
			log.SessionID(id),
			log.Error(err))
		errorJSON(c, http.StatusInternalServerError, err)
	}
}

func contentError(c *gin.Context, locale string, err error) {
	slog.Error("Failed to load content",
		log.Locale(locale),
		log.Error(err))
	errorJSON(c, http.StatusBadGateway, fmt.Errorf("%w: %w",
		ErrLoadContent, err))
}

func renderError(c *gin.Context, key string, err error) {
	slog.Error("Failed to render document",
		log.DocumentKey(key),
		log.Error(err))
	errorJSON(c, http.StatusInternalServerError, fmt.Errorf("%w: %w",
		ErrRenderDocument, err))
}

// pathID reads a path parameter and rejects malformed identifiers
func pathID[T ~string](c *gin.Context, name string) (T, bool) {
	id := T(c.Param(name))
	if !api.ValidID(id) {
		errorJSON(c, http.StatusBadRequest,
			fmt.Errorf("%w: %s", ErrInvalidID, name))
		return "", false
	}
	return id, true
}
