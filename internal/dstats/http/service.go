// Package http serves a computed report locally: the HTML document, the raw
// stats as JSON, and the per-channel summaries.
package http

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/calpyte/dstats/internal/errors"
	"github.com/calpyte/dstats/internal/model"
	"github.com/calpyte/dstats/internal/report"
)

// Service owns the HTTP surface. The served snapshot is swapped atomically
// by Update when watch mode recomputes, so handlers never see a half-built
// result.
type Service struct {
	addr   string
	router *gin.Engine
	server *http.Server

	mu       sync.RWMutex
	user     model.User
	channels []*model.Channel
	stats    *model.Stats
}

func NewService(addr string) *Service {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Err(err).Msg("Failed to set trusted proxies")
	}

	router.Use(
		errors.RecoveryMiddleware(),
		errors.ErrorHandlerMiddleware(),
		requestIDMiddleware(),
		gin.LoggerWithWriter(log.Logger, "/health"),
	)

	s := &Service{
		addr:   addr,
		router: router,
	}
	s.initRouter()
	return s
}

func (s *Service) initRouter() {
	s.router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	s.router.GET("/", s.handleReport)

	api := s.router.Group("/api/v1")
	api.GET("/stats", s.handleStats)
	api.GET("/channels", s.handleChannels)
}

// Update swaps the served snapshot.
func (s *Service) Update(user model.User, channels []*model.Channel, stats *model.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.channels = channels
	s.stats = stats
}

func (s *Service) snapshot() (model.User, []*model.Channel, *model.Stats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.channels, s.stats
}

func (s *Service) handleReport(c *gin.Context) {
	user, _, stats := s.snapshot()
	if stats == nil {
		c.Error(errors.ReportNotReady())
		return
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, stats, &user); err != nil {
		c.Error(errors.New("render report failed", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Service) handleStats(c *gin.Context) {
	_, _, stats := s.snapshot()
	if stats == nil {
		c.Error(errors.ReportNotReady())
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		c.Error(errors.New("encode stats failed", err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Service) handleChannels(c *gin.Context) {
	_, channels, stats := s.snapshot()
	if stats == nil {
		c.Error(errors.ReportNotReady())
		return
	}
	data, err := json.Marshal(gin.H{"items": channels})
	if err != nil {
		c.Error(errors.New("encode channels failed", err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Start blocks serving until the listener fails or Stop is called.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:        s.addr,
		Handler:     s.router,
		ReadTimeout: 30 * time.Second,
	}
	log.Info().Msgf("serving report on http://%s", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
