// Package server is the HTTP binding of the decasify case converter.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/charlievieth/decasify"
)

// RequestIDHeader carries the request ID. Incoming IDs are kept.
const RequestIDHeader = "X-Request-ID"

// Server serves the case conversion API.
type Server struct {
	conf   Config
	log    *zap.Logger
	engine *gin.Engine

	locale decasify.Locale
	style  decasify.StyleGuide
}

// New returns a Server for conf. The configuration must be valid.
func New(conf Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		conf:   conf,
		log:    log,
		engine: gin.New(),
		locale: decasify.ResolveLocale(conf.Locale),
	}
	s.style, _ = decasify.ParseStyleGuide(conf.Style)

	s.engine.Use(requestID(), otelgin.Middleware(conf.Tracing.ServiceName), s.logRequests(), gin.Recovery())
	if conf.Metrics.Enabled {
		p := ginprometheus.NewPrometheus("decasify")
		if conf.Metrics.Path != "" {
			p.MetricsPath = conf.Metrics.Path
		}
		p.Use(s.engine)
	}

	s.engine.GET("/healthz", s.health)
	v1 := s.engine.Group("/v1")
	if conf.Compression {
		v1.Use(compress())
	}
	v1.POST("/case", s.convert)
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler { return s.engine }

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("response_size", c.Writer.Size()),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("remote_addr", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			s.log.Error("HTTP request", fields...)
		case status >= http.StatusBadRequest:
			s.log.Warn("HTTP request", fields...)
		default:
			s.log.Debug("HTTP request", fields...)
		}
	}
}

// Run serves HTTP on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.conf.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is canceled and then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.conf.ReadTimeout,
		WriteTimeout: s.conf.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", zap.String("address", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
