// Package gin serves the summarize endpoint over HTTP using the gin web
// framework.
package gin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikisum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is how long Run waits for in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server exposes an ArticleService over HTTP.
type Server struct {
	// Articles produces summaries. Required.
	Articles wikisum.ArticleService

	// Logger receives one access log entry per request.
	Logger *slog.Logger

	engine *gin.Engine
	server *http.Server
}

// NewServer returns a Server with its routes registered.
func NewServer(articles wikisum.ArticleService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		Articles: articles,
		Logger:   logger,
		engine:   gin.New(),
	}
	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.engine.Use(gin.Recovery(), s.requestID(), s.accessLog(), cors())

	for _, path := range []string{"/summarize", "/api/summarize"} {
		s.engine.GET(path, s.handleSummarize)
		s.engine.POST(path, s.handleSummarize)
		s.engine.OPTIONS(path, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s
}

// ServeHTTP routes an HTTP request through the server's handlers.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleSummarize(c *gin.Context) {
	summary, err := s.Articles.Summarize(c.Request.Context(), c.Query("title"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": wikisum.ErrorMessage(err)})
		return
	}

	body, err := json.Marshal(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": wikisum.ErrorMessage(err)})
		return
	}

	etag := fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	wikisum.EINVALID:  http.StatusBadRequest,
	wikisum.ENOTFOUND: http.StatusNotFound,
}

func errorStatus(err error) int {
	if status, ok := codes[wikisum.ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// cors allows browser clients on any origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Next()
	}
}

// MaxRequestIDLength bounds client supplied X-Request-ID values.
const MaxRequestIDLength = 64

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// validRequestID accepts non-empty IDs of at most MaxRequestIDLength
// characters drawn from letters, digits and "-_.:".
func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.Logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
			"request_id", c.GetString("request_id"),
		)
	}
}
