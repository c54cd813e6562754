package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/packviz/packviz/pkg/buildinfo"
	"github.com/packviz/packviz/pkg/cache"
	"github.com/packviz/packviz/pkg/pipeline"
)

const (
	defaultServeAddr = ":8080"
	defaultRedisAddr = "localhost:6379"
	defaultMongoURI  = "mongodb://localhost:27017"

	// serveShutdownTimeout bounds how long in-flight renders may run
	// after a shutdown signal.
	serveShutdownTimeout = 10 * time.Second
)

// serveCacheOptions selects the cache backend for the server. Unlike
// one-shot commands, a server benefits from a shared store, so redis
// and mongo are offered alongside the local file cache.
type serveCacheOptions struct {
	Backend   string
	RedisAddr string
	MongoURI  string
}

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		cacheO  serveCacheOptions
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve charts over HTTP",
		Long: `Serve charts over HTTP.

The serve command starts a small preview server. POST a JSON pipeline
request to /render with an inline dataset and it responds with the
rendered artifacts. GET /healthz reports liveness.

Example request:

  curl -s localhost:8080/render -d '{
    "dataset": {"items": [{"id": "go", "value": 42}]},
    "formats": ["svg"]
  }'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noCache {
				cacheO.Backend = "null"
			}
			return c.runServe(cmd.Context(), addr, cacheO)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&cacheO.Backend, "cache", "file", "cache backend (file, null, redis, mongo)")
	cmd.Flags().StringVar(&cacheO.RedisAddr, "redis-addr", defaultRedisAddr, "redis address for --cache redis")
	cmd.Flags().StringVar(&cacheO.MongoURI, "mongo-uri", defaultMongoURI, "mongodb uri for --cache mongo")

	return cmd
}

// newServeCache constructs the cache backend selected by --cache.
func newServeCache(ctx context.Context, opts serveCacheOptions) (cache.Cache, error) {
	switch opts.Backend {
	case "file":
		return newCache(false)
	case "null":
		return cache.NewNullCache(), nil
	case "redis":
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("--cache redis requires --redis-addr")
		}
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.RedisAddr})
	case "mongo":
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("--cache mongo requires --mongo-uri")
		}
		return cache.NewMongoCache(ctx, cache.MongoConfig{URI: opts.MongoURI})
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, null, redis, or mongo)", opts.Backend)
	}
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, cacheO serveCacheOptions) error {
	store, err := newServeCache(ctx, cacheO)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &server{runner: runner, cli: c}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// =============================================================================
// Server
// =============================================================================

// server holds the HTTP handler state.
type server struct {
	runner *pipeline.Runner
	cli    *CLI
}

// routes builds the chi router with middleware and endpoints.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	return r
}

// requestID tags each request with a UUID, echoed in the X-Request-ID
// header and attached to the request logger.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		logger := s.cli.Logger.With("request_id", id)
		next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
	})
}

// healthResponse is the /healthz response body.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

// renderResponse is the /render response body. Artifact bytes are
// base64-encoded by encoding/json.
type renderResponse struct {
	Artifacts map[string][]byte  `json:"artifacts"`
	Stats     pipeline.Stats     `json:"stats"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleRender(w http.ResponseWriter, req *http.Request) {
	logger := loggerFromContext(req.Context())
	p := newProgress(logger)

	var opts pipeline.Options
	if err := json.NewDecoder(req.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if opts.Dataset == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request must include an inline dataset"})
		return
	}
	// Server requests never read local files.
	opts.Input = ""
	opts.Logger = logger

	result, err := s.runner.Execute(req.Context(), opts)
	if err != nil {
		logger.Errorf("Render failed: %v", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	p.done(fmt.Sprintf("Rendered %d items", result.Stats.ItemCount))

	writeJSON(w, http.StatusOK, renderResponse{
		Artifacts: result.Artifacts,
		Stats:     result.Stats,
		CacheInfo: result.CacheInfo,
	})
}

// writeJSON encodes v to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
