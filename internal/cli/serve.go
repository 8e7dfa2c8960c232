package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/buildinfo"
	"github.com/planfab/interio/pkg/cache"
	interrors "github.com/planfab/interio/pkg/errors"
	interioio "github.com/planfab/interio/pkg/io"
	"github.com/planfab/interio/pkg/observability"
	"github.com/planfab/interio/pkg/pipeline"
	"github.com/planfab/interio/pkg/zone"
)

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout API server",
		Long: `Run the layout API server.

Exposes the solve pipeline over HTTP:

  POST /v1/solve         solve a cabinet tree, returns the solution
  POST /v1/validate      validate a cabinet tree, returns issues
  GET  /v1/trees/{hash}  fetch a previously solved tree by its hash
  GET  /healthz          liveness probe

Request bodies carry the zone tree under "tree" and optional cabinet
parameters under "options". The server shares the local solve cache with
the CLI commands; --redis switches to a shared Redis cache so multiple
server instances serve each other's solves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (host:port) for a shared solve cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable solve caching")
	return cmd
}

// runServe starts the HTTP server and blocks until interrupted.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, noCache bool) error {
	runner, err := c.newServeRunner(ctx, redisAddr, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &apiServer{runner: runner, cli: c}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newServeRunner builds the pipeline runner for the API server. With a
// Redis address the solve cache moves to Redis, keys scoped under the
// application name so a shared Redis instance stays tidy; otherwise the
// server uses the same local file cache as the CLI commands.
func (c *CLI) newServeRunner(ctx context.Context, redisAddr string, noCache bool) (*pipeline.Runner, error) {
	if redisAddr == "" {
		return c.newRunner(noCache)
	}
	store, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
	}
	keyer := cache.NewScopedKeyer(nil, appName+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// =============================================================================
// API Server
// =============================================================================

// apiServer holds the shared state of the HTTP handlers.
type apiServer struct {
	runner *pipeline.Runner
	cli    *CLI
}

// routes assembles the API router.
func (s *apiServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.observe)

	r.Post("/v1/solve", s.handleSolve)
	r.Post("/v1/validate", s.handleValidate)
	r.Get("/v1/trees/{hash}", s.handleGetTree)
	r.Get("/healthz", s.handleHealth)

	return r
}

// solveRequest is the body of POST /v1/solve and POST /v1/validate.
type solveRequest struct {
	Tree    json.RawMessage  `json:"tree"`
	Options pipeline.Options `json:"options"`
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// observe is the request middleware reporting to the server hooks.
func (s *apiServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := withLogger(r.Context(), s.cli.Logger)
		observability.Server().OnRequest(ctx, r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		observability.Server().OnResponse(ctx, r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (s *apiServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	root, err := interioio.ReadJSON(bytes.NewReader(req.Tree))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), root, req.Options)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.storeTree(r.Context(), result.TreeHash, root)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"tree_hash":  result.TreeHash,
		"solution":   result.Solution,
		"validation": result.Validation,
		"cached":     result.CacheInfo.SolveHit,
	})
}

func (s *apiServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	root, err := interioio.ReadJSON(bytes.NewReader(req.Tree))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Validate(r.Context(), root, req.Options)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"ok":     result.OK(),
		"issues": result.Issues,
	})
}

// treeNamespace scopes stored tree documents in the cache.
const treeNamespace = "solved"

// storeTree caches the canonical JSON of a solved tree under its hash so
// GET /v1/trees/{hash} can serve it back. Failures only cost the lookup.
func (s *apiServer) storeTree(ctx context.Context, treeHash string, root *zone.Zone) {
	var buf bytes.Buffer
	if err := interioio.WriteJSON(root, &buf); err != nil {
		s.cli.Logger.Warn("encode tree for storage", "error", err)
		return
	}
	key := s.runner.Keyer.TreeKey(treeNamespace, treeHash)
	if err := s.runner.Cache.Set(ctx, key, buf.Bytes(), cache.DefaultTTL); err != nil {
		s.cli.Logger.Warn("store tree", "hash", treeHash, "error", err)
	}
}

func (s *apiServer) handleGetTree(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	key := s.runner.Keyer.TreeKey(treeNamespace, hash)

	data, ok, err := s.runner.Cache.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("no tree stored for hash %s", hash))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// decodeRequest parses the common request body. A false return means an
// error response has already been written.
func (s *apiServer) decodeRequest(w http.ResponseWriter, r *http.Request) (solveRequest, bool) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return req, false
	}
	if len(req.Tree) == 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing tree"))
		return req, false
	}
	return req, true
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.cli.Logger.Error("write response", "error", err)
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var coded *interrors.Error
	if errors.As(err, &coded) {
		resp.Code = string(coded.Code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
