package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	realestatemiddleware "github.com/cloud-ru/mcp-realestate-go/internal/server/middleware"
	"github.com/cloud-ru/mcp-realestate-go/internal/tools"
)

const maxBodyBytes = 1 << 20

type WebAPI struct {
	router   *chi.Mux
	logger   *zerolog.Logger
	server   *http.Server
	registry *tools.Registry
	shutdown time.Duration
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Registry        *tools.Registry
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"*"}
	}

	w := &WebAPI{
		logger:   &logger,
		registry: config.Registry,
		shutdown: config.ShutdownTimeout,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(realestatemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", w.health)
	router.Handle("/metrics", promhttp.Handler())
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/tools", w.listTools)
		r.Post("/tools/{tool}", w.callTool)
	})

	w.router = router
	w.server = &http.Server{
		Addr:              config.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return w
}

// Handler возвращает корневой http.Handler
func (w *WebAPI) Handler() http.Handler {
	return w.router
}

// Start запускает сервер и блокируется до сигнала завершения
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdown)
		defer cancel()

		if err := w.server.Shutdown(ctx); err != nil {
			_ = w.server.Close()
			return err
		}
		w.logger.Info().Msg("server stopped")
		return nil
	}
}

func (w *WebAPI) health(rw http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), rw, http.StatusOK, map[string]string{"status": "ok"})
}

func (w *WebAPI) listTools(rw http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), rw, http.StatusOK, w.registry.List())
}

func (w *WebAPI) callTool(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "tool")

	handler, ok := w.registry.Get(name)
	if !ok {
		writeError(ctx, rw, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	params := make(map[string]interface{})
	dec := json.NewDecoder(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		writeError(ctx, rw, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := handler(ctx, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, tools.ErrInvalidParams) {
			status = http.StatusBadRequest
		} else {
			logger.Error().Err(err).Str("tool", name).Msg("tool call failed")
		}
		writeError(ctx, rw, status, err.Error())
		return
	}

	writeJSON(ctx, rw, http.StatusOK, result)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(ctx context.Context, rw http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, rw, status, errorResponse{Error: msg})
}

func writeJSON(ctx context.Context, rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
