package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/config"
	"github.com/rvbgo/rentvsbuy-calculator/internal/rates"
)

// Server is the HTTP front end over the calculation engine. The engine is
// stateless, so a single instance serves all requests concurrently.
type Server struct {
	cfg     *Config
	log     zerolog.Logger
	engine  *calculation.CalculationEngine
	advisor *calculation.RecommendationAdvisor
	parser  *config.InputParser
	rates   rates.RateProvider
	market  *rates.MarketDataProvider
	metrics *Metrics

	httpServer *http.Server
}

// New wires a server from its collaborators.
func New(cfg *Config, log zerolog.Logger) *Server {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.ZerologAdapter{L: log})

	s := &Server{
		cfg:     cfg,
		log:     log,
		engine:  engine,
		advisor: calculation.NewRecommendationAdvisor(),
		parser:  config.NewInputParser(),
		rates:   rates.NewStaticRateProvider(),
		market:  rates.NewMarketDataProvider(),
		metrics: NewMetrics(),
	}

	router := mux.NewRouter()
	router.Use(s.requestIDMiddleware, s.loggingMiddleware)

	api := router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/compute", s.handleCompute).Methods(http.MethodPost)
	api.HandleFunc("/compute/formatted", s.handleComputeFormatted).Methods(http.MethodPost)
	api.HandleFunc("/montecarlo", s.handleMonteCarlo).Methods(http.MethodPost)
	api.HandleFunc("/rates", s.handleRates).Methods(http.MethodGet)
	api.HandleFunc("/city-data", s.handleCityData).Methods(http.MethodGet)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      http.TimeoutHandler(router, cfg.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Run serves until ctx is canceled, then drains connections within the
// shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info().Msg("http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusRecorder captures the response code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := r.URL.Path
		s.metrics.ObserveRequest(route, rec.status, elapsed.Seconds())

		id, _ := r.Context().Value(requestIDKey).(string)
		s.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", route).
			Int("status", rec.status).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}
