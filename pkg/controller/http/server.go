package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/secmon-lab/threatcalc/pkg/utils/safe"
)

// maxBodyBytes bounds request bodies of the evaluation endpoints
const maxBodyBytes = 1 << 20

// ThreatUseCase evaluates three-tier threat profiles
type ThreatUseCase interface {
	EvaluateProfile(ctx context.Context, input model.ThreatProfileInput) (*model.ThreatProfile, error)
	Classify(ctx context.Context, probability float64) (types.RiskTier, error)
}

// ComplexityUseCase evaluates the complexity-split model
type ComplexityUseCase interface {
	Evaluate(ctx context.Context, params model.ComplexitySplitParameters) (*model.ComplexityReport, error)
}

// ScenarioUseCase evaluates batches and sensitivity sweeps
type ScenarioUseCase interface {
	EvaluateBatch(ctx context.Context, scenarios []model.NamedScenario) ([]model.ScenarioResult, error)
	Sweep(ctx context.Context, base model.ThreatProfileInput, parameter string, steps int) ([]model.SweepPoint, error)
}

type Server struct {
	router       *chi.Mux
	threatUC     ThreatUseCase
	complexityUC ComplexityUseCase
	scenarioUC   ScenarioUseCase
	metrics      http.Handler
}

type Options func(*Server)

// WithMetrics exposes handler at GET /metrics
func WithMetrics(handler http.Handler) Options {
	return func(s *Server) {
		s.metrics = handler
	}
}

// WithScenarioUseCase enables the batch and sweep endpoints
func WithScenarioUseCase(uc ScenarioUseCase) Options {
	return func(s *Server) {
		s.scenarioUC = uc
	}
}

func New(threatUC ThreatUseCase, complexityUC ComplexityUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:       r,
		threatUC:     threatUC,
		complexityUC: complexityUC,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safe.Respond(r.Context(), w, http.StatusOK, "text/plain", []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/defaults", defaultsHandler)
		r.Post("/threat", threatHandler(s.threatUC))
		r.Post("/tier", tierHandler(s.threatUC))
		r.Post("/complexity", complexityHandler(s.complexityUC))

		if s.scenarioUC != nil {
			r.Post("/batch", batchHandler(s.scenarioUC))
			r.Post("/sweep", sweepHandler(s.scenarioUC))
		}
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests with a request scoped logger
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
