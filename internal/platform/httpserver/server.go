package httpserver

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	contactservice "apikit/contexts/directory/contact-service"
	_ "apikit/internal/platform/httpserver/docs"
	"apikit/internal/platform/view"
	"apikit/internal/shared/response"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mux        *http.ServeMux
	http       *http.Server
	logger     *slog.Logger
	addr       string
	contacts   contactservice.Module
	normalizer *response.Normalizer
	metrics    *Metrics
	registry   *prometheus.Registry
	pages      *template.Template
}

type Option func(*Server)

// WithRegistry collects server metrics into registry instead of a private one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(
	contacts contactservice.Module,
	normalizer *response.Normalizer,
	logger *slog.Logger,
	addr string,
	opts ...Option,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	if normalizer == nil {
		normalizer = response.NewNormalizer(nil, response.WithLogger(logger))
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		contacts:   contacts,
		normalizer: normalizer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.registry)
	s.pages = template.Must(view.New("contacts").Parse(contactsPage))
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /v1/contacts", s.handleListContacts)
	s.mux.HandleFunc("POST /v1/contacts", s.handleCreateContact)
	s.mux.HandleFunc("GET /v1/contacts/{contact_id}", s.handleGetContact)
	s.mux.HandleFunc("PUT /v1/contacts/{contact_id}", s.handleUpdateContact)
	s.mux.HandleFunc("DELETE /v1/contacts/{contact_id}", s.handleDeleteContact)
	s.mux.HandleFunc("GET /v1/contacts-summary", s.handleContactSummary)

	s.mux.HandleFunc("GET /contacts", s.handleContactsPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.write(w, s.normalizer.Success(r, "ok", "", http.StatusOK))
}

// write sends an encoded envelope and counts it.
func (s *Server) write(w http.ResponseWriter, resp response.Response) {
	s.metrics.Observe(resp)
	if err := resp.Write(w); err != nil {
		s.logger.Warn("response write failed",
			"event", "http_response_write_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"code", resp.Code,
			"error", err.Error(),
		)
	}
}
