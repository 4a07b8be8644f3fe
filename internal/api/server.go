package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/carbontrack/internal/service"
	"github.com/limbo/carbontrack/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	activityService service.ActivityServiceI
	reportService   service.ReportServiceI
	jwtService      JWTServiceI
	requestTimeout  time.Duration
}

type ServicesList struct {
	UserService     service.UserServiceI
	ActivityService service.ActivityServiceI
	ReportService   service.ReportServiceI
	JwtService      JWTServiceI
	// RequestTimeout bounds every service call made by a handler.
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		activityService: servicesOptions.ActivityService,
		reportService:   servicesOptions.ReportService,
		jwtService:      servicesOptions.JwtService,
		requestTimeout:  timeout,
	}
	s.setRoutes()
	return s
}

func (s *Server) setRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", s.Ping)
		r.Get("/factors", s.GetFactors)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/daily-input", s.SaveDailyInput)
			r.Get("/daily-input/{userId}/{date}", s.GetDailyInput)
			r.Get("/daily-input/{userId}/month/{month}", s.GetMonthlyInputs)
			r.Get("/reports/{userId}/daily/{date}", s.GetDailyReport)
			r.Get("/reports/{userId}/monthly/{month}", s.GetMonthlyReport)
			r.Get("/reports/{userId}/progress/{month}", s.GetProgressReport)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then drains connections and runs the
// registered cleanup jobs.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	cleanup.CleanUp()
	return err
}
