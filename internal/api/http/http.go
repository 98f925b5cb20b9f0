package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jekabolt/grbpwr-stats/internal/apisrv/stats"
	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/middleware"
	"github.com/jekabolt/grbpwr-stats/internal/ratelimit"
	"github.com/jekabolt/grbpwr-stats/log"
)

// StatisticsPrefix is where the report endpoints are mounted.
const StatisticsPrefix = "/api/shop/statistics"

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// NewRouter builds the API: health check plus the authenticated report
// endpoints, behind request id, client ip, access log, panic recovery and CORS.
// A nil limiter leaves the reports unthrottled.
func NewRouter(c *Config, ja *jwtauth.JWTAuth, statsServer *stats.Server, rep dependency.Repository, limiter *ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.ClientIdentifier)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(chimw.Recoverer)
	r.Use(corsHandler(c.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := rep.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed",
				slog.String("err", err.Error()),
			)
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route(StatisticsPrefix, func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(middleware.ShopGate(rep.Shops()))
		if limiter != nil {
			r.Use(middleware.RateLimit(limiter))
		}
		statsServer.Routes(r)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, ja *jwtauth.JWTAuth, statsServer *stats.Server, rep dependency.Repository) error {
	ctx, cancel := context.WithCancel(ctx)

	var limiter *ratelimit.Limiter
	if s.c.RateLimit.Requests > 0 {
		limiter = ratelimit.NewLimiter(ctx, s.c.RateLimit.Window, s.c.RateLimit.Requests)
	}

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(NewRouter(s.c, ja, statsServer, rep, limiter), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "grbpwr-stats new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		cancel()
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func corsHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, allowedOrigins)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
