package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/grbpwr-stats/config"
	httpapi "github.com/jekabolt/grbpwr-stats/internal/api/http"
	"github.com/jekabolt/grbpwr-stats/internal/apisrv/stats"
	"github.com/jekabolt/grbpwr-stats/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/statistics"
	"github.com/jekabolt/grbpwr-stats/internal/store"
	"github.com/jekabolt/grbpwr-stats/internal/store/memory"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App. A nil rep makes Start open the
// repository selected by the store driver.
func New(c *config.Config, rep dependency.Repository) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
		db:   rep,
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting shop statistics",
		slog.String("store", a.c.Store.Driver),
	)

	if a.db == nil {
		db, err := openRepository(ctx, a.c)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't open the repository",
				slog.String("err", err.Error()),
			)
			return err
		}
		a.db = db
	}

	statsS := stats.New(statistics.New(&a.c.Statistics, a.db))

	a.hs = httpapi.New(&a.c.HTTP)
	if err := a.hs.Start(ctx, jwt.New(a.c.Auth.JWTSecret), statsS, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

func openRepository(ctx context.Context, c *config.Config) (dependency.Repository, error) {
	switch c.Store.Driver {
	case config.DriverMemory:
		s, err := memory.Load(c.Store.Fixture)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMySQL:
		s, err := store.New(ctx, c.DB)
		if err != nil {
			return nil, fmt.Errorf("couldn't connect to mysql: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

// ServerDone is closed when the http server stops serving.
func (a *App) ServerDone() <-chan struct{} {
	return a.hs.Done()
}
