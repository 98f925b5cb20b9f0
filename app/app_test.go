package app

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-stats/config"
	httpapi "github.com/jekabolt/grbpwr-stats/internal/api/http"
	"github.com/jekabolt/grbpwr-stats/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-stats/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP:  httpapi.Config{Address: "127.0.0.1", Port: "0"},
		Auth:  jwt.Config{JWTSecret: "secret"},
		Store: config.StoreConfig{Driver: config.DriverMemory, Fixture: "../config/fixture.json"},
	}
}

func TestStartStopMemory(t *testing.T) {
	ctx := context.Background()
	a := New(testConfig(), nil)
	require.NoError(t, a.Start(ctx))
	assert.NoError(t, a.db.Ping(ctx))

	a.Stop(ctx)
	select {
	case <-a.ServerDone():
	case <-time.After(5 * time.Second):
		t.Fatal("http server did not stop")
	}
	select {
	case <-a.Done():
	default:
		t.Fatal("app is not done")
	}
}

func TestStartWithRepository(t *testing.T) {
	ctx := context.Background()
	c := testConfig()
	c.Store.Fixture = ""
	a := New(c, memory.New(&memory.Fixture{}))
	require.NoError(t, a.Start(ctx))
	a.Stop(ctx)
}

func TestOpenRepository(t *testing.T) {
	c := testConfig()
	c.Store.Fixture = "missing.json"
	_, err := openRepository(context.Background(), c)
	assert.Error(t, err)

	c.Store.Driver = "redis"
	_, err = openRepository(context.Background(), c)
	assert.ErrorContains(t, err, "unknown store driver")
}
