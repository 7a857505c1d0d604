package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/flexlinen/internal/adapters/storage/localfs"
	"github.com/phenrril/flexlinen/internal/clock"
	"github.com/phenrril/flexlinen/internal/config"
	"github.com/phenrril/flexlinen/internal/domain"
	"github.com/phenrril/flexlinen/internal/usecase"
)

func fileConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.CartDelay = 0
	cfg.Storage.Dir = t.TempDir()
	return cfg
}

func TestNewApp_FileDriverRestoresCart(t *testing.T) {
	ctx := context.Background()
	cfg := fileConfig(t)

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &localfs.Storage{}, a.Storage)
	a.Start(ctx)
	assert.False(t, a.Cart.State().IsLoading)

	p, err := a.Catalog.ProductByID("6")
	require.NoError(t, err)
	_, err = a.Cart.AddItem(domain.CartItem{Product: p, Size: "M", Color: "Grey"}).Wait(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	b.Start(ctx)
	st := b.Cart.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "6", st.Items[0].ID)
	assert.Equal(t, 2499.0, st.Total)
}

func TestApp_HTTPHandler(t *testing.T) {
	cfg := fileConfig(t)
	cfg.Storage.Driver = config.DriverMemory

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	a.Start(context.Background())

	rec := httptest.NewRecorder()
	a.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ok"))
}

func TestApp_ShutdownDrainsPendingCartWrites(t *testing.T) {
	ctx := context.Background()
	cfg := fileConfig(t)
	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	a, err := NewApp(ctx, cfg, usecase.WithClock(c), usecase.WithDelay(time.Second))
	require.NoError(t, err)
	a.Start(ctx)

	p, err := a.Catalog.ProductByID("2")
	require.NoError(t, err)
	a.Cart.AddItem(domain.CartItem{Product: p, Size: "L", Color: "Red"})

	done := make(chan error, 1)
	go func() { done <- a.Shutdown(ctx) }()
	select {
	case <-done:
		t.Fatal("shutdown returned before the pending mutation landed")
	case <-time.After(20 * time.Millisecond):
	}
	c.Advance(time.Second)
	require.NoError(t, <-done)

	raw, err := a.Storage.Get(ctx, domain.CartStorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"2"`)
}
