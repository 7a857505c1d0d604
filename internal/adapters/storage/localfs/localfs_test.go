package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/flexlinen/internal/domain"
)

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)

	_, err := s.Get(ctx, domain.CartStorageKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Set(ctx, domain.CartStorageKey, []byte(`{"items":[]}`)))
	got, err := s.Get(ctx, domain.CartStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(got))

	_, err = os.Stat(filepath.Join(dir, "flexlinen-cart.json"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, domain.CartStorageKey, []byte(`{"items":null}`)))
	got, err = s.Get(ctx, domain.CartStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":null}`, string(got))

	require.NoError(t, s.Delete(ctx, domain.CartStorageKey))
	assert.ErrorIs(t, s.Delete(ctx, domain.CartStorageKey), domain.ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files left behind")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "flexlinen-cart", fileName("flexlinen-cart"))
	assert.Equal(t, "cart_user_1", fileName("cart:user/1"))
	assert.Equal(t, "_", fileName(".."))
	assert.Equal(t, "_", fileName(""))
}
