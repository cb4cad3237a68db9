package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const oneFood = `
- id: millet
  name: Millet
  category: Grains
  serving_size: 100
  calories: 119
  ayurvedic_properties:
    rasa: [sweet]
    virya: hot
    digestibility: easy
    dosha_effect: {vata: increase, pitta: neutral, kapha: decrease}
`

func TestWatcherReload(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "foods.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneFood), 0644))

	store := NewStore(c)
	w := NewWatcher(path, store, nil)
	require.NoError(t, w.Reload())

	got, ok := store.Current().Food("millet")
	require.True(t, ok)
	assert.Equal(t, "Millet", got.Name)
	assert.Len(t, store.Current().Questions, 10)
}

func TestWatcherReloadInvalidKeepsPrevious(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "foods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: [broken"), 0644))

	store := NewStore(c)
	w := NewWatcher(path, store, nil)
	assert.ErrorIs(t, w.Reload(), ErrInvalidCatalog)
	assert.Same(t, c, store.Current())
}

func TestWatcherRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "foods.yaml")
	store := NewStore(c)
	w := NewWatcher(path, store, nil)

	reloaded := make(chan struct{}, 1)
	w.OnReload(func(*Catalog) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The watch is registered asynchronously, so keep writing until it is seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-reloaded:
			break wait
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte(oneFood), 0644))
		case <-deadline:
			cancel()
			t.Fatal("watcher did not reload the catalog")
		}
	}

	_, ok := store.Current().Food("millet")
	assert.True(t, ok)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
