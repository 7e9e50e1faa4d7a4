package configwatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"educonexa_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
jwt:
  secret: "watcher-test-secret"
log:
  level: "info"
storage:
  local_path: %q
`

func TestWatchConfigInvokesReloaders(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	base := fmt.Sprintf(baseConfig, filepath.Join(dir, "uploads"))
	require.NoError(t, os.WriteFile(file, []byte(base), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case got <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	updated := base + "cors:\n  allowed_origins: [\"http://reloaded.example\"]\n"
	require.NoError(t, os.WriteFile(file, []byte(updated), 0644))

	select {
	case cfg := <-got:
		assert.Equal(t, []string{"http://reloaded.example"}, cfg.CORS.AllowedOrigins)
	case <-time.After(5 * time.Second):
		t.Fatal("reloader was not called")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
