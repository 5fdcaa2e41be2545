package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.prisma")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), path, 20*time.Millisecond,
			func(context.Context) error {
				calls <- struct{}{}
				return nil
			})
	}()

	// the watcher needs a moment to register before events are delivered
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644)
		_ = os.WriteFile(path, []byte("b"), 0o644)

		select {
		case <-calls:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	err := Run(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		filepath.Join(t.TempDir(), "nope", "schema.prisma"), DefaultDebounce,
		func(context.Context) error { return nil })
	require.Error(t, err)
}
