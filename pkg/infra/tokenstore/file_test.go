package tokenstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/fantavoti/pkg/infra/tokenstore"
	"github.com/m-mizutani/gt"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "auth", "cookie.txt")
	store := tokenstore.NewFile(path)

	t.Run("load missing file", func(t *testing.T) {
		_, ok, err := store.Load(ctx)
		gt.NoError(t, err)
		gt.V(t, ok).Equal(false)
	})

	t.Run("save and load", func(t *testing.T) {
		gt.NoError(t, store.Save(ctx, "session=abc"))

		token, ok, err := store.Load(ctx)
		gt.NoError(t, err)
		gt.V(t, ok).Equal(true)
		gt.Equal(t, string(token), "session=abc")

		info, err := os.Stat(path)
		gt.NoError(t, err)
		gt.Equal(t, info.Mode().Perm(), os.FileMode(0600))
	})

	t.Run("save overwrites", func(t *testing.T) {
		gt.NoError(t, store.Save(ctx, "session=def"))

		token, _, err := store.Load(ctx)
		gt.NoError(t, err)
		gt.Equal(t, string(token), "session=def")
	})

	t.Run("delete", func(t *testing.T) {
		gt.NoError(t, store.Delete(ctx))
		_, ok, err := store.Load(ctx)
		gt.NoError(t, err)
		gt.V(t, ok).Equal(false)

		// deleting twice is fine
		gt.NoError(t, store.Delete(ctx))
	})
}

func TestFileStore_TrimsBrowserCookie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie.txt")
	gt.NoError(t, os.WriteFile(path, []byte("  session=abc; user=alice\n"), 0600))

	token, ok, err := tokenstore.NewFile(path).Load(context.Background())
	gt.NoError(t, err)
	gt.V(t, ok).Equal(true)
	gt.Equal(t, string(token), "session=abc; user=alice")
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie.txt")
	gt.NoError(t, os.WriteFile(path, []byte("\n"), 0600))

	_, ok, err := tokenstore.NewFile(path).Load(context.Background())
	gt.NoError(t, err)
	gt.V(t, ok).Equal(false)
}
