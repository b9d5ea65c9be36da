package fsview_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorer/internal/fs"
	"explorer/internal/fsview"
)

// rootTree builds a directory with files and directories deliberately
// interleaved so native listing order differs from view order.
func rootTree(t *testing.T) *fs.MemFS {
	t.Helper()
	m := fs.NewMemFS()
	m.AddDir("c:/root")
	m.AddFile("c:/root/zeta.txt", []byte("z"))
	m.AddDir("c:/root/Beta_dir")
	m.AddFile("c:/root/apple.txt", []byte("a"))
	m.AddDir("c:/root/Alpha_dir")
	m.AddJunction("c:/root/junc")
	return m
}

func newRootView(t *testing.T) (*fsview.View, *fs.MemFS) {
	t.Helper()
	m := rootTree(t)
	view := fsview.NewView(fsview.NewDirSource(m), m)
	require.NoError(t, view.SetRoot("c:/root"))
	return view, m
}

func visibleNames(view *fsview.View) []string {
	names := make([]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		names = append(names, view.FileName(i))
	}
	return names
}

func TestViewSorting(t *testing.T) {
	view, _ := newRootView(t)

	t.Run("ascending keeps directories first", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Alpha_dir", "Beta_dir", "apple.txt", "zeta.txt"},
			visibleNames(view))
	})

	t.Run("descending never flips the kinds", func(t *testing.T) {
		require.NoError(t, view.SetSortOrder(fsview.Descending))
		assert.Equal(t,
			[]string{"Beta_dir", "Alpha_dir", "zeta.txt", "apple.txt"},
			visibleNames(view))
		require.NoError(t, view.SetSortOrder(fsview.Ascending))
	})

	t.Run("refresh is idempotent", func(t *testing.T) {
		before := visibleNames(view)
		require.NoError(t, view.Refresh())
		require.NoError(t, view.Refresh())
		assert.Equal(t, before, visibleNames(view))
	})
}

func TestViewJunctionsAlwaysHidden(t *testing.T) {
	view, _ := newRootView(t)
	assert.Equal(t, -1, view.PathIndex("c:/root/junc"))
	require.NoError(t, view.SetRegexFilters(nil))
	assert.Equal(t, -1, view.PathIndex("c:/root/junc"))
}

func TestViewRegexFilters(t *testing.T) {
	view, _ := newRootView(t)

	t.Run("matching rows disappear", func(t *testing.T) {
		require.NoError(t, view.SetRegexFilters([]string{`.*\.txt`}))
		assert.Equal(t, []string{"Alpha_dir", "Beta_dir"}, visibleNames(view))
	})

	t.Run("clearing filters restores rows", func(t *testing.T) {
		require.NoError(t, view.SetRegexFilters(nil))
		assert.Equal(t,
			[]string{"Alpha_dir", "Beta_dir", "apple.txt", "zeta.txt"},
			visibleNames(view))
	})

	t.Run("malformed pattern keeps the previous filter", func(t *testing.T) {
		require.NoError(t, view.SetRegexFilters([]string{`.*apple\.txt`}))
		require.Error(t, view.SetRegexFilters([]string{`(`}))
		require.NoError(t, view.Refresh())
		assert.Equal(t, -1, view.PathIndex("c:/root/apple.txt"))
	})
}

func TestViewIndexMapping(t *testing.T) {
	view, _ := newRootView(t)

	// Native listing order is insertion order: zeta.txt, Beta_dir,
	// apple.txt, Alpha_dir, junc.
	assert.Equal(t, 3, view.SourceIndex(view.PathIndex("c:/root/Alpha_dir")))
	assert.Equal(t, 1, view.SourceIndex(view.PathIndex("c:/root/Beta_dir")))
	assert.Equal(t, 2, view.SourceIndex(view.PathIndex("c:/root/apple.txt")))
	assert.Equal(t, 0, view.SourceIndex(view.PathIndex("c:/root/zeta.txt")))
	assert.Equal(t, -1, view.SourceIndex(99))

	t.Run("path lookup is case-insensitive", func(t *testing.T) {
		assert.Equal(t,
			view.PathIndex("c:/root/Alpha_dir"),
			view.PathIndex("c:/root/ALPHA_DIR"))
	})

	t.Run("row accessors", func(t *testing.T) {
		i := view.PathIndex("c:/root/Alpha_dir")
		assert.Equal(t, "c:/root/Alpha_dir", view.FilePath(i))
		assert.Equal(t, "Alpha_dir", view.FileName(i))
		assert.True(t, view.IsDir(i))
		assert.False(t, view.IsDir(view.PathIndex("c:/root/apple.txt")))

		_, ok := view.Row(-1)
		assert.False(t, ok)
		assert.Equal(t, "", view.FilePath(99))
	})
}

func TestViewRename(t *testing.T) {
	t.Run("case-only rename bypasses the source", func(t *testing.T) {
		view, m := newRootView(t)
		var signaled string
		view.SetOnRefresh(func(path string) { signaled = path })

		i := view.PathIndex("c:/root/Alpha_dir")
		require.True(t, view.Rename(i, "alpha_dir"))

		assert.Equal(t, "alpha_dir", view.FileName(i))
		assert.Equal(t, "c:/root/alpha_dir", signaled)
		names, err := m.ListDir("c:/root")
		require.NoError(t, err)
		assert.Contains(t, names, "alpha_dir")
		assert.NotContains(t, names, "Alpha_dir")
	})

	t.Run("ordinary rename goes through the source", func(t *testing.T) {
		view, m := newRootView(t)
		i := view.PathIndex("c:/root/Beta_dir")
		require.True(t, view.Rename(i, "Gamma_dir"))

		assert.GreaterOrEqual(t, view.PathIndex("c:/root/Gamma_dir"), 0)
		assert.Equal(t, -1, view.PathIndex("c:/root/Beta_dir"))
		assert.True(t, m.IsDir("c:/root/Gamma_dir"))
	})

	t.Run("rename onto an existing name fails", func(t *testing.T) {
		view, m := newRootView(t)
		i := view.PathIndex("c:/root/apple.txt")
		assert.False(t, view.Rename(i, "zeta.txt"))
		assert.True(t, m.Exists("c:/root/apple.txt"))
	})

	t.Run("unchanged or empty name is a no-op", func(t *testing.T) {
		view, _ := newRootView(t)
		i := view.PathIndex("c:/root/apple.txt")
		assert.True(t, view.Rename(i, "apple.txt"))
		assert.True(t, view.Rename(i, ""))
		assert.Equal(t, "apple.txt", view.FileName(i))
	})

	t.Run("out of range", func(t *testing.T) {
		view, _ := newRootView(t)
		assert.False(t, view.Rename(99, "whatever"))
	})
}

func TestViewRemove(t *testing.T) {
	view, m := newRootView(t)
	var signaled bool
	view.SetOnRefresh(func(string) { signaled = true })

	before := view.Len()
	require.True(t, view.Remove(view.PathIndex("c:/root/apple.txt")))

	assert.Equal(t, before-1, view.Len())
	assert.Equal(t, -1, view.PathIndex("c:/root/apple.txt"))
	assert.False(t, m.Exists("c:/root/apple.txt"))
	assert.True(t, signaled)

	assert.False(t, view.Remove(99))
}

func TestViewEmptyRoot(t *testing.T) {
	m := fs.NewMemFS()
	view := fsview.NewView(fsview.NewDirSource(m), m)
	assert.Equal(t, 0, view.Len())
	require.Error(t, view.SetRoot("c:/missing"))
}

func TestNotifier(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 8)
	notifier, err := fsview.NewNotifier(dir, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer notifier.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
}
