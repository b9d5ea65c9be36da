package ops_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorer/internal/errors"
	"explorer/internal/fs"
	"explorer/internal/ops"
)

func TestNewFile(t *testing.T) {
	m := fs.NewMemFS()
	m.AddDir("c:/work")
	service := ops.New(m)

	first, err := service.NewFile("c:/work")
	require.NoError(t, err)
	assert.Equal(t, "c:/work/new_file", first)
	assert.True(t, m.Exists(first))

	second, err := service.NewFile("c:/work")
	require.NoError(t, err)
	assert.Equal(t, "c:/work/new_file_0", second)
}

func TestNewDirectory(t *testing.T) {
	m := fs.NewMemFS()
	m.AddDir("c:/work")
	service := ops.New(m)

	first, err := service.NewDirectory("c:/work")
	require.NoError(t, err)
	assert.Equal(t, "c:/work/new_directory", first)
	assert.True(t, m.IsDir(first))

	second, err := service.NewDirectory("c:/work")
	require.NoError(t, err)
	assert.Equal(t, "c:/work/new_directory_0", second)
}

func TestCopyInto(t *testing.T) {
	t.Run("file collisions version before the extension", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddFile("c:/src/a.txt", []byte("payload"))
		m.AddDir("c:/dst")
		service := ops.New(m)

		created, err := service.CopyInto("c:/dst", []string{"c:/src/a.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c:/dst/a.txt"}, created)

		created, err = service.CopyInto("c:/dst", []string{"c:/src/a.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c:/dst/a_0.txt"}, created)

		data, err := m.ReadFile("c:/dst/a_0.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("directories copy recursively and version at the end", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddFile("c:/src/data/inner/deep.txt", []byte("d"))
		m.AddFile("c:/src/data/top.txt", []byte("t"))
		m.AddDir("c:/dst")
		service := ops.New(m)

		created, err := service.CopyInto("c:/dst", []string{"c:/src/data"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c:/dst/data"}, created)
		assert.True(t, m.Exists("c:/dst/data/inner/deep.txt"))
		assert.True(t, m.Exists("c:/dst/data/top.txt"))

		created, err = service.CopyInto("c:/dst", []string{"c:/src/data"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c:/dst/data_0"}, created)
	})

	t.Run("vanished sources are skipped", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddFile("c:/src/real.txt", []byte("r"))
		m.AddDir("c:/dst")
		service := ops.New(m)

		created, err := service.CopyInto("c:/dst", []string{"c:/src/gone.txt", "c:/src/real.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c:/dst/real.txt"}, created)
	})
}

func TestTrash(t *testing.T) {
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("names carry the timestamp", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddDir("c:/")
		m.AddFile("c:/work/a.txt", []byte("a"))
		service := ops.New(m)

		trashed, err := service.Trash("c:/trash", []string{"c:/work/a.txt"}, stamp)
		require.NoError(t, err)
		require.Len(t, trashed, 1)
		assert.Equal(t, "c:/trash/a.txt@2024-01-02 03;04;05.000000", trashed[0])
		assert.True(t, m.Exists(trashed[0]))
		assert.False(t, m.Exists("c:/work/a.txt"))
	})

	t.Run("same second still never collides", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddDir("c:/")
		m.AddFile("c:/work/a.txt", []byte("one"))
		service := ops.New(m)

		first, err := service.Trash("c:/trash", []string{"c:/work/a.txt"}, stamp)
		require.NoError(t, err)

		m.AddFile("c:/work/a.txt", []byte("two"))
		second, err := service.Trash("c:/trash", []string{"c:/work/a.txt"}, stamp)
		require.NoError(t, err)

		assert.NotEqual(t, first[0], second[0])
		assert.Equal(t, first[0]+"_0", second[0])
	})

	t.Run("directories are trashed whole", func(t *testing.T) {
		m := fs.NewMemFS()
		m.AddDir("c:/")
		m.AddFile("c:/work/proj/main.txt", []byte("m"))
		service := ops.New(m)

		trashed, err := service.Trash("c:/trash", []string{"c:/work/proj"}, stamp)
		require.NoError(t, err)
		require.Len(t, trashed, 1)
		assert.True(t, m.Exists(trashed[0]+"/main.txt"))
		assert.False(t, m.Exists("c:/work/proj"))
	})
}

func TestOpenCommand(t *testing.T) {
	service := ops.New(fs.NewMemFS())
	openWith := map[string]string{
		".txt": "editor {path}",
		".odd": "viewer {file}",
	}

	t.Run("configured extension renders the command", func(t *testing.T) {
		command, err := service.OpenCommand("c:/d/note.txt", openWith)
		require.NoError(t, err)
		assert.Equal(t, `editor "c:/d/note.txt"`, command)
	})

	t.Run("unconfigured extension falls back", func(t *testing.T) {
		command, err := service.OpenCommand("c:/d/image.png", openWith)
		require.NoError(t, err)
		assert.Empty(t, command)
	})

	t.Run("bad template surfaces the field error", func(t *testing.T) {
		_, err := service.OpenCommand("c:/d/x.odd", openWith)
		require.Error(t, err)
		assert.True(t, errors.IsTemplateFieldMissing(err))
	})
}
