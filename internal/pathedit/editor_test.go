package pathedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorer/internal/fs"
	"explorer/internal/pathedit"
)

func editorTree(t *testing.T) *fs.MemFS {
	t.Helper()
	m := fs.NewMemFS()
	m.AddDir("c:/projects/alpha")
	m.AddDir("c:/projects/alphabet")
	m.AddFile("c:/projects/readme.txt", []byte("r"))
	m.AddDir("c:/solo/only")
	return m
}

func TestTabComplete(t *testing.T) {
	t.Run("single candidate is entered immediately", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.TabComplete("c:/proj")

		assert.True(t, update.SetText)
		assert.Equal(t, "c:/projects/", update.Text)
		assert.True(t, update.Navigate)
		assert.Equal(t, "c:/projects/", update.Path)
	})

	t.Run("several candidates cycle", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)

		first := editor.TabComplete("c:/projects/alph")
		require.True(t, first.SetText)
		assert.Equal(t, "c:/projects/alpha", first.Text)
		assert.False(t, first.Navigate)

		second := editor.TabComplete(first.Text)
		assert.Equal(t, "c:/projects/alphabet", second.Text)

		third := editor.TabComplete(second.Text)
		assert.Equal(t, "c:/projects/alpha", third.Text, "the cycle wraps")
	})

	t.Run("displayed candidate is skipped", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.TabComplete("c:/projects/alpha")
		assert.Equal(t, "c:/projects/alphabet", update.Text)
	})

	t.Run("no candidates does nothing", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		assert.Equal(t, pathedit.Update{}, editor.TabComplete("c:/nope"))
	})

	t.Run("empty text does nothing", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		assert.Equal(t, pathedit.Update{}, editor.TabComplete(""))
	})

	t.Run("files are not offered", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		assert.Equal(t, pathedit.Update{}, editor.TabComplete("c:/projects/read"))
	})
}

func TestHandleEdit(t *testing.T) {
	t.Run("blank text shows the computer", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.HandleEdit("")
		assert.True(t, update.Navigate)
		assert.Equal(t, pathedit.ComputerRoot, update.Path)
	})

	t.Run("deleting the trailing separator goes up", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		editor.ShowPath("c:/projects")

		update := editor.HandleEdit("c:/projects")
		assert.True(t, update.Navigate)
		assert.Equal(t, "c:/", update.Path)
		assert.Equal(t, "c:/", update.Text)
	})

	t.Run("deleting the root separator collapses to the computer", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		editor.ShowPath("c:/")

		update := editor.HandleEdit("c:")
		assert.True(t, update.Navigate)
		assert.Equal(t, pathedit.ComputerRoot, update.Path)
		assert.True(t, update.SetText)
		assert.Equal(t, "", update.Text)
	})

	t.Run("a file path navigates to its directory", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.HandleEdit("c:/projects/readme.txt")
		assert.True(t, update.Navigate)
		assert.Equal(t, "c:/projects/", update.Path)
	})

	t.Run("a path that is its own completion is entered", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.HandleEdit("c:/solo/only")
		assert.True(t, update.Navigate)
		assert.Equal(t, "c:/solo/only/", update.Path)
	})

	t.Run("a lone drive letter is entered", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		update := editor.HandleEdit("c")
		assert.True(t, update.Navigate)
		assert.Equal(t, "c:/", update.Path)
	})

	t.Run("ambiguous text does nothing", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		assert.Equal(t, pathedit.Update{}, editor.HandleEdit("c:/projects/alpha"))
	})

	t.Run("dead text does nothing", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)
		assert.Equal(t, pathedit.Update{}, editor.HandleEdit("c:/nothing/here"))
	})

	t.Run("editing drops pending suggestions", func(t *testing.T) {
		editor := pathedit.New(editorTree(t), nil)

		first := editor.TabComplete("c:/projects/alph")
		assert.Equal(t, "c:/projects/alpha", first.Text)

		editor.HandleEdit("c:/projects/alph")

		again := editor.TabComplete("c:/projects/alph")
		assert.Equal(t, "c:/projects/alpha", again.Text, "the cycle restarts")
	})
}

func TestShowPath(t *testing.T) {
	editor := pathedit.New(editorTree(t), nil)

	update := editor.ShowPath("c:/projects")
	assert.True(t, update.SetText)
	assert.Equal(t, "c:/projects/", update.Text)
	assert.False(t, update.Navigate)

	update = editor.ShowPath("")
	assert.True(t, update.SetText)
	assert.Equal(t, "", update.Text)
}
