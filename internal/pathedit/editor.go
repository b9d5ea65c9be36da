// Package pathedit holds the decision logic of the path line edit: tab
// completion with cycling, and the navigate-as-you-type rules. It owns
// no widget; the UI layer feeds it text transitions and applies the
// updates it returns.
package pathedit

import (
	"strings"

	"explorer/internal/fs"
	"explorer/internal/paths"
	"explorer/internal/regextools"
)

// Separator is the canonical separator shown in the edit box.
const Separator = "/"

// ComputerRoot is the navigation target when no concrete directory is
// named (blank text, or a drive root collapsed away).
const ComputerRoot = "This PC"

// Update tells the UI layer what to do after an input event.
type Update struct {
	// SetText asks the edit box to replace its content with Text.
	SetText bool
	Text    string

	// Navigate asks the view to move its root to Path.
	Navigate bool
	Path     string
}

// Editor is the path-edit state machine. Tab suggestions survive only
// until the next non-tab input event.
type Editor struct {
	fsys   fs.Filesystem
	ignore *regextools.ListMatcher

	// lastSet is the last text set programmatically, used to detect
	// the user deleting a trailing separator.
	lastSet     string
	suggestions *paths.Cycle
}

// New creates an editor over the given filesystem.
func New(fsys fs.Filesystem, ignore *regextools.ListMatcher) *Editor {
	return &Editor{fsys: fsys, ignore: ignore}
}

// SetIgnore replaces the ignore matcher used for completion.
func (e *Editor) SetIgnore(ignore *regextools.ListMatcher) {
	e.ignore = ignore
}

// completions returns the directory completions of text, normalized
// for display. Files are filtered out here: the path edit only
// navigates to directories.
func (e *Editor) completions(text string) []string {
	var dirs []string
	for _, candidate := range paths.Complete(e.fsys, text, e.ignore) {
		if !paths.IsDir(e.fsys, candidate, e.ignore) {
			continue
		}
		normalized, err := paths.Normalize(candidate, Separator)
		if err != nil {
			continue
		}
		dirs = append(dirs, normalized)
	}
	return dirs
}

func withSeparator(path string) string {
	if !strings.HasSuffix(path, Separator) {
		return path + Separator
	}
	return path
}

func (e *Editor) setText(text string) Update {
	e.lastSet = text
	return Update{SetText: true, Text: text}
}

// ShowPath updates the edit box to display a path chosen elsewhere
// (the view root moved by other means).
func (e *Editor) ShowPath(path string) Update {
	e.suggestions = nil
	if path == "" {
		return e.setText("")
	}
	normalized, err := paths.Normalize(path, Separator)
	if err != nil {
		return e.setText(path)
	}
	return e.setText(withSeparator(normalized))
}

// TabComplete handles the completion trigger key. A single candidate
// is accepted and navigated to immediately; several start a suggestion
// cycle that subsequent presses walk through.
func (e *Editor) TabComplete(text string) Update {
	if e.suggestions == nil {
		candidates := e.completions(text)

		switch len(candidates) {
		case 0:
			return Update{}
		case 1:
			path := withSeparator(candidates[0])
			update := e.setText(path)
			update.Navigate, update.Path = true, path
			return update
		}

		e.suggestions = paths.NewCycle(candidates)
		// Skip the first suggestion if it is already displayed.
		if text == candidates[0] {
			e.suggestions.Next()
		}
	}

	next, ok := e.suggestions.Next()
	if !ok {
		return Update{}
	}
	update := Update{SetText: true, Text: next}
	e.lastSet = next
	return update
}

// HandleEdit handles the user changing the text. Any pending tab
// suggestions are dropped. Blank text navigates to the computer root;
// deleting a trailing separator or typing a file path navigates to the
// parent directory; a path that is its own sole completion is entered
// directly.
func (e *Editor) HandleEdit(text string) Update {
	e.suggestions = nil

	if text == "" {
		return Update{Navigate: true, Path: ComputerRoot}
	}

	separatorDeleted := e.lastSet != "" &&
		strings.HasSuffix(e.lastSet, Separator) &&
		text == e.lastSet[:len(e.lastSet)-1]
	isFile := e.fsys.Exists(text) && !e.fsys.IsDir(text)

	if separatorDeleted || isFile {
		head, _ := paths.Split(text)
		if head == text {
			// The split did nothing, so the text is a bare root.
			update := e.setText("")
			update.Navigate, update.Path = true, ComputerRoot
			return update
		}
		normalized, err := paths.Normalize(head, Separator)
		if err != nil {
			return Update{}
		}
		path := withSeparator(normalized)
		update := e.setText(path)
		update.Navigate, update.Path = true, path
		return update
	}

	candidates := e.completions(text)
	if len(candidates) != 1 {
		// Nothing to do while the path is ambiguous or dead.
		return Update{}
	}

	normalized, err := paths.Normalize(text, Separator)
	if err != nil {
		return Update{}
	}
	// A lone letter is a drive in the making.
	if len(normalized) == 1 {
		normalized += ":"
	}

	// Enter the path once it is its own completion.
	if normalized == candidates[0] {
		path := withSeparator(normalized)
		update := e.setText(path)
		update.Navigate, update.Path = true, path
		return update
	}
	return Update{}
}
