package fsview

import (
	"sort"
	"strings"

	"explorer/internal/fs"
	"explorer/internal/log"
	"explorer/internal/paths"
	"explorer/internal/regextools"
)

// SortOrder selects the intra-kind direction. Directory-before-file
// precedence never flips with it.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// View presents one directory of a Source re-sorted and filtered.
//
// Rows are addressed by view index; the view owns no data beyond the
// index mapping back into the source listing. Refresh is idempotent,
// so an external change notifier may trigger it at arbitrary times as
// long as calls into the view are serialized by the caller (the UI
// event loop in practice).
type View struct {
	source Source
	fsys   fs.Filesystem

	dir         string
	order       SortOrder
	ignore      *regextools.ListMatcher
	dynamicSort bool

	sourceEntries []Entry
	rows          []Entry // visible rows, view order
	viewToSource  []int   // view index -> source index

	onRefresh func(path string)
}

// NewView creates a view over source. The filesystem capability is
// needed for the direct rename path that case-only renames take.
func NewView(source Source, fsys fs.Filesystem) *View {
	return &View{
		source:      source,
		fsys:        fsys,
		order:       Ascending,
		dynamicSort: true,
	}
}

// SetOnRefresh installs the refresh/invalidate signal the UI layer
// listens to. The callback receives the path whose row changed, or ""
// for a whole-view refresh.
func (v *View) SetOnRefresh(fn func(path string)) {
	v.onRefresh = fn
}

// SetRoot points the view at a directory and loads it.
func (v *View) SetRoot(dir string) error {
	v.dir = dir
	return v.Refresh()
}

// Root returns the directory the view currently presents.
func (v *View) Root() string {
	return v.dir
}

// SetRegexFilters compiles the given patterns into the active ignore
// matcher and reapplies the filter. An empty list stops filtering
// (junctions stay hidden regardless). A malformed pattern fails fast
// and leaves the previous filter in place.
func (v *View) SetRegexFilters(filters []string) error {
	if len(filters) == 0 {
		v.ignore = nil
		return v.Refresh()
	}
	matcher, err := regextools.NewListMatcher(filters)
	if err != nil {
		return err
	}
	v.ignore = matcher
	return v.Refresh()
}

// SetSortOrder sets the intra-kind sort direction and re-sorts.
func (v *View) SetSortOrder(order SortOrder) error {
	v.order = order
	return v.Refresh()
}

// Refresh re-lists the source and reapplies filtering and sorting.
// Calling it twice in a row yields the same rows.
func (v *View) Refresh() error {
	if v.dir == "" {
		v.sourceEntries, v.rows, v.viewToSource = nil, nil, nil
		return nil
	}

	entries, err := v.source.Entries(v.dir)
	if err != nil {
		return err
	}
	v.sourceEntries = entries
	v.applyFilter()
	if v.dynamicSort {
		v.applySort()
	}
	return nil
}

// applyFilter rebuilds the visible rows and the view-to-source mapping.
func (v *View) applyFilter() {
	v.rows = v.rows[:0]
	v.viewToSource = v.viewToSource[:0]
	for i, entry := range v.sourceEntries {
		if !v.acceptsRow(entry) {
			continue
		}
		v.rows = append(v.rows, entry)
		v.viewToSource = append(v.viewToSource, i)
	}
}

// acceptsRow applies the filtering: junctions are always hidden
// because native tree models handle them poorly and can loop; beyond
// that a row is hidden iff its full path fully matches the active
// ignore matcher.
func (v *View) acceptsRow(entry Entry) bool {
	if entry.Junction {
		return false
	}
	if v.ignore != nil && v.ignore.Fullmatch(entry.Path) {
		return false
	}
	return true
}

// applySort sorts the visible rows, keeping the index mapping aligned.
func (v *View) applySort() {
	order := make([]int, len(v.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return v.less(v.rows[order[a]], v.rows[order[b]])
	})

	rows := make([]Entry, len(v.rows))
	mapping := make([]int, len(v.viewToSource))
	for i, j := range order {
		rows[i] = v.rows[j]
		mapping[i] = v.viewToSource[j]
	}
	v.rows, v.viewToSource = rows, mapping
}

// less sorts directories before files regardless of sort order, then
// case-insensitively lexicographically by full path within a kind.
func (v *View) less(left, right Entry) bool {
	if left.Dir != right.Dir {
		return left.Dir
	}
	l, r := strings.ToLower(left.Path), strings.ToLower(right.Path)
	if v.order == Ascending {
		return l < r
	}
	return l > r
}

// Len returns the number of visible rows.
func (v *View) Len() int {
	return len(v.rows)
}

// Row returns the visible row at the given view index.
func (v *View) Row(index int) (Entry, bool) {
	if index < 0 || index >= len(v.rows) {
		return Entry{}, false
	}
	return v.rows[index], true
}

// FilePath returns the path of the row, or "" if out of range.
func (v *View) FilePath(index int) string {
	entry, ok := v.Row(index)
	if !ok {
		return ""
	}
	return entry.Path
}

// FileName returns the basename of the row, or "" if out of range.
func (v *View) FileName(index int) string {
	entry, ok := v.Row(index)
	if !ok {
		return ""
	}
	_, name := paths.Split(entry.Path)
	return name
}

// IsDir reports whether the row at the given view index is a
// directory, delegating to the source.
func (v *View) IsDir(index int) bool {
	entry, ok := v.Row(index)
	return ok && v.source.IsDir(entry.Path)
}

// PathIndex returns the view index of the given path, or -1.
func (v *View) PathIndex(path string) int {
	for i, entry := range v.rows {
		if strings.EqualFold(entry.Path, path) {
			return i
		}
	}
	return -1
}

// SourceIndex maps a view index to its row in the source listing, or
// -1 if out of range.
func (v *View) SourceIndex(index int) int {
	if index < 0 || index >= len(v.viewToSource) {
		return -1
	}
	return v.viewToSource[index]
}

// Remove removes the row's entry through the source. Dynamic
// re-sorting is suspended for the duration of the removal and applied
// once afterward, so index mappings are never invalidated mid-removal.
// Failure is reported as false.
func (v *View) Remove(index int) bool {
	entry, ok := v.Row(index)
	if !ok {
		return false
	}

	v.dynamicSort = false
	err := v.source.Remove(entry.Path)
	if err == nil {
		// Drop the row in place; positions of remaining rows shift but
		// their relative order is untouched.
		i := index
		v.rows = append(v.rows[:i], v.rows[i+1:]...)
		v.viewToSource = append(v.viewToSource[:i], v.viewToSource[i+1:]...)
	}
	v.dynamicSort = true

	if err != nil {
		log.Warnf("remove failed: %v", err)
		return false
	}
	if refreshErr := v.Refresh(); refreshErr != nil {
		log.Warnf("refresh after remove failed: %v", refreshErr)
	}
	v.signalRefresh("")
	return true
}

// Rename commits an edited name for the row. A name differing from the
// old one only by letter case is renamed through the filesystem call
// directly — model layers on case-insensitive filesystems otherwise
// reject or no-op it — and the refresh signal is emitted for the row.
// Other renames pass through the source. Failure is reported as false,
// never thrown.
func (v *View) Rename(index int, newName string) bool {
	entry, ok := v.Row(index)
	if !ok {
		return false
	}

	dir, oldName := paths.Split(entry.Path)
	if newName == oldName || newName == "" {
		return true
	}
	newPath := paths.Join(dir, newName)

	if strings.EqualFold(oldName, newName) {
		if err := v.fsys.Rename(entry.Path, newPath); err != nil {
			log.Warnf("case-only rename failed: %v", err)
			return false
		}
		v.rows[index].Path = newPath
		v.signalRefresh(newPath)
		return true
	}

	if err := v.source.Rename(entry.Path, newPath); err != nil {
		log.Warnf("rename failed: %v", err)
		return false
	}
	if err := v.Refresh(); err != nil {
		log.Warnf("refresh after rename failed: %v", err)
	}
	v.signalRefresh(newPath)
	return true
}

func (v *View) signalRefresh(path string) {
	if v.onRefresh != nil {
		v.onRefresh(path)
	}
}
