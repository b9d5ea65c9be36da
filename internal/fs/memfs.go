package fs

import (
	"fmt"
	"os"
	"strings"
)

// MemFS is a deterministic in-memory Filesystem used by tests. Name
// lookups are case-insensitive and listing order is insertion order,
// mirroring the case-preserving, case-insensitive filesystems the
// completion engine was designed around. Drive-letter roots ("c:") and
// a unix root ("/") are both supported, so drive handling is testable
// on any host.
type MemFS struct {
	roots []*memNode
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type memNode struct {
	name     string // display name, case preserved
	dir      bool
	junction bool
	data     []byte
	children []*memNode
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{}
}

// segments splits an absolute path into a root name followed by entry
// names, case preserved. Relative paths are not supported and yield
// nil.
func segments(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")

	var root, rest string
	switch {
	case strings.HasPrefix(path, "/"):
		root, rest = "/", path[1:]
	case len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]):
		root, rest = path[:2], strings.TrimPrefix(path[2:], "/")
	default:
		return nil
	}

	segs := []string{root}
	for _, part := range strings.Split(rest, "/") {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

func (n *memNode) child(name string) *memNode {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

func (n *memNode) detach(child *memNode) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// find walks to the node for path, also returning its parent. The
// parent is nil for roots and for paths that do not resolve.
func (m *MemFS) find(path string) (parent, node *memNode) {
	segs := segments(path)
	if segs == nil {
		return nil, nil
	}

	var root *memNode
	for _, r := range m.roots {
		if strings.EqualFold(r.name, segs[0]) {
			root = r
			break
		}
	}
	if root == nil {
		return nil, nil
	}

	node = root
	for _, name := range segs[1:] {
		next := node.child(name)
		if next == nil {
			return nil, nil
		}
		parent, node = node, next
	}
	return parent, node
}

// AddDir creates a directory, making parents (and the root) as needed.
func (m *MemFS) AddDir(path string) {
	segs := segments(path)
	if segs == nil {
		panic(fmt.Sprintf("memfs: relative path %q", path))
	}

	var root *memNode
	for _, r := range m.roots {
		if strings.EqualFold(r.name, segs[0]) {
			root = r
			break
		}
	}
	if root == nil {
		root = &memNode{name: segs[0], dir: true}
		m.roots = append(m.roots, root)
	}

	node := root
	for _, name := range segs[1:] {
		next := node.child(name)
		if next == nil {
			next = &memNode{name: name, dir: true}
			node.children = append(node.children, next)
		}
		node = next
	}
}

// AddFile creates a file (and its parents) with the given contents.
func (m *MemFS) AddFile(path string, data []byte) {
	head, base := splitLast(path)
	m.AddDir(head)
	_, dir := m.find(head)
	if child := dir.child(base); child != nil {
		child.data = data
		return
	}
	dir.children = append(dir.children, &memNode{name: base, data: data})
}

// AddJunction creates a directory marked as a junction point.
func (m *MemFS) AddJunction(path string) {
	m.AddDir(path)
	_, node := m.find(path)
	node.junction = true
}

// splitLast splits off the last path component, tolerating both
// separator styles.
func splitLast(path string) (head, base string) {
	trimmed := strings.TrimRight(path, "/\\")
	i := strings.LastIndexAny(trimmed, "/\\")
	if i < 0 {
		return "", trimmed
	}
	return trimmed[:i], trimmed[i+1:]
}

func (m *MemFS) IsDir(path string) bool {
	_, node := m.find(path)
	return node != nil && node.dir
}

func (m *MemFS) Exists(path string) bool {
	_, node := m.find(path)
	return node != nil
}

func (m *MemFS) ListDir(path string) ([]string, error) {
	_, node := m.find(path)
	if node == nil || !node.dir {
		return nil, fmt.Errorf("memfs: list %s: %w", path, os.ErrNotExist)
	}
	names := make([]string, 0, len(node.children))
	for _, c := range node.children {
		names = append(names, c.name)
	}
	return names, nil
}

func (m *MemFS) IsJunction(path string) bool {
	_, node := m.find(path)
	return node != nil && node.junction
}

func (m *MemFS) Rename(oldPath, newPath string) error {
	oldParent, node := m.find(oldPath)
	if node == nil {
		return fmt.Errorf("memfs: rename %s: %w", oldPath, os.ErrNotExist)
	}

	newHead, newBase := splitLast(newPath)
	_, target := m.find(newPath)
	if target == node {
		// Case-only rename: same entry, new display name.
		node.name = newBase
		return nil
	}
	if target != nil {
		return fmt.Errorf("memfs: rename %s: %w", newPath, os.ErrExist)
	}

	_, newDir := m.find(newHead)
	if newDir == nil || !newDir.dir {
		return fmt.Errorf("memfs: rename into %s: %w", newHead, os.ErrNotExist)
	}
	if oldParent != nil {
		oldParent.detach(node)
	}
	node.name = newBase
	newDir.children = append(newDir.children, node)
	return nil
}

func (m *MemFS) Remove(path string) error {
	parent, node := m.find(path)
	if node == nil {
		return fmt.Errorf("memfs: remove %s: %w", path, os.ErrNotExist)
	}
	if parent == nil {
		return fmt.Errorf("memfs: remove root %s", path)
	}
	parent.detach(node)
	return nil
}

func (m *MemFS) Create(path string) error {
	head, base := splitLast(path)
	_, dir := m.find(head)
	if dir == nil || !dir.dir {
		return fmt.Errorf("memfs: create in %s: %w", head, os.ErrNotExist)
	}
	if dir.child(base) != nil {
		return nil
	}
	dir.children = append(dir.children, &memNode{name: base})
	return nil
}

func (m *MemFS) Mkdir(path string) error {
	head, base := splitLast(path)
	_, dir := m.find(head)
	if dir == nil || !dir.dir {
		return fmt.Errorf("memfs: mkdir in %s: %w", head, os.ErrNotExist)
	}
	if dir.child(base) != nil {
		return fmt.Errorf("memfs: mkdir %s: %w", path, os.ErrExist)
	}
	dir.children = append(dir.children, &memNode{name: base, dir: true})
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	_, node := m.find(path)
	if node == nil || node.dir {
		return nil, fmt.Errorf("memfs: read %s: %w", path, os.ErrNotExist)
	}
	return append([]byte(nil), node.data...), nil
}

func (m *MemFS) WriteFile(path string, data []byte) error {
	head, base := splitLast(path)
	_, dir := m.find(head)
	if dir == nil || !dir.dir {
		return fmt.Errorf("memfs: write in %s: %w", head, os.ErrNotExist)
	}
	if child := dir.child(base); child != nil {
		if child.dir {
			return fmt.Errorf("memfs: write %s: is a directory", path)
		}
		child.data = append([]byte(nil), data...)
		return nil
	}
	dir.children = append(dir.children, &memNode{name: base, data: append([]byte(nil), data...)})
	return nil
}
