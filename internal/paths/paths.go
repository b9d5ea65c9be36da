// Package paths implements the path resolution and tab-completion
// engine: separator/case normalization, deepest-valid-ancestor
// splitting, incremental completion, and collision-free versioned
// naming.
//
// All functions treat both '/' and '\' as separators regardless of the
// host OS, so behavior is deterministic everywhere, and take the
// filesystem as an injected capability so they can run against an
// in-memory tree in tests. Ignored paths behave as if they do not
// exist.
package paths

import (
	"fmt"
	"strings"

	"explorer/internal/errors"
	"explorer/internal/fs"
	"explorer/internal/regextools"
)

const separators = "/\\"

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// hasDrive reports whether path starts with a drive specifier like "c:".
func hasDrive(path string) bool {
	return len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0])
}

// Normalize normalizes a path: '.' and '..' segments are resolved,
// repeated separators collapse, the path is case-folded, and every
// separator is rewritten to the requested one. The separator must be
// "/" or "\"; anything else is an InvalidSeparator error.
//
// Pure and deterministic: no filesystem access, and idempotent.
func Normalize(path, separator string) (string, error) {
	if separator != "/" && separator != "\\" {
		return "", errors.NewPathError("invalid path separator", separator, errors.InvalidSeparator, nil)
	}

	p := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))

	var drive string
	if hasDrive(p) {
		drive, p = p[:2], p[2:]
	}
	rooted := strings.HasPrefix(p, "/")

	var out []string
	for _, segment := range strings.Split(p, "/") {
		switch segment {
		case "", ".":
			// Collapsed.
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !rooted {
				out = append(out, "..")
			}
		default:
			out = append(out, segment)
		}
	}

	result := strings.Join(out, "/")
	if rooted {
		result = "/" + result
	}
	result = drive + result
	if result == "" {
		result = "."
	}
	if separator == "\\" {
		result = strings.ReplaceAll(result, "/", "\\")
	}
	return result, nil
}

// Split splits off the final path component, like the OS head/basename
// split: the head keeps its trailing separator only when it is a root
// ("c:/" or "/"). Both separator styles are recognized.
func Split(path string) (head, tail string) {
	var drive string
	p := path
	if hasDrive(p) {
		drive, p = p[:2], p[2:]
	}

	i := strings.LastIndexAny(p, separators)
	head, tail = p[:i+1], p[i+1:]
	if head != "" && strings.Trim(head, separators) != "" {
		head = strings.TrimRight(head, separators)
	}
	return drive + head, tail
}

// Join joins a directory and an entry name without normalizing either.
func Join(directory, name string) string {
	if directory == "" {
		return name
	}
	if strings.ContainsRune(separators, rune(directory[len(directory)-1])) {
		return directory + name
	}
	return directory + "/" + name
}

// SplitExt splits a basename into (stem, extension) at the last dot. A
// leading dot on an otherwise extensionless hidden-file name is not an
// extension separator: ".foo" has stem ".foo" and no extension.
func SplitExt(basename string) (stem, ext string) {
	i := strings.LastIndexByte(basename, '.')
	if i <= 0 {
		return basename, ""
	}
	if strings.Trim(basename[:i], ".") == "" {
		return basename, ""
	}
	return basename[:i], basename[i:]
}

// IsDir reports whether path is an existing directory that is not
// excluded by the ignore matcher. Ignored paths behave as nonexistent.
func IsDir(fsys fs.Filesystem, path string, ignore *regextools.ListMatcher) bool {
	if path == "" {
		return false
	}
	if !fsys.IsDir(path) {
		return false
	}
	if ignore != nil && ignore.Fullmatch(path) {
		return false
	}
	return true
}

// ListDir returns the entry names of path with ignored names removed.
func ListDir(fsys fs.Filesystem, path string, ignore *regextools.ListMatcher) ([]string, error) {
	names, err := fsys.ListDir(path)
	if err != nil {
		return nil, err
	}
	if ignore == nil {
		return names, nil
	}
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !ignore.Fullmatch(name) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}

// ValidSplit splits the given path into a valid head and the basename
// immediately following it. The head is the deepest ancestor that
// exists as a (non-ignored) directory; the remainder of the path after
// the basename is not returned. When no valid head exists the head is
// the empty string and the tail is the basename of the last split
// performed, not the whole remaining suffix.
func ValidSplit(fsys fs.Filesystem, path string, ignore *regextools.ListMatcher) (head, tail string) {
	head = path
	for {
		prev := head
		head, tail = Split(head)

		// Check if a valid head has been found.
		if IsDir(fsys, head, ignore) {
			break
		}

		// Handle the no valid head case. An unsplittable invalid root
		// (a nonexistent drive) also terminates here.
		if head == "" {
			break
		}
		if head == prev {
			head = ""
			break
		}
	}
	return strings.TrimSpace(head), strings.TrimSpace(tail)
}

// Complete returns the completion candidates for a partially typed
// path: the entries of the deepest valid ancestor whose names start
// (case-insensitively) with the typed remainder. Candidates are full
// paths that never end in a separator, in listing order. No
// directory-vs-file filtering happens here; callers that want only
// directories filter the result.
//
// The result is always a slice; empty means nothing to offer. The
// branch order below is fixed — later branches assume the earlier ones
// did not match.
func Complete(fsys fs.Filesystem, path string, ignore *regextools.ListMatcher) []string {
	path = strings.TrimSpace(path)

	// Nothing typed means nothing to offer.
	if path == "" {
		return []string{}
	}

	// Complete drive letters.
	if len(path) == 1 {
		path += ":"
		if IsDir(fsys, path, ignore) {
			return []string{path}
		}
		return []string{}
	}
	if len(path) == 2 && path[1] == ':' {
		if IsDir(fsys, path, ignore) {
			return []string{path}
		}
		return []string{}
	}

	// A path that already names a directory and ends in a separator is
	// its own completion.
	if strings.ContainsAny(path[len(path)-1:], separators) && IsDir(fsys, path, ignore) {
		return []string{path}
	}

	head, tail := ValidSplit(fsys, path, ignore)

	// If there is no valid head, then we can't do anything.
	if head == "" {
		return []string{}
	}

	names, err := ListDir(fsys, head, ignore)
	if err != nil {
		return []string{}
	}

	tail = strings.ToLower(tail)
	candidates := []string{}
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), tail) {
			candidates = append(candidates, Join(head, name))
		}
	}
	return candidates
}

// VersionedName returns a path in directory for the given basename that
// does not currently exist. A free name is returned untouched;
// otherwise an incrementing counter is appended, before the extension
// by default or after the whole name when atEnd is set.
//
// Each candidate is checked against the live filesystem; the window
// between this check and the caller's create is accepted, and the
// caller's create call is where an "already exists" failure surfaces.
func VersionedName(fsys fs.Filesystem, directory, basename string, atEnd bool) string {
	if !fsys.Exists(Join(directory, basename)) {
		return Join(directory, basename)
	}

	stem, ext := SplitExt(basename)
	for counter := 0; ; counter++ {
		var candidate string
		if atEnd {
			candidate = fmt.Sprintf("%s_%d", basename, counter)
		} else {
			candidate = fmt.Sprintf("%s_%d%s", stem, counter, ext)
		}

		path := Join(directory, candidate)
		if !fsys.Exists(path) {
			return path
		}
	}
}
