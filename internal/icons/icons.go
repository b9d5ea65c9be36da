// Package icons resolves file-view icons from a declarative settings
// structure: entry kinds and filename glob patterns map to either an
// image path or a font glyph. Loaded references are memoized in an
// explicit cache owned by the caller and invalidated on settings
// reloads — not a process-wide singleton.
package icons

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"explorer/internal/errors"
	"explorer/internal/paths"
)

// Kind is an entry category with a dedicated icon slot.
type Kind string

// Kinds with configurable icons.
const (
	Computer Kind = "Computer"
	Desktop  Kind = "Desktop"
	Trashcan Kind = "Trashcan"
	Network  Kind = "Network"
	Drive    Kind = "Drive"
	Folder   Kind = "Folder"
	File     Kind = "File"
)

// Ref names an icon without drawing it: either an image path, or a
// font family plus glyph text. The zero Ref means "no icon".
type Ref struct {
	Image string
	Font  string
	Glyph string
}

// IsZero reports whether the reference names no icon.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// Spec is one icon specifier from the settings file: an image path
// string, a [font-family, glyph] pair, or null for no icon.
type Spec struct {
	ref   Ref
	valid bool
}

func (s *Spec) UnmarshalJSON(data []byte) error {
	s.valid = true
	if string(data) == "null" {
		return nil
	}

	var image string
	if err := json.Unmarshal(data, &image); err == nil {
		s.ref = Ref{Image: image}
		return nil
	}

	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil && len(pair) == 2 {
		s.ref = Ref{Font: pair[0], Glyph: pair[1]}
		return nil
	}

	s.valid = false
	return errors.NewKind("unsupported icon specifier: "+string(data), errors.InvalidSettings)
}

// Config is the icon section of the settings file.
type Config struct {
	FontsToLoad []string        `json:"fonts_to_load"`
	Types       map[Kind]Spec   `json:"types"`
	Patterns    map[string]Spec `json:"patterns"`
	FileDefault Spec            `json:"file_default"`
}

// Cache memoizes loaded icon references by specifier key. Invalidate
// is tied to settings-file change notifications by the owner.
type Cache struct {
	refs map[string]Ref
}

// NewCache returns an empty icon cache.
func NewCache() *Cache {
	return &Cache{refs: map[string]Ref{}}
}

// Get returns the cached reference for key, loading it once.
func (c *Cache) Get(key string, load func() Ref) Ref {
	if ref, ok := c.refs[key]; ok {
		return ref
	}
	ref := load()
	c.refs[key] = ref
	return ref
}

// Len returns the number of cached references.
func (c *Cache) Len() int {
	return len(c.refs)
}

// Invalidate drops every cached reference.
func (c *Cache) Invalidate() {
	c.refs = map[string]Ref{}
}

type patternIcon struct {
	pattern string
	matcher glob.Glob
	ref     Ref
}

// Provider resolves icons for the file view.
type Provider struct {
	cache       *Cache
	types       map[Kind]Ref
	patterns    []patternIcon
	fileDefault Ref
	fonts       []string
}

// NewProvider builds a provider from the icon config, resolving every
// specifier through the given cache. A malformed filename pattern
// fails construction.
func NewProvider(cfg Config, cache *Cache) (*Provider, error) {
	p := &Provider{
		cache: cache,
		types: map[Kind]Ref{},
		fonts: append([]string(nil), cfg.FontsToLoad...),
	}

	for kind, spec := range cfg.Types {
		p.types[kind] = p.resolve(spec)
	}

	// Deterministic precedence for overlapping patterns.
	names := make([]string, 0, len(cfg.Patterns))
	for pattern := range cfg.Patterns {
		names = append(names, pattern)
	}
	sort.Strings(names)
	for _, pattern := range names {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewPatternError("invalid icon pattern", pattern, err)
		}
		p.patterns = append(p.patterns, patternIcon{
			pattern: pattern,
			matcher: matcher,
			ref:     p.resolve(cfg.Patterns[pattern]),
		})
	}

	p.fileDefault = p.resolve(cfg.FileDefault)
	return p, nil
}

// resolve loads a specifier's reference through the cache. Image paths
// are case-folded so equivalent spellings share an entry.
func (p *Provider) resolve(spec Spec) Ref {
	key := "image:" + strings.ToLower(spec.ref.Image)
	if spec.ref.Font != "" {
		key = "font:" + spec.ref.Font + "\x00" + spec.ref.Glyph
	}
	return p.cache.Get(key, func() Ref { return spec.ref })
}

// Fonts returns the font files the UI layer must load before glyph
// icons render.
func (p *Provider) Fonts() []string {
	return append([]string(nil), p.fonts...)
}

// IconForKind returns the icon for an entry category.
func (p *Provider) IconForKind(kind Kind) Ref {
	return p.types[kind]
}

// IconForFile returns the icon for a regular file: the first matching
// filename pattern wins, else the file default.
func (p *Provider) IconForFile(path string) Ref {
	_, name := paths.Split(path)
	for _, pi := range p.patterns {
		if pi.matcher.Match(name) {
			return pi.ref
		}
	}
	return p.fileDefault
}
