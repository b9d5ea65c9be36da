// Package settings loads the user-editable view settings file. The
// format is JSON extended with // line comments; the shape covers the
// row filters, context-menu items, open-with associations, and icons.
package settings

import (
	"encoding/json"

	"explorer/internal/errors"
	"explorer/internal/fs"
	"explorer/internal/icons"
	"explorer/internal/menu"
)

// Settings is the parsed settings file.
type Settings struct {
	// RegexFilters hides rows whose full path fully matches any
	// pattern.
	RegexFilters []string `json:"regex_filters"`

	// ContextMenu is the ordered list of menu item specs.
	ContextMenu []menu.ItemSpec `json:"context_menu"`

	// OpenWith maps a file extension (".txt") to a command template
	// with a {path} field.
	OpenWith map[string]string `json:"open_with"`

	// TrashDirectory receives trashed items.
	TrashDirectory string `json:"trash_directory"`

	// Icons configures the file-view icon provider.
	Icons icons.Config `json:"icons"`
}

// StripComments removes // line comments from JSON text. Comment
// markers inside string literals are left alone.
func StripComments(text []byte) []byte {
	out := make([]byte, 0, len(text))
	inString := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inString:
			if c == '\\' && i+1 < len(text) {
				out = append(out, c, text[i+1])
				i++
				continue
			}
			if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			if i < len(text) {
				out = append(out, '\n')
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

// Parse decodes JSON-with-comments text.
func Parse(text []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(StripComments(text), &s); err != nil {
		return nil, errors.NewPathError("invalid settings", "", errors.InvalidSettings, err)
	}
	return &s, nil
}

// LoadFile reads and parses the settings file at path.
func LoadFile(fsys fs.Filesystem, path string) (*Settings, error) {
	text, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.NewPathError("cannot read settings", path, errors.SettingsNotFound, err)
	}
	return Parse(text)
}
