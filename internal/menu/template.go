// Package menu evaluates declarative context-menu item specs against
// the current selection: command templates are scanned for the fields
// they use, enablement rules run in a fixed order, and enabled entries
// get a rendered, quoted command string.
package menu

import (
	"strconv"
	"strings"

	"explorer/internal/errors"
)

// Fields is what a template scan found: the highest positional index
// referenced (-1 when none) and the set of named fields. Scanning is
// separate from substitution so enablement and rendering stay
// independently testable.
type Fields struct {
	PositionalMax int
	Named         map[string]bool
}

// ScanTemplate parses the command template for placeholder references.
// Templates use brace placeholders: {0}, {selected}, with {{ and }}
// as literal braces. A format spec after ':' does not contribute to
// the field name.
func ScanTemplate(command string) (Fields, error) {
	fields := Fields{PositionalMax: -1, Named: map[string]bool{}}

	for i := 0; i < len(command); i++ {
		switch command[i] {
		case '}':
			if i+1 < len(command) && command[i+1] == '}' {
				i++
				continue
			}
			return fields, errors.New("single '}' in command template")
		case '{':
			if i+1 < len(command) && command[i+1] == '{' {
				i++
				continue
			}
			end := strings.IndexByte(command[i:], '}')
			if end < 0 {
				return fields, errors.New("single '{' in command template")
			}
			name := command[i+1 : i+end]
			if cut := strings.IndexAny(name, ":!"); cut >= 0 {
				name = name[:cut]
			}
			if index, err := strconv.Atoi(name); err == nil && index >= 0 {
				if index > fields.PositionalMax {
					fields.PositionalMax = index
				}
			} else {
				fields.Named[name] = true
			}
			i += end
		}
	}
	return fields, nil
}

// RenderTemplate substitutes the positional arguments and named fields
// into the command template, producing the literal command string. A
// referenced field with no substitution available is a
// TemplateFieldMissing error.
func RenderTemplate(command string, positional []string, named map[string]string) (string, error) {
	var out strings.Builder

	for i := 0; i < len(command); i++ {
		switch command[i] {
		case '}':
			if i+1 < len(command) && command[i+1] == '}' {
				out.WriteByte('}')
				i++
				continue
			}
			return "", errors.New("single '}' in command template")
		case '{':
			if i+1 < len(command) && command[i+1] == '{' {
				out.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(command[i:], '}')
			if end < 0 {
				return "", errors.New("single '{' in command template")
			}
			name := command[i+1 : i+end]
			if cut := strings.IndexAny(name, ":!"); cut >= 0 {
				name = name[:cut]
			}

			if index, err := strconv.Atoi(name); err == nil && index >= 0 {
				if index >= len(positional) {
					return "", errors.NewKind("no argument for field "+name, errors.TemplateFieldMissing)
				}
				out.WriteString(positional[index])
			} else {
				value, ok := named[name]
				if !ok {
					return "", errors.NewKind("unsupported field "+name, errors.TemplateFieldMissing)
				}
				out.WriteString(value)
			}
			i += end
		default:
			out.WriteByte(command[i])
		}
	}
	return out.String(), nil
}
