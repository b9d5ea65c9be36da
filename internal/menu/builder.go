package menu

import (
	"strings"

	"explorer/internal/regextools"
)

// ItemSpec is one declarative context-menu entry, loaded from the
// settings file. The command is a brace template over the quoted
// selection: positional fields {0}..{n}, plus the named fields
// {selected} (space-joined, individually quoted) and
// {current_directory} (quoted).
//
// ShowIfDisabled defaults to false: a disabled entry is omitted from
// the menu unless the spec asks for it to be shown.
type ItemSpec struct {
	Label          string   `json:"label"`
	Command        string   `json:"command"`
	Require        []string `json:"require,omitempty"`
	Exclude        []string `json:"exclude,omitempty"`
	ShowIfDisabled bool     `json:"show_if_disabled,omitempty"`
}

// Item is a produced menu entry. A disabled item carries no command.
type Item struct {
	Label   string
	Command string
	Enabled bool
}

// Build evaluates the specs against the live selection and current
// directory (empty string means none) and returns the menu entries to
// present, in spec order. A nil result means the menu is not shown at
// all. A malformed require/exclude pattern fails fast.
func Build(selection []string, currentDir string, specs []ItemSpec) ([]Item, error) {
	var items []Item

	for _, spec := range specs {
		enabled := true

		fields, scanErr := ScanTemplate(spec.Command)
		if scanErr != nil {
			// An unparsable template can never render; show the label
			// disabled so the configuration mistake is visible.
			items = append(items, Item{Label: spec.Label})
			continue
		}

		// Positional fields demand an exact arity match.
		if fields.PositionalMax >= 0 && len(selection) != fields.PositionalMax+1 {
			enabled = false
		}

		if enabled && fields.Named["selected"] && len(selection) == 0 {
			enabled = false
		}

		if enabled && fields.Named["current_directory"] && currentDir == "" {
			enabled = false
		}

		// Every selected item must match at least one require pattern;
		// require implies at least one qualifying item exists.
		if enabled && len(spec.Require) > 0 {
			matcher, err := regextools.NewListMatcher(spec.Require)
			if err != nil {
				return nil, err
			}
			if len(selection) == 0 {
				enabled = false
			}
			for _, path := range selection {
				if !matcher.Fullmatch(path) {
					enabled = false
					break
				}
			}
		}

		// No selected item may match any exclude pattern.
		if enabled && len(spec.Exclude) > 0 {
			matcher, err := regextools.NewListMatcher(spec.Exclude)
			if err != nil {
				return nil, err
			}
			for _, path := range selection {
				if matcher.Fullmatch(path) {
					enabled = false
					break
				}
			}
		}

		if !enabled {
			if spec.ShowIfDisabled {
				items = append(items, Item{Label: spec.Label})
			}
			continue
		}

		quoted := make([]string, 0, len(selection))
		for _, path := range selection {
			quoted = append(quoted, `"`+path+`"`)
		}
		named := map[string]string{
			"selected": strings.Join(quoted, " "),
		}
		if currentDir != "" {
			named["current_directory"] = `"` + currentDir + `"`
		}

		command, err := RenderTemplate(spec.Command, quoted, named)
		if err != nil {
			// The entry is still shown but forced disabled; other
			// entries render normally.
			items = append(items, Item{Label: spec.Label})
			continue
		}

		items = append(items, Item{Label: spec.Label, Command: command, Enabled: true})
	}

	return items, nil
}
