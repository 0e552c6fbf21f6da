package entry

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse reads an installed .desktop descriptor back into a Spec.
// Only the keys this tool writes are recognized; unknown keys and
// localized variants are ignored. Used by the check command to verify
// an installed entry.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	inDesktopEntry := false
	seenSection := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inDesktopEntry = line == "[Desktop Entry]"
			if inDesktopEntry {
				seenSection = true
			}
			continue
		}
		if !inDesktopEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.Errorf("malformed line in desktop entry: %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			s.Name = value
		case "Comment":
			s.Comment = value
		case "Icon":
			s.Icon = value
		case "Exec":
			s.Exec = value
		case "Type":
			s.Type = value
		case "Categories":
			s.Categories = splitCategoryList(value)
		}
	}

	if !seenSection {
		return nil, errors.New("no [Desktop Entry] section found")
	}
	return &s, nil
}

// splitCategoryList undoes CategoryList: a trailing semicolon yields
// no empty final element.
func splitCategoryList(value string) []string {
	value = strings.TrimSuffix(value, ";")
	if value == "" {
		return nil
	}
	return strings.Split(value, ";")
}
