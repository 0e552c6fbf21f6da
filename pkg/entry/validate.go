package entry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks that a finalized spec can be written as a sane
// desktop entry. It does not replace desktop-file-edit's own format
// validation; it catches the mistakes that would otherwise surface as
// an opaque external tool failure.
func (s *Spec) Validate() error {
	if s.FileName == "" {
		return fmt.Errorf("file name must not be empty")
	}
	if !strings.HasSuffix(s.FileName, ".desktop") {
		return fmt.Errorf("file name must end in .desktop: %s", s.FileName)
	}
	if strings.ContainsRune(s.FileName, filepath.Separator) {
		return fmt.Errorf("file name must be a base name without directories: %s", s.FileName)
	}
	if s.Name == "" {
		return fmt.Errorf("entry name must not be empty")
	}
	if !filepath.IsAbs(s.Icon) {
		return fmt.Errorf("icon path must be absolute at install time: %s", s.Icon)
	}
	if !filepath.IsAbs(s.Exec) {
		return fmt.Errorf("exec path must be absolute at install time: %s", s.Exec)
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	for _, c := range s.Categories {
		if c == "" {
			return fmt.Errorf("categories must not contain empty entries")
		}
		if strings.Contains(c, ";") {
			return fmt.Errorf("category contains a semicolon, pass entries separately: %s", c)
		}
	}
	if s.Type != TypeApplication {
		return fmt.Errorf("unsupported entry type: %s", s.Type)
	}

	for field, value := range map[string]string{
		"name":    s.Name,
		"comment": s.Comment,
		"icon":    s.Icon,
		"exec":    s.Exec,
	} {
		if err := validateValue(field, value); err != nil {
			return err
		}
	}
	return nil
}

// validateValue rejects characters the .desktop key/value format
// cannot represent in a single line.
func validateValue(field, value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("%s contains a line break: %q", field, value)
	}
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("%s contains a NUL byte", field)
	}
	return nil
}
