package entry

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultFileName is the descriptor's base name, used both for the
	// working copy and for the installed file.
	DefaultFileName = "org.aoe4_overlay.desktop"

	// TypeApplication is the only entry type this tool installs.
	TypeApplication = "Application"
)

// Built-in defaults matching the overlay project layout.
const (
	defaultName     = "AOE4 Overlay"
	defaultComment  = "Screen capture overlay for AoE4 on Wayland"
	defaultIcon     = "assets/icon.png"
	defaultExec     = "target/release/aoe4_overlay"
	defaultCategory = "Game"
)

// Spec describes the desktop entry to be built and installed.
// Icon and Exec may start out relative; Finalize resolves them to
// absolute paths before the descriptor is written.
type Spec struct {
	FileName   string   `yaml:"file_name,omitempty" json:"file_name,omitempty"`
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Comment    string   `yaml:"comment,omitempty" json:"comment,omitempty"`
	Icon       string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	Exec       string   `yaml:"exec,omitempty" json:"exec,omitempty"`
	Categories []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	Type       string   `yaml:"type,omitempty" json:"type,omitempty"`
}

// SetDefaults fills in the built-in values for any field left empty.
func (s *Spec) SetDefaults() {
	if s.FileName == "" {
		s.FileName = DefaultFileName
	}
	if s.Name == "" {
		s.Name = defaultName
	}
	if s.Comment == "" {
		s.Comment = defaultComment
	}
	if s.Icon == "" {
		s.Icon = defaultIcon
	}
	if s.Exec == "" {
		s.Exec = defaultExec
	}
	if len(s.Categories) == 0 {
		s.Categories = []string{defaultCategory}
	}
	if s.Type == "" {
		s.Type = TypeApplication
	}
}

// Finalize resolves Icon and Exec against root so the installed
// descriptor is valid regardless of the directory a desktop
// environment reads it from. Already-absolute paths are kept as-is.
func (s *Spec) Finalize(root string) error {
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return errors.Wrap(err, "failed to resolve project root")
		}
		root = abs
	}
	if !filepath.IsAbs(s.Icon) {
		s.Icon = filepath.Join(root, s.Icon)
	}
	if !filepath.IsAbs(s.Exec) {
		s.Exec = filepath.Join(root, s.Exec)
	}
	return nil
}

// CategoryList renders Categories in the freedesktop category-list
// format: every entry followed by a semicolon, including the last.
func (s *Spec) CategoryList() string {
	if len(s.Categories) == 0 {
		return ""
	}
	return strings.Join(s.Categories, ";") + ";"
}
