package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetGenFlags() {
	configFile = ""
	genOutputFile = ""
}

func TestGenCommand(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantLines   []string
	}{
		{
			name:        "built-in defaults",
			yamlContent: "",
			wantLines: []string{
				"[Desktop Entry]",
				"Name=AOE4 Overlay",
				"Categories=Game;",
				"Type=Application",
			},
		},
		{
			name: "config overrides",
			yamlContent: `
name: Custom Overlay
comment: My overlay
exec: build/overlay
`,
			wantLines: []string{
				"Name=Custom Overlay",
				"Comment=My overlay",
				"Categories=Game;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGenFlags()
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.yamlContent != "" {
				specFile := filepath.Join(tmpDir, "entry.yml")
				if err := os.WriteFile(specFile, []byte(tt.yamlContent), 0644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				configFile = specFile
			}
			genOutputFile = filepath.Join(tmpDir, "out.desktop")

			if err := GenCommand.RunE(GenCommand, nil); err != nil {
				t.Fatalf("gen failed: %v", err)
			}

			data, err := os.ReadFile(genOutputFile)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}
			content := string(data)

			for _, line := range tt.wantLines {
				if !strings.Contains(content, line) {
					t.Errorf("output missing %q:\n%s", line, content)
				}
			}

			// Icon and Exec must come out absolute, anchored at the
			// invocation directory.
			for _, key := range []string{"Icon=", "Exec="} {
				value := valueForKey(t, content, key)
				if !filepath.IsAbs(value) {
					t.Errorf("%s value is not absolute: %s", key, value)
				}
				if !strings.HasPrefix(value, tmpDir) {
					t.Errorf("%s value not under invocation dir %s: %s", key, tmpDir, value)
				}
			}
		})
	}
}

// Two gen runs from the same directory must produce identical bytes.
func TestGenCommandDeterministic(t *testing.T) {
	resetGenFlags()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	genOutputFile = filepath.Join(tmpDir, "first.desktop")
	if err := GenCommand.RunE(GenCommand, nil); err != nil {
		t.Fatalf("first gen failed: %v", err)
	}
	first, err := os.ReadFile(genOutputFile)
	if err != nil {
		t.Fatal(err)
	}

	genOutputFile = filepath.Join(tmpDir, "second.desktop")
	if err := GenCommand.RunE(GenCommand, nil); err != nil {
		t.Fatalf("second gen failed: %v", err)
	}
	second, err := os.ReadFile(genOutputFile)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("gen output differs between runs:\n--- first\n%s\n--- second\n%s", first, second)
	}
}

// A config discovered by the parent-directory walk anchors relative
// icon/exec paths at the project root, so running from a subdirectory
// gives the same absolute values as running from the root itself.
func TestGenCommandConfigAnchorsAtProjectRoot(t *testing.T) {
	resetGenFlags()
	root := t.TempDir()
	configPath := filepath.Join(root, ".config", "aoe4-desktop.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("name: Anchored Overlay\n"), 0644); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)
	genOutputFile = filepath.Join(nested, "out.desktop")

	if err := GenCommand.RunE(GenCommand, nil); err != nil {
		t.Fatalf("gen failed: %v", err)
	}

	data, err := os.ReadFile(genOutputFile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if got, want := valueForKey(t, content, "Icon="), filepath.Join(root, "assets/icon.png"); got != want {
		t.Errorf("Icon anchored at %s, want %s", got, want)
	}
	if got, want := valueForKey(t, content, "Exec="), filepath.Join(root, "target/release/aoe4_overlay"); got != want {
		t.Errorf("Exec anchored at %s, want %s", got, want)
	}
}

func valueForKey(t *testing.T, content, key string) string {
	t.Helper()
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, key) {
			return strings.TrimPrefix(line, key)
		}
	}
	t.Fatalf("no %s line in output:\n%s", key, content)
	return ""
}
