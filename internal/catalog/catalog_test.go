package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/digsim/internal/pattern"
)

// getTestdataPath returns path to testdata/catalogs.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "catalogs")
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	want := []string{
		"straight, 2 spaces",
		"straight, 3 spaces",
		"simple sawtooth",
		"double-tall sawtooth",
		"two-sided sawtooth",
		"offset sawtooth",
		"fish hook",
		"stair step",
	}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d styles, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("style %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	for _, e := range c.Entries {
		if _, err := e.Style(); err != nil {
			t.Errorf("built-in style %q is invalid: %v", e.Name, err)
		}
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "patterns: [\n"},
		{"missing style", "patterns:\n  - rows: [xo]\n"},
		{"duplicate style", "patterns:\n  - style: a\n    rows: [xo]\n  - style: A\n    rows: [ox]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEntryStyleDefersValidation(t *testing.T) {
	c, err := Parse([]byte("patterns:\n  - style: ragged\n    rows: [xoo, xo]\n"))
	if err != nil {
		t.Fatalf("Parse should accept malformed rows, got %v", err)
	}

	_, err = c.Entries[0].Style()
	if !errors.Is(err, pattern.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestLookupAndSelect(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	e, ok := c.Lookup("  Fish Hook ")
	if !ok || e.Name != "fish hook" {
		t.Errorf("Lookup: expected fish hook, got %q ok=%v", e.Name, ok)
	}
	if _, ok := c.Lookup("zigzag"); ok {
		t.Error("Lookup of unknown style should fail")
	}

	sel, err := c.Select([]string{"stair step", "straight, 2 spaces"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if names := sel.Names(); len(names) != 2 || names[0] != "stair step" || names[1] != "straight, 2 spaces" {
		t.Errorf("Select should keep requested order, got %v", names)
	}

	all, err := c.Select(nil)
	if err != nil || all.Len() != c.Len() {
		t.Errorf("empty Select should return everything, got %d err=%v", all.Len(), err)
	}

	if _, err := c.Select([]string{"zigzag"}); err == nil {
		t.Error("Select of unknown style should fail")
	}
	if _, err := c.Select([]string{"fish hook", "FISH HOOK"}); err == nil {
		t.Error("Select of the same style twice should fail")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(getTestdataPath(), log.New(&buf))

	c, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := []string{"straight, 2 spaces", "checker", "ragged"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("style %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if c.Entries[2].Source != filepath.Join(getTestdataPath(), "nested", "b.yml") {
		t.Errorf("unexpected source %q", c.Entries[2].Source)
	}

	out := buf.String()
	if !strings.Contains(out, "broken.yaml") {
		t.Errorf("expected warning about broken.yaml, got %q", out)
	}
	if !strings.Contains(out, "duplicate") {
		t.Errorf("expected warning about duplicate style, got %q", out)
	}
}

func TestLoaderLoadFileOrDir(t *testing.T) {
	file := filepath.Join(getTestdataPath(), "a.yaml")
	c, err := NewLoader(file, quietLogger()).Load()
	if err != nil {
		t.Fatalf("Load(file) failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 styles, got %d", c.Len())
	}

	if _, err := NewLoader(filepath.Join(getTestdataPath(), "missing.yaml"), quietLogger()).Load(); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := NewLoader(filepath.Join(getTestdataPath(), "broken.yaml"), quietLogger()).Load(); err == nil {
		t.Error("expected error for broken file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Nothing on disk: built-in catalog.
	c, err := Load("", quietLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("expected built-in catalog, got %d styles", c.Len())
	}

	// User catalog takes precedence over the built-in one.
	userDir := filepath.Join(home, ".digsim")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userFile := filepath.Join(userDir, "catalog.yaml")
	if err := os.WriteFile(userFile, []byte("patterns:\n  - style: mine\n    rows: [xo]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load("", quietLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if names := c.Names(); len(names) != 1 || names[0] != "mine" {
		t.Errorf("expected user catalog, got %v", names)
	}

	// A broken user catalog is reported and the built-in one is used.
	if err := os.WriteFile(userFile, []byte("patterns:\n  - style: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	c, err = Load("", log.New(&logs))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("expected built-in catalog after broken user file, got %v", c.Names())
	}
	if !strings.Contains(logs.String(), "ignoring catalog") || !strings.Contains(logs.String(), userFile) {
		t.Errorf("expected warning naming %s, got %q", userFile, logs.String())
	}

	// Custom path wins over everything.
	c, err = Load(filepath.Join(getTestdataPath(), "a.yaml"), quietLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected custom catalog, got %v", c.Names())
	}
}
