package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	pkgmodel "github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/source"
)

// MustLoadForm reads a YAML form fixture and completes derivable attributes.
// Testing helpers fail the test on error to keep case tables concise.
func MustLoadForm(t *testing.T, path string) pkgmodel.Form {
	t.Helper()

	form, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// LoadForm returns a completed form without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadForm(path string) (pkgmodel.Form, error) {
	if path == "" {
		return pkgmodel.Form{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.Form{}, fmt.Errorf("testsupport: read form: %w", err)
	}
	return DecodeForm(data)
}

// DecodeForm parses a YAML (or JSON) form document and completes it.
func DecodeForm(data []byte) (pkgmodel.Form, error) {
	form, err := source.Decode(data, source.FormatYAML)
	if err != nil {
		return pkgmodel.Form{}, fmt.Errorf("testsupport: %w", err)
	}
	return form, nil
}

// Case is one txtar archive with its sections keyed by file name.
type Case struct {
	Name    string
	Comment string
	Files   map[string]string
}

// File returns the named section, failing the test when it is missing.
func (c Case) File(t *testing.T, name string) string {
	t.Helper()
	data, ok := c.Files[name]
	if !ok {
		t.Fatalf("case %s: missing section %q", c.Name, name)
	}
	return data
}

// Lines returns the non-blank lines of the named section with surrounding
// whitespace trimmed. Missing sections yield nil.
func (c Case) Lines(name string) []string {
	var out []string
	for _, line := range strings.Split(c.Files[name], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// MustLoadCases reads every *.txtar archive in dir, sorted by name.
func MustLoadCases(t *testing.T, dir string) []Case {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob cases: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no txtar cases under %s", dir)
	}
	sort.Strings(paths)

	cases := make([]Case, 0, len(paths))
	for _, path := range paths {
		archive, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		c := Case{
			Name:    strings.TrimSuffix(filepath.Base(path), ".txtar"),
			Comment: strings.TrimSpace(string(archive.Comment)),
			Files:   make(map[string]string, len(archive.Files)),
		}
		for _, file := range archive.Files {
			c.Files[file.Name] = string(file.Data)
		}
		cases = append(cases, c)
	}
	return cases
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting it
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
