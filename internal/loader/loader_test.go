package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-formcode/pkg/source"
)

const contactYAML = `name: Contact Us
fields:
  - type: email
    label: Work Email
`

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contact.yaml")
	if err := os.WriteFile(path, []byte(contactYAML), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != contactYAML {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}

func TestLoader_FileMissing(t *testing.T) {
	_, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFile(filepath.Join(t.TempDir(), "nope.yaml")))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"forms/contact.yaml": {Data: []byte(contactYAML)},
		"forms/empty.yaml":   {Data: []byte("  \n")},
	}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), source.FromFS("forms/contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	form, err := doc.Form()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if form.Name != "Contact Us" || len(form.Fields) != 1 {
		t.Fatalf("unexpected form %+v", form)
	}

	if _, err := l.Load(context.Background(), source.FromFS("forms/empty.yaml")); !errors.Is(err, source.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoader_FSRequiresFileSystem(t *testing.T) {
	if _, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFS("a.yaml")); !errors.Is(err, ErrNoFileSystem) {
		t.Fatalf("expected ErrNoFileSystem, got %v", err)
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	_, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromURL("https://example.com/form.yaml"))
	if !errors.Is(err, ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/form.yaml":
			_, _ = w.Write([]byte(contactYAML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	l := New(source.NewLoaderOptions(source.WithHTTPClient(server.Client()), source.WithHTTP(time.Second)))

	doc, err := l.Load(context.Background(), source.FromURL(server.URL+"/form.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != contactYAML {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	if _, err := l.Load(context.Background(), source.FromURL(server.URL+"/missing.yaml")); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestLoader_Directory(t *testing.T) {
	if _, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFile(t.TempDir())); err == nil {
		t.Fatalf("expected error for a directory path")
	}
}

func TestLoader_HTTPSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chunk := make([]byte, 1<<16)
		for written := 0; written <= maxDocumentSize; written += len(chunk) {
			if _, err := w.Write(chunk); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	l := New(source.NewLoaderOptions(source.WithHTTPClient(server.Client())))
	if _, err := l.Load(context.Background(), source.FromURL(server.URL+"/big.yaml")); err == nil {
		t.Fatalf("expected size limit error")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(source.NewLoaderOptions()).Load(ctx, source.FromFile("contact.yaml"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	if _, err := New(source.NewLoaderOptions()).Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
