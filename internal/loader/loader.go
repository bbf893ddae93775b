package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/goliatone/go-formcode/pkg/source"
)

var (
	// ErrHTTPDisabled is returned for URL sources when remote loading is off.
	ErrHTTPDisabled = errors.New("loader: http support disabled")
	// ErrNoFileSystem is returned for fs sources when no fs.FS was configured.
	ErrNoFileSystem = errors.New("loader: no file system configured")
)

// fetchFunc reads the raw payload behind a location.
type fetchFunc func(ctx context.Context, location string) ([]byte, error)

// Loader resolves form documents from local paths, an injected fs.FS or
// HTTP(S), depending on the source kind.
type Loader struct {
	fetchers map[source.SourceKind]fetchFunc
}

var _ source.Loader = (*Loader)(nil)

// New constructs a Loader. URL sources stay disabled unless options carry an
// HTTP client or AllowHTTP.
func New(options source.LoaderOptions) *Loader {
	l := &Loader{fetchers: map[source.SourceKind]fetchFunc{
		source.SourceKindFile: readPath,
		source.SourceKindFS:   readFS(options.FileSystem),
		source.SourceKindURL:  disabledHTTP,
	}}
	if client := httpClient(options); client != nil {
		l.fetchers[source.SourceKindURL] = remote{client: client, timeout: options.RequestTimeout}.fetch
	}
	return l
}

// Load fetches the payload for src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src source.Source) (source.Document, error) {
	if src == nil {
		return source.Document{}, errors.New("loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return source.Document{}, err
	}
	fetch, ok := l.fetchers[src.Kind()]
	if !ok {
		return source.Document{}, fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if src.Location() == "" {
		return source.Document{}, fmt.Errorf("loader: %s location is required", src.Kind())
	}
	data, err := fetch(ctx, src.Location())
	if err != nil {
		return source.Document{}, err
	}
	return source.NewDocument(src, data)
}

func httpClient(options source.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	case options.AllowHTTP:
		return &http.Client{Timeout: options.RequestTimeout}
	default:
		return nil
	}
}

func disabledHTTP(context.Context, string) ([]byte, error) {
	return nil, ErrHTTPDisabled
}

// fsys is resolved at construction; a nil fs.FS fails each lookup.
func readFS(fsys fs.FS) fetchFunc {
	return func(_ context.Context, name string) ([]byte, error) {
		if fsys == nil {
			return nil, ErrNoFileSystem
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", name, err)
		}
		return data, nil
	}
}
