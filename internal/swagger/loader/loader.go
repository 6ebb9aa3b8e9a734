// Package loader fetches raw Swagger documents for the parsing stage. A
// single Loader serves all three source kinds; HTTP stays opt-in so offline
// runs never touch the network.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

// Loader implements pkgswagger.Loader. The fs.FS and HTTP client are fixed at
// construction; a nil client means URL sources are rejected.
type Loader struct {
	files   fs.FS
	client  *http.Client
	timeout time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgswagger.Loader = (*Loader)(nil)

// New builds a Loader from resolved options. An injected HTTP client is
// cloned so the caller's instance keeps its own timeout; the fallback client
// exists only when explicitly enabled.
func New(options pkgswagger.LoaderOptions) pkgswagger.Loader {
	l := &Loader{
		files:   options.FileSystem,
		timeout: options.RequestTimeout,
	}
	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if client.Timeout == 0 {
			client.Timeout = options.RequestTimeout
		}
		l.client = &client
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: options.RequestTimeout}
	}
	return l
}

// Load reads the bytes behind src and wraps them in a Document. The context
// is checked once up front; only the HTTP path can block afterwards and it
// carries the context through the request.
func (l *Loader) Load(ctx context.Context, src pkgswagger.Source) (pkgswagger.Document, error) {
	if src == nil {
		return pkgswagger.Document{}, errors.New("swagger loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return pkgswagger.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch kind := src.Kind(); kind {
	case pkgswagger.SourceKindFile:
		data, err = l.readFile(src.Location())
	case pkgswagger.SourceKindFS:
		data, err = l.readFS(src.Location())
	case pkgswagger.SourceKindURL:
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("swagger loader: unknown source kind %q", kind)
	}
	if err != nil {
		return pkgswagger.Document{}, err
	}

	return pkgswagger.NewDocument(src, data)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("swagger loader: file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swagger loader: read %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.files == nil {
		return nil, errors.New("swagger loader: no filesystem configured for fs sources")
	}
	if name == "" {
		return nil, errors.New("swagger loader: fs entry name is empty")
	}
	data, err := fs.ReadFile(l.files, name)
	if err != nil {
		return nil, fmt.Errorf("swagger loader: read fs entry %s: %w", name, err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if l.client == nil {
		return nil, errors.New("swagger loader: url sources need an http client (see WithHTTPClient or WithHTTPFallback)")
	}
	if url == "" {
		return nil, errors.New("swagger loader: url is empty")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("swagger loader: build request for %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("swagger loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("swagger loader: %s responded %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("swagger loader: read response from %s: %w", url, err)
	}
	return data, nil
}
