package formdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// Form documents are a handful of field blocks; anything past this ceiling is
// a misconfigured source, not a form.
const defaultMaxDocumentSize = 1 << 20

// Loader fetches form documents from file, fs.FS, or HTTP sources. HTTP stays
// disabled unless a client is supplied; the engine itself never reaches the
// network implicitly.
type Loader struct {
	fsys    fs.FS
	http    *http.Client
	timeout time.Duration
	maxSize int64
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS supplies the filesystem used for SourceKindFS lookups.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithHTTPClient opts into URL sources using the provided client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.http = client
	}
}

// WithRequestTimeout bounds each HTTP fetch.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// WithMaxDocumentSize overrides the payload ceiling, in bytes.
func WithMaxDocumentSize(n int64) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxSize = n
		}
	}
}

// NewLoader constructs a Loader from the supplied options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{maxSize: defaultMaxDocumentSize}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches the document identified by src, enforcing the size ceiling,
// and wraps it with its detected encoding.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("formdoc loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case SourceKindFile:
		data, err = l.readFile(ctx, src.Location())
	case SourceKindFS:
		data, err = l.readFS(ctx, src.Location())
	case SourceKindURL:
		data, err = l.fetchURL(ctx, src.Location())
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, fmt.Errorf("formdoc loader: %w", err)
	}

	return NewDocument(src, data)
}

// LoadForm fetches and parses a form document in one step.
func (l *Loader) LoadForm(ctx context.Context, src Source) (Form, error) {
	doc, err := l.Load(ctx, src)
	if err != nil {
		return Form{}, err
	}
	return ParseDocument(doc)
}

func (l *Loader) readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.readCapped(f)
}

func (l *Loader) readFS(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.fsys == nil {
		return nil, errors.New("no filesystem configured")
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.readCapped(f)
}

func (l *Loader) fetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("http support disabled")
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")

	res, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	return l.readCapped(res.Body)
}

// readCapped reads at most maxSize bytes and rejects payloads past the
// ceiling instead of truncating them silently.
func (l *Loader) readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("document exceeds %d bytes", l.maxSize)
	}
	return data, nil
}
