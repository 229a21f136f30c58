// Package fetch downloads the plaintext ISO 11783-11 export and keeps a
// local copy of it for the parser.
package fetch

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/open-agriculture/isobus-ddi/internal/atomicfile"
	"github.com/open-agriculture/isobus-ddi/pkg/version"
)

// DefaultURL is the isobus.net export of the complete data dictionary.
const DefaultURL = "https://www.isobus.net/isobus/exports/completeTXT"

// DefaultCachePath is where the export is kept between runs.
const DefaultCachePath = "export.txt"

// ErrFetchFailed is returned when the export could not be downloaded or
// persisted. A failed fetch ends the generator run.
var ErrFetchFailed = errors.New("fetch failed")

// ErrNoCache is returned by Cached when no export has been downloaded yet.
var ErrNoCache = errors.New("no cached export")

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls where the export comes from and where it is stored.
type Config struct {
	// URL of the plaintext export.
	URL string

	// CachePath is the local file the body is written to.
	CachePath string

	// Timeout bounds the whole download. Zero means the context alone
	// governs cancellation.
	Timeout time.Duration

	// UserAgent sent with the request. Defaults to version.UserAgent().
	UserAgent string
}

// Result describes the cached export.
type Result struct {
	Path        string
	ContentType string
	Size        int64

	// Fingerprint is the hex BLAKE2b-256 digest of the body.
	Fingerprint string

	// Offline is set when the cache was used without downloading.
	Offline bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDoer replaces the HTTP client.
func WithDoer(d Doer) Option {
	return func(f *Fetcher) { f.doer = d }
}

// WithLogger sets the logger used to report the download.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// Fetcher downloads the export.
type Fetcher struct {
	cfg    Config
	doer   Doer
	logger *slog.Logger
}

// New creates a Fetcher. Empty URL and CachePath fall back to DefaultURL and
// DefaultCachePath.
func New(cfg Config, opts ...Option) *Fetcher {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.CachePath == "" {
		cfg.CachePath = DefaultCachePath
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	f := &Fetcher{
		cfg:    cfg,
		doer:   http.DefaultClient,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the effective configuration.
func (f *Fetcher) Config() Config {
	return f.cfg
}

// Fetch removes any previous cache file, downloads the export and writes the
// body to the cache path. Network failures and non-2xx statuses wrap
// ErrFetchFailed; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	if err := atomicfile.Remove(f.cfg.CachePath); err != nil {
		return nil, fmt.Errorf("%w: remove stale cache: %v", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/plain, */*")

	f.logger.Info("downloading export", "url", f.cfg.URL)
	resp, err := f.doer.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetchFailed, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(slurp))
		return nil, fmt.Errorf("%w: %s returned %d %s", ErrFetchFailed, f.cfg.URL, resp.StatusCode, msg)
	}

	contentType := resp.Header.Get("Content-Type")
	// Not validated; the export has been served with varying types.
	f.logger.Info("export response", "content_type", contentType, "status", resp.StatusCode)

	h, _ := blake2b.New256(nil)
	n, err := atomicfile.Write(ctx, f.cfg.CachePath, io.TeeReader(resp.Body, h), 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: write %s: %v", ErrFetchFailed, f.cfg.CachePath, err)
	}

	res := &Result{
		Path:        f.cfg.CachePath,
		ContentType: contentType,
		Size:        n,
		Fingerprint: hex.EncodeToString(h.Sum(nil)),
	}
	f.logger.Info("export cached", "path", res.Path, "bytes", res.Size, "fingerprint", res.Fingerprint)
	return res, nil
}

// Cached describes the existing cache file without downloading. It returns
// ErrNoCache when the file does not exist.
func (f *Fetcher) Cached() (*Result, error) {
	file, err := os.Open(f.cfg.CachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNoCache, f.cfg.CachePath)
		}
		return nil, err
	}
	defer file.Close()

	h, _ := blake2b.New256(nil)
	n, err := io.Copy(h, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.cfg.CachePath, err)
	}
	return &Result{
		Path:        f.cfg.CachePath,
		Size:        n,
		Fingerprint: hex.EncodeToString(h.Sum(nil)),
		Offline:     true,
	}, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
