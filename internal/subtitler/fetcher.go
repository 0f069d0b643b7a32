// Package subtitler fetches the subtitle of a local media file from the catalog
// and writes it next to the file.
//
// A fetch runs its steps strictly in order: ensure the session, fingerprint the
// file, search, select the first exact language match, download, gunzip and
// write. A failed step ends the fetch; nothing is retried.
package subtitler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/afero"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/filehash"
	"github.com/Belphemur/Subtitler/internal/metrics"
	"github.com/Belphemur/Subtitler/internal/models"
	"github.com/Belphemur/Subtitler/internal/opensubtitles"
)

// CatalogClient is the part of the catalog client the fetcher needs
type CatalogClient interface {
	Authenticated() bool
	Authenticate(ctx context.Context) (string, error)
	Search(ctx context.Context, query models.SearchQuery) ([]models.Candidate, error)
}

// Fetcher downloads subtitles through one catalog client. It is safe for concurrent use;
// the client's session is the only state shared between fetches.
type Fetcher struct {
	client     CatalogClient
	fs         afero.Fs
	httpClient *http.Client
	language   string
	userAgent  string
}

// NewFetcher creates a fetcher writing to the OS filesystem with a download client built from cfg
func NewFetcher(cfg *config.Config, client CatalogClient) *Fetcher {
	timeout := 30 * time.Second
	if d, err := time.ParseDuration(cfg.ClientTimeout); err == nil {
		timeout = d
	}

	// Payloads are gzip files; the transport must not undo a Content-Encoding on top of them
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableCompression = true
	if cfg.ProxyConnectionString != "" {
		if proxyURL, err := url.Parse(cfg.ProxyConnectionString); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	f := New(client, cfg.Language, &http.Client{Timeout: timeout, Transport: transport}, afero.NewOsFs())
	f.userAgent = cfg.UserAgent
	return f
}

// New creates a fetcher. A nil httpClient or fs falls back to the defaults.
func New(client CatalogClient, language string, httpClient *http.Client, fs afero.Fs) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if language == "" {
		language = config.DefaultLanguage
	}
	return &Fetcher{
		client:     client,
		fs:         fs,
		httpClient: httpClient,
		language:   language,
		userAgent:  config.GetUserAgent(),
	}
}

// Language is the language used by FetchDefault.
func (f *Fetcher) Language() string {
	return f.language
}

// FetchDefault fetches the subtitle of path in the fetcher's default language.
func (f *Fetcher) FetchDefault(ctx context.Context, path string) (string, error) {
	return f.Fetch(ctx, path, f.language)
}

// Fetch fetches the subtitle of the media file at path in language and returns
// the path of the written .srt file.
func (f *Fetcher) Fetch(ctx context.Context, path, language string) (string, error) {
	logger := config.GetLogger()
	logger.Info().Str("path", path).Str("language", language).Msg("Fetching subtitle")

	out, err := f.fetchFile(ctx, path, language)
	f.record(path, out, err)
	return out, err
}

// FetchAsync runs Fetch in a goroutine. The channel receives exactly one result and is then closed.
func (f *Fetcher) FetchAsync(ctx context.Context, path, language string) <-chan models.Result[string] {
	results := make(chan models.Result[string], 1)
	go func() {
		defer close(results)
		out, err := f.Fetch(ctx, path, language)
		results <- models.Result[string]{Value: out, Err: err}
	}()
	return results
}

// FetchShow searches by title, season and episode instead of fingerprinting a file,
// and writes the subtitle next to targetPath. An empty query language uses the default one.
func (f *Fetcher) FetchShow(ctx context.Context, query models.ShowQuery, targetPath string) (string, error) {
	if query.Language == "" {
		query.Language = f.language
	}

	logger := config.GetLogger()
	logger.Info().
		Str("title", query.Title).
		Int("season", query.Season).
		Int("episode", query.Episode).
		Str("language", query.Language).
		Msg("Fetching show subtitle")

	out, err := f.fetchShow(ctx, query, targetPath)
	f.record(targetPath, out, err)
	return out, err
}

func (f *Fetcher) fetchFile(ctx context.Context, path, language string) (string, error) {
	if err := f.ensureSession(ctx); err != nil {
		return "", err
	}

	fp, err := filehash.Compute(f.fs, path)
	if err != nil {
		return "", &apperrors.ErrUnableToFingerprint{Path: path, Err: err}
	}

	return f.searchAndSave(ctx, models.FingerprintQuery{
		Hash:     fp.Hash,
		Size:     fp.Size,
		Language: language,
	}, path)
}

func (f *Fetcher) fetchShow(ctx context.Context, query models.ShowQuery, targetPath string) (string, error) {
	if err := f.ensureSession(ctx); err != nil {
		return "", err
	}
	return f.searchAndSave(ctx, query, targetPath)
}

// ensureSession logs in once per client; later fetches reuse the session.
func (f *Fetcher) ensureSession(ctx context.Context) error {
	if f.client.Authenticated() {
		return nil
	}
	if _, err := f.client.Authenticate(ctx); err != nil {
		return &apperrors.ErrClient{Err: err}
	}
	return nil
}

func (f *Fetcher) searchAndSave(ctx context.Context, query models.SearchQuery, mediaPath string) (string, error) {
	language := query.QueryLanguage()

	candidates, err := f.client.Search(ctx, query)
	if err != nil {
		return "", &apperrors.ErrClient{Err: err}
	}
	if len(candidates) == 0 {
		return "", &apperrors.ErrEmptyResult{Language: language}
	}

	candidate, err := opensubtitles.SelectCandidate(candidates, language)
	if err != nil {
		return "", &apperrors.ErrEmptyResult{Language: language}
	}

	payload, err := f.download(ctx, candidate.DownloadURL)
	if err != nil {
		return "", err
	}

	content, err := gunzip(payload)
	if err != nil {
		return "", err
	}

	outPath := SubtitlesPath(mediaPath)
	if err := writeAtomic(f.fs, outPath, content); err != nil {
		return "", &apperrors.ErrUnableToWrite{Path: outPath, Err: err}
	}
	return outPath, nil
}

func (f *Fetcher) record(path, out string, err error) {
	logger := config.GetLogger()
	result := fetchResult(err)
	metrics.SubtitleFetchesTotal.WithLabelValues(result).Inc()

	if err != nil {
		logger.Warn().Err(err).Str("path", path).Str("result", result).Msg("Subtitle fetch failed")
		return
	}
	logger.Info().Str("path", path).Str("subtitle", out).Msg("Subtitle saved")
}

func fetchResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, &apperrors.ErrClient{}):
		return metrics.ResultClientError
	case errors.Is(err, &apperrors.ErrUnableToFingerprint{}):
		return metrics.ResultFingerprintError
	case errors.Is(err, &apperrors.ErrEmptyResult{}):
		return metrics.ResultEmpty
	case errors.Is(err, &apperrors.ErrDownload{}):
		return metrics.ResultDownloadError
	case errors.Is(err, &apperrors.ErrUnzip{}):
		return metrics.ResultUnzipError
	default:
		return metrics.ResultWriteError
	}
}
