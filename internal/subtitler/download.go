package subtitler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
)

// download fetches the compressed subtitle at url as stored on the server.
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	logger := config.GetLogger()
	logger.Info().Str("url", url).Msg("Downloading subtitle")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperrors.ErrDownload{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ErrDownload{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.ErrDownload{URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ErrDownload{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	logger.Debug().
		Str("url", url).
		Str("contentType", resp.Header.Get("Content-Type")).
		Int("size", len(payload)).
		Msg("Downloaded subtitle payload")
	return payload, nil
}
