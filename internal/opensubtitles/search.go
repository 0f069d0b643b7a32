package opensubtitles

import (
	"context"
	"fmt"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/models"
)

// Search queries the catalog and returns the candidates in the order the catalog sent them.
// It fails with apperrors.ErrNotAuthenticated, without any network call, before a successful login.
func (c *Client) Search(ctx context.Context, query models.SearchQuery) ([]models.Candidate, error) {
	session := c.Session()
	if !session.Authenticated {
		return nil, apperrors.ErrNotAuthenticated
	}

	criteria, err := searchCriteria(query)
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Info().
		Str("query", fmt.Sprintf("%+v", query)).
		Msg("Searching subtitle catalog")

	record, err := c.call(ctx, methodSearchSubtitles, stringValue(session.Token), arrayOf(criteria))
	if err != nil {
		return nil, err
	}

	status, err := recordStatus(methodSearchSubtitles, record)
	if err != nil {
		return nil, err
	}
	if !status.Success() {
		return nil, &apperrors.ErrStatus{Message: status.Message}
	}

	candidates, err := parseCandidates(record)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("count", len(candidates)).Msg("Catalog search completed")
	return candidates, nil
}

func searchCriteria(query models.SearchQuery) (value, error) {
	switch q := query.(type) {
	case models.FingerprintQuery:
		return structOf(
			member{Name: "moviehash", Value: stringValue(q.Hash)},
			member{Name: "moviesize", Value: doubleValue(q.Size)},
		), nil
	case models.ShowQuery:
		if q.Season < 0 || q.Episode < 0 {
			return value{}, fmt.Errorf("invalid season %d / episode %d", q.Season, q.Episode)
		}
		return structOf(
			member{Name: "query", Value: stringValue(q.Title)},
			member{Name: "season", Value: intValue(q.Season)},
			member{Name: "episode", Value: intValue(q.Episode)},
			member{Name: "sublanguageid", Value: stringValue(q.Language)},
		), nil
	}
	return value{}, fmt.Errorf("unsupported search query %T", query)
}

// parseCandidates converts the data member of a search record. The catalog sends
// data as boolean false when nothing matched.
func parseCandidates(record value) ([]models.Candidate, error) {
	data, ok := record.field("data")
	if !ok {
		return nil, &apperrors.ErrMissingField{Method: methodSearchSubtitles, Field: "data", Record: -1}
	}
	if b, isBool := data.asBool(); isBool && !b {
		return []models.Candidate{}, nil
	}

	items, ok := data.asArray()
	if !ok {
		return nil, &apperrors.ErrMissingField{Method: methodSearchSubtitles, Field: "data", Record: -1}
	}

	candidates := make([]models.Candidate, 0, len(items))
	for i, item := range items {
		lang, ok := item.stringField("ISO639")
		if !ok {
			return nil, &apperrors.ErrMissingField{Method: methodSearchSubtitles, Field: "ISO639", Record: i}
		}
		link, ok := item.stringField("SubDownloadLink")
		if !ok {
			return nil, &apperrors.ErrMissingField{Method: methodSearchSubtitles, Field: "SubDownloadLink", Record: i}
		}

		candidate := models.Candidate{LanguageCode: lang, DownloadURL: link}
		candidate.FileName, _ = item.stringField("SubFileName")
		candidate.Format, _ = item.stringField("SubFormat")
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// SelectCandidate returns the first candidate whose language code is exactly language.
func SelectCandidate(candidates []models.Candidate, language string) (models.Candidate, error) {
	for _, candidate := range candidates {
		if candidate.LanguageCode == language {
			return candidate, nil
		}
	}
	return models.Candidate{}, &apperrors.ErrNoMatch{Language: language}
}
