package opensubtitles

import (
	"strconv"
	"strings"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/models"
)

// parseStatus parses a "<code> <text>" status such as "200 OK".
// The code is the text before the first space; the whole string is kept as the message.
func parseStatus(raw string) (models.Status, error) {
	code, _, _ := strings.Cut(raw, " ")
	n, err := strconv.Atoi(code)
	if err != nil {
		return models.Status{}, &apperrors.ErrMalformedStatus{Status: raw}
	}
	return models.Status{Code: n, Message: raw}, nil
}

// recordStatus extracts and parses the status member of a response record.
func recordStatus(method string, record value) (models.Status, error) {
	raw, ok := record.stringField("status")
	if !ok {
		return models.Status{}, &apperrors.ErrMissingField{Method: method, Field: "status", Record: -1}
	}
	return parseStatus(raw)
}
