package opensubtitles

import (
	"context"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/models"
)

// Authenticate logs in anonymously and stores the token in the client's session.
// Concurrent callers share a single LogIn call and its result; the context of the
// caller that started it governs the request.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	token, err, shared := c.login.Do(methodLogIn, func() (interface{}, error) {
		return c.logIn(ctx)
	})
	if err != nil {
		return "", err
	}

	if shared {
		logger := config.GetLogger()
		logger.Debug().Msg("Joined an in-flight catalog login")
	}
	return token.(string), nil
}

func (c *Client) logIn(ctx context.Context) (string, error) {
	logger := config.GetLogger()
	logger.Info().
		Str("language", c.credentials.Language).
		Str("userAgent", c.credentials.ClientIdentifier).
		Msg("Logging in to subtitle catalog")

	// Anonymous login: empty username and password
	record, err := c.call(ctx, methodLogIn,
		stringValue(""),
		stringValue(""),
		stringValue(c.credentials.Language),
		stringValue(c.credentials.ClientIdentifier),
	)
	if err != nil {
		return "", err
	}

	status, err := recordStatus(methodLogIn, record)
	if err != nil {
		return "", err
	}
	if !status.Success() {
		return "", &apperrors.ErrStatus{Message: status.Message}
	}

	token, ok := record.stringField("token")
	if !ok {
		return "", &apperrors.ErrMissingField{Method: methodLogIn, Field: "token", Record: -1}
	}

	c.mu.Lock()
	c.session = models.Session{
		Token:         token,
		Language:      c.credentials.Language,
		Authenticated: true,
	}
	c.mu.Unlock()

	logger.Info().Str("status", status.Message).Msg("Logged in to subtitle catalog")
	return token, nil
}
