package opensubtitles

import (
	"errors"
	"testing"

	"github.com/Belphemur/Subtitler/internal/apperrors"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		code    int
		success bool
	}{
		{"ok", "200 OK", 200, true},
		{"unauthorized", "401 Unauthorized", 401, false},
		{"unknown user agent", "414 Unknown User Agent", 414, false},
		{"code only", "200", 200, true},
		{"multiple spaces in text", "407 Download limit reached", 407, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, err := parseStatus(tt.raw)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if status.Code != tt.code {
				t.Errorf("Code = %d, want %d", status.Code, tt.code)
			}
			if status.Message != tt.raw {
				t.Errorf("Message = %q, want the whole status %q", status.Message, tt.raw)
			}
			if status.Success() != tt.success {
				t.Errorf("Success() = %v, want %v", status.Success(), tt.success)
			}
		})
	}
}

func TestParseStatus_Malformed(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "OK", "OK 200", " 200 OK", "2O0 OK"} {
		_, err := parseStatus(raw)
		if !errors.Is(err, &apperrors.ErrMalformedStatus{}) {
			t.Errorf("parseStatus(%q): expected ErrMalformedStatus, got %v", raw, err)
		}
	}
}

func TestRecordStatus_Missing(t *testing.T) {
	t.Parallel()
	record := structOf(member{Name: "token", Value: stringValue("x")})
	_, err := recordStatus(methodLogIn, record)
	if !errors.Is(err, &apperrors.ErrMissingField{}) {
		t.Fatalf("Expected ErrMissingField, got %v", err)
	}
}
