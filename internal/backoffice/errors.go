package backoffice

import "strings"

// ErrorMessage returns the text of err, or fallback when err carries none.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}

	return fallback
}
