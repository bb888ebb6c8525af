package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Error is a non-2xx answer from the backend. Message is the backend's
// detail when it sent one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(resp *http.Response, path string) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := detail(body)
	if msg == "" {
		msg = fmt.Sprintf("Request to %s failed with status %d", path, resp.StatusCode)
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}

// detail extracts the backend's error message from body: the "detail"
// field, or the body itself when it is a bare JSON string. Validation errors
// carry a list of {msg} objects, which are joined.
func detail(body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	switch v := payload.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		return detailText(v["detail"])
	default:
		return ""
	}
}

func detailText(v any) string {
	switch d := v.(type) {
	case string:
		return strings.TrimSpace(d)
	case []any:
		msgs := make([]string, 0, len(d))

		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				if msg, ok := m["msg"].(string); ok {
					item = msg
				}
			}

			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				msgs = append(msgs, s)
			}
		}

		return strings.Join(msgs, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(d)
	}
}
