package backoffice

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Layouts accepted for backend timestamps. The backend emits naive
// isoformat() values, so zone-less layouts are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Timestamp is a tolerant wire timestamp. Unparsable or absent values are
// kept as invalid rather than failing the whole payload.
type Timestamp struct {
	Time  time.Time
	Valid bool
	raw   string
}

// NewTimestamp returns a valid timestamp for t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// ParseTimestamp never fails; invalid input yields an invalid Timestamp.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, Valid: true}
		}
	}

	return Timestamp{raw: s}
}

// Compare returns -1, 0 or +1 as t is before, equal to or after u. Invalid
// timestamps are equal to each other and earlier than any valid one, so the
// order is total over the full range of years.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case !t.Valid && !u.Valid:
		return 0
	case !t.Valid:
		return -1
	case !u.Valid:
		return 1
	}

	return t.Time.Compare(u.Time)
}

// Ptr returns the time or nil when invalid.
func (t Timestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time

	return &v
}

func (t Timestamp) String() string {
	if !t.Valid {
		return t.raw
	}

	return t.Time.Format(time.RFC3339)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Numbers, objects and other junk are tolerated as invalid.
		*t = Timestamp{raw: string(data)}
		return nil
	}

	*t = ParseTimestamp(s)

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		if t.raw == "" {
			return []byte("null"), nil
		}

		return json.Marshal(t.raw)
	}

	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
