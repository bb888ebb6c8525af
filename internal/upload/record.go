package upload

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is the optimistic progress of a single uploaded file.
type Status string

const (
	StatusUploading Status = "uploading"
	StatusComplete  Status = "complete"
	StatusError     Status = "error"
)

// DefaultLogSize is how many upload records the log keeps.
const DefaultLogSize = 10

// Record tracks one file of an upload batch. Its ID is generated on the
// client and never matches a backend entity id.
type Record struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	DocType    string     `json:"doc_type"`
	Status     Status     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// Settled reports whether the record reached a terminal status.
func (r Record) Settled() bool {
	return r.Status == StatusComplete || r.Status == StatusError
}

// NewID builds a collision-resistant record id from the file name, the start
// time and a random suffix.
func NewID(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d-%s", name, at.UnixNano(), uuid.NewString()[:8])
}

// Push prepends rec to log, dropping the oldest records beyond capacity.
func Push(log []Record, rec Record, capacity int) []Record {
	if capacity <= 0 {
		capacity = DefaultLogSize
	}

	out := make([]Record, 0, min(len(log)+1, capacity))
	out = append(out, rec)

	for _, r := range log {
		if len(out) == capacity {
			break
		}

		out = append(out, r)
	}

	return out
}

// Settle returns a copy of log with record id moved to a terminal status.
// Records that already settled, or that were evicted, are left alone.
func Settle(log []Record, id string, status Status, message string, at time.Time) []Record {
	out := slices.Clone(log)

	for i := range out {
		if out[i].ID != id || out[i].Settled() {
			continue
		}

		finished := at
		out[i].Status = status
		out[i].Message = message
		out[i].FinishedAt = &finished
	}

	return out
}
