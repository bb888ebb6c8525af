package backoffice

import (
	"fmt"
	"strings"
	"unicode"
)

// Event is an entry on the operational timeline.
type Event struct {
	ID        int64          `json:"id"`
	Type      string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt Timestamp      `json:"created_at"`
}

// Title returns a human-readable heading for the event type,
// e.g. "purchase.ingested" becomes "Purchase Ingested".
func (e Event) Title() string {
	words := strings.FieldsFunc(e.Type, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return "Event"
	}

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}

// Summary projects the payload into a single line.
func (e Event) Summary() string {
	for _, key := range []string{"message", "description", "vendor_name", "filename"} {
		if v, ok := e.Payload[key]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
	}

	return ""
}

// Vendor is the vendor reference embedded in a purchase order.
type Vendor struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// DocumentRef links a purchase order to the stored source document.
type DocumentRef struct {
	ID          int64  `json:"id"`
	MediaType   string `json:"media_type,omitempty"`
	MIME        string `json:"mime,omitempty"`
	StoragePath string `json:"storage_path,omitempty"`
}

// PurchaseOrder is replaced as a whole whenever a newer copy arrives.
type PurchaseOrder struct {
	ID          int64        `json:"id"`
	Vendor      *Vendor      `json:"vendor"`
	TotalAmount Amount       `json:"total_amount"`
	Currency    string       `json:"currency"`
	Status      string       `json:"status"`
	Description string       `json:"description,omitempty"`
	CreatedAt   Timestamp    `json:"created_at"`
	DueDate     *Timestamp   `json:"due_date,omitempty"`
	Document    *DocumentRef `json:"media_object,omitempty"`
}

// StatusPaid is the only status that closes a purchase order.
const StatusPaid = "paid"

// IsOpen reports whether the order still awaits payment.
func (p PurchaseOrder) IsOpen() bool {
	return !strings.EqualFold(strings.TrimSpace(p.Status), StatusPaid)
}

// VendorName returns the vendor name, or fallback when the order carries none.
func (p PurchaseOrder) VendorName(fallback string) string {
	if p.Vendor == nil || p.Vendor.Name == "" {
		return fallback
	}

	return p.Vendor.Name
}

// Suggestion is an agent recommendation awaiting operator approval.
type Suggestion struct {
	ID         int64      `json:"id"`
	Agent      string     `json:"agent_name"`
	Type       string     `json:"suggestion_type"`
	Message    string     `json:"message"`
	Approved   bool       `json:"approved"`
	CreatedAt  Timestamp  `json:"created_at"`
	ApprovedAt *Timestamp `json:"approved_at,omitempty"`
}

// SearchResult is a document hit returned by document search.
type SearchResult struct {
	ID       int64   `json:"media_object_id"`
	Score    float64 `json:"score"`
	Excerpt  string  `json:"excerpt"`
	Filename string  `json:"filename,omitempty"`
	MIME     string  `json:"mime,omitempty"`
}

// IngestResult is everything the backend created for one ingested file.
type IngestResult struct {
	PurchaseOrder PurchaseOrder `json:"purchase_order"`
	Events        []Event       `json:"events"`
	Suggestions   []Suggestion  `json:"suggestions"`
}

// Approval is the backend's answer to approving a suggestion: the updated
// suggestion and the audit event recording the approval.
type Approval struct {
	Suggestion *Suggestion `json:"suggestion"`
	Event      *Event      `json:"event"`
}

// Key accessors used when reconciling collections.

func EventID(e Event) int64 { return e.ID }
func PurchaseOrderID(p PurchaseOrder) int64 { return p.ID }
func SuggestionID(s Suggestion) int64 { return s.ID }

func EventCreatedAt(e Event) Timestamp { return e.CreatedAt }
func PurchaseOrderCreatedAt(p PurchaseOrder) Timestamp { return p.CreatedAt }
func SuggestionCreatedAt(s Suggestion) Timestamp { return s.CreatedAt }
