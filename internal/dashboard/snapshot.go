package dashboard

import (
	"maps"
	"slices"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

// Snapshot is the reconciled dashboard state. Every mutation produces a new
// snapshot with a higher Version.
type Snapshot struct {
	Version uint64

	Events      []backoffice.Event
	Purchases   []backoffice.PurchaseOrder
	Suggestions []backoffice.Suggestion
	Documents   []backoffice.SearchResult

	SearchQuery  string
	LastSearched string
	Error        string

	IsLoading   bool
	IsSearching bool
	IsUploading bool

	// PendingApprovals holds the suggestion ids with an approval in flight,
	// ascending and without duplicates.
	PendingApprovals []int64
	Uploads          []upload.Record
}

// IsPending reports whether an approval for suggestion id is in flight.
func (s Snapshot) IsPending(id int64) bool {
	return slices.Contains(s.PendingApprovals, id)
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Events = slices.Clone(s.Events)
	out.Purchases = slices.Clone(s.Purchases)
	out.Suggestions = slices.Clone(s.Suggestions)
	out.Documents = slices.Clone(s.Documents)
	out.PendingApprovals = slices.Clone(s.PendingApprovals)
	out.Uploads = slices.Clone(s.Uploads)

	return out
}

// View is a snapshot together with the views derived from it.
type View struct {
	Snapshot

	Vendors             []insight.VendorSummary
	Metrics             []insight.MetricTile
	OpenSuggestions     []backoffice.Suggestion
	ResolvedSuggestions []backoffice.Suggestion
}

func newView(s Snapshot) View {
	vendors := insight.VendorSummaries(s.Purchases)

	return View{
		Snapshot:            s,
		Vendors:             vendors,
		Metrics:             insight.Metrics(s.Purchases, vendors, s.Suggestions, s.Documents, s.LastSearched),
		OpenSuggestions:     insight.OpenSuggestions(s.Suggestions),
		ResolvedSuggestions: insight.ResolvedSuggestions(s.Suggestions),
	}
}

func pendingIDs(pending map[int64]int) []int64 {
	return slices.Sorted(maps.Keys(pending))
}
