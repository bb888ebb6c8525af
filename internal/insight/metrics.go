package insight

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

// Tone is the display emphasis of a metric tile.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	TonePending Tone = "pending"
)

// Metric tile labels, in display order.
const (
	LabelSpend       = "Spend to Date"
	LabelVendors     = "Active Vendors"
	LabelSuggestions = "Open Suggestions"
	LabelDocuments   = "Documents Indexed"
)

// MetricTile is one headline figure on the dashboard.
type MetricTile struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
	Tone  Tone   `json:"tone"`
}

// TotalSpend sums every purchase amount.
func TotalSpend(purchases []backoffice.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.TotalAmount.Decimal)
	}

	return total
}

// OpenOrders counts purchases that are not paid.
func OpenOrders(purchases []backoffice.PurchaseOrder) int {
	n := 0

	for _, p := range purchases {
		if p.IsOpen() {
			n++
		}
	}

	return n
}

// IndexedDocuments counts distinct documents linked from purchases.
func IndexedDocuments(purchases []backoffice.PurchaseOrder) int {
	seen := make(map[int64]struct{})

	for _, p := range purchases {
		if p.Document != nil {
			seen[p.Document.ID] = struct{}{}
		}
	}

	return len(seen)
}

// OpenSuggestions returns the suggestions still awaiting approval.
func OpenSuggestions(suggestions []backoffice.Suggestion) []backoffice.Suggestion {
	return partition(suggestions, false)
}

// ResolvedSuggestions returns the approved suggestions.
func ResolvedSuggestions(suggestions []backoffice.Suggestion) []backoffice.Suggestion {
	return partition(suggestions, true)
}

func partition(suggestions []backoffice.Suggestion, approved bool) []backoffice.Suggestion {
	out := make([]backoffice.Suggestion, 0, len(suggestions))

	for _, s := range suggestions {
		if s.Approved == approved {
			out = append(out, s)
		}
	}

	return out
}

// Metrics computes the four headline tiles: spend, vendors, suggestions and
// documents, always in that order. lastSearched is the term of the last
// completed search, or empty when none has run.
func Metrics(
	purchases []backoffice.PurchaseOrder,
	vendors []VendorSummary,
	suggestions []backoffice.Suggestion,
	documents []backoffice.SearchResult,
	lastSearched string,
) []MetricTile {
	return []MetricTile{
		spendTile(purchases),
		vendorTile(vendors),
		suggestionTile(suggestions),
		documentTile(purchases, documents, lastSearched),
	}
}

func spendTile(purchases []backoffice.PurchaseOrder) MetricTile {
	code := DefaultCurrency
	if len(purchases) > 0 && purchases[0].Currency != "" {
		code = purchases[0].Currency
	}

	open := OpenOrders(purchases)

	return MetricTile{
		Label: LabelSpend,
		Value: FormatCurrency(TotalSpend(purchases), code),
		Delta: fmt.Sprintf("%d open orders", open),
		Tone:  pick(open > 0, TonePending, ToneSuccess),
	}
}

func vendorTile(vendors []VendorSummary) MetricTile {
	attention := 0

	for _, v := range vendors {
		if v.Risk != RiskStable {
			attention++
		}
	}

	delta := "All clear"
	if attention > 0 {
		delta = fmt.Sprintf("%d needs review", attention)
	}

	return MetricTile{
		Label: LabelVendors,
		Value: strconv.Itoa(len(vendors)),
		Delta: delta,
		Tone:  pick(attention > 0, ToneWarning, ToneSuccess),
	}
}

func suggestionTile(suggestions []backoffice.Suggestion) MetricTile {
	open := len(OpenSuggestions(suggestions))
	resolved := len(suggestions) - open

	return MetricTile{
		Label: LabelSuggestions,
		Value: strconv.Itoa(open),
		Delta: fmt.Sprintf("%d resolved", resolved),
		Tone:  pick(open > 0, ToneWarning, ToneSuccess),
	}
}

func documentTile(purchases []backoffice.PurchaseOrder, documents []backoffice.SearchResult, lastSearched string) MetricTile {
	indexed := IndexedDocuments(purchases)

	delta := "Search the knowledge graph"
	if lastSearched != "" {
		delta = fmt.Sprintf("%d results for %q", len(documents), lastSearched)
	}

	return MetricTile{
		Label: LabelDocuments,
		Value: strconv.Itoa(indexed),
		Delta: delta,
		Tone:  pick(indexed > 0, ToneSuccess, TonePending),
	}
}

func pick(cond bool, yes, no Tone) Tone {
	if cond {
		return yes
	}

	return no
}
