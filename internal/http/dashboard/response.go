package dashboard

import (
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

type viewResponse struct {
	Version uint64 `json:"version"`

	Events              []backoffice.Event         `json:"events"`
	PurchaseOrders      []backoffice.PurchaseOrder `json:"purchase_orders"`
	Suggestions         []backoffice.Suggestion    `json:"suggestions"`
	OpenSuggestions     []backoffice.Suggestion    `json:"open_suggestions"`
	ResolvedSuggestions []backoffice.Suggestion    `json:"resolved_suggestions"`
	Documents           []backoffice.SearchResult  `json:"documents"`

	Vendors []vendorResponse `json:"vendors"`
	Metrics []metricResponse `json:"metrics"`

	SearchQuery      string          `json:"search_query"`
	LastSearched     string          `json:"last_searched,omitempty"`
	Error            string          `json:"error,omitempty"`
	IsLoading        bool            `json:"is_loading"`
	IsSearching      bool            `json:"is_searching"`
	IsUploading      bool            `json:"is_uploading"`
	PendingApprovals []int64         `json:"pending_approvals"`
	Uploads          []upload.Record `json:"uploads"`
}

type vendorResponse struct {
	Key            string       `json:"key"`
	VendorID       *int64       `json:"vendor_id,omitempty"`
	Name           string       `json:"name"`
	TotalSpend     string       `json:"total_spend"`
	OpenOrders     int          `json:"open_orders"`
	LastPurchaseAt *time.Time   `json:"last_purchase_at,omitempty"`
	Risk           insight.Risk `json:"risk"`
}

type metricResponse struct {
	Label string       `json:"label"`
	Value string       `json:"value"`
	Delta string       `json:"delta"`
	Tone  insight.Tone `json:"tone"`
}

func toViewResponse(v dashboard.View) viewResponse {
	resp := viewResponse{
		Version:             v.Version,
		Events:              orEmpty(v.Events),
		PurchaseOrders:      orEmpty(v.Purchases),
		Suggestions:         orEmpty(v.Suggestions),
		OpenSuggestions:     orEmpty(v.OpenSuggestions),
		ResolvedSuggestions: orEmpty(v.ResolvedSuggestions),
		Documents:           orEmpty(v.Documents),
		Vendors:             make([]vendorResponse, 0, len(v.Vendors)),
		Metrics:             make([]metricResponse, 0, len(v.Metrics)),
		SearchQuery:         v.SearchQuery,
		LastSearched:        v.LastSearched,
		Error:               v.Error,
		IsLoading:           v.IsLoading,
		IsSearching:         v.IsSearching,
		IsUploading:         v.IsUploading,
		PendingApprovals:    orEmpty(v.PendingApprovals),
		Uploads:             orEmpty(v.Uploads),
	}

	for _, vendor := range v.Vendors {
		resp.Vendors = append(resp.Vendors, vendorResponse{
			Key:            vendor.Key,
			VendorID:       vendor.VendorID,
			Name:           vendor.Name,
			TotalSpend:     vendor.TotalSpend.StringFixed(2),
			OpenOrders:     vendor.OpenOrders,
			LastPurchaseAt: vendor.LastPurchaseAt,
			Risk:           vendor.Risk,
		})
	}

	for _, m := range v.Metrics {
		resp.Metrics = append(resp.Metrics, metricResponse{
			Label: m.Label,
			Value: m.Value,
			Delta: m.Delta,
			Tone:  m.Tone,
		})
	}

	return resp
}

// orEmpty keeps empty collections encoded as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
