package insight

import (
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

// Risk classifies a vendor by the number of orders still awaiting payment.
type Risk string

const (
	RiskStable    Risk = "stable"
	RiskWatch     Risk = "watch"
	RiskAttention Risk = "attention"
)

// attentionThreshold is the open-order count from which a vendor needs review.
const attentionThreshold = 3

// UnknownVendor names purchase orders that carry no vendor.
const UnknownVendor = "Unknown Vendor"

// RiskFor maps an open-order count to a risk level.
func RiskFor(openOrders int) Risk {
	switch {
	case openOrders >= attentionThreshold:
		return RiskAttention
	case openOrders == 0:
		return RiskStable
	default:
		return RiskWatch
	}
}

// VendorSummary aggregates the purchase orders of a single vendor.
type VendorSummary struct {
	Key            string          `json:"key"`
	VendorID       *int64          `json:"vendor_id,omitempty"`
	Name           string          `json:"name"`
	TotalSpend     decimal.Decimal `json:"total_spend"`
	OpenOrders     int             `json:"open_orders"`
	LastPurchaseAt *time.Time      `json:"last_purchase_at,omitempty"`
	Risk           Risk            `json:"risk"`
}

// VendorSummaries groups purchases by vendor and orders the groups by spend,
// highest first. Vendors without an id are grouped by name. Groups with equal
// spend keep the order in which they were first seen.
func VendorSummaries(purchases []backoffice.PurchaseOrder) []VendorSummary {
	index := make(map[string]int)
	summaries := make([]VendorSummary, 0)

	for _, p := range purchases {
		name := p.VendorName(UnknownVendor)
		key := "name:" + name

		var vendorID *int64
		if p.Vendor != nil && p.Vendor.ID != nil {
			id := *p.Vendor.ID
			vendorID = &id
			key = "id:" + strconv.FormatInt(id, 10)
		}

		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, VendorSummary{
				Key:        key,
				VendorID:   vendorID,
				Name:       name,
				TotalSpend: decimal.Zero,
			})
		}

		s := &summaries[i]
		s.TotalSpend = s.TotalSpend.Add(p.TotalAmount.Decimal)

		if p.IsOpen() {
			s.OpenOrders++
		}

		if created := p.CreatedAt.Ptr(); created != nil {
			if s.LastPurchaseAt == nil || created.After(*s.LastPurchaseAt) {
				s.LastPurchaseAt = created
			}
		}
	}

	for i := range summaries {
		summaries[i].Risk = RiskFor(summaries[i].OpenOrders)
	}

	slices.SortStableFunc(summaries, func(a, b VendorSummary) int {
		return b.TotalSpend.Cmp(a.TotalSpend)
	})

	return summaries
}
