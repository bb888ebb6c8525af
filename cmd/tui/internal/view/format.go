package view

import (
	"strings"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
)

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp formats a backend timestamp, or a dash when it is missing.
func FormatTimestamp(ts backoffice.Timestamp) string {
	if !ts.Valid {
		return "-"
	}

	return ts.Time.Local().Format("2006-01-02 15:04")
}

func FormatAmount(po backoffice.PurchaseOrder) string {
	return insight.FormatCurrency(po.TotalAmount.Decimal, po.Currency)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")

	r := []rune(s)
	if len(r) <= n {
		return s
	}

	if n <= 1 {
		return string(r[:n])
	}

	return string(r[:n-1]) + "…"
}
