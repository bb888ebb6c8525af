package dashboard

import (
	"context"
	"io"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

//go:generate mockgen -source=backend.go -destination=backend_mock.go -package=dashboard
type Backend interface {
	ListEvents(ctx context.Context) ([]backoffice.Event, error)
	ListPurchaseOrders(ctx context.Context) ([]backoffice.PurchaseOrder, error)
	ListSuggestions(ctx context.Context, limit int) ([]backoffice.Suggestion, error)
	ApproveSuggestion(ctx context.Context, id int64) (*backoffice.Approval, error)
	SearchDocuments(ctx context.Context, query string) ([]backoffice.SearchResult, error)
	IngestPurchase(ctx context.Context, llcName, filename string, body io.Reader) (*backoffice.IngestResult, error)
}
