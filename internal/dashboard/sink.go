package dashboard

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/collection"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

// uploadSink folds upload progress into the controller state.
type uploadSink struct {
	c *Controller
}

var _ upload.Sink = uploadSink{}

func (u uploadSink) Begin(rec upload.Record) {
	u.c.update(func(s *Snapshot) {
		s.Uploads = upload.Push(s.Uploads, rec, u.c.logSize)
	})
}

func (u uploadSink) Succeed(id string, result *backoffice.IngestResult, message string, at time.Time) {
	u.c.update(func(s *Snapshot) {
		s.Purchases = collection.Reconcile(
			s.Purchases,
			[]backoffice.PurchaseOrder{result.PurchaseOrder},
			backoffice.PurchaseOrderID,
			backoffice.PurchaseOrderCreatedAt,
		)
		s.Events = collection.Reconcile(s.Events, result.Events, backoffice.EventID, backoffice.EventCreatedAt)
		s.Suggestions = collection.Reconcile(
			s.Suggestions,
			result.Suggestions,
			backoffice.SuggestionID,
			backoffice.SuggestionCreatedAt,
		)
		s.Uploads = upload.Settle(s.Uploads, id, upload.StatusComplete, message, at)
	})
}

func (u uploadSink) Fail(id string, message string, at time.Time) {
	u.c.update(func(s *Snapshot) {
		s.Error = message
		s.Uploads = upload.Settle(s.Uploads, id, upload.StatusError, message, at)
	})
}

func (u uploadSink) Reload(ctx context.Context) error {
	return u.c.reload(ctx)
}

func (u uploadSink) SetError(message string) {
	u.c.setError(message)
}
