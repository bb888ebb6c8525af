package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
)

const (
	msgUploadFailed = "Upload failed."
	msgReloadFailed = "Unable to refresh dashboard after upload."
	fallbackVendor  = "vendor"
	errNoOpenFunc   = "file has no content"
)

//go:generate mockgen -source=orchestrator.go -destination=orchestrator_mock.go -package=upload

// Ingester sends one document to the ingestion pipeline.
type Ingester interface {
	IngestPurchase(ctx context.Context, llcName, filename string, body io.Reader) (*backoffice.IngestResult, error)
}

// Sink receives the state changes of an upload batch. The dashboard
// controller implements it.
type Sink interface {
	// Begin records a file as uploading.
	Begin(rec Record)
	// Succeed folds the ingested entities into the collections and marks
	// the record complete.
	Succeed(id string, result *backoffice.IngestResult, message string, at time.Time)
	// Fail marks the record as failed and reports message as the current error.
	Fail(id string, message string, at time.Time)
	// Reload reconciles all collections against the backend.
	Reload(ctx context.Context) error
	// SetError reports message as the current error.
	SetError(message string)
}

// Summary counts the outcome of a batch.
type Summary struct {
	Completed int
	Failed    int
}

type Orchestrator struct {
	ingester    Ingester
	llcName     string
	now         func() time.Time
	fileTimeout time.Duration
}

func NewOrchestrator(ingester Ingester, llcName string) *Orchestrator {
	return &Orchestrator{
		ingester: ingester,
		llcName:  llcName,
		now:      time.Now,
	}
}

// WithClock overrides the time source used for record timestamps.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// WithFileTimeout bounds each file, and the trailing reload, by d.
// Zero leaves them bounded only by the ingester.
func (o *Orchestrator) WithFileTimeout(d time.Duration) *Orchestrator {
	o.fileTimeout = d
	return o
}

// Run ingests files one at a time, in order. A failed file is recorded and
// the batch moves on; once every file settled the sink is reloaded. The
// returned error is the reload error, per-file failures only show up in the
// summary and the upload log.
//
// A started batch always runs to completion: cancelling ctx does not abort
// the remaining files.
func (o *Orchestrator) Run(ctx context.Context, sink Sink, files []File, docType string) (Summary, error) {
	var summary Summary

	if len(files) == 0 {
		return summary, nil
	}

	ctx = context.WithoutCancel(ctx)

	for _, f := range files {
		if o.ingest(ctx, sink, f, docType) {
			summary.Completed++
		} else {
			summary.Failed++
		}
	}

	if err := o.reload(ctx, sink); err != nil {
		slog.Error("failed to refresh after upload", "error", err)
		sink.SetError(backoffice.ErrorMessage(err, msgReloadFailed))

		return summary, fmt.Errorf("refresh after upload: %w", err)
	}

	return summary, nil
}

func (o *Orchestrator) reload(ctx context.Context, sink Sink) error {
	ctx, cancel := o.step(ctx)
	defer cancel()

	return sink.Reload(ctx)
}

func (o *Orchestrator) step(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.fileTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, o.fileTimeout)
}

func (o *Orchestrator) ingest(ctx context.Context, sink Sink, f File, docType string) bool {
	started := o.now()
	rec := Record{
		ID:        NewID(f.Name, started),
		Name:      f.Name,
		DocType:   docType,
		Status:    StatusUploading,
		StartedAt: started,
	}
	sink.Begin(rec)

	result, err := o.send(ctx, f)
	if err != nil {
		msg := backoffice.ErrorMessage(err, msgUploadFailed)
		slog.Error("failed to ingest file", "file", f.Name, "error", err)
		sink.Fail(rec.ID, msg, o.now())

		return false
	}

	sink.Succeed(rec.ID, result, completionMessage(result.PurchaseOrder), o.now())
	slog.Info("ingested file", "file", f.Name, "purchase_order", result.PurchaseOrder.ID)

	return true
}

func (o *Orchestrator) send(ctx context.Context, f File) (*backoffice.IngestResult, error) {
	if f.Open == nil {
		return nil, errors.New(errNoOpenFunc)
	}

	ctx, cancel := o.step(ctx)
	defer cancel()

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	var body io.Reader = rc

	if isText(f.Name) {
		body, err = toUTF8(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
	}

	result, err := o.ingester.IngestPurchase(ctx, o.llcName, f.Name, body)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, errors.New("ingestion returned no purchase order")
	}

	return result, nil
}

func completionMessage(po backoffice.PurchaseOrder) string {
	return fmt.Sprintf("Created PO #%d for %s (%s)",
		po.ID,
		po.VendorName(fallbackVendor),
		insight.FormatCurrency(po.TotalAmount.Decimal, po.Currency),
	)
}
