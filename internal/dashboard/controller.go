// Package dashboard reconciles the back-office collections shown on the
// operator dashboard and keeps them consistent across loads, searches,
// uploads and approvals.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/collection"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

const (
	msgLoadFailed    = "Unable to load dashboard data."
	msgSearchFailed  = "Document search failed."
	msgApproveFailed = "Unable to approve suggestion."
)

const (
	DefaultSuggestionLimit = 50
	DefaultLLCName         = "Empire LLC"
)

// Observer is notified with a fresh view after every mutation. Observers run
// on the goroutine that caused the mutation, outside the controller lock, so
// a slow observer may see views out of order; Version tells them apart.
type Observer func(View)

type Option func(*Controller)

func WithSuggestionLimit(limit int) Option {
	return func(c *Controller) {
		if limit > 0 {
			c.suggestionLimit = limit
		}
	}
}

func WithUploadLogSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.logSize = size
		}
	}
}

func WithLLC(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.llcName = name
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithUploadTimeout bounds each uploaded file separately. A batch as a whole
// has no deadline.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.uploadTimeout = d
	}
}

func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

type Controller struct {
	backend         Backend
	orchestrator    *upload.Orchestrator
	suggestionLimit int
	logSize         int
	llcName         string
	uploadTimeout   time.Duration
	now             func() time.Time

	mu        sync.Mutex
	state     Snapshot
	pending   map[int64]int
	observers []Observer
	closed    bool
}

func NewController(backend Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:         backend,
		suggestionLimit: DefaultSuggestionLimit,
		logSize:         upload.DefaultLogSize,
		llcName:         DefaultLLCName,
		now:             time.Now,
		pending:         make(map[int64]int),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.orchestrator = upload.NewOrchestrator(backend, c.llcName).
		WithClock(c.now).
		WithFileTimeout(c.uploadTimeout)

	return c
}

// Subscribe registers fn to receive every future view.
func (c *Controller) Subscribe(fn Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.observers = append(c.observers, fn)
}

// View returns a copy of the current snapshot with freshly derived views.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return newView(c.state.clone())
}

// Close ends the controller lifetime. Results of operations still in flight
// are discarded and observers are no longer notified.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.observers = nil
}

// update applies fn to the state under the lock and publishes the result.
// It does nothing once the controller is closed.
func (c *Controller) update(fn func(s *Snapshot)) {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return
	}

	fn(&c.state)
	c.state.Version++

	observers := slices.Clone(c.observers)

	var view View
	if len(observers) > 0 {
		view = newView(c.state.clone())
	}

	c.mu.Unlock()

	for _, notify := range observers {
		notify(view)
	}
}

func (c *Controller) setError(msg string) {
	c.update(func(s *Snapshot) {
		s.Error = msg
	})
}

// Load performs the initial fetch with the loading flag raised.
func (c *Controller) Load(ctx context.Context) error {
	c.update(func(s *Snapshot) {
		s.IsLoading = true
	})
	defer c.update(func(s *Snapshot) {
		s.IsLoading = false
	})

	return c.Refresh(ctx)
}

// Refresh clears the error and replaces events, purchase orders and
// suggestions with the backend's current lists. Either all three are
// replaced or none is.
func (c *Controller) Refresh(ctx context.Context) error {
	c.setError("")

	if err := c.reload(ctx); err != nil {
		slog.Error("failed to load dashboard data", "error", err)
		c.setError(backoffice.ErrorMessage(err, msgLoadFailed))

		return fmt.Errorf("refreshing dashboard: %w", err)
	}

	return nil
}

type collections struct {
	events      []backoffice.Event
	purchases   []backoffice.PurchaseOrder
	suggestions []backoffice.Suggestion
}

func (c *Controller) fetch(ctx context.Context) (collections, error) {
	var out collections

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := c.backend.ListEvents(gctx)
		if err != nil {
			return err
		}

		out.events = collection.SortByTimeDesc(events, backoffice.EventCreatedAt)

		return nil
	})

	g.Go(func() error {
		purchases, err := c.backend.ListPurchaseOrders(gctx)
		if err != nil {
			return err
		}

		out.purchases = collection.SortByTimeDesc(purchases, backoffice.PurchaseOrderCreatedAt)

		return nil
	})

	g.Go(func() error {
		suggestions, err := c.backend.ListSuggestions(gctx, c.suggestionLimit)
		if err != nil {
			return err
		}

		out.suggestions = collection.SortByTimeDesc(suggestions, backoffice.SuggestionCreatedAt)

		return nil
	})

	if err := g.Wait(); err != nil {
		return collections{}, err
	}

	return out, nil
}

// reload fetches and swaps in the collections without touching the error.
func (c *Controller) reload(ctx context.Context) error {
	data, err := c.fetch(ctx)
	if err != nil {
		return err
	}

	c.update(func(s *Snapshot) {
		s.Events = data.events
		s.Purchases = data.purchases
		s.Suggestions = data.suggestions
	})

	return nil
}

// SetQuery records the search box contents. A blank query clears the
// previous results.
func (c *Controller) SetQuery(query string) {
	c.update(func(s *Snapshot) {
		s.SearchQuery = query
		if strings.TrimSpace(query) == "" {
			s.Documents = nil
			s.LastSearched = ""
		}
	})
}

// Search runs a document search for term. A blank term clears the results
// without calling the backend. On failure the previous results are kept.
func (c *Controller) Search(ctx context.Context, term string) error {
	c.SetQuery(term)

	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil
	}

	c.update(func(s *Snapshot) {
		s.IsSearching = true
	})
	defer c.update(func(s *Snapshot) {
		s.IsSearching = false
	})

	results, err := c.backend.SearchDocuments(ctx, trimmed)
	if err != nil {
		slog.Error("failed to search documents", "query", trimmed, "error", err)
		c.setError(backoffice.ErrorMessage(err, msgSearchFailed))

		return fmt.Errorf("searching documents: %w", err)
	}

	c.update(func(s *Snapshot) {
		s.Documents = slices.Clone(results)
		s.LastSearched = trimmed
	})

	return nil
}

// Approve approves suggestion id and refreshes the dashboard. The id stays
// in PendingApprovals while the approval is in flight. A zero id is ignored.
func (c *Controller) Approve(ctx context.Context, id int64) error {
	if id == 0 {
		return nil
	}

	c.update(func(s *Snapshot) {
		c.pending[id]++
		s.PendingApprovals = pendingIDs(c.pending)
	})
	defer c.update(func(s *Snapshot) {
		if c.pending[id] <= 1 {
			delete(c.pending, id)
		} else {
			c.pending[id]--
		}

		s.PendingApprovals = pendingIDs(c.pending)
	})

	if err := c.approve(ctx, id); err != nil {
		slog.Error("failed to approve suggestion", "id", id, "error", err)
		c.setError(backoffice.ErrorMessage(err, msgApproveFailed))

		return fmt.Errorf("approving suggestion %d: %w", id, err)
	}

	return nil
}

func (c *Controller) approve(ctx context.Context, id int64) error {
	c.setError("")

	approval, err := c.backend.ApproveSuggestion(ctx, id)
	if err != nil {
		return err
	}

	if approval != nil {
		c.update(func(s *Snapshot) {
			// Records without an id cannot be keyed and are left to the reload.
			if sg := approval.Suggestion; sg != nil && sg.ID != 0 {
				s.Suggestions = collection.Reconcile(
					s.Suggestions,
					[]backoffice.Suggestion{*sg},
					backoffice.SuggestionID,
					backoffice.SuggestionCreatedAt,
				)
			}

			if ev := approval.Event; ev != nil && ev.ID != 0 {
				s.Events = collection.Reconcile(
					s.Events,
					[]backoffice.Event{*ev},
					backoffice.EventID,
					backoffice.EventCreatedAt,
				)
			}
		})
	}

	return c.reload(ctx)
}

// Upload ingests files one after another and reloads the dashboard once the
// batch settles. IsUploading stays raised for the whole batch, and the batch
// keeps going if ctx is cancelled.
func (c *Controller) Upload(ctx context.Context, files []upload.File, docType string) (upload.Summary, error) {
	if len(files) == 0 {
		return upload.Summary{}, nil
	}

	c.update(func(s *Snapshot) {
		s.IsUploading = true
	})
	defer c.update(func(s *Snapshot) {
		s.IsUploading = false
	})

	return c.orchestrator.Run(ctx, uploadSink{c}, files, docType)
}
