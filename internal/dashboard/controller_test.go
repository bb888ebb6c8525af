package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) backoffice.Timestamp {
	return backoffice.NewTimestamp(base.Add(time.Duration(minutes) * time.Minute))
}

func purchase(id int64, minutes int) backoffice.PurchaseOrder {
	return backoffice.PurchaseOrder{
		ID:          id,
		Vendor:      &backoffice.Vendor{Name: "Acme"},
		TotalAmount: backoffice.NewAmount(10),
		Currency:    "USD",
		Status:      "pending",
		CreatedAt:   at(minutes),
	}
}

func purchaseIDs(items []backoffice.PurchaseOrder) []int64 {
	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}

	return ids
}

func eventIDs(items []backoffice.Event) []int64 {
	ids := make([]int64, 0, len(items))
	for _, e := range items {
		ids = append(ids, e.ID)
	}

	return ids
}

// expectLists wires one successful round of the three list calls.
func expectLists(
	m *dashboard.MockBackend,
	events []backoffice.Event,
	purchases []backoffice.PurchaseOrder,
	suggestions []backoffice.Suggestion,
) {
	m.EXPECT().ListEvents(gomock.Any()).Return(events, nil)
	m.EXPECT().ListPurchaseOrders(gomock.Any()).Return(purchases, nil)
	m.EXPECT().ListSuggestions(gomock.Any(), dashboard.DefaultSuggestionLimit).Return(suggestions, nil)
}

func TestController_Refresh(t *testing.T) {
	type testCase struct {
		name          string
		setupMock     func(m *dashboard.MockBackend)
		wantErr       bool
		wantError     string
		wantPurchases []int64
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *dashboard.MockBackend) {
				expectLists(m,
					[]backoffice.Event{{ID: 1, CreatedAt: at(1)}, {ID: 2, CreatedAt: at(5)}},
					[]backoffice.PurchaseOrder{purchase(10, 1), purchase(11, 3), {ID: 12}},
					nil,
				)
			},
			wantPurchases: []int64{11, 10, 12},
		},
		{
			name: "OneFetchFails",
			setupMock: func(m *dashboard.MockBackend) {
				m.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("events unavailable"))
				m.EXPECT().ListPurchaseOrders(gomock.Any()).Return([]backoffice.PurchaseOrder{purchase(99, 1)}, nil).AnyTimes()
				m.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantErr:       true,
			wantError:     "events unavailable",
			wantPurchases: []int64{},
		},
		{
			name: "BlankErrorUsesFallback",
			setupMock: func(m *dashboard.MockBackend) {
				m.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New(" ")).AnyTimes()
				m.EXPECT().ListPurchaseOrders(gomock.Any()).Return(nil, errors.New(" ")).AnyTimes()
				m.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, errors.New(" ")).AnyTimes()
			},
			wantErr:       true,
			wantError:     "Unable to load dashboard data.",
			wantPurchases: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := dashboard.NewMockBackend(ctrl)
			tt.setupMock(backend)

			c := dashboard.NewController(backend)
			err := c.Refresh(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			view := c.View()
			assert.Equal(t, tt.wantError, view.Error)
			assert.Equal(t, tt.wantPurchases, purchaseIDs(view.Purchases))
		})
	}
}

func TestController_Refresh_ClearsErrorAndReplacesWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	gomock.InOrder(
		backend.EXPECT().SearchDocuments(gomock.Any(), "acme").Return(nil, errors.New("search down")),
	)
	expectLists(backend, []backoffice.Event{{ID: 1}}, []backoffice.PurchaseOrder{purchase(1, 0), purchase(2, 1)}, nil)
	expectLists(backend, []backoffice.Event{{ID: 3}}, []backoffice.PurchaseOrder{purchase(2, 1)}, nil)

	c := dashboard.NewController(backend)
	require.Error(t, c.Search(context.Background(), "acme"))
	assert.Equal(t, "search down", c.View().Error)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.View().Error)

	require.NoError(t, c.Refresh(context.Background()))

	view := c.View()
	assert.Equal(t, []int64{2}, purchaseIDs(view.Purchases))
	assert.Equal(t, []int64{3}, eventIDs(view.Events))
}

func TestController_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)
	expectLists(backend, nil, []backoffice.PurchaseOrder{purchase(1, 0)}, nil)

	var (
		mu      sync.Mutex
		loading []bool
	)

	c := dashboard.NewController(backend, dashboard.WithObserver(func(v dashboard.View) {
		mu.Lock()
		defer mu.Unlock()

		loading = append(loading, v.IsLoading)
	}))

	require.NoError(t, c.Load(context.Background()))

	view := c.View()
	assert.False(t, view.IsLoading)
	assert.Equal(t, []int64{1}, purchaseIDs(view.Purchases))
	assert.True(t, loading[0])
	assert.False(t, loading[len(loading)-1])
}

func TestController_Load_DiscardedAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	c := dashboard.NewController(backend)
	notified := 0
	c.Subscribe(func(dashboard.View) { notified++ })

	backend.EXPECT().ListEvents(gomock.Any()).DoAndReturn(func(context.Context) ([]backoffice.Event, error) {
		c.Close()
		return []backoffice.Event{{ID: 1}}, nil
	})
	backend.EXPECT().ListPurchaseOrders(gomock.Any()).Return([]backoffice.PurchaseOrder{purchase(1, 0)}, nil)
	backend.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, c.Load(context.Background()))

	view := c.View()
	assert.Empty(t, view.Events)
	assert.Empty(t, view.Purchases)
	assert.True(t, view.IsLoading, "state is frozen at the moment of close")

	frozen := view.Version
	c.SetQuery("ignored")
	assert.Equal(t, frozen, c.View().Version)
	assert.Positive(t, notified)
}

func TestController_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	results := []backoffice.SearchResult{{ID: 7, Score: 0.9, Excerpt: "net 30"}}
	backend.EXPECT().SearchDocuments(gomock.Any(), "net terms").Return(results, nil).Times(1)

	c := dashboard.NewController(backend)

	require.NoError(t, c.Search(context.Background(), "  net terms "))

	view := c.View()
	assert.Equal(t, results, view.Documents)
	assert.Equal(t, "net terms", view.LastSearched)
	assert.Equal(t, "  net terms ", view.SearchQuery)
	assert.False(t, view.IsSearching)
	assert.Equal(t, `1 results for "net terms"`, view.Metrics[3].Delta)

	// A blank search never reaches the backend.
	require.NoError(t, c.Search(context.Background(), "   "))

	view = c.View()
	assert.Empty(t, view.Documents)
	assert.Empty(t, view.LastSearched)
	assert.Equal(t, "Search the knowledge graph", view.Metrics[3].Delta)
}

func TestController_Search_FailureKeepsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	results := []backoffice.SearchResult{{ID: 1}}

	gomock.InOrder(
		backend.EXPECT().SearchDocuments(gomock.Any(), "first").Return(results, nil),
		backend.EXPECT().SearchDocuments(gomock.Any(), "second").Return(nil, errors.New("")),
	)

	c := dashboard.NewController(backend)
	require.NoError(t, c.Search(context.Background(), "first"))
	require.Error(t, c.Search(context.Background(), "second"))

	view := c.View()
	assert.Equal(t, results, view.Documents)
	assert.Equal(t, "first", view.LastSearched)
	assert.Equal(t, "Document search failed.", view.Error)
	assert.False(t, view.IsSearching)
}

func TestController_SetQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)
	backend.EXPECT().SearchDocuments(gomock.Any(), "acme").Return([]backoffice.SearchResult{{ID: 1}}, nil)

	c := dashboard.NewController(backend)
	require.NoError(t, c.Search(context.Background(), "acme"))

	c.SetQuery("acme co")
	assert.Len(t, c.View().Documents, 1)

	c.SetQuery("")
	assert.Empty(t, c.View().Documents)
	assert.Empty(t, c.View().LastSearched)
}

func TestController_Approve(t *testing.T) {
	type testCase struct {
		name      string
		id        int64
		setupMock func(m *dashboard.MockBackend)
		wantErr   bool
		wantError string
	}

	tests := []testCase{
		{
			name:      "ZeroIDIgnored",
			id:        0,
			setupMock: func(*dashboard.MockBackend) {},
		},
		{
			name: "Success",
			id:   4,
			setupMock: func(m *dashboard.MockBackend) {
				m.EXPECT().ApproveSuggestion(gomock.Any(), int64(4)).Return(&backoffice.Approval{Suggestion: &backoffice.Suggestion{ID: 4, Approved: true}}, nil)
				expectLists(m, nil, nil, []backoffice.Suggestion{{ID: 4, Approved: true}})
			},
		},
		{
			name: "ApprovalFails",
			id:   4,
			setupMock: func(m *dashboard.MockBackend) {
				m.EXPECT().ApproveSuggestion(gomock.Any(), int64(4)).Return(nil, errors.New("already approved"))
			},
			wantErr:   true,
			wantError: "already approved",
		},
		{
			name: "RefreshFailsUsesApproveFallback",
			id:   4,
			setupMock: func(m *dashboard.MockBackend) {
				m.EXPECT().ApproveSuggestion(gomock.Any(), int64(4)).Return(nil, nil)
				m.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("")).AnyTimes()
				m.EXPECT().ListPurchaseOrders(gomock.Any()).Return(nil, nil).AnyTimes()
				m.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantErr:   true,
			wantError: "Unable to approve suggestion.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := dashboard.NewMockBackend(ctrl)
			tt.setupMock(backend)

			c := dashboard.NewController(backend)
			err := c.Approve(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			view := c.View()
			assert.Equal(t, tt.wantError, view.Error)
			assert.Empty(t, view.PendingApprovals)
		})
	}
}

func TestController_Approve_FoldsApprovalWhenReloadFails(t *testing.T) {
	type testCase struct {
		name           string
		approval       *backoffice.Approval
		wantApproved   bool
		wantEvents     []int64
		wantOpenMetric string
	}

	tests := []testCase{
		{
			name: "Envelope",
			approval: &backoffice.Approval{
				Suggestion: &backoffice.Suggestion{ID: 7, Approved: true, CreatedAt: at(1)},
				Event:      &backoffice.Event{ID: 50, Type: "suggestion.approved", CreatedAt: at(2)},
			},
			wantApproved:   true,
			wantEvents:     []int64{50},
			wantOpenMetric: "0",
		},
		{
			name: "UnkeyedRecordsSkipped",
			approval: &backoffice.Approval{
				Suggestion: &backoffice.Suggestion{Approved: true},
				Event:      &backoffice.Event{},
			},
			wantEvents:     []int64{},
			wantOpenMetric: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := dashboard.NewMockBackend(ctrl)

			gomock.InOrder(
				backend.EXPECT().ListEvents(gomock.Any()).Return(nil, nil),
				backend.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("events unavailable")),
			)
			backend.EXPECT().ListPurchaseOrders(gomock.Any()).Return(nil, nil).Times(2)
			backend.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).
				Return([]backoffice.Suggestion{{ID: 7, CreatedAt: at(1)}}, nil).
				Times(2)
			backend.EXPECT().ApproveSuggestion(gomock.Any(), int64(7)).Return(tt.approval, nil)

			c := dashboard.NewController(backend)
			require.NoError(t, c.Refresh(context.Background()))
			require.Error(t, c.Approve(context.Background(), 7))

			view := c.View()
			require.Len(t, view.Suggestions, 1)
			assert.Equal(t, int64(7), view.Suggestions[0].ID)
			assert.Equal(t, tt.wantApproved, view.Suggestions[0].Approved)
			assert.Equal(t, tt.wantEvents, eventIDs(view.Events))
			assert.Equal(t, tt.wantOpenMetric, view.Metrics[2].Value)
		})
	}
}

func TestController_Approve_ConcurrentSameID(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	var started sync.WaitGroup
	started.Add(2)

	release := make(chan struct{})

	backend.EXPECT().
		ApproveSuggestion(gomock.Any(), int64(9)).
		DoAndReturn(func(context.Context, int64) (*backoffice.Approval, error) {
			started.Done()
			<-release

			return &backoffice.Approval{Suggestion: &backoffice.Suggestion{ID: 9, Approved: true}}, nil
		}).
		Times(2)
	backend.EXPECT().ListEvents(gomock.Any()).Return(nil, nil).Times(2)
	backend.EXPECT().ListPurchaseOrders(gomock.Any()).Return(nil, nil).Times(2)
	backend.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	var (
		mu      sync.Mutex
		maxSeen int
	)

	c := dashboard.NewController(backend, dashboard.WithObserver(func(v dashboard.View) {
		mu.Lock()
		defer mu.Unlock()

		maxSeen = max(maxSeen, len(v.PendingApprovals))
	}))

	var done sync.WaitGroup
	for range 2 {
		done.Add(1)

		go func() {
			defer done.Done()
			assert.NoError(t, c.Approve(context.Background(), 9))
		}()
	}

	started.Wait()
	assert.Equal(t, []int64{9}, c.View().PendingApprovals)
	assert.True(t, c.View().IsPending(9))

	close(release)
	done.Wait()

	assert.Empty(t, c.View().PendingApprovals)
	assert.Equal(t, 1, maxSeen)
}

func TestController_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	result := func(id int64, minutes int) *backoffice.IngestResult {
		return &backoffice.IngestResult{
			PurchaseOrder: purchase(id, minutes),
			Events:        []backoffice.Event{{ID: id * 100, CreatedAt: at(minutes)}},
			Suggestions:   []backoffice.Suggestion{{ID: id * 1000, CreatedAt: at(minutes)}},
		}
	}

	gomock.InOrder(
		backend.EXPECT().IngestPurchase(gomock.Any(), "Acme Holdings", "one.pdf", gomock.Any()).Return(result(1, 1), nil),
		backend.EXPECT().IngestPurchase(gomock.Any(), "Acme Holdings", "two.pdf", gomock.Any()).Return(nil, errors.New("unreadable scan")),
		backend.EXPECT().IngestPurchase(gomock.Any(), "Acme Holdings", "three.pdf", gomock.Any()).Return(result(3, 3), nil),
	)

	// The trailing reload fails, so the folded-in collections stay visible.
	backend.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("")).AnyTimes()
	backend.EXPECT().ListPurchaseOrders(gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().ListSuggestions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var (
		mu        sync.Mutex
		uploading []bool
	)

	c := dashboard.NewController(backend,
		dashboard.WithLLC("Acme Holdings"),
		dashboard.WithObserver(func(v dashboard.View) {
			mu.Lock()
			defer mu.Unlock()

			uploading = append(uploading, v.IsUploading)
		}),
	)

	files := []upload.File{
		upload.FromBytes("one.pdf", []byte("1")),
		upload.FromBytes("two.pdf", []byte("2")),
		upload.FromBytes("three.pdf", []byte("3")),
	}

	summary, err := c.Upload(context.Background(), files, "Purchase Order")
	require.Error(t, err)
	assert.Equal(t, upload.Summary{Completed: 2, Failed: 1}, summary)

	view := c.View()
	require.Len(t, view.Uploads, 3)
	assert.Equal(t, "three.pdf", view.Uploads[0].Name)
	assert.Equal(t, upload.StatusComplete, view.Uploads[0].Status)
	assert.Equal(t, "two.pdf", view.Uploads[1].Name)
	assert.Equal(t, upload.StatusError, view.Uploads[1].Status)
	assert.Equal(t, "unreadable scan", view.Uploads[1].Message)
	assert.Equal(t, "one.pdf", view.Uploads[2].Name)
	assert.Equal(t, upload.StatusComplete, view.Uploads[2].Status)

	assert.Equal(t, []int64{3, 1}, purchaseIDs(view.Purchases))
	assert.Equal(t, []int64{300, 100}, eventIDs(view.Events))
	assert.Len(t, view.Suggestions, 2)

	assert.Equal(t, "Unable to refresh dashboard after upload.", view.Error)
	assert.False(t, view.IsUploading)
	assert.True(t, uploading[0])
	assert.False(t, uploading[len(uploading)-1])
}

func TestController_Upload_ReloadReplacesCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	backend.EXPECT().
		IngestPurchase(gomock.Any(), dashboard.DefaultLLCName, "po.pdf", gomock.Any()).
		Return(&backoffice.IngestResult{PurchaseOrder: purchase(5, 0)}, nil)
	expectLists(backend, nil, []backoffice.PurchaseOrder{purchase(5, 0), purchase(6, 2)}, nil)

	c := dashboard.NewController(backend)

	_, err := c.Upload(context.Background(), []upload.File{upload.FromBytes("po.pdf", nil)}, "Invoice")
	require.NoError(t, err)

	view := c.View()
	assert.Equal(t, []int64{6, 5}, purchaseIDs(view.Purchases))
	assert.Empty(t, view.Error)
	assert.Contains(t, view.Uploads[0].Message, "Created PO #5 for Acme")
}

func TestController_Upload_LogIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	backend.EXPECT().IngestPurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rejected")).Times(4)
	expectLists(backend, nil, nil, nil)

	c := dashboard.NewController(backend, dashboard.WithUploadLogSize(2))

	files := []upload.File{
		upload.FromBytes("a.pdf", nil),
		upload.FromBytes("b.pdf", nil),
		upload.FromBytes("c.pdf", nil),
		upload.FromBytes("d.pdf", nil),
	}

	_, err := c.Upload(context.Background(), files, "Contract")
	require.NoError(t, err)

	view := c.View()
	require.Len(t, view.Uploads, 2)
	assert.Equal(t, "d.pdf", view.Uploads[0].Name)
	assert.Equal(t, "c.pdf", view.Uploads[1].Name)
	assert.Equal(t, "rejected", view.Error)
}

func TestController_Upload_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := dashboard.NewController(dashboard.NewMockBackend(ctrl))

	before := c.View().Version

	summary, err := c.Upload(context.Background(), nil, "Invoice")
	require.NoError(t, err)
	assert.Equal(t, upload.Summary{}, summary)
	assert.Equal(t, before, c.View().Version)
}

func TestController_View_DerivesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := dashboard.NewMockBackend(ctrl)

	paid := purchase(1, 0)
	paid.TotalAmount = backoffice.NewAmount(100)
	paid.Status = "PAID"

	pending := purchase(2, 1)
	pending.TotalAmount = backoffice.NewAmount(50)

	expectLists(backend, nil, []backoffice.PurchaseOrder{paid, pending}, []backoffice.Suggestion{{ID: 1}, {ID: 2, Approved: true}})

	c := dashboard.NewController(backend, dashboard.WithSuggestionLimit(dashboard.DefaultSuggestionLimit))
	require.NoError(t, c.Refresh(context.Background()))

	view := c.View()
	require.Len(t, view.Metrics, 4)
	assert.Contains(t, view.Metrics[0].Value, "150.00")
	assert.Equal(t, "1 open orders", view.Metrics[0].Delta)
	require.Len(t, view.Vendors, 1)
	assert.Equal(t, 1, view.Vendors[0].OpenOrders)
	assert.Len(t, view.OpenSuggestions, 1)
	assert.Len(t, view.ResolvedSuggestions, 1)
}
