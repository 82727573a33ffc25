package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}, pagination *Pagination) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success:    status < 400,
		Data:       raw,
		Pagination: pagination,
	})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *MemorySession, *int) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := NewMemorySession()
	session.SetToken("test-token")

	expiredCalls := 0
	c := New(server.URL, session, WithSessionExpiredHook(func() { expiredCalls++ }))
	return c, session, &expiredCalls
}

func TestUnitsStoreFetchAppliesFilterAndList(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, []Unit{
			{ID: "u1", UnitNumber: "101", Status: "AVAILABLE"},
			{ID: "u2", UnitNumber: "102", Status: "AVAILABLE"},
		}, &Pagination{Page: 1, Limit: 20, Total: 2, TotalPages: 1})
	})
	c, _, _ := newTestClient(t, handler)
	store := NewUnitsStore(NewUnitsService(c))

	err := store.Fetch(context.Background(), UnitFilter{Status: "AVAILABLE"})

	require.NoError(t, err)
	assert.Equal(t, "status=AVAILABLE", gotQuery)
	assert.Len(t, store.Items(), 2)
	assert.Equal(t, 2, store.Pagination().Total)
	assert.False(t, store.IsLoading())
	assert.Empty(t, store.Err())
}

func TestUnitsStoreCreateValidationNeverContactsServer(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeEnvelope(w, http.StatusCreated, Unit{ID: "u1"}, nil)
	})
	c, _, _ := newTestClient(t, handler)
	store := NewUnitsStore(NewUnitsService(c))

	_, err := store.Create(context.Background(), UnitPayload{UnitNumber: "101"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "BuildingID")
	assert.Zero(t, requests)
	// Pre-flight failures are reported at the call site, not stored.
	assert.Empty(t, store.Err())
	assert.False(t, store.IsLoading())
}

func TestTenancyCreateRejectionPreservesItems(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeEnvelope(w, http.StatusOK, []Tenancy{{ID: "t1"}, {ID: "t2"}}, &Pagination{Total: 2})
			return
		}
		writeFailure(w, http.StatusConflict, "unit is not available")
	})
	c, _, _ := newTestClient(t, handler)
	store := NewTenanciesStore(NewTenanciesService(c))
	require.NoError(t, store.Fetch(context.Background(), TenancyFilter{}))

	_, err := store.Create(context.Background(), TenancyPayload{
		TenantID:  "0d9f79cd-5b3a-4f44-9e5e-0a2b6f9d1c11",
		UnitID:    "7c1f34a2-2f7b-4f0c-9a0e-3f5d8f6b2e22",
		StartDate: mustTime(t, "2026-01-01T00:00:00Z"),
		EndDate:   mustTime(t, "2026-12-31T00:00:00Z"),
	})

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusConflict, failure.Status)
	assert.Equal(t, "unit is not available", failure.Message)

	assert.Len(t, store.Items(), 2)
	assert.Equal(t, "unit is not available", store.Err())
	assert.False(t, store.IsLoading())
}

func TestUsersStoreActivateIsIdempotent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeEnvelope(w, http.StatusOK, []User{{ID: "u1", IsActive: false}}, &Pagination{Total: 1})
			return
		}
		// The server reports success whether or not the flag changed.
		writeEnvelope(w, http.StatusOK, User{ID: "u1", IsActive: true}, nil)
	})
	c, _, _ := newTestClient(t, handler)
	store := NewUsersStore(NewUsersService(c))
	require.NoError(t, store.Fetch(context.Background(), UserFilter{}))

	require.NoError(t, store.Activate(context.Background(), "u1"))
	require.NoError(t, store.Activate(context.Background(), "u1"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].IsActive)
	assert.Empty(t, store.Err())
}

func TestUnauthorizedFetchPurgesSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusUnauthorized, "token expired")
	})
	c, session, expiredCalls := newTestClient(t, handler)
	store := NewUnitsStore(NewUnitsService(c))

	err := store.Fetch(context.Background(), UnitFilter{})

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
	assert.Equal(t, 1, *expiredCalls)
	// The store never sees partial data or an error from expiry.
	assert.Empty(t, store.Items())
	assert.Empty(t, store.Err())
	assert.False(t, store.IsLoading())
}

func TestConcurrentFetchesLastResolvedWins(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("search") {
		case "stale":
			<-release
			writeEnvelope(w, http.StatusOK, []Unit{{ID: "stale"}}, &Pagination{Total: 1})
		default:
			writeEnvelope(w, http.StatusOK, []Unit{{ID: "fresh"}}, &Pagination{Total: 1})
		}
	})
	c, _, _ := newTestClient(t, handler)
	store := NewUnitsStore(NewUnitsService(c))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.Fetch(context.Background(), UnitFilter{Search: "stale"})
	}()

	// The fresh fetch completes first; only then is the stale response
	// released, so it resolves last and overwrites.
	require.NoError(t, store.Fetch(context.Background(), UnitFilter{Search: "fresh"}))
	close(release)
	wg.Wait()

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "stale", items[0].ID)
}

func TestMaintenanceStoreCancelPatchesRow(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeEnvelope(w, http.StatusOK, []MaintenanceRequest{
				{ID: "m1", Status: "PENDING"},
				{ID: "m2", Status: "IN_PROGRESS"},
			}, &Pagination{Total: 2})
		case r.Method == http.MethodPatch:
			assert.Equal(t, "/maintenance/m1/cancel", r.URL.Path)
			writeEnvelope(w, http.StatusOK, MaintenanceRequest{ID: "m1", Status: "CANCELLED"}, nil)
		}
	})
	c, _, _ := newTestClient(t, handler)
	store := NewMaintenanceStore(NewMaintenanceService(c))
	require.NoError(t, store.Fetch(context.Background(), MaintenanceFilter{}))

	request, err := store.Cancel(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", request.Status)
	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "CANCELLED", items[0].Status)
	assert.Equal(t, "IN_PROGRESS", items[1].Status)
}

func TestFetchMyTenanciesTogglesLoading(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeEnvelope(w, http.StatusOK, []Tenancy{{ID: "mine"}}, nil)
	})
	c, _, _ := newTestClient(t, handler)
	store := NewTenanciesStore(NewTenanciesService(c))

	done := make(chan error, 1)
	go func() {
		done <- store.FetchMyTenancies(context.Background())
	}()

	assert.Eventually(t, store.IsLoading, time.Second, time.Millisecond)
	close(release)
	require.NoError(t, <-done)

	assert.False(t, store.IsLoading())
	assert.Empty(t, store.Err())
	require.Len(t, store.MyTenancies(), 1)
}

func TestFetchMyTenanciesFailureClearsLoading(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusInternalServerError, "database unavailable")
	})
	c, _, _ := newTestClient(t, handler)
	store := NewTenanciesStore(NewTenanciesService(c))

	err := store.FetchMyTenancies(context.Background())

	require.Error(t, err)
	assert.False(t, store.IsLoading())
	assert.Equal(t, "database unavailable", store.Err())
	assert.Empty(t, store.MyTenancies())
}

func TestTenanciesStoreMyTenanciesSeparateFromList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tenancies/my-tenancies" {
			writeEnvelope(w, http.StatusOK, []Tenancy{{ID: "mine"}}, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, []Tenancy{{ID: "t1"}, {ID: "t2"}}, &Pagination{Total: 2})
	})
	c, _, _ := newTestClient(t, handler)
	store := NewTenanciesStore(NewTenanciesService(c))

	require.NoError(t, store.Fetch(context.Background(), TenancyFilter{}))
	require.NoError(t, store.FetchMyTenancies(context.Background()))

	assert.Len(t, store.Items(), 2)
	mine := store.MyTenancies()
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].ID)
}
