package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/favorites"
	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

const eventJSON = `{
	"id": "e1",
	"title": "Jazz Night",
	"description": null,
	"category": {"id": null, "name": "Uncategorized", "slug": "uncategorized", "icon": null, "color": "gray"},
	"location_name": "Town Hall Square",
	"latitude": 58.3806,
	"longitude": 26.7251,
	"start_date": "2025-09-12T18:00:00Z",
	"end_date": null,
	"image_url": null,
	"website_url": null,
	"contact_info": null,
	"created_at": "2025-09-01T10:00:00Z",
	"updated_at": "2025-09-01T10:00:00Z"
}`

func newClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithRetry(retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1})}, opts...)
	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api")

	assert.Error(t, err)
}

func TestClient_ListEvents(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "music", r.URL.Query().Get("category"))
		assert.Equal(t, "jazz", r.URL.Query().Get("search"))
		assert.Equal(t, "week", r.URL.Query().Get("dateRange"))
		_, _ = io.WriteString(w, "["+eventJSON+"]")
	})

	events, err := c.ListEvents(context.Background(), domain.EventFilters{
		Category: "music", Search: "jazz", DateRange: domain.DateRangeWeek,
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Jazz Night", events[0].Title)
	assert.True(t, events[0].Category.IsPlaceholder())
	assert.True(t, events[0].StartDate.Equal(time.Date(2025, time.September, 12, 18, 0, 0, 0, time.UTC)))
}

func TestClient_ListEvents_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, "[]")
	})

	events, err := c.ListEvents(context.Background(), domain.DefaultFilters())

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ListEvents_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "unknown date range"})
	})

	_, err := c.ListEvents(context.Background(), domain.EventFilters{DateRange: "year"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "unknown date range")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestClient_Favorites_SendToken(t *testing.T) {
	var seen []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodGet {
			_, _ = io.WriteString(w, `["e1","e2"]`)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, WithToken("secret"))

	ids, err := c.ListFavoriteIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids)

	require.NoError(t, c.AddFavorite(context.Background(), "e3"))
	require.NoError(t, c.RemoveFavorite(context.Background(), "e1"))

	assert.Equal(t, []string{
		"GET /api/me/favorites/ids",
		"PUT /api/me/favorites/e3",
		"DELETE /api/me/favorites/e1",
	}, seen)
}

func TestClient_AddFavorite_Unauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.AddFavorite(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_CreateEvent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/events", r.URL.Path)

		var req dto.EventRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jazz Night", req.Title)
		if assert.NotNil(t, req.Latitude) {
			assert.Equal(t, 0.0, *req.Latitude)
		}
		assert.Equal(t, "2025-09-12T18:00:00Z", req.StartDate)
		assert.Nil(t, req.EndDate)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, eventJSON)
	})

	e, err := c.CreateEvent(context.Background(), domain.EventRecord{
		Title:        "Jazz Night",
		CategoryID:   "c1",
		LocationName: "Null Island",
		StartDate:    time.Date(2025, time.September, 12, 21, 0, 0, 0, time.FixedZone("EEST", 3*60*60)),
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
}

func TestClient_DeleteEvent_Forbidden(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/events/e1", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	})

	err := c.DeleteEvent(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := New(srv.URL, WithRetry(retry.Strategy{Attempts: 1}))
	require.NoError(t, err)

	_, err = c.ListCategories(context.Background())

	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClient_BacksFavoritesReconciler(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `["e1"]`)
		case http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}, WithToken("secret"))

	rec := favorites.NewReconciler(c)
	require.NoError(t, rec.Load(context.Background(), "u1"))
	assert.True(t, rec.Has("e1"))

	on, err := rec.Toggle(context.Background(), "e2")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, rec.Has("e2"))

	_, err = rec.Toggle(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.True(t, rec.Has("e1"))
}
