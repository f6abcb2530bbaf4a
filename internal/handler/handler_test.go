package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	hmocks "github.com/Misha2007/smart-city-event-map/internal/handler/mocks"
	"github.com/Misha2007/smart-city-event-map/internal/mapview"
	"github.com/Misha2007/smart-city-event-map/internal/middleware"
	mwmocks "github.com/Misha2007/smart-city-event-map/internal/middleware/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testToken = "test-token"

type testDeps struct {
	events     *hmocks.MockEventSvc
	categories *hmocks.MockCategorySvc
	favorites  *hmocks.MockFavoriteSvc
	auth       *hmocks.MockAuthSvc
	profiles   *hmocks.MockProfileSvc
	resolver   *mwmocks.MockSessionResolver
}

func setupRouter(t *testing.T) (testDeps, http.Handler) {
	t.Helper()
	d := testDeps{
		events:     hmocks.NewMockEventSvc(t),
		categories: hmocks.NewMockCategorySvc(t),
		favorites:  hmocks.NewMockFavoriteSvc(t),
		auth:       hmocks.NewMockAuthSvc(t),
		profiles:   hmocks.NewMockProfileSvc(t),
		resolver:   mwmocks.NewMockSessionResolver(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(d.events, d.categories, d.favorites, d.auth, d.profiles, mapview.DefaultOptions())
	h.now = func() time.Time { return time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) }

	r := ginext.New("test")
	r.Use(middleware.Session(d.resolver, log))

	api := r.Group("/api")
	{
		api.GET("/map", h.MapConfig)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/categories", h.ListCategories)
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
	}

	me := r.Group("/api", middleware.RequireUser())
	{
		me.GET("/auth/me", h.Me)
		me.GET("/me/favorites", h.ListFavorites)
		me.GET("/me/favorites/ids", h.ListFavoriteIDs)
		me.PUT("/me/favorites/:id", h.AddFavorite)
		me.DELETE("/me/favorites/:id", h.RemoveFavorite)
		me.GET("/me/calendar.ics", h.FavoritesCalendar)
		me.GET("/profile", h.GetProfile)
		me.PUT("/profile", h.UpdateProfile)
		me.GET("/profile/avatars", h.ListAvatars)
	}

	admin := r.Group("/api/admin", middleware.RequireRole(domain.RoleModerator, domain.RoleAdmin))
	{
		admin.GET("/events", h.ListAdminEvents)
		admin.POST("/events", h.CreateEvent)
		admin.PUT("/events/:id", h.UpdateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)
		admin.GET("/stats", h.Stats)
		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)
	}

	return d, r
}

func signedIn(d testDeps, role domain.Role) domain.User {
	user := domain.User{ID: uuid.New().String(), Email: "ada@example.com"}
	d.resolver.EXPECT().Resolve(mock.Anything, testToken).Return(domain.Session{User: user, Role: role}, nil)
	return user
}

func do(r http.Handler, method, target string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent() domain.Event {
	desc := "Live music"
	return domain.Event{
		ID:           uuid.New().String(),
		Title:        "Jazz Night",
		Description:  &desc,
		Category:     domain.Category{ID: uuid.New().String(), Name: "Culture", Slug: "culture"},
		LocationName: "Town Hall Square",
		Latitude:     58.3806,
		Longitude:    26.7251,
		StartDate:    time.Date(2025, time.September, 5, 19, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC),
	}
}

// --- Public ---

func TestHandler_MapConfig(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/map", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"center":{"lat":58.3806,"lng":26.7251},"zoom":13,"select_zoom":15}`, w.Body.String())
}

func TestHandler_ListEvents_PassesFilters(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	d.events.EXPECT().List(mock.Anything, domain.EventFilters{
		Category:  "culture",
		Search:    "jazz",
		DateRange: domain.DateRangeWeek,
	}).Return([]domain.Event{event}, nil)

	w := do(r, http.MethodGet, "/api/events?category=culture&search=jazz&dateRange=week", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Jazz Night", resp[0].Title)
	assert.Equal(t, "culture", resp[0].Category.Slug)
	assert.Equal(t, "2025-09-05T19:00:00Z", resp[0].StartDate)
}

func TestHandler_ListEvents_DefaultsToAllCategories(t *testing.T) {
	d, r := setupRouter(t)

	d.events.EXPECT().List(mock.Anything, domain.EventFilters{Category: domain.AllCategories}).Return(nil, nil)

	w := do(r, http.MethodGet, "/api/events", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListEvents_UnknownDateRange(t *testing.T) {
	d, r := setupRouter(t)

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := do(r, http.MethodGet, "/api/events?dateRange=year", nil, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_BackendFailure(t *testing.T) {
	d, r := setupRouter(t)

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	w := do(r, http.MethodGet, "/api/events", nil, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to fetch events"}`, w.Body.String())
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/events/not-a-uuid", nil, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	id := uuid.New().String()
	d.events.EXPECT().GetByID(mock.Anything, id).Return(domain.Event{}, domain.ErrEventNotFound)

	w := do(r, http.MethodGet, "/api/events/"+id, nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_UncategorizedHasNullID(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	event.Category = domain.Uncategorized()
	d.events.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	w := do(r, http.MethodGet, "/api/events/"+event.ID, nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	category := resp["category"].(map[string]any)
	assert.Nil(t, category["id"])
	assert.Equal(t, domain.UncategorizedSlug, category["slug"])
}

func TestHandler_ListCategories(t *testing.T) {
	d, r := setupRouter(t)

	d.categories.EXPECT().List(mock.Anything).Return([]domain.Category{{ID: "c1", Name: "Culture", Slug: "culture"}}, nil)

	w := do(r, http.MethodGet, "/api/categories", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"culture"`)
}

// --- Auth ---

func TestHandler_SignUp_SetsCookie(t *testing.T) {
	d, r := setupRouter(t)

	issued := domain.IssuedSession{
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      domain.User{ID: "u1", Email: "ada@example.com"},
	}
	d.auth.EXPECT().SignUp(mock.Anything, domain.Credentials{Email: "ada@example.com", Password: "correct horse"}).Return(issued, nil)

	w := do(r, http.MethodPost, "/api/auth/signup", dto.CredentialsRequest{Email: "ada@example.com", Password: "correct horse"}, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fresh", resp.Token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=fresh")
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	d, r := setupRouter(t)

	d.auth.EXPECT().SignUp(mock.Anything, mock.Anything).Return(domain.IssuedSession{}, domain.ErrEmailTaken)

	w := do(r, http.MethodPost, "/api/auth/signup", dto.CredentialsRequest{Email: "ada@example.com", Password: "correct horse"}, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Invalid(t *testing.T) {
	d, r := setupRouter(t)

	d.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.IssuedSession{}, domain.ErrInvalidLogin)

	w := do(r, http.MethodPost, "/api/auth/login", dto.CredentialsRequest{Email: "ada@example.com", Password: "nope"}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/auth/login", `{"email":""}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleUser)
	d.auth.EXPECT().Logout(mock.Anything, testToken).Return(nil).Once()

	w := do(r, http.MethodPost, "/api/auth/logout", nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestHandler_Me(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleModerator)
	d.profiles.EXPECT().Get(mock.Anything, user).Return(domain.Profile{ID: user.ID, DisplayName: "Ada"}, nil)

	w := do(r, http.MethodGet, "/api/auth/me", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "moderator", resp.Role)
	assert.Equal(t, "Ada", resp.Profile.DisplayName)
}

func TestHandler_Me_Anonymous(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/auth/me", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Favorites ---

func TestHandler_AddFavorite(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	id := uuid.New().String()
	d.favorites.EXPECT().Add(mock.Anything, user.ID, id).Return(nil).Once()

	w := do(r, http.MethodPut, "/api/me/favorites/"+id, nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_AddFavorite_UnknownEvent(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleUser)
	d.favorites.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrEventNotFound)

	w := do(r, http.MethodPut, "/api/me/favorites/"+uuid.New().String(), nil, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AddFavorite_Anonymous(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPut, "/api/me/favorites/"+uuid.New().String(), nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RemoveFavorite(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	id := uuid.New().String()
	d.favorites.EXPECT().Remove(mock.Anything, user.ID, id).Return(nil).Once()

	w := do(r, http.MethodDelete, "/api/me/favorites/"+id, nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_ListFavoriteIDs_EmptyIsArray(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	d.favorites.EXPECT().ListIDs(mock.Anything, user.ID).Return(nil, nil)

	w := do(r, http.MethodGet, "/api/me/favorites/ids", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_FavoritesCalendar(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	event := sampleEvent()
	d.favorites.EXPECT().ListEvents(mock.Anything, user.ID).Return([]domain.Event{event}, nil)

	w := do(r, http.MethodGet, "/api/me/calendar.ics", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
	assert.Contains(t, w.Body.String(), "BEGIN:VEVENT")
	assert.Contains(t, w.Body.String(), "SUMMARY:Jazz Night")
}

func TestHandler_FavoritesCalendar_Empty(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	d.favorites.EXPECT().ListEvents(mock.Anything, user.ID).Return(nil, nil)

	w := do(r, http.MethodGet, "/api/me/calendar.ics", nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Profile ---

func TestHandler_UpdateProfile_Validation(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	d.profiles.EXPECT().Update(mock.Anything, user, domain.ProfileInput{DisplayName: "Ada", AvatarURL: "https://evil.example"}).
		Return(domain.Profile{}, domain.ErrValidation)

	w := do(r, http.MethodPut, "/api/profile", dto.ProfileRequest{DisplayName: "Ada", AvatarURL: "https://evil.example"}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvatars(t *testing.T) {
	d, r := setupRouter(t)

	user := signedIn(d, domain.RoleUser)
	d.profiles.EXPECT().Avatars(user).Return([]domain.AvatarOption{{Style: "bottts", URL: "https://api.dicebear.com/7.x/bottts/svg?seed=x"}})

	w := do(r, http.MethodGet, "/api/profile/avatars", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"style":"bottts"`)
}

// --- Admin ---

func TestHandler_Admin_ForbiddenForUsers(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleUser)

	w := do(r, http.MethodGet, "/api/admin/events", nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleModerator)
	event := sampleEvent()
	lat, lng := 58.3806, 26.7251
	blank := " "

	d.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rec domain.EventRecord) bool {
		return rec.Title == "Jazz Night" &&
			rec.Description == nil &&
			rec.EndDate == nil &&
			rec.StartDate.Equal(event.StartDate)
	})).Return(event, nil)

	w := do(r, http.MethodPost, "/api/admin/events", dto.EventRequest{
		Title:        " Jazz Night ",
		Description:  &blank,
		CategoryID:   event.Category.ID,
		LocationName: event.LocationName,
		Latitude:     &lat,
		Longitude:    &lng,
		StartDate:    "2025-09-05T22:00:00+03:00",
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_ZeroCoordinatesAccepted(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleAdmin)
	d.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rec domain.EventRecord) bool {
		return rec.Latitude == 0 && rec.Longitude == 0
	})).Return(sampleEvent(), nil)

	body := `{"title":"Null Island","category_id":"` + uuid.New().String() + `","location_name":"Gulf of Guinea",` +
		`"latitude":0,"longitude":0,"start_date":"2025-09-05T19:00:00Z"}`
	w := do(r, http.MethodPost, "/api/admin/events", body, true)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing fields", body: `{"title":""}`},
		{name: "bad date", body: `{"title":"X","category_id":"` + uuid.New().String() + `","location_name":"Y","latitude":1,"longitude":1,"start_date":"tomorrow"}`},
		{name: "latitude out of range", body: `{"title":"X","category_id":"` + uuid.New().String() + `","location_name":"Y","latitude":91,"longitude":1,"start_date":"2025-09-05T19:00:00Z"}`},
		{name: "category id not uuid", body: `{"title":"X","category_id":"culture","location_name":"Y","latitude":1,"longitude":1,"start_date":"2025-09-05T19:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := setupRouter(t)
			signedIn(d, domain.RoleAdmin)

			w := do(r, http.MethodPost, "/api/admin/events", tt.body, true)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_UpdateEvent_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleAdmin)
	id := uuid.New().String()
	d.events.EXPECT().Update(mock.Anything, id, mock.Anything).Return(domain.Event{}, domain.ErrEventNotFound)

	body := `{"title":"X","category_id":"` + uuid.New().String() + `","location_name":"Y","latitude":1,"longitude":1,"start_date":"2025-09-05T19:00:00Z"}`
	w := do(r, http.MethodPut, "/api/admin/events/"+id, body, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleModerator)
	id := uuid.New().String()
	d.events.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

	w := do(r, http.MethodDelete, "/api/admin/events/"+id, nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Stats(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleModerator)
	d.events.EXPECT().Stats(mock.Anything).Return(domain.DashboardStats{TotalEvents: 5, Categories: 3, ThisMonth: 2}, nil)

	w := do(r, http.MethodGet, "/api/admin/stats", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_events":5,"categories":3,"this_month":2}`, w.Body.String())
}

func TestHandler_CreateCategory_SlugTaken(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleAdmin)
	d.categories.EXPECT().Create(mock.Anything, domain.CategoryInput{Name: "Music"}).Return(domain.Category{}, domain.ErrSlugTaken)

	w := do(r, http.MethodPost, "/api/admin/categories", dto.CategoryRequest{Name: "Music"}, true)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	d, r := setupRouter(t)

	signedIn(d, domain.RoleAdmin)
	d.events.EXPECT().ListAdmin(mock.Anything).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/api/admin/events", nil, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
