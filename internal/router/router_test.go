package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// stubHandler answers every route with its own name.
type stubHandler struct{}

func reply(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) { c.String(http.StatusOK, name) }
}

func (stubHandler) MapConfig(c *ginext.Context)         { reply("MapConfig")(c) }
func (stubHandler) ListEvents(c *ginext.Context)        { reply("ListEvents")(c) }
func (stubHandler) GetEvent(c *ginext.Context)          { reply("GetEvent")(c) }
func (stubHandler) ListCategories(c *ginext.Context)    { reply("ListCategories")(c) }
func (stubHandler) SignUp(c *ginext.Context)            { reply("SignUp")(c) }
func (stubHandler) Login(c *ginext.Context)             { reply("Login")(c) }
func (stubHandler) Logout(c *ginext.Context)            { reply("Logout")(c) }
func (stubHandler) Me(c *ginext.Context)                { reply("Me")(c) }
func (stubHandler) ListFavorites(c *ginext.Context)     { reply("ListFavorites")(c) }
func (stubHandler) ListFavoriteIDs(c *ginext.Context)   { reply("ListFavoriteIDs")(c) }
func (stubHandler) AddFavorite(c *ginext.Context)       { reply("AddFavorite")(c) }
func (stubHandler) RemoveFavorite(c *ginext.Context)    { reply("RemoveFavorite")(c) }
func (stubHandler) FavoritesCalendar(c *ginext.Context) { reply("FavoritesCalendar")(c) }
func (stubHandler) GetProfile(c *ginext.Context)        { reply("GetProfile")(c) }
func (stubHandler) UpdateProfile(c *ginext.Context)     { reply("UpdateProfile")(c) }
func (stubHandler) ListAvatars(c *ginext.Context)       { reply("ListAvatars")(c) }
func (stubHandler) ListAdminEvents(c *ginext.Context)   { reply("ListAdminEvents")(c) }
func (stubHandler) CreateEvent(c *ginext.Context)       { reply("CreateEvent")(c) }
func (stubHandler) UpdateEvent(c *ginext.Context)       { reply("UpdateEvent")(c) }
func (stubHandler) DeleteEvent(c *ginext.Context)       { reply("DeleteEvent")(c) }
func (stubHandler) Stats(c *ginext.Context)             { reply("Stats")(c) }
func (stubHandler) CreateCategory(c *ginext.Context)    { reply("CreateCategory")(c) }
func (stubHandler) UpdateCategory(c *ginext.Context)    { reply("UpdateCategory")(c) }
func (stubHandler) DeleteCategory(c *ginext.Context)    { reply("DeleteCategory")(c) }
func (stubHandler) SetRole(c *ginext.Context)           { reply("SetRole")(c) }

func newRouter(t *testing.T, resolver *mocks.MockSessionResolver) http.Handler {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	return InitRouter("test", stubHandler{}, resolver, metrics, log)
}

func withRole(resolver *mocks.MockSessionResolver, role domain.Role) {
	resolver.EXPECT().Resolve(mock.Anything, "tok").Return(domain.Session{User: domain.User{ID: "u1"}, Role: role}, nil)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		role   domain.Role
		status int
		body   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK, body: "# metrics"},
		{name: "public events", method: http.MethodGet, path: "/api/events", status: http.StatusOK, body: "ListEvents"},
		{name: "favorites ids before :id", method: http.MethodGet, path: "/api/me/favorites/ids", role: domain.RoleUser, status: http.StatusOK, body: "ListFavoriteIDs"},
		{name: "favorites need session", method: http.MethodGet, path: "/api/me/favorites", status: http.StatusUnauthorized},
		{name: "admin events for moderator", method: http.MethodGet, path: "/api/admin/events", role: domain.RoleModerator, status: http.StatusOK, body: "ListAdminEvents"},
		{name: "admin events for user", method: http.MethodGet, path: "/api/admin/events", role: domain.RoleUser, status: http.StatusForbidden},
		{name: "set role for moderator", method: http.MethodPut, path: "/api/admin/users/u2/role", role: domain.RoleModerator, status: http.StatusForbidden},
		{name: "set role for admin", method: http.MethodPut, path: "/api/admin/users/u2/role", role: domain.RoleAdmin, status: http.StatusOK, body: "SetRole"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockSessionResolver(t)
			r := newRouter(t, resolver)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.role != "" {
				withRole(resolver, tt.role)
				req.Header.Set("Authorization", "Bearer tok")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
