package router

import (
	"net/http"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "citymap"

type Handler interface {
	MapConfig(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListCategories(c *ginext.Context)

	SignUp(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)

	ListFavorites(c *ginext.Context)
	ListFavoriteIDs(c *ginext.Context)
	AddFavorite(c *ginext.Context)
	RemoveFavorite(c *ginext.Context)
	FavoritesCalendar(c *ginext.Context)

	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ListAvatars(c *ginext.Context)

	ListAdminEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Stats(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	UpdateCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	SetRole(c *ginext.Context)
}

// InitRouter wires the routes. mw runs on every request, before the session
// is resolved; metricsHandler is served on /metrics when non-nil.
func InitRouter(
	mode string,
	h Handler,
	sessions middleware.SessionResolver,
	metricsHandler http.Handler,
	log logger.Logger,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	// ginext only knows release and debug.
	if mode == gin.TestMode {
		gin.SetMode(gin.TestMode)
	}
	router.Use(otelgin.Middleware(serviceName))
	router.Use(mw...)
	router.Use(middleware.Session(sessions, log))

	api := router.Group("/api")
	{
		api.GET("/map", h.MapConfig)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/categories", h.ListCategories)

		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
	}

	user := router.Group("/api", middleware.RequireUser())
	{
		user.GET("/auth/me", h.Me)

		// Favorites
		user.GET("/me/favorites", h.ListFavorites)
		user.GET("/me/favorites/ids", h.ListFavoriteIDs)
		user.PUT("/me/favorites/:id", h.AddFavorite)
		user.DELETE("/me/favorites/:id", h.RemoveFavorite)
		user.GET("/me/calendar.ics", h.FavoritesCalendar)

		// Profile
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.GET("/profile/avatars", h.ListAvatars)
	}

	editors := router.Group("/api/admin", middleware.RequireRole(domain.RoleModerator, domain.RoleAdmin))
	{
		editors.GET("/events", h.ListAdminEvents)
		editors.POST("/events", h.CreateEvent)
		editors.PUT("/events/:id", h.UpdateEvent)
		editors.DELETE("/events/:id", h.DeleteEvent)
		editors.GET("/stats", h.Stats)

		editors.POST("/categories", h.CreateCategory)
		editors.PUT("/categories/:id", h.UpdateCategory)
		editors.DELETE("/categories/:id", h.DeleteCategory)
	}

	admins := router.Group("/api/admin/users", middleware.RequireRole(domain.RoleAdmin))
	{
		admins.PUT("/:id/role", h.SetRole)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	if metricsHandler != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metricsHandler.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
