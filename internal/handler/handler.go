package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/calendar"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	"github.com/Misha2007/smart-city-event-map/internal/mapview"
	"github.com/Misha2007/smart-city-event-map/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

//go:generate mockery --name=EventSvc|CategorySvc|FavoriteSvc|AuthSvc|ProfileSvc --output=mocks --outpkg=mocks --with-expecter

type EventSvc interface {
	List(ctx context.Context, f domain.EventFilters) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	ListAdmin(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, rec domain.EventRecord) (domain.Event, error)
	Update(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type CategorySvc interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type FavoriteSvc interface {
	ListIDs(ctx context.Context, userID string) ([]string, error)
	ListEvents(ctx context.Context, userID string) ([]domain.Event, error)
	Add(ctx context.Context, userID, eventID string) error
	Remove(ctx context.Context, userID, eventID string) error
}

type AuthSvc interface {
	SignUp(ctx context.Context, creds domain.Credentials) (domain.IssuedSession, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.IssuedSession, error)
	Logout(ctx context.Context, token string) error
	SetRole(ctx context.Context, userID string, role domain.Role) error
}

type ProfileSvc interface {
	Get(ctx context.Context, u domain.User) (domain.Profile, error)
	Update(ctx context.Context, u domain.User, in domain.ProfileInput) (domain.Profile, error)
	Avatars(u domain.User) []domain.AvatarOption
}

type Handler struct {
	eventService    EventSvc
	categoryService CategorySvc
	favoriteService FavoriteSvc
	authService     AuthSvc
	profileService  ProfileSvc
	mapOptions      mapview.Options
	now             func() time.Time
}

func NewHandler(
	eventService EventSvc,
	categoryService CategorySvc,
	favoriteService FavoriteSvc,
	authService AuthSvc,
	profileService ProfileSvc,
	mapOptions mapview.Options,
) *Handler {
	return &Handler{
		eventService:    eventService,
		categoryService: categoryService,
		favoriteService: favoriteService,
		authService:     authService,
		profileService:  profileService,
		mapOptions:      mapOptions,
		now:             time.Now,
	}
}

func (h *Handler) MapConfig(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.MapResponse{
		Center:     dto.LatLngResponse{Lat: h.mapOptions.Center.Lat, Lng: h.mapOptions.Center.Lng},
		Zoom:       h.mapOptions.Zoom,
		SelectZoom: h.mapOptions.SelectZoom,
	})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	var q dto.EventQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	f := domain.EventFilters{
		Category:  q.Category,
		Search:    q.Search,
		DateRange: domain.DateRange(q.DateRange),
	}
	if f.Category == "" {
		f.Category = domain.AllCategories
	}

	events, err := h.eventService.List(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	issued, err := h.authService.SignUp(c.Request.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, issued)
	c.JSON(http.StatusCreated, dto.ToSessionResponse(issued))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	issued, err := h.authService.Login(c.Request.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, issued)
	c.JSON(http.StatusOK, dto.ToSessionResponse(issued))
}

func (h *Handler) Logout(c *ginext.Context) {
	if token := middleware.TokenFrom(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *ginext.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), sess.User)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User:    dto.ToUserResponse(sess.User),
		Role:    string(sess.Role),
		Profile: dto.ToProfileResponse(profile),
	})
}

func (h *Handler) setSessionCookie(c *ginext.Context, issued domain.IssuedSession) {
	maxAge := int(time.Until(issued.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, issued.Token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// Favorites

func (h *Handler) ListFavorites(c *ginext.Context) {
	sess, _ := middleware.SessionFrom(c)

	events, err := h.favoriteService.ListEvents(c.Request.Context(), sess.User.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListFavoriteIDs(c *ginext.Context) {
	sess, _ := middleware.SessionFrom(c)

	ids, err := h.favoriteService.ListIDs(c.Request.Context(), sess.User.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, ids)
}

func (h *Handler) AddFavorite(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	sess, _ := middleware.SessionFrom(c)

	if err := h.favoriteService.Add(c.Request.Context(), sess.User.ID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFavorite(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	sess, _ := middleware.SessionFrom(c)

	if err := h.favoriteService.Remove(c.Request.Context(), sess.User.ID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FavoritesCalendar exports the caller's favorites as an iCalendar feed.
func (h *Handler) FavoritesCalendar(c *ginext.Context) {
	sess, _ := middleware.SessionFrom(c)

	events, err := h.favoriteService.ListEvents(c.Request.Context(), sess.User.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(events) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	var b strings.Builder
	if err = calendar.Encode(&b, events, h.now()); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="favorites.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(b.String()))
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	sess, _ := middleware.SessionFrom(c)

	profile, err := h.profileService.Get(c.Request.Context(), sess.User)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	sess, _ := middleware.SessionFrom(c)

	profile, err := h.profileService.Update(c.Request.Context(), sess.User, domain.ProfileInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Bio:         req.Bio,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) ListAvatars(c *ginext.Context) {
	sess, _ := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, h.profileService.Avatars(sess.User))
}

// Admin

func (h *Handler) ListAdminEvents(c *ginext.Context) {
	events, err := h.eventService.ListAdmin(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	rec, ok := bindEventRecord(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), rec)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	rec, ok := bindEventRecord(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, rec)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.eventService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), toCategoryInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, toCategoryInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SetRole(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.SetRole(c.Request.Context(), userID, domain.Role(req.Role)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func bindEventRecord(c *ginext.Context) (domain.EventRecord, bool) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.EventRecord{}, false
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return domain.EventRecord{}, false
	}

	rec := domain.EventRecord{
		Title:        strings.TrimSpace(req.Title),
		Description:  optional(req.Description),
		CategoryID:   req.CategoryID,
		LocationName: strings.TrimSpace(req.LocationName),
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		StartDate:    start.UTC(),
		ImageURL:     optional(req.ImageURL),
		WebsiteURL:   optional(req.WebsiteURL),
		ContactInfo:  optional(req.ContactInfo),
	}

	if end := optional(req.EndDate); end != nil {
		t, err := time.Parse(time.RFC3339, *end)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_date format, expected RFC3339",
			})
			return domain.EventRecord{}, false
		}
		t = t.UTC()
		rec.EndDate = &t
	}

	return rec, true
}

func toCategoryInput(req dto.CategoryRequest) domain.CategoryInput {
	return domain.CategoryInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Icon:  req.Icon,
		Color: req.Color,
	}
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidLogin),
		errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
