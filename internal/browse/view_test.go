package browse

import (
	"context"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/browse/mocks"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/favorites"
	favmocks "github.com/Misha2007/smart-city-event-map/internal/favorites/mocks"
	"github.com/Misha2007/smart-city-event-map/internal/filter"
	"github.com/Misha2007/smart-city-event-map/internal/mapview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pin struct {
	at      mapview.LatLng
	click   func()
	removed bool
}

func (p *pin) Remove() { p.removed = true }

type recordingMap struct {
	centers []mapview.LatLng
	zooms   []int
	pins    []*pin
}

func (m *recordingMap) SetView(c mapview.LatLng, zoom int) {
	m.centers = append(m.centers, c)
	m.zooms = append(m.zooms, zoom)
}

func (m *recordingMap) AddMarker(at mapview.LatLng, onClick func()) mapview.Marker {
	p := &pin{at: at, click: onClick}
	m.pins = append(m.pins, p)
	return p
}

func (m *recordingMap) Remove() {}

func (m *recordingMap) live() int {
	n := 0
	for _, p := range m.pins {
		if !p.removed {
			n++
		}
	}
	return n
}

var (
	now     = time.Date(2025, time.September, 12, 15, 30, 0, 0, time.UTC)
	culture = domain.Category{ID: "c1", Name: "Culture", Slug: "culture"}
	tech    = domain.Category{ID: "c2", Name: "Technology", Slug: "technology"}
)

func scenarioEvents() []domain.Event {
	return []domain.Event{
		{ID: "1", Title: "Jazz Night", Category: culture, Latitude: 58.38, Longitude: 26.72, StartDate: now.Add(time.Hour)},
		{ID: "2", Title: "Code Jam", Category: tech, Latitude: 58.37, Longitude: 26.71, StartDate: now.Add(40 * 24 * time.Hour)},
	}
}

type fixture struct {
	view   *View
	source *mocks.MockEventSource
	store  *favmocks.MockStore
	favs   *favorites.Reconciler
	m      *recordingMap
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	source := mocks.NewMockEventSource(t)
	store := favmocks.NewMockStore(t)
	favs := favorites.NewReconciler(store)
	syncer := mapview.NewSynchronizer(mapview.DefaultOptions())
	m := &recordingMap{}
	require.NoError(t, syncer.Attach(m))

	opts = append([]Option{WithClock(func() time.Time { return now })}, opts...)
	return &fixture{
		view:   NewView(source, favs, syncer, opts...),
		source: source,
		store:  store,
		favs:   favs,
		m:      m,
	}
}

func (f *fixture) refresh(t *testing.T, events []domain.Event) {
	t.Helper()
	f.source.EXPECT().ListEvents(mock.Anything, domain.DefaultFilters()).Return(events, nil).Once()
	f.source.EXPECT().ListCategories(mock.Anything).Return([]domain.Category{culture, tech}, nil).Once()
	require.NoError(t, f.view.Refresh(context.Background()))
}

func visibleIDs(v *View) []string {
	var out []string
	for _, e := range v.Visible() {
		out = append(out, e.ID)
	}
	return out
}

func TestView_Refresh_PlacesOneMarkerPerEvent(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	assert.Equal(t, []string{"1", "2"}, visibleIDs(f.view))
	assert.Equal(t, 2, f.m.live())
	assert.Len(t, f.view.Categories(), 2)
	assert.NoError(t, f.view.Banner())
}

func TestView_SetFilters_SearchReconcilesMarkers(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	require.NoError(t, f.view.SetFilters(domain.EventFilters{Category: domain.AllCategories, Search: "jam", DateRange: domain.DateRangeAll}))

	assert.Equal(t, []string{"2"}, visibleIDs(f.view))
	assert.Equal(t, 1, f.m.live())
}

func TestView_SetFilters_BoundedWeek(t *testing.T) {
	f := newFixture(t, WithPolicy(filter.Policy{Bounded: true}))
	f.refresh(t, scenarioEvents())

	require.NoError(t, f.view.SetFilters(domain.EventFilters{Category: domain.AllCategories, DateRange: domain.DateRangeWeek}))

	assert.Equal(t, []string{"1"}, visibleIDs(f.view))
}

func TestView_SetFilters_RejectsUnknownRange(t *testing.T) {
	f := newFixture(t)

	err := f.view.SetFilters(domain.EventFilters{DateRange: "decade"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestView_Refresh_FailureShowsBanner(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	f.source.EXPECT().ListEvents(mock.Anything, mock.Anything).Return(nil, domain.ErrNetwork).Once()

	err := f.view.Refresh(context.Background())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, f.view.Banner(), domain.ErrNetwork)
	assert.Len(t, f.view.Visible(), 2)
}

func TestView_SelectMarker_RecentresAndOpensPopup(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	for _, p := range f.m.pins {
		if p.at == (mapview.LatLng{Lat: 58.37, Lng: 26.71}) {
			p.click()
		}
	}

	sel, ok := f.view.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", sel.ID)
	assert.Equal(t, mapview.LatLng{Lat: 58.37, Lng: 26.71}, f.m.centers[len(f.m.centers)-1])
	assert.Equal(t, 15, f.m.zooms[len(f.m.zooms)-1])

	f.view.Dismiss()
	_, ok = f.view.Selected()
	assert.False(t, ok)
}

func TestView_SelectByID_UnknownEvent(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	assert.ErrorIs(t, f.view.SelectByID("42"), domain.ErrEventNotFound)
}

func TestView_ToggleFavorite_SignedOut(t *testing.T) {
	f := newFixture(t)
	f.refresh(t, scenarioEvents())

	_, err := f.view.ToggleFavorite(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, f.view.IsFavorite("1"))
	assert.NoError(t, f.view.Banner())
}

func TestView_ToggleFavorite_FailureShowsBanner(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListFavoriteIDs(mock.Anything).Return([]string{}, nil).Once()
	require.NoError(t, f.favs.Load(context.Background(), "user-1"))
	f.store.EXPECT().AddFavorite(mock.Anything, "1").Return(domain.ErrNetwork).Once()

	_, err := f.view.ToggleFavorite(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, f.view.Banner(), domain.ErrNetwork)
	assert.False(t, f.view.IsFavorite("1"))
}

func TestView_Close_DiscardsInFlightRefresh(t *testing.T) {
	f := newFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	f.source.EXPECT().ListEvents(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.EventFilters) ([]domain.Event, error) {
			close(started)
			<-release
			return scenarioEvents(), nil
		}).Once()
	f.source.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Maybe()

	done := make(chan error, 1)
	go func() { done <- f.view.Refresh(context.Background()) }()
	<-started

	f.view.Close()
	close(release)

	require.NoError(t, <-done)
	assert.Empty(t, f.view.Visible())
	assert.Zero(t, f.m.live())
	assert.ErrorIs(t, f.view.Refresh(context.Background()), ErrClosed)
}
