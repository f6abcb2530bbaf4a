package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/editor/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadedDashboard(t *testing.T, confirm ConfirmFunc, events ...domain.Event) (*Dashboard, *mocks.MockBackend) {
	t.Helper()
	backend := mocks.NewMockBackend(t)
	d := NewDashboard(backend, confirm)

	backend.EXPECT().ListAdminEvents(mock.Anything).Return(events, nil).Once()
	require.NoError(t, d.Load(context.Background()))
	return d, backend
}

func TestDashboard_Submit_EmptyTitle_NoBackendCall(t *testing.T) {
	d, _ := loadedDashboard(t, nil)
	form := d.New()
	form.CategoryID = "c1"
	form.LocationName = "Raekoja plats"
	form.StartDate = "2025-09-20T19:30"

	err := d.Submit(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, d.Events())
	_, _, open := d.Form()
	assert.True(t, open)
}

func TestDashboard_Submit_CreateRefetches(t *testing.T) {
	d, backend := loadedDashboard(t, nil)
	created := fullEvent()
	form := ToFormState(created)
	d.New()

	backend.EXPECT().CreateEvent(mock.Anything, created.Record()).Return(created, nil).Once()
	backend.EXPECT().ListAdminEvents(mock.Anything).Return([]domain.Event{created}, nil).Once()

	err := d.Submit(context.Background(), form)

	require.NoError(t, err)
	assert.Len(t, d.Events(), 1)
	_, _, open := d.Form()
	assert.False(t, open)
}

func TestDashboard_Submit_UpdateUsesEditedID(t *testing.T) {
	e := fullEvent()
	d, backend := loadedDashboard(t, nil, e)

	form, err := d.Edit(e.ID)
	require.NoError(t, err)
	form.Title = "Jazz Night II"

	backend.EXPECT().UpdateEvent(mock.Anything, e.ID, mock.MatchedBy(func(r domain.EventRecord) bool {
		return r.Title == "Jazz Night II"
	})).Return(e, nil).Once()
	backend.EXPECT().ListAdminEvents(mock.Anything).Return([]domain.Event{e}, nil).Once()

	require.NoError(t, d.Submit(context.Background(), form))
}

func TestDashboard_Submit_BackendFailureKeepsList(t *testing.T) {
	e := fullEvent()
	d, backend := loadedDashboard(t, nil, e)
	d.New()

	backend.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(domain.Event{}, domain.ErrNetwork).Once()

	err := d.Submit(context.Background(), ToFormState(e))

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, d.Err(), domain.ErrNetwork)
	assert.Len(t, d.Events(), 1)
}

func TestDashboard_Submit_StaleRecordRefetches(t *testing.T) {
	e := fullEvent()
	d, backend := loadedDashboard(t, nil, e)
	form, err := d.Edit(e.ID)
	require.NoError(t, err)

	backend.EXPECT().UpdateEvent(mock.Anything, e.ID, mock.Anything).Return(domain.Event{}, domain.ErrEventNotFound).Once()
	backend.EXPECT().ListAdminEvents(mock.Anything).Return([]domain.Event{}, nil).Once()

	err = d.Submit(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Empty(t, d.Events())
}

func TestDashboard_Delete_RequiresConfirmation(t *testing.T) {
	e := fullEvent()
	var asked []string
	d, _ := loadedDashboard(t, func(ev domain.Event) bool {
		asked = append(asked, ev.ID)
		return false
	}, e)

	err := d.Delete(context.Background(), e.ID)

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, []string{e.ID}, asked)
	assert.Len(t, d.Events(), 1)
}

func TestDashboard_Delete_ConfirmedRefetches(t *testing.T) {
	e := fullEvent()
	d, backend := loadedDashboard(t, func(domain.Event) bool { return true }, e)

	backend.EXPECT().DeleteEvent(mock.Anything, e.ID).Return(nil).Once()
	backend.EXPECT().ListAdminEvents(mock.Anything).Return([]domain.Event{}, nil).Once()

	require.NoError(t, d.Delete(context.Background(), e.ID))
	assert.Empty(t, d.Events())
}

func TestDashboard_Delete_UnknownID(t *testing.T) {
	d, _ := loadedDashboard(t, func(domain.Event) bool { return true })

	assert.ErrorIs(t, d.Delete(context.Background(), "missing"), domain.ErrEventNotFound)
}

func TestDashboard_Load_FailureKeepsPreviousList(t *testing.T) {
	e := fullEvent()
	d, backend := loadedDashboard(t, nil, e)

	backend.EXPECT().ListAdminEvents(mock.Anything).Return(nil, errors.New("connection reset")).Once()

	require.Error(t, d.Load(context.Background()))
	assert.Len(t, d.Events(), 1)
	assert.Error(t, d.Err())
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, time.September, 12, 10, 0, 0, 0, time.UTC)
	culture := domain.Category{ID: "c1", Slug: "culture"}
	nature := domain.Category{ID: "c2", Slug: "nature"}
	events := []domain.Event{
		{ID: "1", Category: culture, StartDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Category: culture, StartDate: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Category: nature, StartDate: time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Category: domain.Uncategorized(), StartDate: time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)},
	}

	stats := ComputeStats(events, now)

	assert.Equal(t, domain.DashboardStats{TotalEvents: 4, Categories: 3, ThisMonth: 2}, stats)
}
