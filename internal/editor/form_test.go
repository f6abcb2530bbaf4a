package editor

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullEvent() domain.Event {
	end := time.Date(2025, time.September, 20, 23, 0, 0, 0, time.UTC)
	return domain.Event{
		ID:           "e1",
		Title:        "Jazz Night",
		Description:  strPtr("Live quartet"),
		Category:     domain.Category{ID: "c1", Name: "Culture", Slug: "culture", Color: "bg-purple-100 text-purple-800"},
		LocationName: "Genialistide Klubi",
		Latitude:     58.37786,
		Longitude:    26.72925,
		StartDate:    time.Date(2025, time.September, 20, 19, 30, 0, 0, time.UTC),
		EndDate:      &end,
		ImageURL:     strPtr("https://example.org/jazz.png"),
		WebsiteURL:   strPtr("https://example.org"),
		ContactInfo:  strPtr("info@example.org"),
	}
}

func TestToFormState_RendersMinutePrecisionUTC(t *testing.T) {
	e := fullEvent()
	e.StartDate = time.Date(2025, time.September, 20, 22, 30, 45, 0, time.FixedZone("EEST", 3*60*60))

	f := ToFormState(e)

	assert.Equal(t, "2025-09-20T19:30", f.StartDate)
	assert.Equal(t, "2025-09-20T23:00", f.EndDate)
	assert.Equal(t, "58.37786", f.Latitude)
	assert.Equal(t, "c1", f.CategoryID)
	assert.Equal(t, "Live quartet", f.Description)
}

func TestToFormState_PlaceholderCategoryLeavesSelectEmpty(t *testing.T) {
	e := fullEvent()
	e.Category = domain.Uncategorized()

	assert.Empty(t, ToFormState(e).CategoryID)
}

func TestFormRoundTrip(t *testing.T) {
	e := fullEvent()

	rec, err := FromFormState(ToFormState(e))

	require.NoError(t, err)
	assert.Equal(t, e.Record(), rec)
}

func TestFormRoundTrip_NormalizedRecord(t *testing.T) {
	e := fullEvent()
	padded := "  Old Town Square  "
	blank := "   "
	e.LocationName = padded
	e.Title = " " + e.Title + "\t"
	e.WebsiteURL = &blank

	stored := NormalizeRecord(e.Record())
	assert.Equal(t, "Old Town Square", stored.LocationName)
	assert.Nil(t, stored.WebsiteURL)

	e.Title, e.LocationName, e.WebsiteURL = stored.Title, stored.LocationName, stored.WebsiteURL
	rec, err := FromFormState(ToFormState(e))

	require.NoError(t, err)
	assert.Equal(t, stored, rec)
}

func TestFormRoundTrip_TruncatesSubMinute(t *testing.T) {
	e := fullEvent()
	e.StartDate = e.StartDate.Add(42 * time.Second)
	e.EndDate = nil
	e.Description = nil

	rec, err := FromFormState(ToFormState(e))

	require.NoError(t, err)
	assert.Equal(t, e.StartDate.Truncate(time.Minute), rec.StartDate)
	assert.Nil(t, rec.EndDate)
	assert.Nil(t, rec.Description)
}

func TestFromFormState_EmptyOptionalFieldsBecomeNil(t *testing.T) {
	f := ToFormState(fullEvent())
	f.Description = "   "
	f.ImageURL = ""
	f.WebsiteURL = ""
	f.ContactInfo = ""
	f.EndDate = ""

	rec, err := FromFormState(f)

	require.NoError(t, err)
	assert.Nil(t, rec.Description)
	assert.Nil(t, rec.ImageURL)
	assert.Nil(t, rec.WebsiteURL)
	assert.Nil(t, rec.ContactInfo)
	assert.Nil(t, rec.EndDate)
}

func TestFromFormState_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *FormData)
		field string
	}{
		{name: "empty title", edit: func(f *FormData) { f.Title = "" }, field: "title"},
		{name: "blank title", edit: func(f *FormData) { f.Title = "  " }, field: "title"},
		{name: "no category", edit: func(f *FormData) { f.CategoryID = "" }, field: "category_id"},
		{name: "no location", edit: func(f *FormData) { f.LocationName = "" }, field: "location_name"},
		{name: "no start", edit: func(f *FormData) { f.StartDate = "" }, field: "start_date"},
		{name: "bad start", edit: func(f *FormData) { f.StartDate = "tomorrow" }, field: "start_date"},
		{name: "end before start", edit: func(f *FormData) { f.EndDate = "2025-09-19T10:00" }, field: "end_date"},
		{name: "latitude not a number", edit: func(f *FormData) { f.Latitude = "north" }, field: "latitude"},
		{name: "latitude NaN", edit: func(f *FormData) { f.Latitude = "NaN" }, field: "latitude"},
		{name: "longitude infinite", edit: func(f *FormData) { f.Longitude = "+Inf" }, field: "longitude"},
		{name: "longitude out of range", edit: func(f *FormData) { f.Longitude = "181" }, field: "longitude"},
		{name: "latitude empty", edit: func(f *FormData) { f.Latitude = "" }, field: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ToFormState(fullEvent())
			tt.edit(&f)

			_, err := FromFormState(f)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field), "expected %s in %v", tt.field, verr)
		})
	}
}

func TestFromFormState_ReportsEveryField(t *testing.T) {
	_, err := FromFormState(FormData{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"title", "category_id", "location_name", "latitude", "longitude", "start_date"} {
		assert.True(t, verr.Has(field), field)
	}
}

func TestNewForm_PrefillsCityCentre(t *testing.T) {
	f := NewForm()

	assert.Equal(t, "58.3806", f.Latitude)
	assert.Equal(t, "26.7251", f.Longitude)
	assert.Empty(t, f.Title)
}

func TestValidateRecord(t *testing.T) {
	rec := fullEvent().Record()
	require.NoError(t, ValidateRecord(rec))

	rec.Latitude = math.NaN()
	rec.Title = ""
	err := ValidateRecord(rec)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("latitude"))
	assert.True(t, verr.Has("title"))
	assert.False(t, verr.Has("longitude"))
}
