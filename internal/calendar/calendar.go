// Package calendar renders events as an iCalendar feed.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/emersion/go-ical"
)

const productID = "-//smart-city-event-map//favorites//EN"

// ErrEmpty is returned for an empty event list; an iCalendar object must
// hold at least one component.
var ErrEmpty = errors.New("no events to export")

// Encode writes events to w as a VCALENDAR with one VEVENT per event.
func Encode(w io.Writer, events []domain.Event, now time.Time) error {
	if len(events) == 0 {
		return ErrEmpty
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		cal.Children = append(cal.Children, toComponent(e, now))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func toComponent(e domain.Event, now time.Time) *ical.Component {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, e.ID+"@smart-city-event-map")
	ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ev.Props.SetText(ical.PropSummary, e.Title)
	ev.Props.SetDateTime(ical.PropDateTimeStart, e.StartDate.UTC())
	if e.EndDate != nil {
		ev.Props.SetDateTime(ical.PropDateTimeEnd, e.EndDate.UTC())
	}
	if e.Description != nil {
		ev.Props.SetText(ical.PropDescription, *e.Description)
	}
	ev.Props.SetText(ical.PropLocation, e.LocationName)

	geo := ical.NewProp(ical.PropGeo)
	geo.Value = strconv.FormatFloat(e.Latitude, 'f', -1, 64) + ";" + strconv.FormatFloat(e.Longitude, 'f', -1, 64)
	ev.Props.Set(geo)

	if !e.Category.IsPlaceholder() {
		ev.Props.SetText(ical.PropCategories, e.Category.Name)
	}
	if e.WebsiteURL != nil {
		if u, err := url.Parse(*e.WebsiteURL); err == nil && u.IsAbs() {
			ev.Props.SetURI(ical.PropURL, u)
		}
	}
	return ev.Component
}
