// Package mapview owns the markers of one rendered map and keeps them equal
// to the visible event list.
package mapview

import (
	"errors"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is a handle to one pin on the map.
type Marker interface {
	Remove()
}

// Map is the slice of the tile library the synchronizer needs.
type Map interface {
	SetView(center LatLng, zoom int)
	AddMarker(at LatLng, onClick func()) Marker
	Remove()
}

type State int

const (
	Uninitialized State = iota
	Ready
	Released
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Options is the initial viewport and the zoom used when an event is selected.
type Options struct {
	Center     LatLng `json:"center"`
	Zoom       int    `json:"zoom"`
	SelectZoom int    `json:"select_zoom"`
}

func DefaultOptions() Options {
	return Options{
		Center:     LatLng{Lat: 58.3806, Lng: 26.7251},
		Zoom:       13,
		SelectZoom: 15,
	}
}

var (
	ErrNotReady = errors.New("map is not attached")
	ErrReleased = errors.New("map was released")
)

type placed struct {
	marker Marker
	at     LatLng
	event  domain.Event
}

// Synchronizer is not safe for concurrent use; it is driven from the view's
// single event loop.
type Synchronizer struct {
	opts  Options
	state State
	m     Map

	events   []domain.Event
	markers  map[string]placed
	selected *domain.Event
	popup    bool
	onSelect func(domain.Event)
}

func NewSynchronizer(opts Options) *Synchronizer {
	return &Synchronizer{
		opts:    opts,
		markers: make(map[string]placed),
	}
}

// OnSelect registers a callback fired when a marker is clicked.
func (s *Synchronizer) OnSelect(fn func(domain.Event)) {
	s.onSelect = fn
}

func (s *Synchronizer) State() State { return s.state }

// Attach moves Uninitialized to Ready: the view is seeded at the default
// centre and events received before the map existed get their markers.
func (s *Synchronizer) Attach(m Map) error {
	switch s.state {
	case Ready:
		return nil
	case Released:
		return ErrReleased
	}
	s.m = m
	s.state = Ready
	m.SetView(s.opts.Center, s.opts.Zoom)
	s.sync()
	return nil
}

// Reconcile makes the marker set equal to events. Before Attach the list is
// only stored.
func (s *Synchronizer) Reconcile(events []domain.Event) error {
	if s.state == Released {
		return ErrReleased
	}
	s.events = append(s.events[:0:0], events...)
	if s.state == Ready {
		s.sync()
	}
	return nil
}

// sync removes stale handles before creating new ones.
func (s *Synchronizer) sync() {
	want := make(map[string]domain.Event, len(s.events))
	for _, e := range s.events {
		want[e.ID] = e
	}

	for id, p := range s.markers {
		e, ok := want[id]
		if ok && p.at == position(e) {
			p.event = e
			s.markers[id] = p
			continue
		}
		p.marker.Remove()
		delete(s.markers, id)
	}

	for _, e := range s.events {
		if _, ok := s.markers[e.ID]; ok {
			continue
		}
		id := e.ID
		at := position(e)
		s.markers[id] = placed{
			marker: s.m.AddMarker(at, func() { s.click(id) }),
			at:     at,
			event:  e,
		}
	}
}

// click resolves the event at click time so a kept marker always selects the
// current version of its event.
func (s *Synchronizer) click(id string) {
	p, ok := s.markers[id]
	if !ok {
		return
	}
	e := p.event
	if s.onSelect != nil {
		s.onSelect(e)
		return
	}
	_ = s.Select(e)
}

// Select recentres on e at the selection zoom and shows its popup.
func (s *Synchronizer) Select(e domain.Event) error {
	switch s.state {
	case Uninitialized:
		return ErrNotReady
	case Released:
		return ErrReleased
	}
	ev := e
	s.selected = &ev
	s.popup = true
	s.m.SetView(position(e), s.opts.SelectZoom)
	return nil
}

// Dismiss hides the popup and clears the selection.
func (s *Synchronizer) Dismiss() {
	s.selected = nil
	s.popup = false
}

// Popup returns the event whose popup is visible, if any.
func (s *Synchronizer) Popup() (domain.Event, bool) {
	if !s.popup || s.selected == nil {
		return domain.Event{}, false
	}
	return *s.selected, true
}

func (s *Synchronizer) MarkerCount() int {
	return len(s.markers)
}

// HasMarker reports whether eventID currently has a marker.
func (s *Synchronizer) HasMarker(eventID string) bool {
	_, ok := s.markers[eventID]
	return ok
}

// Release removes every marker and the map. It is the only exit from Ready.
func (s *Synchronizer) Release() {
	if s.state == Released {
		return
	}
	for id, p := range s.markers {
		p.marker.Remove()
		delete(s.markers, id)
	}
	if s.m != nil {
		s.m.Remove()
		s.m = nil
	}
	s.selected = nil
	s.popup = false
	s.state = Released
}

func position(e domain.Event) LatLng {
	return LatLng{Lat: e.Latitude, Lng: e.Longitude}
}
