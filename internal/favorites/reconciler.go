// Package favorites keeps a signed-in user's favorite set in step with the
// backend. The set it shows is never ahead of what the backend confirmed for
// longer than the call in flight.
package favorites

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

//go:generate mockery --name=Store --output=mocks --outpkg=mocks --with-expecter

// Store is the backend relation (user, event). Add and Remove are idempotent.
type Store interface {
	ListFavoriteIDs(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, eventID string) error
	RemoveFavorite(ctx context.Context, eventID string) error
}

type pending struct {
	target bool
}

// Reconciler serializes toggles per event id. While a call for an id is in
// flight, further toggles only flip the pending target; the goroutine that
// owns the call keeps issuing calls until the confirmed state matches it.
// In-flight markers live as long as the session: a reload for the same user
// keeps them, sign-out or a different user drops them.
type Reconciler struct {
	store Store

	mu        sync.Mutex
	userID    string
	confirmed map[string]struct{}
	inFlight  map[string]*pending
	// written holds, per id, the write sequence of its last confirmed change.
	written map[string]uint64
	writes  uint64
	session uint64
	loads   uint64
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{
		store:     store,
		confirmed: make(map[string]struct{}),
		inFlight:  make(map[string]*pending),
		written:   make(map[string]uint64),
	}
}

// Load replaces the set with the backend's for userID. It is the sign-in
// transition. Switching users discards calls still in flight; reloading the
// same user keeps them, and ids that were in flight or changed while the list
// was being read keep their local confirmed state.
func (r *Reconciler) Load(ctx context.Context, userID string) error {
	r.mu.Lock()
	if userID != r.userID {
		r.session++
		r.inFlight = make(map[string]*pending)
		r.written = make(map[string]uint64)
	}
	r.loads++
	load, since := r.loads, r.writes
	r.mu.Unlock()

	ids, err := r.store.ListFavoriteIDs(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if load != r.loads {
		return nil
	}

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	if userID == r.userID {
		for id := range r.inFlight {
			r.keepLocal(next, id)
		}
		for id, seq := range r.written {
			if seq > since {
				r.keepLocal(next, id)
			}
		}
	}
	r.userID = userID
	r.confirmed = next
	return nil
}

func (r *Reconciler) keepLocal(next map[string]struct{}, id string) {
	if _, ok := r.confirmed[id]; ok {
		next[id] = struct{}{}
		return
	}
	delete(next, id)
}

// SignOut clears the set. Results of calls still in flight are dropped.
func (r *Reconciler) SignOut() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session++
	r.loads++
	r.userID = ""
	r.confirmed = make(map[string]struct{})
	r.inFlight = make(map[string]*pending)
	r.written = make(map[string]uint64)
}

func (r *Reconciler) SignedIn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userID != ""
}

// Toggle flips eventID and returns the resulting display state. Signed out it
// returns domain.ErrUnauthorized without touching the backend. On failure the
// display falls back to the last confirmed state.
func (r *Reconciler) Toggle(ctx context.Context, eventID string) (bool, error) {
	r.mu.Lock()
	if r.userID == "" {
		r.mu.Unlock()
		return false, domain.ErrUnauthorized
	}
	if p, ok := r.inFlight[eventID]; ok {
		p.target = !p.target
		target := p.target
		r.mu.Unlock()
		return target, nil
	}
	_, has := r.confirmed[eventID]
	p := &pending{target: !has}
	r.inFlight[eventID] = p
	gen := r.session
	r.mu.Unlock()

	for {
		r.mu.Lock()
		if gen != r.session {
			r.mu.Unlock()
			return false, nil
		}
		_, has = r.confirmed[eventID]
		if has == p.target {
			delete(r.inFlight, eventID)
			r.mu.Unlock()
			return has, nil
		}
		add := p.target
		r.mu.Unlock()

		var err error
		if add {
			err = r.store.AddFavorite(ctx, eventID)
		} else {
			err = r.store.RemoveFavorite(ctx, eventID)
		}

		r.mu.Lock()
		if gen != r.session {
			r.mu.Unlock()
			return false, nil
		}
		if err != nil {
			delete(r.inFlight, eventID)
			_, has = r.confirmed[eventID]
			r.mu.Unlock()
			if add {
				return has, fmt.Errorf("add favorite %s: %w", eventID, err)
			}
			return has, fmt.Errorf("remove favorite %s: %w", eventID, err)
		}
		if add {
			r.confirmed[eventID] = struct{}{}
		} else {
			delete(r.confirmed, eventID)
		}
		r.writes++
		r.written[eventID] = r.writes
		r.mu.Unlock()
	}
}

// Has reports the display state for eventID.
func (r *Reconciler) Has(eventID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasLocked(eventID)
}

// Pending reports whether a call for eventID is in flight.
func (r *Reconciler) Pending(eventID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inFlight[eventID]
	return ok
}

// IDs returns the display set, sorted.
func (r *Reconciler) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.confirmed)+len(r.inFlight))
	for id := range r.confirmed {
		if r.hasLocked(id) {
			out = append(out, id)
		}
	}
	for id, p := range r.inFlight {
		if _, ok := r.confirmed[id]; !ok && p.target {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Reconciler) hasLocked(eventID string) bool {
	if p, ok := r.inFlight[eventID]; ok {
		return p.target
	}
	_, ok := r.confirmed[eventID]
	return ok
}
