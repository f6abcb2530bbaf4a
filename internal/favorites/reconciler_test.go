package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/favorites/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedIn(t *testing.T, ids ...string) (*Reconciler, *mocks.MockStore) {
	t.Helper()
	store := mocks.NewMockStore(t)
	r := NewReconciler(store)

	store.EXPECT().ListFavoriteIDs(mock.Anything).Return(ids, nil).Once()
	require.NoError(t, r.Load(context.Background(), "user-1"))
	return r, store
}

func TestReconciler_Toggle_SignedOut_NoBackendCall(t *testing.T) {
	store := mocks.NewMockStore(t)
	r := NewReconciler(store)

	on, err := r.Toggle(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, on)
	assert.Empty(t, r.IDs())
}

func TestReconciler_Toggle_AddThenRemove_RoundTrip(t *testing.T) {
	r, store := signedIn(t)
	store.EXPECT().AddFavorite(mock.Anything, "1").Return(nil).Once()
	store.EXPECT().RemoveFavorite(mock.Anything, "1").Return(nil).Once()

	on, err := r.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"1"}, r.IDs())

	on, err = r.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, r.IDs())
}

func TestReconciler_Toggle_RemoveThenAdd_RoundTrip(t *testing.T) {
	r, store := signedIn(t, "1", "2")
	store.EXPECT().RemoveFavorite(mock.Anything, "2").Return(nil).Once()
	store.EXPECT().AddFavorite(mock.Anything, "2").Return(nil).Once()

	_, err := r.Toggle(context.Background(), "2")
	require.NoError(t, err)
	_, err = r.Toggle(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, r.IDs())
}

func TestReconciler_Toggle_AddFailure_LeavesSetUnchanged(t *testing.T) {
	r, store := signedIn(t, "2")
	store.EXPECT().AddFavorite(mock.Anything, "1").Return(domain.ErrNetwork).Once()

	on, err := r.Toggle(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.False(t, on)
	assert.False(t, r.Has("1"))
	assert.False(t, r.Pending("1"))
	assert.Equal(t, []string{"2"}, r.IDs())
}

func TestReconciler_Toggle_RemoveFailure_LeavesSetUnchanged(t *testing.T) {
	r, store := signedIn(t, "1")
	store.EXPECT().RemoveFavorite(mock.Anything, "1").Return(errors.New("boom")).Once()

	on, err := r.Toggle(context.Background(), "1")

	require.Error(t, err)
	assert.True(t, on)
	assert.True(t, r.Has("1"))
}

func TestReconciler_Load_Failure(t *testing.T) {
	store := mocks.NewMockStore(t)
	r := NewReconciler(store)
	store.EXPECT().ListFavoriteIDs(mock.Anything).Return(nil, domain.ErrNetwork).Once()

	err := r.Load(context.Background(), "user-1")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.False(t, r.SignedIn())
}

// blockingStore parks every call until the test releases it.
type blockingStore struct {
	mu      sync.Mutex
	calls   []string
	started chan string
	release chan error
}

func newBlockingStore() *blockingStore {
	return &blockingStore{
		started: make(chan string, 8),
		release: make(chan error),
	}
}

func (s *blockingStore) ListFavoriteIDs(context.Context) ([]string, error) {
	return nil, nil
}

func (s *blockingStore) AddFavorite(_ context.Context, id string) error {
	return s.call("add " + id)
}

func (s *blockingStore) RemoveFavorite(_ context.Context, id string) error {
	return s.call("remove " + id)
}

func (s *blockingStore) call(name string) error {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()
	s.started <- name
	return <-s.release
}

func (s *blockingStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func waitStarted(t *testing.T, s *blockingStore, want string) {
	t.Helper()
	select {
	case got := <-s.started:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("backend call %q never started", want)
	}
}

func TestReconciler_Toggle_SecondToggleWhileInFlight_UsesPendingTarget(t *testing.T) {
	store := newBlockingStore()
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	done := make(chan error, 1)
	go func() {
		_, err := r.Toggle(context.Background(), "1")
		done <- err
	}()
	waitStarted(t, store, "add 1")
	assert.True(t, r.Has("1"))

	on, err := r.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, r.Has("1"))

	store.release <- nil
	waitStarted(t, store, "remove 1")
	store.release <- nil
	require.NoError(t, <-done)

	assert.Equal(t, []string{"add 1", "remove 1"}, store.Calls())
	assert.False(t, r.Has("1"))
	assert.False(t, r.Pending("1"))
}

func TestReconciler_Toggle_DoubleFlipWhileInFlight_NoExtraCall(t *testing.T) {
	store := newBlockingStore()
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	done := make(chan error, 1)
	go func() {
		_, err := r.Toggle(context.Background(), "1")
		done <- err
	}()
	waitStarted(t, store, "add 1")

	_, _ = r.Toggle(context.Background(), "1")
	_, _ = r.Toggle(context.Background(), "1")

	store.release <- nil
	require.NoError(t, <-done)

	assert.Equal(t, []string{"add 1"}, store.Calls())
	assert.True(t, r.Has("1"))
}

func TestReconciler_SignOutDiscardsInFlightResult(t *testing.T) {
	store := newBlockingStore()
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	done := make(chan error, 1)
	go func() {
		_, err := r.Toggle(context.Background(), "1")
		done <- err
	}()
	waitStarted(t, store, "add 1")

	r.SignOut()
	store.release <- nil
	require.NoError(t, <-done)

	assert.False(t, r.SignedIn())
	assert.Empty(t, r.IDs())
}

func TestReconciler_ReloadSameUser_KeepsInFlightMarker(t *testing.T) {
	store := newBlockingStore()
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	done := make(chan error, 1)
	go func() {
		_, err := r.Toggle(context.Background(), "1")
		done <- err
	}()
	waitStarted(t, store, "add 1")

	require.NoError(t, r.Load(context.Background(), "user-1"))
	assert.True(t, r.Pending("1"))

	on, err := r.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, on)

	select {
	case got := <-store.started:
		t.Fatalf("unexpected overlapping call %q", got)
	default:
	}

	store.release <- nil
	waitStarted(t, store, "remove 1")
	store.release <- nil
	require.NoError(t, <-done)

	assert.Equal(t, []string{"add 1", "remove 1"}, store.Calls())
	assert.False(t, r.Has("1"))
	assert.False(t, r.Pending("1"))
}

// slowListStore answers writes at once and parks every listing after the
// first until the test releases it with a (stale) result.
type slowListStore struct {
	mu      sync.Mutex
	lists   int
	listing chan struct{}
	result  chan []string
}

func (s *slowListStore) ListFavoriteIDs(context.Context) ([]string, error) {
	s.mu.Lock()
	s.lists++
	first := s.lists == 1
	s.mu.Unlock()
	if first {
		return nil, nil
	}
	s.listing <- struct{}{}
	return <-s.result, nil
}

func (s *slowListStore) AddFavorite(context.Context, string) error    { return nil }
func (s *slowListStore) RemoveFavorite(context.Context, string) error { return nil }

func TestReconciler_ReloadSameUser_WriteDuringListingWins(t *testing.T) {
	store := &slowListStore{listing: make(chan struct{}), result: make(chan []string)}
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	loaded := make(chan error, 1)
	go func() { loaded <- r.Load(context.Background(), "user-1") }()
	<-store.listing

	on, err := r.Toggle(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, on)

	store.result <- []string{}
	require.NoError(t, <-loaded)

	assert.True(t, r.Has("1"))
	assert.Equal(t, []string{"1"}, r.IDs())
}

func TestReconciler_LoadOtherUser_DropsInFlightResult(t *testing.T) {
	store := newBlockingStore()
	r := NewReconciler(store)
	require.NoError(t, r.Load(context.Background(), "user-1"))

	done := make(chan error, 1)
	go func() {
		_, err := r.Toggle(context.Background(), "1")
		done <- err
	}()
	waitStarted(t, store, "add 1")

	require.NoError(t, r.Load(context.Background(), "user-2"))
	assert.False(t, r.Pending("1"))

	store.release <- nil
	require.NoError(t, <-done)

	assert.Empty(t, r.IDs())
}
