package storefront

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
)

const (
	// ProductsPerPage is the page size of the catalog view.
	ProductsPerPage = 9

	// SearchDebounce is the delay between a query change and the search
	// actually running.
	SearchDebounce = 300 * time.Millisecond

	// minQueryLength keeps per-keystroke noise from triggering searches.
	minQueryLength = 2
)

// CatalogSource supplies the product catalog as one ordered bulk fetch.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Store owns all storefront client state: catalog, filtered view, search
// results, cart, notifications and user preferences. All state transitions
// go through its methods and publish an Event after the mutation completes;
// the presentation layer subscribes and re-renders from the store. The
// mutex exists for the debounce timer goroutine; UI mutation itself is
// single-threaded.
type Store struct {
	mu sync.Mutex

	source  CatalogSource
	storage Storage
	logger  *zap.Logger

	products      []domain.Product
	filtered      []domain.Product
	category      domain.Category
	page          int
	searchQuery   string
	searchResults []domain.Product
	searchTimer   *time.Timer

	cart cartState

	notifications []Notification
	preferences   map[string]any

	listeners []Listener
}

// NewStore creates a storefront state container, hydrating the cart and
// user preferences from storage.
func NewStore(source CatalogSource, storage Storage, logger *zap.Logger) *Store {
	s := &Store{
		source:      source,
		storage:     storage,
		logger:      logger,
		category:    domain.CategoryAll,
		page:        1,
		preferences: make(map[string]any),
	}
	s.hydrateCart()
	s.loadPreferences()
	return s
}

// Subscribe registers a listener for state change events and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners[idx] = nil
	}
}

// emit delivers events to subscribers. It must be called without the lock
// held so listeners can read back from the store.
func (s *Store) emit(events ...Event) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		if fn != nil {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// pushNotification records a notification and returns its event. Must be
// called with the lock held.
func (s *Store) pushNotification(level NotificationLevel, message string) Event {
	n := newNotification(level, message)
	s.notifications = append(s.notifications, n)
	return Event{Type: EventNotification, Notification: &n}
}

// Notifications returns the currently visible notifications.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Dismiss removes a notification by ID.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Preference returns a stored user preference.
func (s *Store) Preference(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.preferences[key]
	return v, ok
}

// SetPreference stores a user preference and persists the blob.
func (s *Store) SetPreference(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[key] = value
	if err := s.storage.Set(StorageKeyPreferences, s.preferences); err != nil {
		s.logger.Warn("Failed to persist preferences", zap.Error(err))
	}
}

func (s *Store) loadPreferences() {
	prefs := make(map[string]any)
	if s.storage.Get(StorageKeyPreferences, &prefs) {
		s.preferences = prefs
	}
}
