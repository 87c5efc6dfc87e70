package storefront

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
)

// LoadCatalog fetches the product set and replaces the in-memory catalog,
// resetting the filtered view to the full set. On failure the previous
// catalog stays intact and an error notification is emitted; the returned
// error is informational for headless callers, the UI reads the
// notification.
func (s *Store) LoadCatalog(ctx context.Context) error {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		s.mu.Lock()
		ev := s.pushNotification(LevelError, "Fehler beim Laden der Produkte")
		s.mu.Unlock()
		s.emit(ev)
		return err
	}

	s.mu.Lock()
	s.products = products
	s.filtered = filterByCategory(products, s.category)
	s.page = 1
	s.mu.Unlock()

	s.emit(Event{Type: EventCatalogLoaded})
	return nil
}

// FilterByCategory sets the active category and recomputes the filtered
// view. The sentinel CategoryAll matches every product; an unknown category
// yields an empty view, not an error. Pagination resets to the first page.
func (s *Store) FilterByCategory(category domain.Category) {
	s.mu.Lock()
	s.category = category
	s.filtered = filterByCategory(s.products, category)
	s.page = 1
	s.mu.Unlock()

	s.emit(Event{Type: EventFilterChanged})
}

func filterByCategory(products []domain.Product, category domain.Category) []domain.Product {
	if category == domain.CategoryAll {
		return append([]domain.Product(nil), products...)
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Search matches the query case-insensitively against name, description
// and category. Empty or too-short queries are a no-op that leaves the
// previous results in place.
func (s *Store) Search(query string) []domain.Product {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		s.mu.Lock()
		results := append([]domain.Product(nil), s.searchResults...)
		s.mu.Unlock()
		return results
	}

	s.mu.Lock()
	needle := strings.ToLower(query)
	results := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(string(p.Category)), needle) {
			results = append(results, p)
		}
	}
	s.searchQuery = query
	s.searchResults = results
	out := append([]domain.Product(nil), results...)
	s.mu.Unlock()

	s.emit(Event{Type: EventSearchResults})
	return out
}

// QueryChanged feeds a keystroke-level query change into the debounced
// search. The actual search runs SearchDebounce after the last change.
func (s *Store) QueryChanged(query string) {
	s.mu.Lock()
	if s.searchTimer != nil {
		s.searchTimer.Stop()
	}
	s.searchTimer = time.AfterFunc(SearchDebounce, func() {
		s.Search(query)
	})
	s.mu.Unlock()
}

// SearchResults returns the results of the last completed search.
func (s *Store) SearchResults() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.searchResults...)
}

// Products returns the full catalog.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Visible returns the slice of the filtered view exposed by the current
// pagination state, at most page*ProductsPerPage items.
func (s *Store) Visible() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	end := s.page * ProductsPerPage
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	return append([]domain.Product(nil), s.filtered[:end]...)
}

// HasMore reports whether further pages remain in the filtered view.
func (s *Store) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page*ProductsPerPage < len(s.filtered)
}

// LoadMore advances pagination by one page while more items remain.
func (s *Store) LoadMore() {
	s.mu.Lock()
	if s.page*ProductsPerPage < len(s.filtered) {
		s.page++
	}
	s.mu.Unlock()

	s.emit(Event{Type: EventFilterChanged})
}

// Paginate jumps to a page, clamped to 1.
func (s *Store) Paginate(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()

	s.emit(Event{Type: EventFilterChanged})
}

// Category returns the active filter category.
func (s *Store) Category() domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}
