package storefront

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
)

// cartState is the in-memory cart. Items stay in insertion order; Total and
// Count are recomputed after every mutation and never drift from the items.
type cartState struct {
	items []domain.CartItem
	total float64
	count int
}

func (c *cartState) recompute() {
	c.count = 0
	c.total = 0
	for _, item := range c.items {
		c.count += item.Quantity
		c.total += item.Price * float64(item.Quantity)
	}
}

func (c *cartState) find(productID string) int {
	for i, item := range c.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

func (c *cartState) snapshot() domain.CartState {
	return domain.CartState{
		Items: append([]domain.CartItem(nil), c.items...),
		Total: c.total,
		Count: c.count,
	}
}

// AddToCart adds quantity units of a product, merging into the existing
// line when the product is already in the cart.
func (s *Store) AddToCart(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if i := s.cart.find(product.ID); i >= 0 {
		s.cart.items[i].Quantity += quantity
	} else {
		s.cart.items = append(s.cart.items, domain.CartItem{
			Product:  product,
			Quantity: quantity,
		})
	}
	events := s.afterCartMutation()
	events = append(events, s.pushNotification(LevelSuccess,
		fmt.Sprintf("%s wurde zum Warenkorb hinzugefügt", product.Name)))
	s.mu.Unlock()

	s.emit(events...)
}

// RemoveFromCart removes the line for a product ID. Unknown IDs are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	if i := s.cart.find(productID); i >= 0 {
		s.cart.items = append(s.cart.items[:i], s.cart.items[i+1:]...)
	}
	events := s.afterCartMutation()
	s.mu.Unlock()

	s.emit(events...)
}

// SetQuantity sets the quantity of an existing line. Zero or negative
// removes the line; quantities never persist at <= 0.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	i := s.cart.find(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.cart.items = append(s.cart.items[:i], s.cart.items[i+1:]...)
	} else {
		s.cart.items[i].Quantity = quantity
	}
	events := s.afterCartMutation()
	s.mu.Unlock()

	s.emit(events...)
}

// ClearCart empties the cart, e.g. after checkout completes.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart.items = nil
	events := s.afterCartMutation()
	s.mu.Unlock()

	s.emit(events...)
}

// Cart returns a snapshot of the current cart state.
func (s *Store) Cart() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.snapshot()
}

// afterCartMutation re-derives totals and persists the cart. Must be called
// with the lock held.
func (s *Store) afterCartMutation() []Event {
	s.cart.recompute()
	if err := s.storage.Set(StorageKeyCart, s.cart.snapshot()); err != nil {
		s.logger.Warn("Failed to persist cart", zap.Error(err))
	}
	return []Event{{Type: EventCartUpdated}}
}

// hydrateCart restores the cart from storage. Missing or corrupt content
// hydrates as an empty cart; lines with non-positive quantities are
// dropped and totals are re-derived rather than trusted.
func (s *Store) hydrateCart() {
	var saved domain.CartState
	if !s.storage.Get(StorageKeyCart, &saved) {
		return
	}

	items := make([]domain.CartItem, 0, len(saved.Items))
	for _, item := range saved.Items {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	s.cart.items = items
	s.cart.recompute()
}
