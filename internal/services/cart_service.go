package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"renewrubber/internal/models"
	"renewrubber/internal/storage"
)

// cartStorageKey is the namespaced key the cart mirrors itself under,
// matching the original application's local-storage key.
const cartStorageKey = "renewrubber_cart"

// DefaultCartAnimation is how long the transient "animating" flag stays up
// after an item is added. Presentation signal only, not a data invariant.
const DefaultCartAnimation = 600 * time.Millisecond

// CartService is the process-wide cart store: an ordered list of line items
// mirrored to the durable key-value store on every mutation and observable
// by any number of subscribers. Constructed once at application start.
type CartService struct {
	mu        sync.Mutex
	items     []models.CartItem
	store     storage.Store
	animating bool
	animTimer *time.Timer
	animFor   time.Duration
	subs      []chan models.CartSnapshot
}

// NewCartService creates the cart store over the given KV store and hydrates
// any persisted items before returning. animFor controls the add-animation
// window; pass a short duration in tests.
func NewCartService(store storage.Store, animFor time.Duration) *CartService {
	s := &CartService{
		store:   store,
		animFor: animFor,
	}
	s.hydrate()
	return s
}

// hydrate loads the persisted item list, if any. A corrupt or unreadable
// record is logged and treated as an empty cart.
func (s *CartService) hydrate() {
	data, ok, err := s.store.Get(cartStorageKey)
	if err != nil {
		log.Printf("Failed to read persisted cart, starting empty: %v", err)
		return
	}
	if !ok {
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Persisted cart is malformed, starting empty: %v", err)
		return
	}
	s.items = items
}

// AddItem adds one unit of product to the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended, so insertion order records when each product first entered the
// cart. The add-animation flag is raised for the configured window.
func (s *CartService) AddItem(product models.Product) (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	}

	s.animating = true
	if s.animTimer != nil {
		s.animTimer.Stop()
	}
	s.animTimer = time.AfterFunc(s.animFor, func() {
		s.mu.Lock()
		s.animating = false
		s.mu.Unlock()
	})

	return s.persistAndNotifyLocked()
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op.
func (s *CartService) RemoveItem(productID string) (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return s.persistAndNotifyLocked()
}

// UpdateQuantity sets the quantity for productID. A quantity of zero or less
// removes the line entirely; updating an absent product is a no-op.
func (s *CartService) UpdateQuantity(productID string, quantity int) (models.CartSnapshot, error) {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persistAndNotifyLocked()
}

// Clear empties the cart.
func (s *CartService) Clear() (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persistAndNotifyLocked()
}

// Snapshot returns the current cart view with derived totals.
func (s *CartService) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItems returns the sum of all line quantities.
func (s *CartService) TotalItems() int {
	return s.Snapshot().TotalItems
}

// TotalPrice returns the cart total in euro cents.
func (s *CartService) TotalPrice() int {
	return s.Snapshot().TotalPrice
}

// Subscribe registers an observer. Each mutation delivers a fresh snapshot
// on the returned channel; a slow subscriber misses intermediate snapshots
// rather than blocking mutations.
func (s *CartService) Subscribe() <-chan models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan models.CartSnapshot, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// snapshotLocked computes a snapshot; totals are always derived from the
// item list so they can never drift from it.
func (s *CartService) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	totalItems := 0
	totalPrice := 0
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Product.Price * item.Quantity
	}
	return models.CartSnapshot{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		Animating:  s.animating,
	}
}

// persistAndNotifyLocked mirrors the item list to the KV store and fans the
// new snapshot out to subscribers. The in-memory state is already updated;
// a persistence failure is surfaced but does not roll it back (known gap,
// matching the original's unhandled storage-quota case).
func (s *CartService) persistAndNotifyLocked() (models.CartSnapshot, error) {
	snap := s.snapshotLocked()

	data, err := json.Marshal(s.items)
	if err != nil {
		return snap, fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.store.Set(cartStorageKey, data); err != nil {
		log.Printf("Failed to persist cart: %v", err)
		return snap, fmt.Errorf("failed to persist cart: %w", err)
	}

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and leave the fresher one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	return snap, nil
}
