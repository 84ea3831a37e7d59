package cart

import (
	"sync"

	"github.com/samgau/atelier-storefront/pkg/types"
)

// Item is one cart line: a chosen product variant and its quantity.
// Product and variant are snapshots taken at add time.
type Item struct {
	Key      string
	Product  types.Product
	Variant  types.Variant
	Quantity int
}

func (i Item) LineTotal() types.Money {
	return i.Product.Price.MulInt(i.Quantity)
}

// ItemKey derives the line identity: at most one line exists per
// product/size/color combination.
func ItemKey(productID, size, color string) string {
	return productID + "-" + size + "-" + color
}

// Store holds the tab-lifetime cart. Every mutation replaces the
// backing slice, so snapshots handed out earlier stay consistent.
// Nothing is persisted; a reload starts empty.
type Store struct {
	mu    sync.RWMutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Add merges into an existing line with the same key (quantity +1) or
// appends a new line preserving insertion order. A zero variant means
// no explicit selection and falls back to the product's first variant.
func (s *Store) Add(product types.Product, variant types.Variant) {
	if variant == (types.Variant{}) {
		variant = product.FirstVariant()
	}
	key := ItemKey(product.ID, variant.Size, variant.Color)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity++
			s.items = next
			return
		}
	}
	s.items = append(next, Item{
		Key:      key,
		Product:  product,
		Variant:  variant,
		Quantity: 1,
	})
}

// Increment raises the quantity of the given line by one. Unknown keys
// are ignored.
func (s *Store) Increment(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity++
			s.items = next
			return
		}
	}
}

// Decrement lowers the quantity by one; a line at quantity 1 is
// removed entirely.
func (s *Store) Decrement(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Key == key {
			if item.Quantity <= 1 {
				continue
			}
			item.Quantity--
		}
		next = append(next, item)
	}
	s.items = next
}

// Remove deletes the line regardless of quantity.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Key == key {
			continue
		}
		next = append(next, item)
	}
	s.items = next
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the sum of quantities across lines.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Total recomputes the cart total from current lines on every call; it
// is never cached independently of the items.
func (s *Store) Total() types.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total types.Money
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}
