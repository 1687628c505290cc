package cart

import (
	"sync"

	"github.com/angelmondragon/storefront/pkg/money"
)

// Mutation names reported to a MutationObserver.
const (
	OpAdd            = "add"
	OpChangeQuantity = "change_quantity"
	OpRemove         = "remove"
	OpClear          = "clear"
)

// Upper bounds that keep line totals well inside int64.
const (
	MaxUnitPrice int64 = 1_000_000_000_000
	MaxQuantity        = 9999
)

// ImageRef is the optional visual captured when a product is first added.
// URL wins over Style when both are present.
type ImageRef struct {
	URL   string `json:"url,omitempty"`
	Style string `json:"style,omitempty"`
}

// LineItem is one product entry plus its quantity.
type LineItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice int64    `json:"unit_price"`
	Quantity  int      `json:"quantity"`
	Image     ImageRef `json:"image"`
}

// LineTotal returns unit price times quantity, capped at math.MaxInt64.
func (l LineItem) LineTotal() int64 {
	return money.Mul(l.UnitPrice, l.Quantity)
}

// Commands is the mutation surface the presentation layer binds to.
type Commands interface {
	AddOrIncrement(id, name string, unitPrice int64, image ImageRef) LineItem
	ChangeQuantity(id string, delta int) (LineItem, bool)
	Remove(id string) bool
	Clear()
}

// Reader is the read-only view consumed by pricing, rendering and checkout.
type Reader interface {
	Items() []LineItem
	IsEmpty() bool
}

// MutationObserver is notified after every applied mutation.
type MutationObserver interface {
	IncMutation(op string)
}

// Store holds the line items of a single cart in insertion order.
// A quantity never drops below one; reaching zero removes the entry.
type Store struct {
	mu       sync.Mutex
	items    []LineItem
	observer MutationObserver
}

var (
	_ Commands = (*Store)(nil)
	_ Reader   = (*Store)(nil)
)

// NewStore returns an empty store. observer may be nil.
func NewStore(observer MutationObserver) *Store {
	return &Store{observer: observer}
}

// AddOrIncrement bumps the quantity of an existing entry or appends a new one with
// quantity 1. Name, price and image are only captured on insert. Quantity stops
// at MaxQuantity.
func (s *Store) AddOrIncrement(id, name string, unitPrice int64, image ImageRef) LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(OpAdd)

	if idx := s.indexOf(id); idx >= 0 {
		if s.items[idx].Quantity < MaxQuantity {
			s.items[idx].Quantity++
		}
		return s.items[idx]
	}

	item := LineItem{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
		Image:     image,
	}
	s.items = append(s.items, item)
	return item
}

// ChangeQuantity applies delta to the entry, clamping at MaxQuantity. The returned
// bool reports whether the entry is still present afterwards; unknown ids are ignored.
func (s *Store) ChangeQuantity(id string, delta int) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return LineItem{}, false
	}
	defer s.observe(OpChangeQuantity)

	if delta > MaxQuantity-s.items[idx].Quantity {
		s.items[idx].Quantity = MaxQuantity
		return s.items[idx], true
	}
	s.items[idx].Quantity += delta
	if s.items[idx].Quantity <= 0 {
		s.removeAt(idx)
		return LineItem{}, false
	}
	return s.items[idx], true
}

// Remove deletes the entry and reports whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.removeAt(idx)
	s.observe(OpRemove)
	return true
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.observe(OpClear)
}

// IsEmpty reports whether the store holds no entries.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Items returns a copy of the entries in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the entry for id.
func (s *Store) Get(id string) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return LineItem{}, false
}

// ItemCount sums quantities across all entries.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ItemCount(s.items)
}

// Subtotal sums unit price times quantity across all entries.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(idx int) {
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

func (s *Store) observe(op string) {
	if s.observer != nil {
		s.observer.IncMutation(op)
	}
}

// ItemCount sums quantities of a snapshot.
func ItemCount(items []LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums line totals of a snapshot.
func Subtotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total = money.Add(total, item.LineTotal())
	}
	return total
}
