package cart

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/pkg/models"
)

// Notifier receives a change notification after every mutating store
// operation. Consumers are expected to re-read derived state rather than
// interpret the payload incrementally.
type Notifier interface {
	Broadcast(messageType string, data interface{}, source string)
}

// Snapshot is the cart state as broadcast to consumers and returned over
// the API.
type Snapshot struct {
	Items     []models.CartLine `json:"items"`
	Total     int               `json:"total"`
	ItemCount int               `json:"item_count"`
	IsOpen    bool              `json:"is_open"`
}

// Store holds the lines of the order a customer is currently building,
// plus the panel visibility flag. All operations are total: absent ids
// are silently ignored. The store does not check business hours; that
// gate belongs to the caller.
type Store struct {
	mutex    sync.RWMutex
	lines    []models.CartLine
	isOpen   bool
	notifier Notifier
	logger   *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{logger: logger}
}

func (s *Store) SetNotifier(n Notifier) {
	s.notifier = n
}

// AddItem adds quantity of item to the cart, merging into an existing line
// for the same item id. Notes replace the line's notes only when non-empty.
// Quantities below one count as one.
func (s *Store) AddItem(item models.CatalogItem, quantity int, notes string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mutex.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity += quantity
			if notes != "" {
				s.lines[i].Notes = notes
			}
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, models.CartLine{CatalogItem: item, Quantity: quantity, Notes: notes})
	}
	s.mutex.Unlock()

	s.logger.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"quantity": quantity,
		"merged":   merged,
	}).Debug("Item added to cart")

	s.notify("cart_updated")
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line, so a stored quantity is always at least one.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mutex.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.mutex.Unlock()

	s.notify("cart_updated")
}

// RemoveItem deletes the line if present.
func (s *Store) RemoveItem(id string) {
	s.mutex.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.mutex.Unlock()

	s.notify("cart_updated")
}

// UpdateNotes overwrites the line's notes, empty string included. Unlike
// AddItem this is an unconditional overwrite.
func (s *Store) UpdateNotes(id string, notes string) {
	s.mutex.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Notes = notes
			break
		}
	}
	s.mutex.Unlock()

	s.notify("cart_updated")
}

// Clear empties all lines. The visibility flag is untouched.
func (s *Store) Clear() {
	s.mutex.Lock()
	s.lines = nil
	s.mutex.Unlock()

	s.notify("cart_updated")
}

// Toggle flips the panel visibility flag and returns the new value.
func (s *Store) Toggle() bool {
	s.mutex.Lock()
	s.isOpen = !s.isOpen
	open := s.isOpen
	s.mutex.Unlock()

	s.notify("cart_visibility")
	return open
}

func (s *Store) SetOpen(open bool) {
	s.mutex.Lock()
	s.isOpen = open
	s.mutex.Unlock()

	s.notify("cart_visibility")
}

func (s *Store) IsOpen() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.isOpen
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is recomputed from the lines on every call, never cached.
func (s *Store) Total() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	total := 0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount is the sum of line quantities.
func (s *Store) ItemCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Snapshot captures lines and derived values in one consistent read.
func (s *Store) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)

	total, count := 0, 0
	for _, line := range s.lines {
		total += line.Subtotal()
		count += line.Quantity
	}

	return Snapshot{Items: items, Total: total, ItemCount: count, IsOpen: s.isOpen}
}

func (s *Store) notify(messageType string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Broadcast(messageType, s.Snapshot(), "cart")
}
