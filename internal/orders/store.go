package orders

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/pkg/models"
)

// Notifier receives a change notification after every mutating store
// operation.
type Notifier interface {
	Broadcast(messageType string, data interface{}, source string)
}

// statusFlow is the authoritative linear progression. Orders only ever
// move forward through it; delivered has no next state.
var statusFlow = map[models.OrderStatus]models.OrderStatus{
	models.StatusReceived:  models.StatusPreparing,
	models.StatusPreparing: models.StatusReady,
	models.StatusReady:     models.StatusDelivered,
}

// NextStatus returns the single next state in the progression, or false
// when the current status is terminal.
func NextStatus(current models.OrderStatus) (models.OrderStatus, bool) {
	next, ok := statusFlow[current]
	return next, ok
}

// Store holds every order placed during the process lifetime, newest
// first. Orders are never deleted; only their status changes after
// creation. The store accepts any status value on update; callers that
// want the linear progression use NextStatus.
type Store struct {
	mutex    sync.RWMutex
	orders   []models.Order
	notifier Notifier
	now      func() time.Time
	logger   *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		now:    time.Now,
		logger: logger,
	}
}

func (s *Store) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetClock overrides the wall clock used for day-scoped stats.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Add prepends the fully-formed order so retrieval is newest-first.
func (s *Store) Add(order models.Order) {
	s.mutex.Lock()
	s.orders = append([]models.Order{cloneOrder(order)}, s.orders...)
	total := len(s.orders)
	s.mutex.Unlock()

	s.logger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"total":        order.Total,
		"items_count":  len(order.Items),
		"total_stored": total,
	}).Info("Order stored")

	s.notify("order_created", cloneOrder(order))
}

// UpdateStatus replaces the status of the matching order. It reports
// whether an order with that id exists; absent ids are a no-op.
func (s *Store) UpdateStatus(id string, status models.OrderStatus) bool {
	s.mutex.Lock()
	found := false
	var updated models.Order
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			updated = cloneOrder(s.orders[i])
			found = true
			break
		}
	}
	s.mutex.Unlock()

	if !found {
		return false
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": id,
		"status":   string(status),
	}).Info("Order status updated")

	s.notify("order_status_updated", updated)
	return true
}

func (s *Store) GetByID(id string) (models.Order, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return cloneOrder(s.orders[i]), true
		}
	}
	return models.Order{}, false
}

func (s *Store) ByStatus(status models.OrderStatus) []models.Order {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]models.Order, 0)
	for i := range s.orders {
		if s.orders[i].Status == status {
			out = append(out, cloneOrder(s.orders[i]))
		}
	}
	return out
}

// All returns every order, newest first.
func (s *Store) All() []models.Order {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for i := range s.orders {
		out = append(out, cloneOrder(s.orders[i]))
	}
	return out
}

// Search filters orders by status and a free-text term matched against
// the order id, customer name and customer phone. Empty arguments match
// everything.
func (s *Store) Search(term string, status models.OrderStatus) []models.Order {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]models.Order, 0)
	for i := range s.orders {
		o := &s.orders[i]
		if status != "" && o.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(o.ID), term) &&
			!strings.Contains(strings.ToLower(o.Customer.Name), term) &&
			!strings.Contains(o.Customer.Phone, term) {
			continue
		}
		out = append(out, cloneOrder(*o))
	}
	return out
}

func (s *Store) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.orders)
}

// TodayStats computes the dashboard numbers. TotalOrders, TotalSales and
// CompletedOrders only count orders created on the current calendar day;
// ActiveOrders counts every non-delivered order regardless of day. That
// asymmetry is intentional and load-bearing for the dashboard.
func (s *Store) TodayStats() models.TodayStats {
	today := s.now()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var stats models.TodayStats
	for i := range s.orders {
		o := &s.orders[i]
		if o.Status != models.StatusDelivered {
			stats.ActiveOrders++
		}
		if !sameDay(o.CreatedAt, today) {
			continue
		}
		stats.TotalOrders++
		stats.TotalSales += o.Total
		if o.Status == models.StatusDelivered {
			stats.CompletedOrders++
		}
	}
	return stats
}

func (s *Store) notify(messageType string, data interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.Broadcast(messageType, data, "orders")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// cloneOrder copies the order including its item slice so callers can
// never mutate stored state through a returned value.
func cloneOrder(o models.Order) models.Order {
	items := make([]models.CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
