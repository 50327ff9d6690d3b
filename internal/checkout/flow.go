package checkout

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/internal/cart"
	"github.com/restoadmin/ordering/internal/config"
	"github.com/restoadmin/ordering/internal/ids"
	"github.com/restoadmin/ordering/internal/orders"
	"github.com/restoadmin/ordering/pkg/models"
)

// Step is the checkout flow position.
type Step string

const (
	StepCart         Step = "cart"
	StepCheckout     Step = "checkout"
	StepConfirmation Step = "confirmation"
)

var (
	// ErrWrongStep means the requested transition is not defined from the
	// current step.
	ErrWrongStep = errors.New("operation not allowed in the current step")
	// ErrEmptyCart blocks proceeding to checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBelowMinimum blocks delivery checkouts under the configured
	// minimum. Pickup has no minimum.
	ErrBelowMinimum = errors.New("cart total is below the delivery minimum")
	// ErrValidation means one or more customer fields failed validation;
	// the per-field messages are available via Errors.
	ErrValidation = errors.New("validation failed")
)

// Details are the customer-entered checkout fields. They survive failed
// validation and back-navigation so the customer never re-types them.
type Details struct {
	Customer      models.Customer
	DeliveryType  models.DeliveryType
	PaymentMethod models.PaymentMethod
	Notes         string
}

// Flow is the linear cart -> checkout -> confirmation state machine. It
// validates customer input, composes a cart snapshot into an immutable
// order, hands the order to the order store and clears the cart.
type Flow struct {
	mutex       sync.Mutex
	step        Step
	details     Details
	fieldErrors map[string]string
	lastOrderID string

	cart   *cart.Store
	orders *orders.Store
	cfg    *config.Config
	newID  func() string
	now    func() time.Time
	logger *logrus.Logger
}

func NewFlow(cartStore *cart.Store, orderStore *orders.Store, cfg *config.Config, logger *logrus.Logger) *Flow {
	return &Flow{
		step:    StepCart,
		details: defaultDetails(),
		cart:    cartStore,
		orders:  orderStore,
		cfg:     cfg,
		newID:   ids.NewOrderID,
		now:     time.Now,
		logger:  logger,
	}
}

func defaultDetails() Details {
	return Details{
		DeliveryType:  models.DeliveryPickup,
		PaymentMethod: models.PaymentCash,
	}
}

func (f *Flow) Step() Step {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.step
}

func (f *Flow) Details() Details {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.details
}

// Errors returns the field-scoped messages from the last failed Place.
func (f *Flow) Errors() map[string]string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// LastOrderID identifies the order created by the most recent successful
// Place, shown on the confirmation screen.
func (f *Flow) LastOrderID() string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.lastOrderID
}

// SetDetails records customer input without advancing the flow.
func (f *Flow) SetDetails(d Details) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.details = normalize(d)
}

// CanProceed is the proceed-gate: the cart total must reach the
// configured minimum unless the order is a pickup.
func (f *Flow) CanProceed() bool {
	f.mutex.Lock()
	dt := f.details.DeliveryType
	f.mutex.Unlock()
	return f.cart.Total() >= f.cfg.MinOrderAmount || dt == models.DeliveryPickup
}

// Proceed moves cart -> checkout when the gate allows it.
func (f *Flow) Proceed() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.step != StepCart {
		return ErrWrongStep
	}
	if f.cart.ItemCount() == 0 {
		return ErrEmptyCart
	}
	if f.cart.Total() < f.cfg.MinOrderAmount && f.details.DeliveryType != models.DeliveryPickup {
		return ErrBelowMinimum
	}

	f.step = StepCheckout
	return nil
}

// Back moves checkout -> cart. Entered details are preserved.
func (f *Flow) Back() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.step != StepCheckout {
		return ErrWrongStep
	}
	f.step = StepCart
	return nil
}

// Place validates d atomically and, on success, creates the order,
// submits it to the order store, clears the cart and moves to the
// confirmation step. On validation failure the flow stays at checkout,
// keeps d for correction and exposes the collected messages via Errors.
func (f *Flow) Place(d Details) (models.Order, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.step != StepCheckout {
		return models.Order{}, ErrWrongStep
	}

	d = normalize(d)
	f.details = d

	if errs := Validate(d); len(errs) > 0 {
		f.fieldErrors = errs
		f.logger.WithField("fields", len(errs)).Info("Checkout validation failed")
		return models.Order{}, ErrValidation
	}
	f.fieldErrors = nil

	total := f.cart.Total()
	if d.DeliveryType == models.DeliveryDelivery {
		total += f.cfg.DeliveryFee
	}

	order := models.Order{
		ID:            f.newID(),
		Customer:      d.Customer,
		Items:         f.cart.Lines(),
		Total:         total,
		DeliveryType:  d.DeliveryType,
		PaymentMethod: d.PaymentMethod,
		Status:        models.StatusReceived,
		CreatedAt:     f.now(),
		EstimatedTime: f.cfg.EstimatedMinutes(d.DeliveryType),
		Notes:         strings.TrimSpace(d.Notes),
	}

	f.orders.Add(order)
	f.cart.Clear()
	f.step = StepConfirmation
	f.lastOrderID = order.ID

	f.logger.WithFields(logrus.Fields{
		"order_id":       order.ID,
		"total":          order.Total,
		"delivery_type":  string(order.DeliveryType),
		"payment_method": string(order.PaymentMethod),
		"items_count":    len(order.Items),
	}).Info("Order placed")

	return order, nil
}

// NewOrder moves confirmation -> cart for a fresh flow: the cart is
// cleared (a no-op right after Place), entered fields and errors reset.
func (f *Flow) NewOrder() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.step != StepConfirmation {
		return ErrWrongStep
	}

	f.cart.Clear()
	f.details = defaultDetails()
	f.fieldErrors = nil
	f.step = StepCart
	return nil
}

// normalize fills enum zero values with their defaults so an empty
// request body behaves like the UI's initial selection.
func normalize(d Details) Details {
	if d.DeliveryType == "" {
		d.DeliveryType = models.DeliveryPickup
	}
	if d.PaymentMethod == "" {
		d.PaymentMethod = models.PaymentCash
	}
	return d
}
