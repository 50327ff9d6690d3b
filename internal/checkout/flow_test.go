package checkout

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoadmin/ordering/internal/cart"
	"github.com/restoadmin/ordering/internal/config"
	"github.com/restoadmin/ordering/internal/orders"
	"github.com/restoadmin/ordering/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testConfig() *config.Config {
	return &config.Config{
		OpeningHour:     18,
		ClosingHour:     1,
		MinOrderAmount:  2000,
		DeliveryFee:     500,
		PickupMinutes:   20,
		DeliveryMinutes: 35,
	}
}

func testItem(id string, price int) models.CatalogItem {
	return models.CatalogItem{ID: id, Name: "Item " + id, Price: price, Category: models.CategoryBurgers, Available: true}
}

func validDetails(dt models.DeliveryType) Details {
	d := Details{
		Customer: models.Customer{
			Name:  "Ana García",
			Phone: "+54 388 485-8907",
		},
		DeliveryType:  dt,
		PaymentMethod: models.PaymentCash,
	}
	if dt == models.DeliveryDelivery {
		d.Customer.Address = "Av. Principal 123"
	}
	return d
}

func newTestFlow(t *testing.T) (*Flow, *cart.Store, *orders.Store) {
	t.Helper()
	cartStore := cart.NewStore(testLogger())
	orderStore := orders.NewStore(testLogger())
	flow := NewFlow(cartStore, orderStore, testConfig(), testLogger())
	return flow, cartStore, orderStore
}

func TestProceedGatePickupBypassesMinimum(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 1500), 1, "") // below the 2000 minimum

	flow.SetDetails(validDetails(models.DeliveryPickup))
	assert.True(t, flow.CanProceed())
	assert.NoError(t, flow.Proceed())
	assert.Equal(t, StepCheckout, flow.Step())
}

func TestProceedGateBlocksDeliveryBelowMinimum(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 1500), 1, "")

	flow.SetDetails(validDetails(models.DeliveryDelivery))
	assert.False(t, flow.CanProceed())
	assert.ErrorIs(t, flow.Proceed(), ErrBelowMinimum)
	assert.Equal(t, StepCart, flow.Step())
}

func TestProceedGateAllowsDeliveryAtMinimum(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2000), 1, "")

	flow.SetDetails(validDetails(models.DeliveryDelivery))
	assert.NoError(t, flow.Proceed())
}

func TestProceedEmptyCart(t *testing.T) {
	flow, _, _ := newTestFlow(t)
	assert.ErrorIs(t, flow.Proceed(), ErrEmptyCart)
}

func TestBackPreservesDetails(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")

	d := validDetails(models.DeliveryPickup)
	d.Notes = "ring the bell"
	flow.SetDetails(d)
	require.NoError(t, flow.Proceed())

	require.NoError(t, flow.Back())
	assert.Equal(t, StepCart, flow.Step())
	assert.Equal(t, d, flow.Details())
}

func TestBackOnlyFromCheckout(t *testing.T) {
	flow, _, _ := newTestFlow(t)
	assert.ErrorIs(t, flow.Back(), ErrWrongStep)
}

func TestPlaceValidationFailureBlocksAndCollectsErrors(t *testing.T) {
	flow, cartStore, orderStore := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 2, "")
	require.NoError(t, flow.Proceed())

	_, err := flow.Place(Details{
		Customer:      models.Customer{Name: "", Phone: "abc"},
		DeliveryType:  models.DeliveryPickup,
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrValidation)

	errs := flow.Errors()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")

	// No order created, cart untouched, flow still at checkout.
	assert.Equal(t, 0, orderStore.Count())
	assert.Equal(t, 5600, cartStore.Total())
	assert.Equal(t, StepCheckout, flow.Step())
}

func TestPlacePickupOrder(t *testing.T) {
	flow, cartStore, orderStore := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "sin cebolla")
	require.NoError(t, flow.Proceed())

	placedAt := time.Date(2025, 3, 15, 21, 0, 0, 0, time.Local)
	flow.now = func() time.Time { return placedAt }
	flow.newID = func() string { return "TESTORDER1" }

	order, err := flow.Place(validDetails(models.DeliveryPickup))
	require.NoError(t, err)

	assert.Equal(t, "TESTORDER1", order.ID)
	assert.Equal(t, 2800, order.Total, "pickup never includes the delivery fee")
	assert.Equal(t, models.StatusReceived, order.Status)
	assert.Equal(t, 20, order.EstimatedTime)
	assert.Equal(t, placedAt, order.CreatedAt)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "sin cebolla", order.Items[0].Notes)

	// Order handed to the store, cart cleared, flow at confirmation.
	stored, ok := orderStore.GetByID("TESTORDER1")
	assert.True(t, ok)
	assert.Equal(t, order.Total, stored.Total)
	assert.Equal(t, 0, cartStore.ItemCount())
	assert.Equal(t, StepConfirmation, flow.Step())
	assert.Equal(t, "TESTORDER1", flow.LastOrderID())
}

func TestPlaceDeliveryAddsFeeExactlyOnce(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 3000), 1, "")
	flow.SetDetails(validDetails(models.DeliveryDelivery))
	require.NoError(t, flow.Proceed())

	order, err := flow.Place(validDetails(models.DeliveryDelivery))
	require.NoError(t, err)

	assert.Equal(t, 3500, order.Total)
	assert.Equal(t, 35, order.EstimatedTime)
	assert.Equal(t, models.DeliveryDelivery, order.DeliveryType)
}

func TestPlaceTrimsOrderNotes(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")
	require.NoError(t, flow.Proceed())

	d := validDetails(models.DeliveryPickup)
	d.Notes = "  tocar timbre  "
	order, err := flow.Place(d)
	require.NoError(t, err)
	assert.Equal(t, "tocar timbre", order.Notes)
}

func TestPlaceBlankNotesOmitted(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")
	require.NoError(t, flow.Proceed())

	d := validDetails(models.DeliveryPickup)
	d.Notes = "   "
	order, err := flow.Place(d)
	require.NoError(t, err)
	assert.Empty(t, order.Notes)
}

func TestPlaceOnlyFromCheckout(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")

	_, err := flow.Place(validDetails(models.DeliveryPickup))
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestNewOrderResetsFlow(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")
	require.NoError(t, flow.Proceed())

	_, err := flow.Place(validDetails(models.DeliveryPickup))
	require.NoError(t, err)

	require.NoError(t, flow.NewOrder())
	assert.Equal(t, StepCart, flow.Step())
	assert.Equal(t, defaultDetails(), flow.Details())
	assert.Empty(t, flow.Errors())
	assert.Equal(t, 0, cartStore.ItemCount())
}

func TestNewOrderOnlyFromConfirmation(t *testing.T) {
	flow, _, _ := newTestFlow(t)
	assert.ErrorIs(t, flow.NewOrder(), ErrWrongStep)
}

func TestValidationErrorsClearedAfterSuccessfulPlace(t *testing.T) {
	flow, cartStore, _ := newTestFlow(t)
	cartStore.AddItem(testItem("h1", 2800), 1, "")
	require.NoError(t, flow.Proceed())

	_, err := flow.Place(Details{DeliveryType: models.DeliveryPickup, PaymentMethod: models.PaymentCash})
	require.ErrorIs(t, err, ErrValidation)
	require.NotEmpty(t, flow.Errors())

	_, err = flow.Place(validDetails(models.DeliveryPickup))
	require.NoError(t, err)
	assert.Empty(t, flow.Errors())
}
