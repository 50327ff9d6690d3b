package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/restoadmin/ordering/pkg/models"
)

// PaymentMethodInfo is a selectable payment option shown at checkout.
type PaymentMethodInfo struct {
	ID   models.PaymentMethod `json:"id"`
	Name string               `json:"name"`
}

// CategoryInfo is a menu section shown in the category filter.
type CategoryInfo struct {
	ID   models.Category `json:"id"`
	Name string          `json:"name"`
}

// Config holds the restaurant configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	Name    string
	Phone   string
	Address string

	// OpeningHour is inclusive, ClosingHour exclusive. A closing hour below
	// the opening hour means the window wraps past midnight (18 -> 1 is
	// open from 18:00 until 00:59). Equal hours mean always open.
	OpeningHour int
	ClosingHour int

	// MinOrderAmount gates checkout for delivery orders only; pickup has
	// no minimum.
	MinOrderAmount int
	DeliveryFee    int

	PickupMinutes   int
	DeliveryMinutes int

	HTTPPort string

	PaymentMethods []PaymentMethodInfo
	Categories     []CategoryInfo
}

// Load reads an optional .env file, then the environment, falling back to
// the reference configuration.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{
		Name:    getEnv("RESTAURANT_NAME", "RestoAdmin"),
		Phone:   getEnv("RESTAURANT_PHONE", "+54 388 485-8907"),
		Address: getEnv("RESTAURANT_ADDRESS", "Av. Principal 123, Ciudad"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),

		PaymentMethods: []PaymentMethodInfo{
			{ID: models.PaymentMercadoPago, Name: "MercadoPago"},
			{ID: models.PaymentCash, Name: "Efectivo"},
		},
		Categories: []CategoryInfo{
			{ID: models.CategoryBurgers, Name: "Hamburguesas"},
			{ID: models.CategoryPizzas, Name: "Pizzas"},
			{ID: models.CategoryDrinks, Name: "Bebidas"},
			{ID: models.CategoryDesserts, Name: "Postres"},
		},
	}

	var err error
	if cfg.OpeningHour, err = getEnvInt("OPENING_HOUR", 18); err != nil {
		return nil, err
	}
	if cfg.ClosingHour, err = getEnvInt("CLOSING_HOUR", 1); err != nil {
		return nil, err
	}
	if cfg.MinOrderAmount, err = getEnvInt("MIN_ORDER_AMOUNT", 2000); err != nil {
		return nil, err
	}
	if cfg.DeliveryFee, err = getEnvInt("DELIVERY_FEE", 500); err != nil {
		return nil, err
	}
	if cfg.PickupMinutes, err = getEnvInt("PICKUP_MINUTES", 20); err != nil {
		return nil, err
	}
	if cfg.DeliveryMinutes, err = getEnvInt("DELIVERY_MINUTES", 35); err != nil {
		return nil, err
	}

	if cfg.OpeningHour < 0 || cfg.OpeningHour > 23 || cfg.ClosingHour < 0 || cfg.ClosingHour > 23 {
		return nil, fmt.Errorf("business hours out of range: open=%d close=%d", cfg.OpeningHour, cfg.ClosingHour)
	}

	return cfg, nil
}

// IsOpenAt reports whether the restaurant accepts orders at t.
func (c *Config) IsOpenAt(t time.Time) bool {
	h := t.Hour()
	switch {
	case c.OpeningHour == c.ClosingHour:
		return true
	case c.OpeningHour < c.ClosingHour:
		return h >= c.OpeningHour && h < c.ClosingHour
	default:
		return h >= c.OpeningHour || h < c.ClosingHour
	}
}

// EstimatedMinutes maps a delivery type to the configured preparation estimate.
func (c *Config) EstimatedMinutes(dt models.DeliveryType) int {
	if dt == models.DeliveryDelivery {
		return c.DeliveryMinutes
	}
	return c.PickupMinutes
}

// HoursLabel renders the business hours for user-facing messages, e.g. "18:00 - 01:00".
func (c *Config) HoursLabel() string {
	return fmt.Sprintf("%02d:00 - %02d:00", c.OpeningHour, c.ClosingHour)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}
