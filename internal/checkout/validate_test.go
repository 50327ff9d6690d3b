package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restoadmin/ordering/pkg/models"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+54 388 485-8907", true},
		{"3884858907", true},
		{"(011) 4555-1234", true},
		{"12345678", true},
		{"abc", false},
		{"123", false},              // too short after stripping
		{"1234567890123456", false}, // too long
		{"", false},
		{"555-CALL-NOW", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"juan.perez@mail.com.ar", true},
		{"no-at-sign", false},
		{"spaces in@mail.com", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	errs := Validate(Details{
		Customer: models.Customer{
			Name:  "   ",
			Phone: "abc",
			Email: "not-an-email",
		},
		DeliveryType: models.DeliveryDelivery,
	})

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "address")
}

func TestValidateAddressOnlyRequiredForDelivery(t *testing.T) {
	d := Details{
		Customer: models.Customer{
			Name:  "Ana",
			Phone: "+54 388 485-8907",
		},
		DeliveryType: models.DeliveryPickup,
	}
	assert.Nil(t, Validate(d))

	d.DeliveryType = models.DeliveryDelivery
	errs := Validate(d)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "address")
}

func TestValidateOptionalEmail(t *testing.T) {
	d := Details{
		Customer: models.Customer{
			Name:  "Ana",
			Phone: "+54 388 485-8907",
		},
		DeliveryType: models.DeliveryPickup,
	}
	assert.Nil(t, Validate(d))

	d.Customer.Email = "ana@example.com"
	assert.Nil(t, Validate(d))

	d.Customer.Email = "broken"
	assert.Contains(t, Validate(d), "email")
}
