package checkout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/restoadmin/ordering/pkg/models"
)

// Loose shapes, not strict parsers: the phone just has to look like a
// phone (8-15 of digits, +, -, parentheses after stripping whitespace)
// and the email like local@domain.tld.
var (
	phonePattern = regexp.MustCompile(`^\+?[0-9\-()]{8,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks every field and collects one message per failing
// field. It never short-circuits, so the caller can surface all problems
// at once.
func Validate(d Details) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Customer.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(d.Customer.Phone) == "" {
		errs["phone"] = "Phone is required"
	} else if !ValidPhone(d.Customer.Phone) {
		errs["phone"] = "Phone format is invalid"
	}

	if d.Customer.Email != "" && !ValidEmail(d.Customer.Email) {
		errs["email"] = "Email format is invalid"
	}

	if d.DeliveryType == models.DeliveryDelivery && strings.TrimSpace(d.Customer.Address) == "" {
		errs["address"] = "Address is required for delivery"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidPhone strips whitespace, then matches the loose phone shape.
func ValidPhone(phone string) bool {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	return phonePattern.MatchString(stripped)
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
