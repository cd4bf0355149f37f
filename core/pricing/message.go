// Package pricing - Checkout message and deep-link building
// The entire "checkout" is a pre-filled WhatsApp link; the message wording
// is reproduced exactly as the storefront sends it.
package pricing

import (
	"fmt"
	"net/url"

	"streamdeals/core/catalog"
	"streamdeals/core/money"
)

// DefaultWhatsAppNumber is the storefront's checkout number
const DefaultWhatsAppNumber = "573005965404"

// LinkBuilder builds checkout deep links for a WhatsApp number
type LinkBuilder struct {
	// Number is the destination number, digits only
	Number string
}

// DefaultLinks returns a builder for the storefront's own number
func DefaultLinks() LinkBuilder {
	return LinkBuilder{Number: DefaultWhatsAppNumber}
}

// Link wraps a message into a wa.me deep link
func (l LinkBuilder) Link(message string) string {
	number := l.Number
	if number == "" {
		number = DefaultWhatsAppNumber
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// monthsPhrase renders the human billing-duration phrase
func monthsPhrase(months int) string {
	if months == 1 {
		return "1 Mes"
	}
	return fmt.Sprintf("%d Meses", months)
}

// cardMessage builds the per-card checkout message. The unit-count clause
// only appears when more than one profile/account is selected.
func cardMessage(name string, profiles, months int, unit catalog.BillingUnit, total int64) string {
	msg := fmt.Sprintf("Quiero comprar %s %s", name, monthsPhrase(months))
	if profiles > 1 {
		msg += fmt.Sprintf(" (%d %s)", profiles, unit.PluralWord())
	}
	return msg + " - Precio: " + money.Format(total)
}

// comboMessage builds the combo checkout message listing every selection
func comboMessage(names []string, total int64) string {
	list := ""
	for i, name := range names {
		if i > 0 {
			list += ", "
		}
		list += name
	}
	return fmt.Sprintf("Quiero mi Combo de: %s. Precio: %s", list, money.Format(total))
}
