package cart

import (
	"strconv"
	"strings"

	"github.com/talkincode/storefront/internal/domain"
)

var (
	greeting = domain.LocalizedText{
		Fr: "Bonjour, je voudrais commander:",
		Ar: "مرحبا، أود أن أطلب:",
	}
	totalLabel = domain.LocalizedText{Fr: "Total", Ar: "المجموع"}
)

// ComposeCheckoutMessage renders the order summary sent to the shop's
// messaging contact: a greeting, one line per item and a total line.
// Composing a message does not empty the cart.
func (c *Cart) ComposeCheckoutMessage(locale domain.Locale) string {
	items := c.Items()

	var b strings.Builder
	b.WriteString(greeting.Get(locale))
	b.WriteString("\n\n")
	var total float64
	for _, item := range items {
		line := item.LineTotal()
		total += line
		b.WriteString("- ")
		b.WriteString(item.Title(locale))
		b.WriteString(" x")
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString(" (")
		b.WriteString(FormatAmount(line))
		b.WriteString(" ")
		b.WriteString(c.currency)
		b.WriteString(")\n")
	}
	b.WriteString("\n")
	b.WriteString(totalLabel.Get(locale))
	b.WriteString(": ")
	b.WriteString(FormatAmount(total))
	b.WriteString(" ")
	b.WriteString(c.currency)
	return b.String()
}

// FormatAmount prints v in its shortest decimal form (13500, 99.5).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
