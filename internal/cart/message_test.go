package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talkincode/storefront/internal/domain"
)

func TestComposeCheckoutMessageFrench(t *testing.T) {
	c := New()
	c.AddItem(product(1, "Montre", 13500))
	c.AddItem(product(2, "Sac", 99.5))
	c.AddItem(product(2, "Sac", 99.5))

	want := "Bonjour, je voudrais commander:\n\n" +
		"- Montre x1 (13500 MRU)\n" +
		"- Sac x2 (199 MRU)\n" +
		"\nTotal: 13699 MRU"
	assert.Equal(t, want, c.ComposeCheckoutMessage(domain.French))
}

func TestComposeCheckoutMessageArabic(t *testing.T) {
	c := New(WithCurrency("أوقية"))
	c.AddItem(product(1, "Montre", 10))

	want := "مرحبا، أود أن أطلب:\n\n" +
		"- Montre ar x1 (10 أوقية)\n" +
		"\nالمجموع: 10 أوقية"
	assert.Equal(t, want, c.ComposeCheckoutMessage(domain.Arabic))
}

func TestComposeCheckoutMessageDoesNotClearCart(t *testing.T) {
	c := New()
	c.AddItem(product(1, "Montre", 10))
	_ = c.ComposeCheckoutMessage(domain.French)
	assert.Equal(t, 1, c.ItemCount())

	c.AddItem(product(1, "Montre", 10))
	assert.Equal(t, 2, c.ItemCount(), "re-adding after checkout accumulates")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "13500", FormatAmount(13500))
	assert.Equal(t, "99.5", FormatAmount(99.5))
	assert.Equal(t, "0", FormatAmount(0))
}
