package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talkincode/storefront/internal/domain"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Code incorrect", T("accessDenied", domain.French))
	assert.Equal(t, "الرمز غير صحيح", T("accessDenied", domain.Arabic))
	assert.Equal(t, "unknownKey", T("unknownKey", domain.Arabic))
}

func TestEveryMessageIsBilingual(t *testing.T) {
	for key, m := range messages {
		assert.NotEmpty(t, m.Fr, key)
		assert.NotEmpty(t, m.Ar, key)
	}
}
