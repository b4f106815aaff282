package payment_gateway

import (
	"strings"
	"testing"
	"unicode/utf8"

	"clinicare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	t.Run("keeps short descriptions unchanged", func(t *testing.T) {
		assert.Equal(t, "Consultation fee", truncateDescription("Consultation fee"))
	})

	t.Run("keeps a description at exactly the limit", func(t *testing.T) {
		exact := strings.Repeat("a", constvars.GatewayDescriptionMaxLength)
		assert.Equal(t, exact, truncateDescription(exact))
	})

	t.Run("cuts long ascii descriptions to the limit", func(t *testing.T) {
		long := strings.Repeat("a", constvars.GatewayDescriptionMaxLength+10)
		got := truncateDescription(long)
		assert.Equal(t, strings.Repeat("a", constvars.GatewayDescriptionMaxLength), got)
	})

	t.Run("counts characters rather than bytes for multi-byte text", func(t *testing.T) {
		description := strings.Repeat("a", 24) + "ệnh phí"
		got := truncateDescription(description)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, constvars.GatewayDescriptionMaxLength, utf8.RuneCountInString(got))
		assert.Equal(t, strings.Repeat("a", 24)+"ệ", got)
	})

	t.Run("never splits a rune mid-sequence", func(t *testing.T) {
		description := strings.Repeat("ệ", constvars.GatewayDescriptionMaxLength+5)
		got := truncateDescription(description)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, constvars.GatewayDescriptionMaxLength, utf8.RuneCountInString(got))
	})
}
