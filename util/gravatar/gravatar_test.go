package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLNormalizesEmail(t *testing.T) {
	a := URL("jane@example.com")
	b := URL("  Jane@Example.COM ")
	assert.Equal(t, a, b)
}

func TestURLShape(t *testing.T) {
	// md5("jane@example.com")
	assert.Equal(t,
		"https://www.gravatar.com/avatar/9e26471d35a78862c17e467d87cddedf?s=100&d=retro&r=g",
		URL("jane@example.com"),
	)
}
