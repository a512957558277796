package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAvailable(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		expect  bool
	}{
		{"v1.0.0", "v1.0.1", true},
		{"v1.0.0", "v1.0.0", false},
		{"v1.1.0", "v1.0.9", false},
		{"v1.2.0", "v1.10.0", true},
		// A release candidate build must see the final release as newer.
		{"v1.0.0-rc1", "v1.0.0", true},
		{"v1.0.0-rc1", "v1.0.0-rc2", true},
		{"v1.0.0", "v1.1.0-rc1", true},
		// Tags published without the leading v still compare.
		{"1.0.0", "v1.0.1", true},
		{"v1.0.1", "1.0.0", false},
		// Build metadata is ignored for ordering.
		{"v1.0.0+8f3c2d1", "v1.0.0", false},
		{"v1.0.0+8f3c2d1", "v1.0.1", true},
	}

	for _, test := range tests {
		assert.Equal(t, test.expect, updateAvailable(test.current, test.latest),
			"expect updateAvailable(%q, %q) == %v", test.current, test.latest, test.expect)
	}
}

func TestCanonicalTag(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonicalTag("v1.2.3"))
	assert.Equal(t, "v1.2.3", canonicalTag("V1.2.3"))
	assert.Equal(t, "v1.2.3", canonicalTag("1.2.3"))
	assert.Equal(t, "", canonicalTag(""))
}
