package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Fruits", "fruits"},
		{"spaces", "Fresh Produce", "fresh-produce"},
		{"trims whitespace", "  Dairy & Eggs  ", "dairy-eggs"},
		{"punctuation stripped", "Snacks, Chips & Dips!", "snacks-chips-dips"},
		{"repeated separators collapse", "Tea --  Coffee", "tea-coffee"},
		{"leading and trailing dashes trimmed", "-Frozen-", "frozen"},
		{"already a slug", "baked-goods", "baked-goods"},
		{"unicode stripped", "Bánh mì", "bnh-m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
