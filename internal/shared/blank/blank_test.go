package blank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type named string

type point struct{ X, Y int }

func TestIs(t *testing.T) {
	var nilPtr *point
	var nilSlice []string
	var nilMap map[string]int

	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "x", false},
		{"zero string is content", "0", false},
		{"false", false, true},
		{"true", true, false},
		{"zero int", 0, true},
		{"int", 7, false},
		{"zero float", 0.0, true},
		{"zero uint8", uint8(0), true},
		{"empty any slice", []any{}, true},
		{"any slice", []any{nil}, false},
		{"nil typed slice", nilSlice, true},
		{"typed slice", []string{"a"}, false},
		{"empty map", map[string]any{}, true},
		{"nil typed map", nilMap, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &point{}, false},
		{"zero struct", point{}, false},
		{"named empty string", named(""), true},
		{"empty array", [0]int{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Is(tc.value))
		})
	}
}
