package reflection

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type label string

func TestIsEmpty(t *testing.T) {
	emptyString := ""
	blankString := " \t\n"
	someString := "some value"
	var nilPointer *string
	var nilInterface error

	tests := []struct {
		value    any
		expected bool
	}{
		{nil, true},
		{"", true},
		{"   ", true},
		{"a word", false},
		{label("  "), true},
		{label("reduction"), false},
		{0, true},
		{1, false},
		{-1, false},
		{0.0, true},
		{0.5, false},
		{false, true},
		{true, false},
		{time.Duration(0), true},
		{time.Second, false},
		{[]string{}, true},
		{[]string{"entry"}, false},
		{map[string]int{}, true},
		{map[string]int{"entry": 1}, false},
		{nilPointer, true},
		{&emptyString, true},
		{&blankString, true},
		{&someString, false},
		{nilInterface, true},
		{struct{ A int }{}, true},
		{struct{ A int }{A: 1}, false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%T(%v)", test.value, test.value), func(t *testing.T) {
			assert.Equal(t, test.expected, IsEmpty(test.value))
		})
	}
}
