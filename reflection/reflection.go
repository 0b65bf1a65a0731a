// Package reflection provides small helpers for inspecting values at runtime.
package reflection

import (
	"reflect"
	"strings"
)

// IsEmpty states whether a value is considered empty i.e. "", nil, 0, [], {},
// false, etc. A string is considered empty when it only contains whitespace.
// Pointers and interfaces are considered empty when nil or when the value they
// carry is itself empty.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return len(strings.TrimSpace(text)) == 0
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return len(strings.TrimSpace(v.String())) == 0
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	default:
		return v.IsZero()
	}
}
