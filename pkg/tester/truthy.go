package tester

import (
	"reflect"
	"strings"
)

// falsyStrings lists the lowercase string forms treated as false.
var falsyStrings = map[string]struct{}{
	"":      {},
	"0":     {},
	"false": {},
	"off":   {},
	"no":    {},
}

// Truthy applies loose boolean coercion to v. nil values, false,
// numeric zero and the strings "", "0", "false", "off" and "no"
// (case-insensitive, surrounding whitespace ignored) are false.
// Every other value is true. Named types are classified by their
// underlying kind.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		s := strings.ToLower(strings.TrimSpace(rv.String()))
		_, falsy := falsyStrings[s]
		return !falsy
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}
