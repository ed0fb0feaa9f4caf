package flatfile

import (
	"reflect"
	"strings"
)

// IsBlank reports whether v carries no value: nil, a nil pointer, an empty or whitespace-only
// string, numeric zero, false, or an empty slice, map, or array. Pointers are followed.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case bool:
		return !x
	case int:
		return x == 0
	case float64:
		return x == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.Func:
		return rv.IsNil()
	}
	return false
}
