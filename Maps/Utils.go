package Maps

import "reflect"

// IsNil reports whether k is a null key: a nil interface, or a nil pointer, map, slice, func or channel.
func IsNil[K any](k K) bool {
	v := any(k)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
