package gridtable

import "reflect"

// Row maps column keys to raw cell values.
//
// Rows are never validated against a Columns registry,
// a missing key is an absent value and not an error.
type Row map[string]any

// Value returns the raw value for key
// and if the key was present.
func (r Row) Value(key string) (value any, ok bool) {
	value, ok = r[key]
	return value, ok
}

// IsAbsent returns true if the passed value is nil,
// a nil pointer, interface, slice, map, channel or function,
// or a value of type struct{}.
// Absent values are always rendered as placeholder.
func IsAbsent(value any) bool {
	if value == nil {
		return true
	}
	return valueIsNil(reflect.ValueOf(value))
}

func valueIsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	return false
}

// deref returns the value pointed to by value
// or value itself if it is not a non-nil pointer.
func deref(value any) any {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
