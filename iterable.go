package datautil

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// IsIterable reports whether value is a collection: a string, slice, array,
// map, or an iter.Seq style generator func. Pointers are followed first.
// Numbers, booleans, nil, structs, channels and other funcs are scalars.
func IsIterable(value any) bool {
	rv, ok := indirectValue(value)
	if !ok {
		return false
	}
	return isIterableKind(rv)
}

// ConvertToList returns the elements of an iterable value in iteration order,
// or a single-element list wrapping value when it is a scalar. The result is
// never nil.
//
// Strings yield one string per rune. Maps yield their keys, sorted so the
// output is stable across calls.
func ConvertToList(value any) []any {
	rv, ok := indirectValue(value)
	if !ok || !isIterableKind(rv) {
		return []any{value}
	}

	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		out := make([]any, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = k.Interface()
		}
		return out
	case reflect.Func:
		out := []any{}
		for v := range rv.Seq() {
			out = append(out, v.Interface())
		}
		return out
	}
	return []any{value}
}

// indirectValue dereferences pointers. ok is false for nil values and nil pointers.
func indirectValue(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

func isIterableKind(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Func:
		// iter.Seq shape only. iter.Seq2 is treated as a scalar.
		return !rv.IsNil() && rv.Type().CanSeq()
	default:
		return false
	}
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == b.Kind() {
		switch {
		case a.CanInt():
			return cmp.Compare(a.Int(), b.Int())
		case a.CanUint():
			return cmp.Compare(a.Uint(), b.Uint())
		case a.CanFloat():
			return cmp.Compare(a.Float(), b.Float())
		case a.Kind() == reflect.String:
			return cmp.Compare(a.String(), b.String())
		}
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
