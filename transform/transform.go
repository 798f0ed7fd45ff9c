package transform

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Gobd/datautil"
)

// StructTrimSpace runs [strings.TrimSpace] on every string reachable from v.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructRemovePunctuation runs [datautil.RemovePunctuation] on every string reachable from v.
func StructRemovePunctuation(v any) {
	StructStringFunc(v, datautil.RemovePunctuation)
}

// StructStringFunc applies f to every settable string reachable from v:
// exported struct fields, pointers, slices, arrays and map values.
// Interface-typed values are left alone.
// Each pointer is followed once, so cyclic values are safe.
func StructStringFunc(v any, f func(string) string) {
	w := newWalker(func(s string) (string, error) { return f(s), nil })
	_ = w.walk(reflect.ValueOf(v), "")
}

// StructPipeline runs p over every string reachable from v. It stops at the
// first failing transform and returns its error prefixed with the field path.
// Strings already visited keep their new values.
func StructPipeline(v any, p datautil.Pipeline) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return newWalker(p.Apply).walk(reflect.ValueOf(v), "")
}

// StructClean is [StructPipeline] with a pipeline built by [datautil.NewPipeline].
func StructClean(v any, ops ...any) error {
	p, err := datautil.NewPipeline(ops...)
	if err != nil {
		return err
	}
	return StructPipeline(v, p)
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type walker struct {
	f    func(string) (string, error)
	seen map[visit]bool
}

func newWalker(f func(string) (string, error)) *walker {
	return &walker{f: f, seen: map[visit]bool{}}
}

func (w *walker) walk(rv reflect.Value, path string) error { //nolint:revive // reflection walker is inherently complex
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		v := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if w.seen[v] {
			return nil
		}
		w.seen[v] = true
		return w.walk(rv.Elem(), path)
	case reflect.String:
		if !rv.CanSet() {
			return nil
		}
		s, err := w.f(rv.String())
		if err != nil {
			return wrap(path, err)
		}
		rv.SetString(s)
	case reflect.Struct:
		t := rv.Type()
		for i := range rv.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			if err := w.walk(rv.Field(i), fieldPath(path, sf.Name)); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := w.walk(rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		for _, key := range keys {
			// Map values aren't addressable; copy, walk, put back.
			cp := reflect.New(rv.Type().Elem()).Elem()
			cp.Set(rv.MapIndex(key))
			if err := w.walk(cp, fmt.Sprintf("%s[%v]", path, key.Interface())); err != nil {
				return err
			}
			rv.SetMapIndex(key, cp)
		}
	}
	return nil
}

func fieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func wrap(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}
