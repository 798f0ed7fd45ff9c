package datautil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOrMany holds either a single T or a list of T. It lets an API or config
// accept "a name" and "a list of names" in the same field while keeping the
// shape the caller used.
//
// The zero value holds nothing and encodes as null.
type OneOrMany[T any] struct {
	items []T
	many  bool
}

// One returns a OneOrMany holding the single value v.
func One[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{items: []T{v}}
}

// Many returns a OneOrMany holding the list vs. The slice is copied.
func Many[T any](vs ...T) OneOrMany[T] {
	items := make([]T, len(vs))
	copy(items, vs)
	return OneOrMany[T]{items: items, many: true}
}

// FromValue builds a OneOrMany from an untyped value. A T becomes One, an
// iterable whose elements are all T becomes Many. A string T is never split
// into runes.
func FromValue[T any](value any) (OneOrMany[T], error) {
	if v, ok := value.(T); ok {
		return One(v), nil
	}
	if !IsIterable(value) {
		var zero T
		return OneOrMany[T]{}, fmt.Errorf("expected %T or a collection of %T, got %T", zero, zero, value)
	}
	elems := ConvertToList(value)
	items := make([]T, len(elems))
	for i, e := range elems {
		v, ok := e.(T)
		if !ok {
			return OneOrMany[T]{}, fmt.Errorf("element %d: expected %T, got %T", i, items[i], e)
		}
		items[i] = v
	}
	return OneOrMany[T]{items: items, many: true}, nil
}

// IsMany reports whether the value was given as a list.
func (o OneOrMany[T]) IsMany() bool {
	return o.many
}

// Len returns the number of held values.
func (o OneOrMany[T]) Len() int {
	return len(o.items)
}

// List returns the held values as a new, non-nil slice.
func (o OneOrMany[T]) List() []T {
	out := make([]T, len(o.items))
	copy(out, o.items)
	return out
}

// ElemType returns the reflect.Type of T.
func (o OneOrMany[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (o OneOrMany[T]) isZero() bool {
	return !o.many && len(o.items) == 0
}

func (o OneOrMany[T]) MarshalJSON() ([]byte, error) {
	switch {
	case o.isZero():
		return []byte("null"), nil
	case o.many:
		return json.Marshal(o.List())
	default:
		return json.Marshal(o.items[0])
	}
}

func (o *OneOrMany[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = OneOrMany[T]{}
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var items []T
		err := json.Unmarshal(b, &items)
		if err == nil {
			*o = Many(items...)
			return nil
		}
		// T may itself be a list.
		var v T
		if json.Unmarshal(b, &v) != nil {
			return err
		}
		*o = One(v)
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = One(v)
	return nil
}

func (o OneOrMany[T]) MarshalYAML() (any, error) {
	switch {
	case o.isZero():
		return nil, nil
	case o.many:
		return o.List(), nil
	default:
		return o.items[0], nil
	}
}

func (o *OneOrMany[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*o = OneOrMany[T]{}
		return nil
	}
	if node.Kind == yaml.SequenceNode {
		var items []T
		err := node.Decode(&items)
		if err == nil {
			*o = Many(items...)
			return nil
		}
		var v T
		if node.Decode(&v) != nil {
			return err
		}
		*o = One(v)
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = One(v)
	return nil
}
