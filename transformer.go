package datautil

import (
	"errors"
	"fmt"
	"reflect"
)

type (
	// Transformer maps one string to another and may reject its input.
	Transformer interface {
		Transform(value string) (string, error)
	}

	// TransformFunc is a pure string-to-string transform.
	TransformFunc func(value string) string

	// TransformErrFunc is a transform that can fail, such as a parser or normalizer.
	TransformErrFunc func(value string) (string, error)
)

// Transform implements [Transformer].
func (f TransformFunc) Transform(value string) (string, error) {
	return f(value), nil
}

// Transform implements [Transformer].
func (f TransformErrFunc) Transform(value string) (string, error) {
	return f(value)
}

var errNilTransform = errors.New("transform is nil")

// AsTransformer converts op to a [Transformer]. Accepted ops are
// func(string) string, func(string) (string, error), named func types with
// either signature, and any Transformer.
func AsTransformer(op any) (Transformer, error) {
	switch f := op.(type) {
	case nil:
		return nil, errNilTransform
	case TransformFunc:
		if f == nil {
			return nil, errNilTransform
		}
		return f, nil
	case TransformErrFunc:
		if f == nil {
			return nil, errNilTransform
		}
		return f, nil
	case func(string) string:
		if f == nil {
			return nil, errNilTransform
		}
		return TransformFunc(f), nil
	case func(string) (string, error):
		if f == nil {
			return nil, errNilTransform
		}
		return TransformErrFunc(f), nil
	case Transformer:
		return f, nil
	default:
		return convertFunc(op)
	}
}

var (
	transformFuncType    = reflect.TypeFor[func(string) string]()
	transformErrFuncType = reflect.TypeFor[func(string) (string, error)]()
)

func convertFunc(op any) (Transformer, error) {
	rv := reflect.ValueOf(op)
	if rv.Kind() == reflect.Func {
		switch {
		case rv.IsNil():
			return nil, errNilTransform
		case rv.Type().ConvertibleTo(transformFuncType):
			return TransformFunc(rv.Convert(transformFuncType).Interface().(func(string) string)), nil
		case rv.Type().ConvertibleTo(transformErrFuncType):
			return TransformErrFunc(rv.Convert(transformErrFuncType).Interface().(func(string) (string, error))), nil
		}
	}
	return nil, fmt.Errorf("%T cannot be applied to a string", op)
}
