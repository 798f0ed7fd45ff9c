package datautil

import (
	"strconv"
)

// Pipeline is an ordered list of transforms applied left to right.
// Pipelines built by hand are checked with [Pipeline.Validate] before use.
type Pipeline []Transformer

// NewPipeline checks every op with [AsTransformer] and returns them as a
// Pipeline. All invalid ops are reported together in an [*InvalidTransformError].
func NewPipeline(ops ...any) (Pipeline, error) {
	p := make(Pipeline, len(ops))
	errs := ValidationErrors{}
	for i, op := range ops {
		t, err := AsTransformer(op)
		if err != nil {
			errs[strconv.Itoa(i)] = err
			continue
		}
		p[i] = t
	}
	if len(errs) > 0 {
		return nil, &InvalidTransformError{Errors: errs}
	}
	return p, nil
}

// MustPipeline is like [NewPipeline] but panics on error.
func MustPipeline(ops ...any) Pipeline {
	p, err := NewPipeline(ops...)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports nil entries, including nil funcs, in an [*InvalidTransformError].
func (p Pipeline) Validate() error {
	errs := ValidationErrors{}
	for i, t := range p {
		if _, err := AsTransformer(t); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return &InvalidTransformError{Errors: errs}
	}
	return nil
}

// Apply runs value through every transform in order.
func (p Pipeline) Apply(value string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	out, _, err := p.apply(value)
	return out, err
}

// Clean applies the pipeline to each value independently. The result has one
// entry per input, in order. An invalid pipeline is rejected before any value
// is processed. On the first failing transform Clean stops and returns a
// [*TransformError] and no results.
func (p Pipeline) Clean(values []string) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		cleaned, op, err := p.apply(v)
		if err != nil {
			return nil, &TransformError{Index: i, Op: op, Value: v, Err: err}
		}
		out[i] = cleaned
	}
	return out, nil
}

func (p Pipeline) apply(value string) (string, int, error) {
	for i, t := range p {
		var err error
		value, err = t.Transform(value)
		if err != nil {
			return "", i, err
		}
	}
	return value, -1, nil
}
