package datautil

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CleanAndValidate runs values through p, then validates every result with
// rules. Failures are returned as [ValidationErrors] keyed by element index,
// with no results.
func CleanAndValidate(values []string, p Pipeline, rules ...validation.Rule) ([]string, error) {
	out, err := p.Clean(values)
	if err != nil {
		return nil, err
	}
	errs := ValidationErrors{}
	for i, v := range out {
		if err := validation.Validate(v, rules...); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
