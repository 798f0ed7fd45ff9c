package datautil

// CleanStrings applies ops, in order, to each of values and collects the
// results. Each op must be accepted by [AsTransformer]. If any op is not,
// nothing is processed and the error matches [ErrInvalidTransform].
func CleanStrings(values []string, ops ...any) ([]string, error) {
	p, err := NewPipeline(ops...)
	if err != nil {
		return nil, err
	}
	return p.Clean(values)
}

// Clean is the typed form of [CleanStrings] for transforms that cannot fail.
// All ops must be non-nil.
func Clean(values []string, ops ...func(string) string) []string {
	f := Compose(ops...)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = f(v)
	}
	return out
}

// Compose returns a single function applying ops left to right.
func Compose(ops ...func(string) string) func(string) string {
	return func(value string) string {
		for _, op := range ops {
			value = op(value)
		}
		return value
	}
}
