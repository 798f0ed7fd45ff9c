package datautil

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of each word and lower-cases the rest.
func Title(value string) string {
	// A Caser is stateful; build one per call.
	return cases.Title(language.English).String(value)
}

// CollapseSpace trims value and replaces each run of whitespace with a single space.
func CollapseSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// StripControl removes ASCII control characters, including newlines.
func StripControl(value string) string {
	return govalidator.StripLow(value, false)
}

var namedOps = map[string]Transformer{
	"trim":               TransformFunc(strings.TrimSpace),
	"lower":              TransformFunc(strings.ToLower),
	"upper":              TransformFunc(strings.ToUpper),
	"title":              TransformFunc(Title),
	"remove_punctuation": TransformFunc(RemovePunctuation),
	"collapse_space":     TransformFunc(CollapseSpace),
	"strip_tags":         TransformFunc(govalidator.RemoveTags),
	"strip_control":      TransformFunc(StripControl),
	"underscore":         TransformFunc(govalidator.CamelCaseToUnderscore),
	"camel":              TransformFunc(govalidator.UnderscoreToCamelCase),
	"normalize_email":    TransformErrFunc(govalidator.NormalizeEmail),
}

// Lookup returns the named transform.
func Lookup(name string) (Transformer, bool) {
	t, ok := namedOps[name]
	return t, ok
}

// OpNames returns the names accepted by [Lookup], sorted.
func OpNames() []string {
	return slices.Sorted(maps.Keys(namedOps))
}

// ParsePipeline builds a Pipeline from transform names. Unknown names are
// reported together in an [*InvalidTransformError].
func ParsePipeline(names ...string) (Pipeline, error) {
	p := make(Pipeline, len(names))
	errs := ValidationErrors{}
	for i, name := range names {
		t, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			errs[strconv.Itoa(i)] = fmt.Errorf("unknown transform %q", name)
			continue
		}
		p[i] = t
	}
	if len(errs) > 0 {
		return nil, &InvalidTransformError{Errors: errs}
	}
	return p, nil
}
