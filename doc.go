// Package datautil provides small, stateless helpers for cleaning
// notebook-style data: telling collections from scalars, normalizing values
// into lists, and running ordered string transform pipelines.
//
// Clean a batch of strings with an ordered list of transforms:
//
//	out, err := datautil.CleanStrings(
//	    []string{"  Alabama ", "Georgia!", "FlOrIda##"},
//	    strings.TrimSpace, datautil.RemovePunctuation, datautil.Title,
//	)
//	// out: ["Alabama", "Georgia", "Florida"]
//
// Accept "a name or a list of names" at an API boundary with [OneOrMany]:
//
//	type Request struct {
//	    Tags datautil.OneOrMany[string] `json:"tags"`
//	}
//
// Sub-packages:
//   - transform – apply string functions and pipelines to struct fields
//   - openapi – OpenAPI schemas for [OneOrMany] fields and pipeline configs
package datautil
