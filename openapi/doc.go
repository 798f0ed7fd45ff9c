// Package openapi generates OpenAPI 3 schemas for types that use
// [datautil.OneOrMany] fields, and for [datautil.PipelineConfig].
//
// A field declared as
//
//	Tags datautil.OneOrMany[string] `json:"tags"`
//
// is documented as
//
//	oneOf:
//	  - type: string
//	  - type: array
//	    items: {type: string}
package openapi
