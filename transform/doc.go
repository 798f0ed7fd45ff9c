// Package transform applies string transforms to every string field of a
// struct, recursively. It is typically used to clean decoded request or
// config values in place before validating them.
package transform
