// Package leaf provides stateless converters for scalar types.
// Each converter accepts the obvious source shapes for its type (the type itself,
// numbers, numeric or boolean strings and pointers to those) and returns an error
// wrapping ErrUnsupported for anything else.
package leaf
