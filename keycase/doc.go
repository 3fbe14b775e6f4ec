// Package keycase converts map keys between camelCase, PascalCase and
// snake_case. Key conversions are memoized through a memo.Memo so that
// hot payload shapes pay for each distinct key once.
//
//	out := keycase.CamelKeys(ctx, map[string]any{"foo_bar": 1}, nil)
//	// map[string]any{"fooBar": 1}
//
// Inputs are the shapes encoding/json produces: map[string]any, []any and
// scalars. Anything else is returned unchanged.
package keycase
