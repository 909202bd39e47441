package vf2

import "github.com/google/go-cmp/cmp"

// cmpEqual is the default label-equality predicate, used unless a Builder
// caller overrides it with WithNodeEq/WithEdgeEq. Go has no builtin
// first-class deep-equality operator, so this wraps go-cmp's structural
// comparison, which handles nil, primitive and composite label values
// uniformly.
func cmpEqual(a, b interface{}) bool {
	return cmp.Equal(a, b)
}
