// Package bloom provides approximate resource-identifier set membership
// using Bloom filters. Memory use is constant in the number of
// identifiers, at the cost of a configurable false positive rate.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is an approximate set of resource identifiers.
// False positives are possible; false negatives are not. Filter is not
// safe for concurrent use; callers synchronize access.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected identifiers with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records an identifier in the filter.
func (f *Filter) Add(id string) {
	f.f.AddString(id)
}

// Has reports whether the identifier might have been added.
func (f *Filter) Has(id string) bool {
	return f.f.TestString(id)
}

// EstimatedCount returns the approximate number of identifiers added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
