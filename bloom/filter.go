// Package bloom provides document-number deduplication using Bloom filters.
// Ingestion paginates over a moving window, so the same document can appear
// on two pages; the filter catches repeats without a store round-trip.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for document-number deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a document number to the filter.
func (f *Filter) Add(id string) {
	f.f.AddString(id)
}

// Test returns true if the document number might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id string) bool {
	return f.f.TestString(id)
}
