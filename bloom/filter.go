// Package bloom provides probabilistic visited-URL tracking for chapter
// walks.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Visited tracks URLs already walked. Membership tests can report false
// positives but never false negatives, so a walk may stop early on a
// collision but never loops.
type Visited struct {
	f *bloom.BloomFilter
}

// NewVisited creates a tracker sized for n expected URLs with the given
// false positive rate.
func NewVisited(n uint, fpRate float64) *Visited {
	return &Visited{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Mark records a URL as visited.
func (v *Visited) Mark(url string) {
	v.f.AddString(url)
}

// Seen reports whether a URL might have been visited.
func (v *Visited) Seen(url string) bool {
	return v.f.TestString(url)
}

// Count returns the approximate number of visited URLs.
func (v *Visited) Count() uint {
	return uint(v.f.ApproximatedSize())
}
