// Package registry holds the block kernels available to biquad sections and
// selects one for the running CPU.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirrors biquad.Coefficients so kernels do not import the
// public package.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn filters buf in place and returns the updated delay line.
type ProcessBlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Entry describes one kernel implementation.
type Entry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// Registry is a priority-ordered kernel table.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is populated by the kernel packages' init functions.
var Global = &Registry{}

// Register adds e and keeps the table ordered by descending priority.
// Entries with equal priority keep registration order.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	slices.SortStableFunc(r.entries, func(a, b Entry) int {
		return b.Priority - a.Priority
	})
}

// Lookup returns the highest-priority entry whose SIMD level is supported
// by features, or nil when nothing matches.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		e := &r.entries[i]
		if cpu.Supports(features, e.SIMDLevel) {
			return e
		}
	}

	return nil
}

// Entries returns a copy of the table.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Reset removes every entry. Tests only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
