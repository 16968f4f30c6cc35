// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

// growthFactor is the amortised growth rate used when a limb slice must be
// reallocated to fit more limbs. Tunable; not part of the contract (see
// spec.md "Open questions").
const growthFactor = 1.5

// Uint is a non-negative integer of unbounded magnitude, stored as a
// little-endian sequence of 64-bit limbs (limb 0 is least significant).
//
// The zero value is the integer zero and is ready to use.
//
// A Uint is not safe for concurrent mutation; a read-only Uint (one no
// goroutine is mutating) may be read from multiple goroutines, since each
// value owns its own limb buffer independently of any other.
type Uint struct {
	// lowZeros is the left-pad count: the number of low-order zero limbs
	// that are logically present but not materialized in limbs. A shift
	// left by a multiple of 64 bits increments lowZeros instead of
	// prepending zero words (the limbs are copied unchanged, not shifted);
	// a shift right by a multiple of 64 bits can undo that by decrementing
	// lowZeros, as long as it doesn't need to reach into limbs itself. This is purely a
	// performance optimization: every accessor below presents the logical
	// limb sequence as though lowZeros were always 0.
	lowZeros int

	// limbs holds the materialized limbs starting at logical index
	// lowZeros. The top entry, if any, is non-zero (canonical form
	// invariant 1). limbs itself may contain interior zero limbs.
	limbs []uint64
}

// limbCount returns the logical number of limbs (invariant 1 excluded:
// this counts the implicit low zero limbs too).
func (u *Uint) limbCount() int {
	if len(u.limbs) == 0 {
		return 0
	}
	return u.lowZeros + len(u.limbs)
}

// limbAt returns the logical limb at index i, or 0 if i is out of range.
func (u *Uint) limbAt(i int) uint64 {
	if i < 0 || i < u.lowZeros {
		return 0
	}
	j := i - u.lowZeros
	if j >= len(u.limbs) {
		return 0
	}
	return u.limbs[j]
}

// words materializes the logical low-to-high limb sequence as a plain
// slice, folding lowZeros in as explicit zero limbs. Apart from the
// multiple-of-64 fast paths in ShiftLeft/ShiftRight (and limbAt/limbCount),
// components operate on this materialized view; the left-pad trick is
// invisible past this accessor.
func (u *Uint) words() []uint64 {
	if u.lowZeros == 0 {
		return u.limbs
	}
	if len(u.limbs) == 0 {
		return nil
	}
	w := make([]uint64, u.lowZeros+len(u.limbs))
	copy(w[u.lowZeros:], u.limbs)
	return w
}

// fromWords builds a Uint from a canonical (trimmed) low-to-high limb
// slice, taking ownership of it.
func fromWords(w []uint64) Uint {
	return Uint{limbs: trim(w)}
}

// trim drops trailing (high) zero limbs so the top limb, if any, is
// non-zero, restoring canonical form invariant 1. It reuses the backing
// array of w.
func trim(w []uint64) []uint64 {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

// trimMasked is trim preceded by masking the top limb to keep only its low
// bits bits wide (0 <= bits <= 64), for callers (Not) that need to cap a
// value's bit width before trimming.
func trimMasked(w []uint64, bits int) []uint64 {
	if len(w) == 0 || bits >= 64 {
		return trim(w)
	}
	if bits <= 0 {
		return nil
	}
	mask := uint64(1)<<uint(bits) - 1
	w[len(w)-1] &= mask
	return trim(w)
}

// growTo returns a slice with at least n elements of capacity, preserving
// the first len(w) elements, growing the backing array by growthFactor
// when reallocation is required.
func growTo(w []uint64, n int) []uint64 {
	if cap(w) >= n {
		return w[:n]
	}
	newCap := int(float64(cap(w)) * growthFactor)
	if newCap < n {
		newCap = n
	}
	nw := make([]uint64, n, newCap)
	copy(nw, w)
	return nw
}
