// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

// Component D: carry-propagating add and borrow-propagating subtract, with
// an optional limb offset used internally by multiply.go (Karatsuba's
// per-slice accumulation). divide.go's Knuth Algorithm D steps use their
// own in-place helpers (mulSubWords, addBackWords) instead. Grounded on the teacher's mpnAddN/mpnSubN
// (mpn_fallback_generic_ops.go) generalized from fixed n-limb operands to
// variable-length ones, the way math/big's nat.cadd/csub does.

// addWords computes x + (y << (64*offset)) and returns the trimmed result.
func addWords(x, y []uint64, offset int) []uint64 {
	n := offset + len(y)
	if len(x) > n {
		n = len(x)
	}
	z := growTo(append([]uint64(nil), x...), n+1)

	var c uint64
	for i, yi := range y {
		c, z[offset+i] = addCarry64(z[offset+i], yi, c)
	}
	for idx := offset + len(y); c != 0 && idx < n; idx++ {
		c, z[idx] = addCarry64(z[idx], 0, c)
	}
	z[n] = c

	return trim(z)
}

// subWords computes x - (y << (64*offset)) at a width of max(len(x),
// offset+len(y)) limbs and returns (trimmed result, borrowOut). borrowOut
// is 1 iff the subtraction underflowed, in which case the returned value
// is (x - shifted y) mod 2^(64*width) — the modular complement at that
// limb width, per spec.md's §4.D.
func subWords(x, y []uint64, offset int) (z []uint64, borrowOut uint64) {
	n := offset + len(y)
	if len(x) > n {
		n = len(x)
	}
	z = growTo(append([]uint64(nil), x...), n)

	var b uint64
	for i, yi := range y {
		b, z[offset+i] = subBorrow64(z[offset+i], yi, b)
	}
	for idx := offset + len(y); b != 0 && idx < n; idx++ {
		b, z[idx] = subBorrow64(z[idx], 0, b)
	}

	return trim(z), b
}

// cmpWords reports -1, 0, or 1 as x is less than, equal to, or greater
// than y, comparing by length then by limb from most to least significant
// (spec.md §4.H).
func cmpWords(x, y []uint64) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns u + v as a new value.
func Add(u, v *Uint) Uint {
	return fromWords(addWords(u.words(), v.words(), 0))
}

// AddAssign sets u to u + v and returns u.
func (u *Uint) AddAssign(v *Uint) *Uint {
	u.limbs = addWords(u.words(), v.words(), 0)
	u.lowZeros = 0
	return u
}

// Add returns a clone of u with v added; u is left unmodified.
func (u *Uint) Add(v *Uint) Uint {
	return Add(u, v)
}

// Sub returns u - v as a new value, wrapping modulo 2^(64*n) if v > u,
// where n is the limb count of the wider operand; see spec.md §4.D. Use Cmp first if
// underflow must be detected rather than wrapped.
func Sub(u, v *Uint) Uint {
	z, _ := subWords(u.words(), v.words(), 0)
	return fromWords(z)
}

// SubAssign sets u to u - v (wrapping on underflow, see Sub) and returns u.
func (u *Uint) SubAssign(v *Uint) *Uint {
	z, _ := subWords(u.words(), v.words(), 0)
	u.limbs = z
	u.lowZeros = 0
	return u
}

// Sub returns a clone of u with v subtracted; u is left unmodified.
func (u *Uint) Sub(v *Uint) Uint {
	return Sub(u, v)
}

// Neg returns the modular complement 0 - u at u's current limb width, the
// unary minus operation spec.md §4.D defines for this unsigned type.
func Neg(u *Uint) Uint {
	z, _ := subWords(nil, u.words(), 0)
	return fromWords(z)
}
