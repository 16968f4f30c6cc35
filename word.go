// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "math/bits"

// Word primitives: the six 64-bit building blocks the rest of the engine
// is built from. math/bits compiles these down to the same hardware
// intrinsics (ADCX/ADOX, MULX, DIV) the teacher's assembly fallback files
// reach for by hand on amd64/arm64; on platforms without them math/bits
// itself falls back to portable sequences, so there is no separate
// generic-vs-assembly split left to make at this layer.

// leadingBit returns 0 if x is zero, otherwise the 1-based index of the
// highest set bit (1..64). Equivalent to bits.Len64.
func leadingBit(x uint64) int {
	return bits.Len64(x)
}

// mul64 returns the 128-bit product of x and y as (hi, lo).
func mul64(x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	return
}

// mulAdd64 computes x*y + a + c and returns (hi, lo), where hi is the
// carry that must propagate into the next limb.
func mulAdd64(x, y, a, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var c0, c1 uint64
	lo, c0 = bits.Add64(lo, a, 0)
	lo, c1 = bits.Add64(lo, c, 0)
	hi += c0 + c1
	return
}

// addCarry64 computes x+y+c with c in {0,1} and returns (carryOut, sum),
// carryOut in {0,1}.
func addCarry64(x, y, c uint64) (carryOut, sum uint64) {
	sum, carryOut = bits.Add64(x, y, c)
	return
}

// subBorrow64 computes x-y-c with c in {0,1} and returns (borrowOut, diff),
// borrowOut in {0,1}.
func subBorrow64(x, y, c uint64) (borrowOut, diff uint64) {
	diff, borrowOut = bits.Sub64(x, y, c)
	return
}

// divRem128By64 divides the 128-bit value (hi*2^64 + lo) by d and returns
// (q, r). The caller must ensure hi < d, or the quotient overflows 64 bits;
// divide.go never invokes it otherwise (see Knuth Algorithm D's
// normalization step).
func divRem128By64(hi, lo, d uint64) (q, r uint64) {
	q, r = bits.Div64(hi, lo, d)
	return
}
