// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "testing"

func TestLeadingBit(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		want int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"two", 2, 2},
		{"max", ^uint64(0), 64},
		{"high_bit_only", 1 << 63, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leadingBit(tt.x); got != tt.want {
				t.Errorf("leadingBit(%#x) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestMul64(t *testing.T) {
	hi, lo := mul64(^uint64(0), ^uint64(0))
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	wantHi, wantLo := uint64(0xfffffffffffffffe), uint64(1)
	if hi != wantHi || lo != wantLo {
		t.Errorf("mul64(max,max) = (%#x, %#x), want (%#x, %#x)", hi, lo, wantHi, wantLo)
	}
}

func TestMulAdd64(t *testing.T) {
	hi, lo := mulAdd64(10, 20, 5, 1)
	if hi != 0 || lo != 206 {
		t.Errorf("mulAdd64(10,20,5,1) = (%d,%d), want (0,206)", hi, lo)
	}

	// (2^64-1)^2 + (2^64-1) + 1 = 2^128 - 2^64 + 1
	hi, lo = mulAdd64(^uint64(0), ^uint64(0), ^uint64(0), 1)
	if hi != 0xffffffffffffffff || lo != 1 {
		t.Errorf("mulAdd64 overflow case = (%#x,%#x)", hi, lo)
	}
}

func TestAddSubBorrow64(t *testing.T) {
	c, sum := addCarry64(^uint64(0), 1, 0)
	if c != 1 || sum != 0 {
		t.Errorf("addCarry64 overflow = (%d,%d), want (1,0)", c, sum)
	}

	b, diff := subBorrow64(0, 1, 0)
	if b != 1 || diff != ^uint64(0) {
		t.Errorf("subBorrow64 underflow = (%d,%#x), want (1,%#x)", b, diff, ^uint64(0))
	}
}

func TestDivRem128By64(t *testing.T) {
	q, r := divRem128By64(0, 100, 7)
	if q != 14 || r != 2 {
		t.Errorf("divRem128By64(0,100,7) = (%d,%d), want (14,2)", q, r)
	}
}
