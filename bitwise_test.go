// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "testing"

func TestAndTruncatesToShorter(t *testing.T) {
	a := FromUint64s(1, 0xff) // limb1=1, limb0=0xff
	b := FromUint64(0x0f)
	got := And(&a, &b)
	want := FromUint64(0x0f)
	if got.Cmp(&want) != 0 {
		t.Errorf("And = %s, want %s", got.String(), want.String())
	}
}

func TestOrExtendsToLonger(t *testing.T) {
	a := FromUint64s(1, 0) // value = 2^64
	b := FromUint64(0x0f)
	got := Or(&a, &b)
	want := FromUint64s(1, 0x0f)
	if got.Cmp(&want) != 0 {
		t.Errorf("Or = %s, want %s", got.String(), want.String())
	}
}

func TestXor(t *testing.T) {
	a := FromUint64(0xff)
	b := FromUint64(0x0f)
	got := Xor(&a, &b)
	want := FromUint64(0xf0)
	if got.Cmp(&want) != 0 {
		t.Errorf("Xor(0xff,0x0f) = %s, want %s", got.String(), want.String())
	}
}

func TestNotOfZeroYieldsOne(t *testing.T) {
	z := Zero()
	got := Not(&z)
	want := One()
	if got.Cmp(&want) != 0 {
		t.Errorf("Not(0) = %s, want 1 (documented quirk)", got.String())
	}
}

func TestNotWithinBitLen(t *testing.T) {
	u := FromUint64(0b101)
	got := Not(&u)
	want := FromUint64(0b010)
	if got.Cmp(&want) != 0 {
		t.Errorf("Not(0b101) = %s, want %s", got.String(), want.String())
	}
}

func TestNotMultiLimb(t *testing.T) {
	// 2^64 has bit_length 65, spanning two limbs; Not must mask the top
	// limb down to its single significant bit, not leave it all-ones.
	u := FromUint64s(1, 0)
	got := Not(&u)
	want := FromUint64(0xffffffffffffffff)
	if got.Cmp(&want) != 0 {
		t.Errorf("Not(2^64) = %s, want %s", got.String(), want.String())
	}
	if got.BitLen() != 64 {
		t.Errorf("Not(2^64).BitLen() = %d, want 64", got.BitLen())
	}
}

func TestShiftLeftByMultipleOf64UsesLowZerosFastPath(t *testing.T) {
	u := FromUint64(1)
	got := ShiftLeft(&u, 128)
	if got.lowZeros != 2 {
		t.Errorf("ShiftLeft by 128 should set lowZeros=2, got %d", got.lowZeros)
	}
	want := FromUint64s(1, 0, 0)
	if got.Cmp(&want) != 0 {
		t.Errorf("ShiftLeft(1,128) = %s, want %s", got.String(), want.String())
	}
}

func TestShiftLeftWithSubLimbRemainder(t *testing.T) {
	u := FromUint64(1)
	got := ShiftLeft(&u, 65)
	want := FromUint64s(2, 0)
	if got.Cmp(&want) != 0 {
		t.Errorf("ShiftLeft(1,65) = %s, want %s", got.String(), want.String())
	}
}

func TestShiftRightUndoesLowZerosFastPath(t *testing.T) {
	u := FromUint64(1)
	shifted := ShiftLeft(&u, 128)
	got := ShiftRight(&shifted, 64)
	if got.lowZeros != 1 {
		t.Errorf("ShiftRight should decrement lowZeros to 1, got %d", got.lowZeros)
	}
	want := FromUint64s(1, 0)
	if got.Cmp(&want) != 0 {
		t.Errorf("ShiftRight result = %s, want %s", got.String(), want.String())
	}
}

func TestShiftRightBeyondBitLenIsZero(t *testing.T) {
	u := FromUint64(1)
	got := ShiftRight(&u, 100)
	if !got.IsZero() {
		t.Errorf("ShiftRight(1,100) = %s, want 0", got.String())
	}
}

func TestShiftRightWithSubLimbRemainder(t *testing.T) {
	u := FromUint64(0b1000)
	got := ShiftRight(&u, 3)
	want := FromUint64(1)
	if got.Cmp(&want) != 0 {
		t.Errorf("ShiftRight(0b1000,3) = %s, want 1", got.String())
	}
}
