// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "fmt"

// Component F: division and modulo. Single-limb divisors use a direct
// top-down divRem128By64 sweep; multi-limb divisors use Knuth's Algorithm
// D (TAOCP vol. 2, 4.3.1) the way the reference math/big nat.go
// (other_examples/b1e7c18b_bford-go) implements divLarge: normalize by
// shifting the divisor's top bit into place, estimate each quotient limb
// from the top two dividend limbs, multiply-and-subtract, and add the
// divisor back if the estimate overshot.

// divModWords divides u by v, both canonical low-to-high limb slices, and
// returns trimmed (quotient, remainder). v must be non-empty; callers
// check for division by zero themselves.
func divModWords(u, v []uint64) (q, r []uint64) {
	if cmpWords(u, v) < 0 {
		return nil, append([]uint64(nil), u...)
	}
	if len(v) == 1 {
		return divModSingleLimb(u, v[0])
	}
	return divModKnuth(u, v)
}

// divModSingleLimb divides u by the single limb d.
func divModSingleLimb(u []uint64, d uint64) (q, r []uint64) {
	q = make([]uint64, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		q[i], rem = divRem128By64(rem, u[i], d)
	}
	q = trim(q)
	if rem == 0 {
		return q, nil
	}
	return q, []uint64{rem}
}

// mulSubWords computes dst -= qhat*v in place, where dst has len(v)+1
// limbs, and returns the borrow out of the top limb (0 or 1).
func mulSubWords(dst, v []uint64, qhat uint64) uint64 {
	var carry, borrow uint64
	for i, vi := range v {
		var lo uint64
		carry, lo = mulAdd64(vi, qhat, 0, carry)
		borrow, dst[i] = subBorrow64(dst[i], lo, borrow)
	}
	borrow, dst[len(v)] = subBorrow64(dst[len(v)], carry, borrow)
	return borrow
}

// addBackWords computes dst += v in place, where dst has len(v)+1 limbs,
// used to undo an over-estimated quotient digit (Knuth Algorithm D, step
// D6).
func addBackWords(dst, v []uint64) {
	var carry uint64
	for i, vi := range v {
		carry, dst[i] = addCarry64(dst[i], vi, carry)
	}
	dst[len(v)], _ = addCarry64(dst[len(v)], 0, carry)
}

// divModKnuth implements Algorithm D for a divisor of two or more limbs.
func divModKnuth(u, v []uint64) (q, r []uint64) {
	n := len(v)
	m := len(u) - n

	shift := 64 - leadingBit(v[n-1])

	vTmp := fromWords(append([]uint64(nil), v...))
	vShifted := ShiftLeft(&vTmp, uint64(shift))
	vn := vShifted.words()
	vn = growTo(vn, n)

	uTmp := fromWords(append([]uint64(nil), u...))
	shiftedU := ShiftLeft(&uTmp, uint64(shift))
	un := growTo(append([]uint64(nil), shiftedU.words()...), m+n+1)

	qd := make([]uint64, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		var rhatOverflowed bool

		uHi, uMid := un[j+n], un[j+n-1]
		if uHi == vn[n-1] {
			qhat = ^uint64(0)
			rhat = uMid + vn[n-1]
			rhatOverflowed = rhat < uMid
		} else {
			qhat, rhat = divRem128By64(uHi, uMid, vn[n-1])
		}

		for !rhatOverflowed && n >= 2 {
			hi, lo := mul64(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			newRhat := rhat + vn[n-1]
			rhatOverflowed = newRhat < rhat
			rhat = newRhat
		}

		borrow := mulSubWords(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			addBackWords(un[j:j+n+1], vn)
			qhat--
		}
		qd[j] = qhat
	}

	q = trim(qd)
	remTmp := fromWords(trim(un[:n]))
	remShifted := ShiftRight(&remTmp, uint64(shift))
	r = remShifted.words()
	return q, r
}

// DivMod returns (u/v, u%v). It returns ErrDivisionByZero if v is zero.
func DivMod(u, v *Uint) (Uint, Uint, error) {
	vw := v.words()
	if len(vw) == 0 {
		return Uint{}, Uint{}, fmt.Errorf("biguint: divmod: %w", ErrDivisionByZero)
	}
	q, r := divModWords(u.words(), vw)
	return fromWords(q), fromWords(r), nil
}

// Div returns u / v (truncating), or ErrDivisionByZero if v is zero.
func Div(u, v *Uint) (Uint, error) {
	q, _, err := DivMod(u, v)
	return q, err
}

// Mod returns u % v, or ErrDivisionByZero if v is zero.
func Mod(u, v *Uint) (Uint, error) {
	_, r, err := DivMod(u, v)
	return r, err
}

// DivMod returns (u/v, u%v); see DivMod.
func (u *Uint) DivMod(v *Uint) (Uint, Uint, error) {
	return DivMod(u, v)
}

// Div returns u/v; see Div.
func (u *Uint) Div(v *Uint) (Uint, error) {
	return Div(u, v)
}

// Mod returns u%v; see Mod.
func (u *Uint) Mod(v *Uint) (Uint, error) {
	return Mod(u, v)
}

// DivAssign sets u to u/v and returns nil, or leaves u unchanged and
// returns ErrDivisionByZero if v is zero.
func (u *Uint) DivAssign(v *Uint) error {
	q, err := Div(u, v)
	if err != nil {
		return err
	}
	*u = q
	return nil
}

// ModAssign sets u to u%v and returns nil, or leaves u unchanged and
// returns ErrDivisionByZero if v is zero.
func (u *Uint) ModAssign(v *Uint) error {
	r, err := Mod(u, v)
	if err != nil {
		return err
	}
	*u = r
	return nil
}
