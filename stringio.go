// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "fmt"

// Component G: string and byte I/O. Bases 2-36 round-trip through Parse
// and Format; base 256 round-trips through FromBytes and Bytes as raw
// big-endian bytes, the convention the standard library's math/big uses
// for Int.Bytes/SetBytes, generalized here to an unbounded-magnitude
// unsigned type. Power-of-two bases (2, 4, 8, 16, 32) take a bit-packing
// fast path instead of the general repeated-divmod/multiply-accumulate
// path, per spec.md §4.G.

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitValue returns the numeric value of a base-36 digit character
// (case-insensitive), or ErrBadDigit if c isn't one.
func digitValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, nil
	}
	return 0, fmt.Errorf("biguint: parse: byte %q: %w", c, ErrBadDigit)
}

// powerOfTwoShift returns log2(base) and true if base is one of the
// power-of-two bases eligible for the bit-packing fast path.
func powerOfTwoShift(base int) (shift uint, ok bool) {
	switch base {
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	case 16:
		return 4, true
	case 32:
		return 5, true
	}
	return 0, false
}

// Parse parses s as a non-negative integer in the given base (2..36, or
// 256). Digits are case-insensitive; ErrBadBase is returned for a base
// outside {2..36, 256}, ErrBadDigit for a character that isn't a valid
// digit in base. At base 256, s is treated as raw big-endian bytes (see
// FromBytes) rather than digit characters.
func Parse(s string, base int) (Uint, error) {
	if base == 256 {
		return FromBytes([]byte(s)), nil
	}
	if base < 2 || base > 36 {
		return Uint{}, fmt.Errorf("biguint: parse: base %d: %w", base, ErrBadBase)
	}
	if len(s) == 0 {
		return Uint{}, nil
	}

	if shift, ok := powerOfTwoShift(base); ok {
		return parsePowerOfTwo(s, base, shift)
	}

	result := Uint{}
	baseU := fromWords([]uint64{uint64(base)})
	for i := 0; i < len(s); i++ {
		d, err := digitValue(s[i])
		if err != nil {
			return Uint{}, err
		}
		if d >= base {
			return Uint{}, fmt.Errorf("biguint: parse: digit %q invalid in base %d: %w", s[i], base, ErrBadDigit)
		}
		result = Mul(&result, &baseU)
		digitU := fromWords([]uint64{uint64(d)})
		result = Add(&result, &digitU)
	}
	return result, nil
}

func parsePowerOfTwo(s string, base int, shift uint) (Uint, error) {
	bitLen := len(s) * int(shift)
	limbs := make([]uint64, (bitLen+63)/64)
	bitPos := 0
	for i := len(s) - 1; i >= 0; i-- {
		d, err := digitValue(s[i])
		if err != nil {
			return Uint{}, err
		}
		if d >= base {
			return Uint{}, fmt.Errorf("biguint: parse: digit %q invalid in base %d: %w", s[i], base, ErrBadDigit)
		}
		limbIdx := bitPos / 64
		bitOff := uint(bitPos % 64)
		limbs[limbIdx] |= uint64(d) << bitOff
		if bitOff+shift > 64 {
			limbs[limbIdx+1] |= uint64(d) >> (64 - bitOff)
		}
		bitPos += int(shift)
	}
	return fromWords(limbs), nil
}

// Format renders u in the given base (2..36, or 256) using lowercase
// digits, without sign or leading zeros (the zero value renders as "0").
// ErrBadBase is returned for a base outside {2..36, 256}. At base 256,
// the result is the raw big-endian byte string (see Bytes), not digit
// characters.
func Format(u *Uint, base int) (string, error) {
	if base == 256 {
		return string(u.Bytes()), nil
	}
	if base < 2 || base > 36 {
		return "", fmt.Errorf("biguint: format: base %d: %w", base, ErrBadBase)
	}
	if u.limbCount() == 0 {
		return "0", nil
	}

	if shift, ok := powerOfTwoShift(base); ok {
		return formatPowerOfTwo(u, shift), nil
	}

	var rev []byte
	tmp := fromWords(append([]uint64(nil), u.words()...))
	baseU := fromWords([]uint64{uint64(base)})
	for tmp.limbCount() > 0 {
		q, r := divModWords(tmp.words(), baseU.words())
		d := uint64(0)
		if len(r) > 0 {
			d = r[0]
		}
		rev = append(rev, digitAlphabet[d])
		tmp = fromWords(q)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return string(rev), nil
}

func formatPowerOfTwo(u *Uint, shift uint) string {
	bl := u.BitLen()
	ndigits := (bl + int(shift) - 1) / int(shift)
	digits := make([]byte, ndigits)
	mask := uint64(1)<<shift - 1
	bitPos := 0
	nlimbs := u.limbCount()
	for i := 0; i < ndigits; i++ {
		limbIdx := bitPos / 64
		bitOff := uint(bitPos % 64)
		v := u.limbAt(limbIdx) >> bitOff
		if bitOff+shift > 64 && limbIdx+1 < nlimbs {
			v |= u.limbAt(limbIdx+1) << (64 - bitOff)
		}
		digits[ndigits-1-i] = digitAlphabet[v&mask]
		bitPos += int(shift)
	}
	return string(digits)
}

// Format returns u rendered in the given base; see Format.
func (u *Uint) Format(base int) (string, error) {
	return Format(u, base)
}

// Bytes returns u as raw big-endian bytes (base 256), with no leading
// zero byte; the zero value returns a single 0x00 byte.
func (u *Uint) Bytes() []byte {
	bl := u.BitLen()
	if bl == 0 {
		return []byte{0}
	}
	n := (bl + 7) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		limbIdx := i / 8
		byteOff := uint(i%8) * 8
		out[n-1-i] = byte(u.limbAt(limbIdx) >> byteOff)
	}
	return out
}

// FromBytes interprets b as a big-endian byte sequence (base 256) and
// returns the corresponding value.
func FromBytes(b []byte) Uint {
	n := len(b)
	limbs := make([]uint64, (n+7)/8)
	for i := 0; i < n; i++ {
		logicalIdx := n - 1 - i
		limbIdx := logicalIdx / 8
		byteOff := uint(logicalIdx%8) * 8
		limbs[limbIdx] |= uint64(b[i]) << byteOff
	}
	return fromWords(limbs)
}
