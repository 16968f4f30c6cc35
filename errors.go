// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package biguint

import "errors"

// Sentinel errors returned by parsing, formatting, and division operations.
// Callers should use errors.Is against these values; operations wrap them
// with additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrDivisionByZero is returned by DivMod, Div, and Mod when the divisor is zero.
	ErrDivisionByZero = errors.New("biguint: division by zero")

	// ErrBadBase is returned by Parse and Format when the base is outside {2..36, 256}.
	ErrBadBase = errors.New("biguint: unsupported base")

	// ErrBadDigit is returned by Parse when a byte's value is >= base for bases 2..36.
	ErrBadDigit = errors.New("biguint: digit out of range for base")
)
