//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package derr defines the two-kind error taxonomy the discrete-log
// algorithms share: LogDoesNotExist and NotRelativelyPrime. Each wraps a
// fixed sentinel so callers can still errors.Is() against the kind while
// getting a call-specific, human-readable context string.
package derr

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrLogDoesNotExist marks that no x in [0,order) satisfies
	// b^x = a (mod n), or that a sub-algorithm exhausted its retry/try
	// budget without finding one.
	ErrLogDoesNotExist = errors.New("discrete logarithm does not exist")
	// ErrNotRelativelyPrime marks that gcd(b mod n, n) != 1, so b does
	// not generate a subgroup of (Z/nZ)* and its order is undefined.
	ErrNotRelativelyPrime = errors.New("base and modulus are not relatively prime")
)

// printer renders error context with locale-aware digit grouping for
// built-in integer arguments (an int formatted with %d prints as 5,779).
// *bignum.Int arguments are rendered through their String method and
// are not grouped.
var printer = message.NewPrinter(language.English)

// Error is a tagged variant: Err is always one of the package's two
// sentinels, Ctx carries the call-specific detail.
type Error struct {
	Err error
	Ctx string
}

// Unwrap exposes the underlying sentinel for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error renders a human-readable description.
func (e *Error) Error() string {
	if e.Ctx == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error wrapping base, formatting the context with a
// locale-aware printer.
func New(base error, format string, args ...interface{}) *Error {
	return &Error{Err: base, Ctx: printer.Sprintf(format, args...)}
}

// LogDoesNotExist builds an Error of kind ErrLogDoesNotExist.
func LogDoesNotExist(format string, args ...interface{}) *Error {
	return New(ErrLogDoesNotExist, format, args...)
}

// NotRelativelyPrime builds an Error of kind ErrNotRelativelyPrime.
func NotRelativelyPrime(format string, args ...interface{}) *Error {
	return New(ErrNotRelativelyPrime, format, args...)
}

// IsLogDoesNotExist reports whether err is (or wraps) ErrLogDoesNotExist.
func IsLogDoesNotExist(err error) bool {
	return errors.Is(err, ErrLogDoesNotExist)
}

// IsNotRelativelyPrime reports whether err is (or wraps)
// ErrNotRelativelyPrime.
func IsNotRelativelyPrime(err error) bool {
	return errors.Is(err, ErrNotRelativelyPrime)
}
