// Copyright 2024 The Zint Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package zint

import "math/bits"

// This file provides the elementary multi-precision operations on limb
// vectors: carry-propagating add/sub, shifts by 1 to _W-1 bits, and
// multiply/divide against a single limb. Everything above this layer is
// built out of these routines.
//
// All vectors are stored least-significant limb first. Where two vectors
// are passed, they must have equal length; z may alias x.

// A Word is a single 32-bit limb of a multi-precision integer.
type Word uint32

const (
	_W = 32       // limb size in bits
	_M = ^Word(0) // limb mask
)

// addVV sets z = x + y and returns the outgoing carry (0 or 1).
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		s, cc := bits.Add32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(s)
		c = Word(cc)
	}
	return c
}

// subVV sets z = x - y and returns the outgoing borrow (0 or 1).
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		d, bb := bits.Sub32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(d)
		c = Word(bb)
	}
	return c
}

// addVW sets z = x + y for a single-limb y and returns the outgoing carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		s, cc := bits.Add32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(s)
		c = Word(cc)
	}
	return c
}

// subVW sets z = x - y for a single-limb y and returns the outgoing borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		d, bb := bits.Sub32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(d)
		c = Word(bb)
	}
	return c
}

// shlVU sets z = x << s for 0 < s < _W and returns the limb shifted out of
// the top. Whole-limb shifts are handled by slicing, not here.
func shlVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return 0
	}
	c = x[len(z)-1] >> (_W - s)
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(_W-s)
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 < s < _W and returns the limb shifted out of
// the bottom, left-aligned. The vacated top bits are zero filled; callers
// that need an arithmetic shift restore the sign limb themselves.
func shrVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return 0
	}
	c = x[0] << (_W - s)
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(_W-s)
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the outgoing carry limb. Each step
// widens to 64 bits, emits the low limb and carries the high limb forward.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return c
}

// addMulVVW sets z += x*y and returns the outgoing carry limb. This is the
// inner loop of the schoolbook multiply.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return c
}

// divWVW sets z = (xn:x) / y and returns the remainder, working from the
// most significant limb down with a double-width dividend at each step.
// y must be non-zero and xn < y. Unlike reciprocal-based variants of this
// routine, power-of-two divisors need no special casing here.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		q, rr := bits.Div32(uint32(r), uint32(x[i]), uint32(y))
		z[i] = Word(q)
		r = Word(rr)
	}
	return r
}
