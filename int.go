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

// twos is a signed multi-precision integer stored as a little-endian limb
// sequence in sign-extended two's-complement form: the top bit of the last
// limb is the sign of the whole value. A nil or empty twos is zero.
//
// Canonical ("shrunk") form is the shortest sequence whose sign extension
// yields the same value. Every routine below returns canonical sequences
// and never modifies its operands; fresh storage is allocated for each
// result and trimmed through shrink before it is handed out.
type twos []Word

const signBit = Word(1) << (_W - 1)

// ext returns the implicit sign-extension limb of x: 0 for non-negative
// values, _M for negative ones.
func (x twos) ext() Word {
	if len(x) == 0 || x[len(x)-1]&signBit == 0 {
		return 0
	}
	return _M
}

// at returns limb i of x, sign-extending past the stored length.
func (x twos) at(i int) Word {
	if i < len(x) {
		return x[i]
	}
	return x.ext()
}

// sign returns -1, 0 or +1. x must be canonical.
func (x twos) sign() int {
	if len(x) == 0 {
		return 0
	}
	if x[len(x)-1]&signBit != 0 {
		return -1
	}
	return 1
}

// shrink canonicalizes x in place of its length: the top limb is dropped
// while it matches the sign extension implied by the limb below it, so the
// result is the shortest sequence with the same sign-extended value. A
// single zero limb shrinks to the empty sequence.
func (x twos) shrink() twos {
	n := len(x)
	for n > 0 {
		top := x[n-1]
		if top == 0 {
			if n > 1 && x[n-2]&signBit != 0 {
				break
			}
		} else if top == _M {
			if n == 1 || x[n-2]&signBit == 0 {
				break
			}
		} else {
			break
		}
		n--
	}
	return x[:n]
}

// extend returns a fresh n-limb sign-extended copy of x. n >= len(x).
func (x twos) extend(n int) twos {
	z := make(twos, n)
	copy(z, x)
	if e := x.ext(); e != 0 {
		for i := len(x); i < n; i++ {
			z[i] = e
		}
	}
	return z
}

func (x twos) add(y twos) twos {
	n := maxInt(len(x), len(y)) + 1
	z := x.extend(n)
	addVV(z, z, y.extend(n))
	return z.shrink()
}

func (x twos) sub(y twos) twos {
	n := maxInt(len(x), len(y)) + 1
	z := x.extend(n)
	subVV(z, z, y.extend(n))
	return z.shrink()
}

// neg returns -x. The result is built one limb longer than x: the minimal
// negative value at any given length has no positive counterpart at that
// same length, so negation may need the extra limb before shrinking.
func (x twos) neg() twos {
	z := x.extend(len(x) + 1)
	for i := range z {
		z[i] = ^z[i]
	}
	addVW(z, z, 1)
	return z.shrink()
}

// not returns ^x, the bitwise complement.
func (x twos) not() twos {
	z := x.extend(len(x) + 1)
	for i := range z {
		z[i] = ^z[i]
	}
	return z.shrink()
}

func (x twos) and(y twos) twos {
	n := maxInt(len(x), len(y)) + 1
	z := make(twos, n)
	for i := range z {
		z[i] = x.at(i) & y.at(i)
	}
	return z.shrink()
}

func (x twos) or(y twos) twos {
	n := maxInt(len(x), len(y)) + 1
	z := make(twos, n)
	for i := range z {
		z[i] = x.at(i) | y.at(i)
	}
	return z.shrink()
}

func (x twos) xor(y twos) twos {
	n := maxInt(len(x), len(y)) + 1
	z := make(twos, n)
	for i := range z {
		z[i] = x.at(i) ^ y.at(i)
	}
	return z.shrink()
}

// mul returns x*y by schoolbook multiplication of the absolute values; the
// result sign is the xor of the operand signs.
func (x twos) mul(y twos) twos {
	neg := (x.sign() < 0) != (y.sign() < 0)
	return natToTwos(natMul(x.abs(), y.abs()), neg)
}

// shl returns x << n. The whole-limb part of the shift is a slice offset;
// the remaining 0..31 bits go through shlVU.
func (x twos) shl(n uint) twos {
	limbs, s := int(n/_W), n%_W
	z := make(twos, len(x)+limbs+1)
	copy(z[limbs:], x)
	z[limbs+len(x)] = x.ext()
	if s > 0 {
		shlVU(z[limbs:], z[limbs:], s)
	}
	return z.shrink()
}

// shr returns x >> n, sign extending from the top (arithmetic shift).
func (x twos) shr(n uint) twos {
	limbs, s := int(n/_W), n%_W
	if limbs >= len(x) {
		if x.ext() == 0 {
			return nil
		}
		return twos{_M}
	}
	z := make(twos, len(x)-limbs+1)
	copy(z, x[limbs:])
	z[len(z)-1] = x.ext()
	if s > 0 {
		shrVU(z, z, s)
		z[len(z)-1] = x.ext()
	}
	return z.shrink()
}

// cmp returns -1, 0 or +1 ordering x against y. Sign decides first; for
// equal signs an unsigned limb-wise compare from the top down orders
// sign-extended two's-complement sequences correctly.
func (x twos) cmp(y twos) int {
	sx, sy := x.sign(), y.sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	for i := maxInt(len(x), len(y)) - 1; i >= 0; i-- {
		a, b := x.at(i), y.at(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// eq reports whether two canonical sequences are equal.
func (x twos) eq(y twos) bool {
	if len(x) != len(y) {
		return false
	}
	for i, w := range x {
		if w != y[i] {
			return false
		}
	}
	return true
}

// abs returns the magnitude of x as an unsigned limb vector with no
// leading zeros.
func (x twos) abs() []Word {
	if x.sign() >= 0 {
		return natTrim(x)
	}
	z := make([]Word, len(x))
	for i, w := range x {
		z[i] = ^w
	}
	addVW(z, z, 1)
	return natTrim(z)
}

// hash folds the canonical limbs into a single limb by summation. Weak as
// hashes go, but equal values hash equal, which is the contract.
func (x twos) hash() Word {
	var h Word
	for _, w := range x {
		h += w
	}
	return h
}

// quoRem divides x by y, both canonical, y non-zero, and returns the
// truncating quotient and remainder: the quotient is rounded toward zero
// and the remainder takes the dividend's sign, so 7/-3 = -2 rem 1 and
// -7/3 = -2 rem -1.
func (x twos) quoRem(y twos) (q, r twos) {
	xneg := x.sign() < 0
	yneg := y.sign() < 0
	a, b := x.abs(), y.abs()
	if natCmp(a, b) < 0 {
		return nil, x
	}

	if len(b) == 1 {
		qn := make([]Word, len(a))
		rw := divWVW(qn, 0, a, b[0])
		q = natToTwos(natTrim(qn), xneg != yneg)
		if rw == 0 {
			return q, nil
		}
		return q, natToTwos([]Word{rw}, xneg)
	}

	// Long division, one quotient bit per step. The divisor rotated to each
	// of the _W sub-limb offsets is precomputed once (the shift cache); the
	// divisor shifted by any bit count k is then cache[k%_W] displaced by
	// k/_W whole limbs, which costs no limb work per step.
	cache := make([][]Word, _W)
	cache[0] = b
	for s := 1; s < _W; s++ {
		row := make([]Word, len(b)+1)
		row[len(b)] = shlVU(row[:len(b)], b, uint(s))
		cache[s] = natTrim(row)
	}

	rem := append([]Word(nil), a...)
	qn := make([]Word, natBitLen(a)/_W+1)
	for k := natBitLen(a) - natBitLen(b); k >= 0; k-- {
		off, s := k/_W, k%_W
		if natCmpAt(rem, cache[s], off) >= 0 {
			natSubAt(rem, cache[s], off)
			rem = natTrim(rem)
			qn[off] |= Word(1) << uint(s)
		}
	}
	q = natToTwos(natTrim(qn), xneg != yneg)
	r = natToTwos(rem, xneg)
	return q, r
}

// natToTwos reinterprets an unsigned magnitude as a canonical signed
// sequence, negating it when neg is set. The extra limb keeps a magnitude
// with its top bit set from being read back as negative.
func natToTwos(mag []Word, neg bool) twos {
	if len(mag) == 0 {
		return nil
	}
	z := make(twos, len(mag)+1)
	copy(z, mag)
	if neg {
		for i := range z {
			z[i] = ^z[i]
		}
		addVW(z, z, 1)
	}
	return z.shrink()
}

// natTrim drops leading zero limbs; the zero magnitude trims to nil.
func natTrim(x []Word) []Word {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// natCmp compares two trimmed magnitudes.
func natCmp(x, y []Word) int {
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

// natCmpAt compares the trimmed magnitude x against y displaced left by
// off whole limbs.
func natCmpAt(x, y []Word, off int) int {
	if len(x) != len(y)+off {
		if len(x) < len(y)+off {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= off; i-- {
		if x[i] != y[i-off] {
			if x[i] < y[i-off] {
				return -1
			}
			return 1
		}
	}
	for i := off - 1; i >= 0; i-- {
		if x[i] != 0 {
			return 1
		}
	}
	return 0
}

// natSubAt subtracts y displaced left by off whole limbs from x in place.
// x >= y<<(off limbs) is the caller's responsibility.
func natSubAt(x, y []Word, off int) {
	if b := subVV(x[off:off+len(y)], x[off:off+len(y)], y); b != 0 {
		subVW(x[off+len(y):], x[off+len(y):], b)
	}
}

// natMul returns the product of two trimmed magnitudes.
func natMul(x, y []Word) []Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]Word, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	return natTrim(z)
}

// natMulAddWW sets z = z*m + d, growing z as needed. The parse loops feed
// one digit at a time through this.
func natMulAddWW(z []Word, m, d Word) []Word {
	c := mulAddVWW(z, z, m, d)
	if c != 0 {
		z = append(z, c)
	}
	return z
}

// natBitLen returns the bit length of a trimmed magnitude; 0 for zero.
func natBitLen(x []Word) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len32(uint32(x[len(x)-1]))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
