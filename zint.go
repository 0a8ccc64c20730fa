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

// Package zint implements arbitrary-precision signed integers on a 32-bit
// limb, sign-extended two's-complement representation.
//
// Int is a value type: the zero Int is 0 and ready to use, copying is
// safe, and no operator modifies its operands. Division and remainder are
// truncating (the quotient rounds toward zero, the remainder takes the
// dividend's sign), matching Go's native integer division.
package zint

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// An Int is an immutable arbitrary-precision signed integer. Every Int
// holds its value in canonical (minimal-length) limb form; operators
// return new canonical values and leave their operands untouched.
type Int struct {
	t twos
}

// New returns an Int with value x.
func New(x int64) Int {
	v := uint64(x)
	return Int{twos{Word(v), Word(v >> _W)}.shrink()}
}

// NewFromUint64 returns an Int with value x.
func NewFromUint64(x uint64) Int {
	return Int{twos{Word(x), Word(x >> _W), 0}.shrink()}
}

// NewFromString returns the Int denoted by s: an optional leading '-',
// then decimal digits or a 0x/0X hex prefix and hex digits, with '_'
// allowed among the digits. A malformed s yields an ErrSyntax error and
// the zero Int.
func NewFromString(s string) (Int, error) {
	t, res := parseTwos(s)
	if res.Any() {
		return Int{}, errors.Wrapf(res.GoError(), "parsing %q", s)
	}
	return Int{t}, nil
}

// Set sets z to x.
func (z *Int) Set(x Int) *Int {
	z.t = x.t
	return z
}

// SetInt64 sets z to x.
func (z *Int) SetInt64(x int64) *Int {
	*z = New(x)
	return z
}

// SetUint64 sets z to x.
func (z *Int) SetUint64(x uint64) *Int {
	*z = NewFromUint64(x)
	return z
}

// SetInt32 sets z to x. The 8- and 16-bit widths ride on this and
// SetInt64 through Go's ordinary integer conversions.
func (z *Int) SetInt32(x int32) *Int {
	return z.SetInt64(int64(x))
}

// SetUint32 sets z to x.
func (z *Int) SetUint32(x uint32) *Int {
	return z.SetUint64(uint64(x))
}

// SetString sets z to the value denoted by s, leaving z untouched on a
// parse failure.
func (z *Int) SetString(s string) (*Int, error) {
	v, err := NewFromString(s)
	if err != nil {
		return nil, err
	}
	z.t = v.t
	return z, nil
}

// Add returns x + y.
func (x Int) Add(y Int) Int { return Int{x.t.add(y.t)} }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return Int{x.t.sub(y.t)} }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return Int{x.t.mul(y.t)} }

// Neg returns -x.
func (x Int) Neg() Int { return Int{x.t.neg()} }

// Not returns ^x, the bitwise complement, which equals -x - 1.
func (x Int) Not() Int { return Int{x.t.not()} }

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// And returns x & y.
func (x Int) And(y Int) Int { return Int{x.t.and(y.t)} }

// Or returns x | y.
func (x Int) Or(y Int) Int { return Int{x.t.or(y.t)} }

// Xor returns x ^ y.
func (x Int) Xor(y Int) Int { return Int{x.t.xor(y.t)} }

// Lsh returns x << n.
func (x Int) Lsh(n uint) Int { return Int{x.t.shl(n)} }

// Rsh returns x >> n, an arithmetic (sign-preserving) shift.
func (x Int) Rsh(n uint) Int { return Int{x.t.shr(n)} }

// Srl returns x >> n shifting in zero bits. A negative x has no
// fixed-width bit pattern to shift zeros into, so the operation fails
// with ErrInvalidOperation.
func (x Int) Srl(n uint) (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrap(InvalidOperation.GoError(), "logical shift of negative value")
	}
	return x.Rsh(n), nil
}

// QuoRem returns the truncating quotient and remainder of x and y. The
// quotient sign is the xor of the operand signs and the remainder sign
// follows x, so (x/y)*y + x%y == x always holds. A zero y fails with
// ErrDivideByZero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if len(y.t) == 0 {
		return Int{}, Int{}, DivideByZero.GoError()
	}
	qt, rt := x.t.quoRem(y.t)
	return Int{qt}, Int{rt}, nil
}

// Quo returns the truncating quotient x / y.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the truncating remainder x % y.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int { return x.t.cmp(y.t) }

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool { return x.t.eq(y.t) }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int { return x.t.sign() }

// BitLen returns the length of |x| in bits; the bit length of 0 is 0.
func (x Int) BitLen() int { return natBitLen(x.t.abs()) }

// Bit returns bit i of the two's-complement form of x, sign extended past
// the stored limbs.
func (x Int) Bit(i int) uint {
	if i < 0 {
		panic("zint: negative bit index")
	}
	return uint(x.t.at(i/_W)>>(uint(i)%_W)) & 1
}

// Hash returns a hash of x. Equal values hash equal; beyond that the hash
// is deliberately cheap (a limb sum) and correspondingly weak.
func (x Int) Hash() uint32 { return uint32(x.t.hash()) }

// Int64 returns the low 64 bits of x as a signed integer. Values in the
// int64 range round-trip exactly; anything wider truncates silently, the
// way native narrowing conversions do.
func (x Int) Int64() int64 {
	return int64(uint64(x.t.at(0)) | uint64(x.t.at(1))<<_W)
}

// Uint64 returns the low 64 bits of x.
func (x Int) Uint64() uint64 {
	return uint64(x.t.at(0)) | uint64(x.t.at(1))<<_W
}

// Int32 returns the low 32 bits of x as a signed integer.
func (x Int) Int32() int32 { return int32(x.t.at(0)) }

// Uint32 returns the low 32 bits of x.
func (x Int) Uint32() uint32 { return uint32(x.t.at(0)) }

// String renders x in decimal: a minimal digit string with a leading '-'
// for negative values, "0" for zero.
func (x Int) String() string { return x.t.utoa(10) }

// Text renders x in the given base, 10 or 16.
func (x Int) Text(base int) string { return x.t.utoa(base) }

// GoString implements fmt.GoStringer, exposing the limb representation.
func (x Int) GoString() string {
	return fmt.Sprintf("{Limbs: %#x, Sign: %d}", []Word(x.t), x.Sign())
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// for decimal and 'x'/'X' for hexadecimal; the '#' flag adds the 0x
// prefix after the sign.
func (x Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, x.GoString())
			return
		}
		io.WriteString(s, x.String())
	case 'd', 's':
		io.WriteString(s, x.String())
	case 'x', 'X':
		t := x.Text(16)
		if ch == 'X' {
			b := []byte(t)
			for i, c := range b {
				if 'a' <= c && c <= 'f' {
					b[i] = c - 'a' + 'A'
				}
			}
			t = string(b)
		}
		if s.Flag('#') {
			// fmt convention: the prefix tracks the verb's case.
			prefix := "0x"
			if ch == 'X' {
				prefix = "0X"
			}
			if t[0] == '-' {
				t = "-" + prefix + t[1:]
			} else {
				t = prefix + t
			}
		}
		io.WriteString(s, t)
	default:
		fmt.Fprintf(s, "%%!%c(zint.Int=%s)", ch, x.String())
	}
}

// Compound-assignment entry points. These are the only operations that
// write through to an existing Int; each stores a freshly built canonical
// value, never a mutation of the old limbs.

// AddAssign sets z to z + y.
func (z *Int) AddAssign(y Int) *Int { *z = z.Add(y); return z }

// SubAssign sets z to z - y.
func (z *Int) SubAssign(y Int) *Int { *z = z.Sub(y); return z }

// MulAssign sets z to z * y.
func (z *Int) MulAssign(y Int) *Int { *z = z.Mul(y); return z }

// AndAssign sets z to z & y.
func (z *Int) AndAssign(y Int) *Int { *z = z.And(y); return z }

// OrAssign sets z to z | y.
func (z *Int) OrAssign(y Int) *Int { *z = z.Or(y); return z }

// XorAssign sets z to z ^ y.
func (z *Int) XorAssign(y Int) *Int { *z = z.Xor(y); return z }

// LshAssign sets z to z << n.
func (z *Int) LshAssign(n uint) *Int { *z = z.Lsh(n); return z }

// RshAssign sets z to z >> n.
func (z *Int) RshAssign(n uint) *Int { *z = z.Rsh(n); return z }

// QuoAssign sets z to z / y, leaving z untouched on error.
func (z *Int) QuoAssign(y Int) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to z % y, leaving z untouched on error.
func (z *Int) RemAssign(y Int) error {
	r, err := z.Rem(y)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// SrlAssign sets z to z logically shifted right by n, leaving z untouched
// on error.
func (z *Int) SrlAssign(n uint) error {
	r, err := z.Srl(n)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

var intOne = Int{twos{1}}

// Inc sets z to z + 1.
func (z *Int) Inc() *Int { return z.AddAssign(intOne) }

// Dec sets z to z - 1.
func (z *Int) Dec() *Int { return z.SubAssign(intOne) }
