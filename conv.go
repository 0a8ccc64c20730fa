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

import "math"

// Literal grammar: an optional leading '-', then either one or more
// decimal digits, or a 0x/0X prefix followed by one or more hex digits
// (case insensitive). '_' may appear among the digits and is ignored.
// Anything else, including an empty string, a lone sign or a bare 0x,
// is a ParseError.

// parseTwos decodes s into a canonical sequence. A decimal parse folds one
// digit at a time through r = r*10 + d; a hex parse does the same with 16,
// which is the nibble shift-and-add the format calls for.
func parseTwos(s string) (twos, Condition) {
	t := s
	neg := false
	if len(t) > 0 && t[0] == '-' {
		neg = true
		t = t[1:]
	}
	base := Word(10)
	if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		base = 16
		t = t[2:]
	}
	var mag []Word
	seen := false
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c == '_' {
			continue
		}
		var d Word
		switch {
		case '0' <= c && c <= '9':
			d = Word(c - '0')
		case base == 16 && 'a' <= c && c <= 'f':
			d = Word(c-'a') + 10
		case base == 16 && 'A' <= c && c <= 'F':
			d = Word(c-'A') + 10
		default:
			return nil, ParseError
		}
		mag = natMulAddWW(mag, base, d)
		seen = true
	}
	if !seen {
		return nil, ParseError
	}
	return natToTwos(mag, neg), 0
}

// digitsToBitsRatio is the number of bits per decimal digit, used to
// presize the decimal render buffer from the magnitude's bit length.
const digitsToBitsRatio = math.Ln10 / math.Ln2

// utoa renders a canonical sequence in the given base (10 or 16), with a
// leading '-' for negative values. The magnitude is rendered, not the
// two's-complement limb pattern.
func (x twos) utoa(base int) string {
	if len(x) == 0 {
		return "0"
	}
	neg := x.sign() < 0
	// The render loops divide the magnitude down in place; abs may alias
	// x's own limbs, so work on a copy.
	mag := append([]Word(nil), x.abs()...)
	var buf []byte
	switch base {
	case 10:
		buf = make([]byte, 0, int(float64(natBitLen(mag))/digitsToBitsRatio)+2)
		for len(mag) > 0 {
			r := divWVW(mag, 0, mag, 10)
			buf = append(buf, byte('0'+r))
			mag = natTrim(mag)
		}
	case 16:
		const hexDigits = "0123456789abcdef"
		buf = make([]byte, 0, len(mag)*(_W/4)+1)
		for len(mag) > 0 {
			r := mag[0] & 0xf
			buf = append(buf, hexDigits[r])
			shrVU(mag, mag, 4)
			mag = natTrim(mag)
		}
	default:
		panic("zint: invalid base")
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
