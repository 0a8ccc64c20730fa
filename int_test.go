package zint

import (
	"fmt"
	"testing"
)

// V checks the canonical-form invariant: shrinking a sequence that came
// out of an operation must be a no-op.
func (x twos) V(t *testing.T) {
	t.Helper()
	if s := x.shrink(); len(s) != len(x) {
		t.Fatalf("not canonical: %x shrinks to %x", x, s)
	}
}

func TestShrink(t *testing.T) {
	tests := []struct {
		in, out twos
	}{
		{twos{}, twos{}},
		{twos{0}, twos{}},
		{twos{0, 0, 0}, twos{}},
		{twos{_M}, twos{_M}},
		{twos{_M, _M}, twos{_M}},
		{twos{_M, _M, _M}, twos{_M}},
		{twos{5, 0}, twos{5}},
		// The boundary between a one-limb value and one that needs a
		// padding limb: dropping the top limb here would flip the sign.
		{twos{signBit, 0}, twos{signBit, 0}},
		{twos{0x7fffffff, _M}, twos{0x7fffffff, _M}},
		{twos{signBit, _M}, twos{signBit}},
		{twos{0x7fffffff, 0}, twos{0x7fffffff}},
		{twos{1, 2, 0}, twos{1, 2}},
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := tc.in.shrink()
			if !got.eq(tc.out) {
				t.Fatalf("shrink(%x) = %x, expected %x", tc.in, got, tc.out)
			}
			got.V(t)
		})
	}
}

func TestSignExt(t *testing.T) {
	if e := (twos{5}).ext(); e != 0 {
		t.Fatalf("ext of positive = %x", e)
	}
	if e := (twos{_M}).ext(); e != _M {
		t.Fatalf("ext of negative = %x", e)
	}
	if e := (twos(nil)).ext(); e != 0 {
		t.Fatalf("ext of zero = %x", e)
	}
	if (twos{signBit}).sign() != -1 || (twos{5}).sign() != 1 || (twos(nil)).sign() != 0 {
		t.Fatal("bad sign")
	}
	// at sign-extends past the stored limbs.
	x := twos{1, _M}
	if x.at(0) != 1 || x.at(5) != _M {
		t.Fatal("bad at")
	}
}

func TestNegBoundary(t *testing.T) {
	// -(-2^31) = 2^31 does not fit back into one limb; negation must grow.
	x := twos{signBit}
	n := x.neg()
	n.V(t)
	if !n.eq(twos{signBit, 0}) {
		t.Fatalf("neg(-2^31) = %x", n)
	}
	if back := n.neg(); !back.eq(x) {
		t.Fatalf("neg(2^31) = %x", back)
	}
	if z := twos(nil).neg(); len(z) != 0 {
		t.Fatalf("neg(0) = %x", z)
	}
}

func TestTwosAddSub(t *testing.T) {
	tests := []struct {
		x, y, sum twos
	}{
		{nil, nil, nil},
		{twos{1}, twos{2}, twos{3}},
		{twos{_M - 1, 0}, twos{1}, twos{_M, 0}}, // carry into the pad limb
		{twos{_M, 0}, twos{1}, twos{0, 1}},
		{twos{1}, twos{_M}, nil},                // 1 + -1
		{twos{signBit, 0}, twos{signBit}, nil},  // 2^31 + -2^31
		{twos{_M}, twos{_M}, twos{_M - 1}},      // -1 + -1
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := tc.x.add(tc.y)
			got.V(t)
			if !got.eq(tc.sum) {
				t.Fatalf("%x + %x = %x, expected %x", tc.x, tc.y, got, tc.sum)
			}
			back := got.sub(tc.y)
			back.V(t)
			if !back.eq(tc.x.shrink()) {
				t.Fatalf("%x - %x = %x, expected %x", got, tc.y, back, tc.x)
			}
		})
	}
}

func TestTwosNot(t *testing.T) {
	for _, x := range []twos{nil, {1}, {_M}, {signBit}, {signBit, 0}, {1, 2, 3}} {
		n := x.not()
		n.V(t)
		// ^x == -x - 1
		want := x.neg().sub(twos{1})
		if !n.eq(want) {
			t.Fatalf("not(%x) = %x, expected %x", x, n, want)
		}
	}
}

func TestTwosMul(t *testing.T) {
	tests := []struct {
		x, y, prod twos
	}{
		{nil, twos{5}, nil},
		{twos{5}, nil, nil},
		{twos{2}, twos{3}, twos{6}},
		{twos{_M}, twos{_M}, twos{1}},           // -1 * -1
		{twos{_M}, twos{2}, twos{_M - 1}},       // -1 * 2 = -2
		{twos{0, 1}, twos{0, 1}, twos{0, 0, 1}}, // 2^32 * 2^32
		{twos{signBit, 0}, twos{2}, twos{0, 1}}, // 2^31 * 2
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := tc.x.mul(tc.y)
			got.V(t)
			if !got.eq(tc.prod) {
				t.Fatalf("%x * %x = %x, expected %x", tc.x, tc.y, got, tc.prod)
			}
			if swap := tc.y.mul(tc.x); !swap.eq(got) {
				t.Fatalf("mul not commutative: %x vs %x", got, swap)
			}
		})
	}
}

func TestTwosShifts(t *testing.T) {
	tests := []struct {
		x   twos
		n   uint
		shl twos
	}{
		{nil, 100, nil},
		{twos{1}, 0, twos{1}},
		{twos{1}, 1, twos{2}},
		{twos{1}, 32, twos{0, 1}},
		{twos{1}, 33, twos{0, 2}},
		{twos{_M}, 1, twos{_M - 1}},        // -1 << 1 = -2
		{twos{_M}, 32, twos{0, _M}},        // -1 << 32 = -2^32
		{twos{signBit, 0}, 1, twos{0, 1}},  // 2^31 << 1
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := tc.x.shl(tc.n)
			got.V(t)
			if !got.eq(tc.shl) {
				t.Fatalf("%x << %d = %x, expected %x", tc.x, tc.n, got, tc.shl)
			}
			back := got.shr(tc.n)
			back.V(t)
			if !back.eq(tc.x.shrink()) {
				t.Fatalf("%x >> %d = %x, expected %x", got, tc.n, back, tc.x)
			}
		})
	}

	// Arithmetic right shift keeps the sign: -1 >> anything is -1 and a
	// shift past every stored limb collapses to the extension value.
	if got := (twos{_M}).shr(1000); !got.eq(twos{_M}) {
		t.Fatalf("-1 >> 1000 = %x", got)
	}
	if got := (twos{5}).shr(1000); len(got) != 0 {
		t.Fatalf("5 >> 1000 = %x", got)
	}
	if got := (twos{signBit}).shr(31); !got.eq(twos{_M}) { // -2^31 >> 31 = -1
		t.Fatalf("-2^31 >> 31 = %x", got)
	}
	if got := (twos{0, signBit}).shr(1); !got.eq(twos{0, signBit | signBit>>1}) {
		t.Fatalf("shr across limbs = %x", got)
	}
}

func TestTwosBitwise(t *testing.T) {
	// Negative operands exercise the implicit sign extension of the
	// shorter operand.
	x := twos{0x0f0f0f0f, 1} // 0x1_0f0f0f0f
	y := twos{0xff00ff00}    // negative, one limb shorter than x
	and := x.and(y)
	or := x.or(y)
	xor := x.xor(y)
	for _, z := range []twos{and, or, xor} {
		z.V(t)
	}
	if !and.eq(twos{0x0f000f00, 1}) {
		t.Fatalf("and = %x", and)
	}
	if !or.eq(twos{0xff0fff0f}) {
		t.Fatalf("or = %x", or)
	}
	if !xor.eq(twos{0xf00ff00f, _M - 1}) {
		t.Fatalf("xor = %x", xor)
	}
	if z := twos(nil).and(twos{_M}); len(z) != 0 {
		t.Fatalf("0 & -1 = %x", z)
	}
	if z := twos(nil).or(twos{_M}); !z.eq(twos{_M}) {
		t.Fatalf("0 | -1 = %x", z)
	}
}

func TestTwosCmp(t *testing.T) {
	vals := []twos{
		{0, signBit},        // -2^63
		{signBit},           // -2^31
		{_M},                // -1
		nil,                 // 0
		{1},                 // 1
		{signBit, 0},        // 2^31
		{0, signBit, 0},     // 2^63
	}
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.cmp(b); got != want {
				t.Fatalf("cmp(%x, %x) = %d, expected %d", a, b, got, want)
			}
		}
	}
}

func TestTwosQuoRem(t *testing.T) {
	tests := []struct {
		x, y, q, r twos
	}{
		{twos{7}, twos{3}, twos{2}, twos{1}},
		{twos{3}, twos{7}, nil, twos{3}},
		{nil, twos{7}, nil, nil},
		{twos{0, 1}, twos{2}, twos{signBit, 0}, nil},       // 2^32 / 2
		{twos{1, 1}, twos{0, 1}, twos{1}, twos{1}},         // (2^32+1) / 2^32
		{twos{0, 0, 1}, twos{0, 1}, twos{0, 1}, nil},       // 2^64 / 2^32
		// (2^64+5) / (2^32+3): the quotient 2^32-3 fills a limb and needs
		// the positive pad limb.
		{twos{5, 0, 1}, twos{3, 1}, twos{_M - 2, 0}, twos{14}},
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			q, r := tc.x.quoRem(tc.y)
			q.V(t)
			r.V(t)
			if !q.eq(tc.q) || !r.eq(tc.r) {
				t.Fatalf("%x / %x = %x rem %x, expected %x rem %x", tc.x, tc.y, q, r, tc.q, tc.r)
			}
			// q*y + r must reconstruct x.
			if back := q.mul(tc.y).add(r); !back.eq(tc.x.shrink()) {
				t.Fatalf("reconstruction failed: %x", back)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		x   twos
		mag []Word
	}{
		{nil, nil},
		{twos{5}, []Word{5}},
		{twos{_M}, []Word{1}},
		{twos{signBit}, []Word{signBit}},
		{twos{signBit, 0}, []Word{signBit}},
		{twos{0, _M}, []Word{0, 1}}, // -2^32
		{twos{1, _M}, []Word{_M}}, // -(2^32-1)
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := tc.x.abs(); !eqWords(got, tc.mag) {
				t.Fatalf("abs(%x) = %x, expected %x", tc.x, got, tc.mag)
			}
		})
	}
}

func TestNatHelpers(t *testing.T) {
	if natBitLen(nil) != 0 || natBitLen([]Word{1}) != 1 || natBitLen([]Word{0, 1}) != 33 ||
		natBitLen([]Word{_M, _M}) != 64 {
		t.Fatal("bad natBitLen")
	}
	if natCmp([]Word{1}, []Word{0, 1}) != -1 || natCmp([]Word{2}, []Word{1}) != 1 ||
		natCmp([]Word{7, 7}, []Word{7, 7}) != 0 {
		t.Fatal("bad natCmp")
	}
	if natCmpAt([]Word{0, 0, 1}, []Word{1}, 2) != 0 ||
		natCmpAt([]Word{1, 0, 1}, []Word{1}, 2) != 1 ||
		natCmpAt([]Word{0, 1}, []Word{1}, 2) != -1 {
		t.Fatal("bad natCmpAt")
	}
	// 6*2^32 - 2*2^32 in place.
	x := []Word{0, 6}
	natSubAt(x, []Word{2}, 1)
	if !eqWords(x, []Word{0, 4}) {
		t.Fatalf("natSubAt = %x", x)
	}
	// Borrow propagation past the displaced window.
	x = []Word{0, 0, 1}
	natSubAt(x, []Word{1}, 1)
	if !eqWords(x, []Word{0, _M, 0}) {
		t.Fatalf("natSubAt borrow = %x", x)
	}
}
