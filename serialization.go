package zint

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// The canonical decimal string is the interchange form everywhere below:
// bson.Decimal128 tops out at 34 digits, so arbitrary-precision values
// travel as strings instead.

// GetBSON implements bson.Getter.
func (x Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON implements bson.Setter.
func (z *Int) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	_, err := z.SetString(s)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text))
	return err
}

// MarshalJSON implements json.Marshaler. The value is emitted as a JSON
// number literal of arbitrary length.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both bare and quoted number
// literals are accepted.
func (z *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	_, err := z.SetString(s)
	return err
}

// Gob wire format: one header byte holding version<<1 | sign, then the
// magnitude bytes, most significant first.
const intGobVersion byte = 1

// GobEncode implements gob.GobEncoder.
func (x Int) GobEncode() ([]byte, error) {
	mag := x.t.abs()
	buf := make([]byte, 1+len(mag)*(_W/8))
	i := len(buf)
	for _, w := range mag {
		for s := uint(0); s < _W; s += 8 {
			i--
			buf[i] = byte(w >> s)
		}
	}
	// Strip leading zero bytes of the top limb.
	j := 1
	for j < len(buf) && buf[j] == 0 {
		j++
	}
	out := buf[j-1:]
	out[0] = intGobVersion << 1
	if x.Sign() < 0 {
		out[0] |= 1
	}
	return out, nil
}

// GobDecode implements gob.GobDecoder.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		return errors.New("Int.GobDecode: no data")
	}
	if buf[0]>>1 != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", buf[0]>>1)
	}
	b := buf[1:]
	mag := make([]Word, (len(b)+_W/8-1)/(_W/8))
	for i := len(b) - 1; i >= 0; i-- {
		k := len(b) - 1 - i
		mag[k/(_W/8)] |= Word(b[i]) << (uint(k%(_W/8)) * 8)
	}
	z.t = natToTwos(natTrim(mag), buf[0]&1 != 0)
	return nil
}
