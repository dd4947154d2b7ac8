package codec

import (
	"math"
	"math/big"
	"net/url"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wirebit/bencode"
	"github.com/wirebit/bencode/errors"
)

// Unmarshaler is the capability a decodable type implements: reconstruct an
// instance from a Decoder positioned at the value to decode. Concrete types
// provide their own field-by-field reconstruction, descending into keyed or
// ordered containers as their shape requires.
type Unmarshaler interface {
	UnmarshalBencode(d *Decoder) error
}

// Unmarshal parses data as a single bencode value and decodes the resulting
// tree into v. It is the one-shot entry point; every failure is a structured
// error carrying either the input offset (parse phase) or the coding path
// (decode phase).
func Unmarshal(data []byte, v Unmarshaler) error {
	val, err := bencode.Parse(data)
	if err != nil {
		return err
	}
	return DecodeValue(val, v)
}

// DecodeValue decodes an already-parsed tree into v. The tree is read-only,
// so the same tree may be decoded into several target types, including
// concurrently.
func DecodeValue(val *bencode.Value, v Unmarshaler) error {
	Logger().Debug("decode", zap.Stringer("root", val.Kind()))
	return v.UnmarshalBencode(newDecoder(val, nil))
}

// Decoder is the single-value container. It carries one value node and the
// coding path that led to it, and dispatches on the shape the caller
// requests. A scalar request that does not match the value's variant fails
// with type_mismatch; container shape failures and secondary validation
// failures (UTF-8, URL syntax) are data corruption. Errors are terminal for
// the current decode call: there is
// no partial result and no retry.
type Decoder struct {
	val  *bencode.Value
	path Path
}

func newDecoder(val *bencode.Value, path Path) *Decoder {
	return &Decoder{val: val, path: path}
}

// Value returns the underlying value node.
func (d *Decoder) Value() *bencode.Value {
	return d.val
}

// Kind returns the variant of the underlying value.
func (d *Decoder) Kind() bencode.Kind {
	return d.val.Kind()
}

// Path returns the coding path from the root to this value.
func (d *Decoder) Path() Path {
	return d.path
}

// IsNull reports whether the value is null. The value model has no null
// variant, so this is always false; absence of optional fields is observed
// through Keyed.Has instead.
func (d *Decoder) IsNull() bool {
	return false
}

// Keyed requires the value to be a dictionary and returns the keyed
// container over it. A non-dictionary value is data corruption at this path.
func (d *Decoder) Keyed() (*Keyed, error) {
	if d.val.Kind() != bencode.KindDict {
		return nil, errors.New(errors.PhaseDecode, errors.KindDataCorrupted).
			Path(d.path.Strings()...).
			Expected("dictionary").
			Actual(d.val.Kind().String()).
			Build()
	}
	return &Keyed{val: d.val, path: d.path}, nil
}

// Ordered requires the value to be a list and returns the ordered container
// over it.
func (d *Decoder) Ordered() (*Ordered, error) {
	if d.val.Kind() != bencode.KindList {
		return nil, errors.New(errors.PhaseDecode, errors.KindDataCorrupted).
			Path(d.path.Strings()...).
			Expected("list").
			Actual(d.val.Kind().String()).
			Build()
	}
	return &Ordered{val: d.val, path: d.path}, nil
}

// Bytes requires a byte string and returns its raw bytes.
func (d *Decoder) Bytes() ([]byte, error) {
	if d.val.Kind() != bencode.KindBytes {
		return nil, d.mismatch("byte string")
	}
	return d.val.Bytes(), nil
}

// String requires a byte string holding valid UTF-8 and returns it as text.
// A byte string that is not valid UTF-8 is data corruption, not a mismatch:
// the value was structurally present but failed secondary validation.
func (d *Decoder) String() (string, error) {
	raw, err := d.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, d.path.Strings(), raw)
	}
	return string(raw), nil
}

// URL decodes the text shape and parses it as a URL. A string that fails URL
// parsing is recoverable data corruption at this path.
func (d *Decoder) URL() (*url.URL, error) {
	s, err := d.String()
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindDataCorrupted).
			Path(d.path.Strings()...).
			Detail("invalid URL %q", s).
			Cause(err).
			Build()
	}
	return u, nil
}

// BigInt requires an integer and returns it at full precision.
func (d *Decoder) BigInt() (*big.Int, error) {
	if d.val.Kind() != bencode.KindInteger {
		return nil, d.mismatch("integer")
	}
	return d.val.Integer(), nil
}

// Int64 narrows the integer to int64 with an explicit range check.
func (d *Decoder) Int64() (int64, error) {
	n, err := d.BigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, errors.NumberOutOfRange(d.path.Strings(), n.String(), "int64")
	}
	return n.Int64(), nil
}

// Uint64 narrows the integer to uint64 with an explicit range check.
func (d *Decoder) Uint64() (uint64, error) {
	n, err := d.BigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, errors.NumberOutOfRange(d.path.Strings(), n.String(), "uint64")
	}
	return n.Uint64(), nil
}

// Int narrows the integer to the native int width.
func (d *Decoder) Int() (int, error) {
	n, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, errors.NumberOutOfRange(d.path.Strings(), n, "int")
	}
	return int(n), nil
}

// Int32 narrows the integer to int32.
func (d *Decoder) Int32() (int32, error) {
	n, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.NumberOutOfRange(d.path.Strings(), n, "int32")
	}
	return int32(n), nil
}

// Uint32 narrows the integer to uint32.
func (d *Decoder) Uint32() (uint32, error) {
	n, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, errors.NumberOutOfRange(d.path.Strings(), n, "uint32")
	}
	return uint32(n), nil
}

// Decode delegates to v's own reconstruction logic over the same value and
// coding path.
func (d *Decoder) Decode(v Unmarshaler) error {
	return v.UnmarshalBencode(d)
}

func (d *Decoder) mismatch(expected string) *errors.Error {
	return errors.TypeMismatch(d.path.Strings(), expected, d.val.Kind().String())
}
