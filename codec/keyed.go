package codec

import (
	"math/big"
	"net/url"

	"github.com/wirebit/bencode"
	"github.com/wirebit/bencode/errors"
)

// Keyed is the container backing structures with named fields. It wraps a
// dictionary value and resolves keys into nested decoders, extending the
// coding path with each key it descends through.
type Keyed struct {
	val  *bencode.Value
	path Path
}

// Path returns the coding path of the dictionary itself.
func (k *Keyed) Path() Path {
	return k.path
}

// Has reports whether key is present. Optional fields check Has before
// decoding; absence is not an error until a decode is attempted.
func (k *Keyed) Has(key string) bool {
	_, ok := k.val.Get(key)
	return ok
}

// Keys returns all present keys in sorted order.
func (k *Keyed) Keys() []string {
	return k.val.Keys()
}

// Len returns the number of entries.
func (k *Keyed) Len() int {
	return k.val.Len()
}

// IsNull reports whether the value at key is null. The value model has no
// null variant, so this is always false regardless of key.
func (k *Keyed) IsNull(key string) bool {
	return false
}

// Value looks up key and returns a single-value decoder for it with the path
// extended by that key. A missing key is value_not_found carrying the
// extended path. Nested containers and delegated decoders are all obtained
// this way: look up, re-wrap.
func (k *Keyed) Value(key string) (*Decoder, error) {
	v, ok := k.val.Get(key)
	if !ok {
		return nil, errors.ValueNotFound(
			k.path.WithKey(key).Strings(),
			"key not present",
		)
	}
	return newDecoder(v, k.path.WithKey(key)), nil
}

// Bytes decodes the value at key as raw bytes.
func (k *Keyed) Bytes(key string) ([]byte, error) {
	d, err := k.Value(key)
	if err != nil {
		return nil, err
	}
	return d.Bytes()
}

// String decodes the value at key as UTF-8 text.
func (k *Keyed) String(key string) (string, error) {
	d, err := k.Value(key)
	if err != nil {
		return "", err
	}
	return d.String()
}

// URL decodes the value at key as a URL.
func (k *Keyed) URL(key string) (*url.URL, error) {
	d, err := k.Value(key)
	if err != nil {
		return nil, err
	}
	return d.URL()
}

// Int64 decodes the value at key as an int64.
func (k *Keyed) Int64(key string) (int64, error) {
	d, err := k.Value(key)
	if err != nil {
		return 0, err
	}
	return d.Int64()
}

// BigInt decodes the value at key at full precision.
func (k *Keyed) BigInt(key string) (*big.Int, error) {
	d, err := k.Value(key)
	if err != nil {
		return nil, err
	}
	return d.BigInt()
}

// Keyed descends into a nested dictionary at key.
func (k *Keyed) Keyed(key string) (*Keyed, error) {
	d, err := k.Value(key)
	if err != nil {
		return nil, err
	}
	return d.Keyed()
}

// Ordered descends into a nested list at key.
func (k *Keyed) Ordered(key string) (*Ordered, error) {
	d, err := k.Value(key)
	if err != nil {
		return nil, err
	}
	return d.Ordered()
}

// Decode delegates the value at key to v's own reconstruction logic.
func (k *Keyed) Decode(key string, v Unmarshaler) error {
	d, err := k.Value(key)
	if err != nil {
		return err
	}
	return d.Decode(v)
}
