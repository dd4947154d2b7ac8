package codec

import (
	"github.com/wirebit/bencode"
	"github.com/wirebit/bencode/errors"
)

// Ordered is the container backing sequences. It wraps a list value and a
// cursor index; each Next call hands out a decoder for the current element
// with the path extended by its numeric index.
type Ordered struct {
	val  *bencode.Value
	path Path
	next int
}

// Path returns the coding path of the list itself.
func (o *Ordered) Path() Path {
	return o.path
}

// Len returns the total number of elements.
func (o *Ordered) Len() int {
	return o.val.Len()
}

// Index returns the cursor position: the index the next decode will consume.
func (o *Ordered) Index() int {
	return o.next
}

// Remaining returns the number of undecoded elements.
func (o *Ordered) Remaining() int {
	return o.val.Len() - o.next
}

// AtEnd reports whether all elements have been consumed.
func (o *Ordered) AtEnd() bool {
	return o.next >= o.val.Len()
}

// Next advances the cursor and returns a decoder for the element it passed.
// Reading past the end is value_not_found at the exhausted index.
func (o *Ordered) Next() (*Decoder, error) {
	if o.AtEnd() {
		return nil, errors.ValueNotFound(
			o.path.WithIndex(o.next).Strings(),
			"no more elements",
		)
	}
	elem := o.val.List()[o.next]
	d := newDecoder(elem, o.path.WithIndex(o.next))
	o.next++
	return d, nil
}

// Bytes decodes the next element as raw bytes.
func (o *Ordered) Bytes() ([]byte, error) {
	d, err := o.Next()
	if err != nil {
		return nil, err
	}
	return d.Bytes()
}

// String decodes the next element as UTF-8 text.
func (o *Ordered) String() (string, error) {
	d, err := o.Next()
	if err != nil {
		return "", err
	}
	return d.String()
}

// Int64 decodes the next element as an int64.
func (o *Ordered) Int64() (int64, error) {
	d, err := o.Next()
	if err != nil {
		return 0, err
	}
	return d.Int64()
}

// Decode delegates the next element to v's own reconstruction logic.
func (o *Ordered) Decode(v Unmarshaler) error {
	d, err := o.Next()
	if err != nil {
		return err
	}
	return d.Decode(v)
}
