package bencode

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"unicode/utf8"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDict
	KindList
	KindInteger
	KindBytes
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindDict:
		return "dictionary"
	case KindList:
		return "list"
	case KindInteger:
		return "integer"
	case KindBytes:
		return "byte string"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed bencode tree.
//
// A Value is built bottom-up by Parse and never mutated afterward. Accessors
// return the underlying payloads as read-only views; callers must not modify
// the returned map, slice or big.Int. Integers are kept at arbitrary
// precision so values beyond the int64 range survive parsing intact.
type Value struct {
	kind Kind
	dict map[string]*Value
	list []*Value
	num  *big.Int
	raw  []byte
}

// NewDict creates a dictionary value. The map is adopted, not copied.
func NewDict(entries map[string]*Value) *Value {
	if entries == nil {
		entries = make(map[string]*Value)
	}
	return &Value{kind: KindDict, dict: entries}
}

// NewList creates a list value preserving element order.
func NewList(elems ...*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// NewInteger creates an integer value from an arbitrary-precision magnitude.
func NewInteger(n *big.Int) *Value {
	return &Value{kind: KindInteger, num: n}
}

// NewInt creates an integer value from an int64.
func NewInt(n int64) *Value {
	return &Value{kind: KindInteger, num: big.NewInt(n)}
}

// NewBytes creates a byte-string value. The slice is adopted, not copied.
func NewBytes(b []byte) *Value {
	if b == nil {
		b = []byte{}
	}
	return &Value{kind: KindBytes, raw: b}
}

// NewString creates a byte-string value from a Go string.
func NewString(s string) *Value {
	return &Value{kind: KindBytes, raw: []byte(s)}
}

// Kind returns the variant held by v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// Dict returns the key/value mapping, or nil if v is not a dictionary.
func (v *Value) Dict() map[string]*Value {
	if v == nil {
		return nil
	}
	return v.dict
}

// Get looks up a dictionary key. The second result reports presence; it is
// always false when v is not a dictionary.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindDict {
		return nil, false
	}
	val, ok := v.dict[key]
	return val, ok
}

// Keys returns the dictionary keys in sorted order, or nil if v is not a
// dictionary. Insertion order is not meaningful in the value model, so a
// stable order is the useful one for display and iteration.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindDict {
		return nil
	}
	keys := make([]string, 0, len(v.dict))
	for k := range v.dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the ordered elements, or nil if v is not a list.
func (v *Value) List() []*Value {
	if v == nil {
		return nil
	}
	return v.list
}

// Len returns the number of entries for dictionaries and lists, the byte
// count for byte strings, and 0 otherwise.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindDict:
		return len(v.dict)
	case KindList:
		return len(v.list)
	case KindBytes:
		return len(v.raw)
	default:
		return 0
	}
}

// Integer returns the arbitrary-precision integer, or nil if v is not an
// integer.
func (v *Value) Integer() *big.Int {
	if v == nil {
		return nil
	}
	return v.num
}

// Bytes returns the raw byte string, or nil if v is not a byte string.
func (v *Value) Bytes() []byte {
	if v == nil {
		return nil
	}
	return v.raw
}

// String renders a compact single-line summary for debugging. Byte strings
// that are not valid UTF-8 are summarized by length rather than dumped.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.kind {
	case KindDict:
		return fmt.Sprintf("dictionary(%d entries)", len(v.dict))
	case KindList:
		return fmt.Sprintf("list(%d elements)", len(v.list))
	case KindInteger:
		return v.num.String()
	case KindBytes:
		if utf8.Valid(v.raw) {
			return strconv.Quote(string(v.raw))
		}
		return fmt.Sprintf("bytes(%d)", len(v.raw))
	default:
		return "invalid"
	}
}
