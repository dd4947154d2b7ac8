// Package codec maps parsed bencode value trees onto strongly-typed Go
// values.
//
// Types opt in by implementing Unmarshaler: an explicit reconstruction
// capability, no runtime reflection. The decoder hands each type three
// container abstractions matching the three shapes a bencode value can back:
//
//   - Keyed: named fields over a dictionary
//   - Ordered: a sequence over a list
//   - Decoder itself: scalars (bytes, text, URL, fixed-width integers)
//
// All three carry a coding path from the root to the current value. Every
// descent derives a fresh extended path, and every error carries the path at
// its origin, so a failure deep inside a nested structure names the exact
// field and index chain that produced it.
//
// # Decoding
//
//	type Torrent struct {
//	    Name   string
//	    Length int64
//	}
//
//	func (t *Torrent) UnmarshalBencode(d *codec.Decoder) error {
//	    k, err := d.Keyed()
//	    if err != nil {
//	        return err
//	    }
//	    if t.Name, err = k.String("name"); err != nil {
//	        return err
//	    }
//	    if k.Has("length") {
//	        if t.Length, err = k.Int64("length"); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	}
//
//	var t Torrent
//	err := codec.Unmarshal(data, &t)
//
// # Numeric Narrowing
//
// The value model holds integers at arbitrary precision. Requesting a
// fixed-width integer performs a checked narrowing: a magnitude that does
// not fit the requested width fails with number_out_of_range rather than
// truncating.
//
// # Failure Semantics
//
// Every failure is terminal for the decode call that raised it. No error is
// caught and retried internally, nothing is defaulted, and the caller
// receives exactly one structured error per failed decode.
package codec
