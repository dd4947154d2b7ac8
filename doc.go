// Package bencode provides parsing for the bencode binary format used by
// BitTorrent metainfo files.
//
// This package implements the syntax layer: a recursive-descent parser that
// turns a fully buffered byte stream into a generic value tree. Mapping that
// tree onto strongly-typed Go values is the job of the codec subpackage;
// ready-made torrent metainfo types live in the metainfo subpackage.
//
// # Wire Format
//
//	Integer:     i<decimal>e          i3e, i-42e, i0e
//	Byte string: <length>:<raw>       4:spam
//	List:        l<values>e           l4:spam4:eggse
//	Dictionary:  d<string value...>e  d3:cow3:moo4:spam4:eggse
//
// # Parsing
//
// Parse a value tree from a buffer:
//
//	data, _ := os.ReadFile("debian.torrent")
//	v, err := bencode.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse with an explicit nesting limit:
//
//	v, err := bencode.ParseWithOptions(data, bencode.ParseOptions{MaxDepth: 64})
//
// # Value Model
//
// A parsed tree is built from four variants:
//
//	bencode.KindDict     map of UTF-8 string keys to values
//	bencode.KindList     ordered sequence of values
//	bencode.KindInteger  arbitrary-precision signed integer
//	bencode.KindBytes    raw byte sequence, not necessarily text
//
// Integers are held as math/big values so magnitudes beyond 64 bits survive
// parsing without precision loss. Byte strings carry arbitrary binary data
// (for example the pieces field of a metainfo file); only dictionary keys are
// required to be valid UTF-8, enforced at the key-parsing step.
//
// The tree is immutable once constructed. Decoding the same tree into several
// target types is safe, including concurrently.
//
// # Errors
//
// All failures are structured errors from the errors subpackage, carrying the
// byte offset where parsing stopped:
//
//	_, err := bencode.Parse([]byte("i03e"))
//	// [parse] integer_leading_zero at offset 2: integer has leading zero
//
// There is no encoder and no streaming mode: the full input buffer must be
// available before parsing starts, and a parse either yields one complete
// value or one error.
package bencode
