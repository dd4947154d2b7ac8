// Package scan provides the byte cursor over a bencode input buffer.
package scan

import "io"

// Cursor owns the input buffer for the duration of a parse and exposes
// single-byte lookahead with position tracking. All exhaustion is reported
// as io.EOF; the parser maps it onto the error taxonomy with the grammar
// context it alone knows.
type Cursor struct {
	data []byte
	pos  int
}

// New creates a Cursor over data. The caller must not mutate data until the
// parse completes.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position returns the current byte offset.
func (c *Cursor) Position() int {
	return c.pos
}

// AtEnd reports whether the input is exhausted.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.data)
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.AtEnd() {
		return 0, io.EOF
	}
	return c.data[c.pos], nil
}

// ReadByte consumes and returns the next byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.AtEnd() {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes consumes exactly n bytes and returns them as a subslice of the
// input buffer. Returns io.EOF without consuming anything if fewer than n
// bytes remain.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, io.EOF
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}
