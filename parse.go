package bencode

import (
	"math/big"
	"unicode/utf8"

	"github.com/wirebit/bencode/errors"
	"github.com/wirebit/bencode/internal/scan"
)

// DefaultMaxDepth bounds container nesting when ParseOptions.MaxDepth is zero.
// Recursion depth tracks input nesting, so the limit keeps pathological input
// from exhausting the call stack.
const DefaultMaxDepth = 1000

// ParseOptions configures the parser behavior.
type ParseOptions struct {
	// MaxDepth is the maximum container nesting depth. Zero selects
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse parses exactly one bencode value from data and requires the input to
// be fully consumed. Trailing bytes after a complete value are an
// unexpected_character error at the offending offset.
func Parse(data []byte) (*Value, error) {
	return ParseWithOptions(data, ParseOptions{})
}

// ParseWithOptions parses with explicit options.
func ParseWithOptions(data []byte, opts ParseOptions) (*Value, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &parser{c: scan.New(data), maxDepth: maxDepth}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if !p.c.AtEnd() {
		b, _ := p.c.Peek()
		return nil, errors.UnexpectedChar(p.c.Position(), b, "end of input")
	}
	return v, nil
}

// parser owns the cursor for the duration of a single Parse call.
type parser struct {
	c        *scan.Cursor
	maxDepth int
}

const valueLookahead = "'d', 'l', 'i' or digit"

func (p *parser) parseValue(depth int) (*Value, error) {
	b, err := p.c.Peek()
	if err != nil {
		return nil, errors.UnexpectedEOF(p.c.Position(), valueLookahead)
	}

	switch {
	case b == 'd':
		return p.parseDict(depth)
	case b == 'l':
		return p.parseList(depth)
	case b == 'i':
		return p.parseInteger()
	case isDigit(b):
		return p.parseString()
	default:
		return nil, errors.UnexpectedChar(p.c.Position(), b, valueLookahead)
	}
}

func (p *parser) parseDict(depth int) (*Value, error) {
	if depth >= p.maxDepth {
		return nil, errors.DepthExceeded(p.c.Position(), p.maxDepth)
	}
	p.c.ReadByte() // 'd'

	entries := make(map[string]*Value)
	for {
		b, err := p.c.Peek()
		if err != nil {
			return nil, errors.UnexpectedEOF(p.c.Position(), "dictionary key or 'e'")
		}
		if b == 'e' {
			p.c.ReadByte()
			return NewDict(entries), nil
		}
		if !isDigit(b) {
			return nil, errors.UnexpectedChar(p.c.Position(), b, "dictionary key or 'e'")
		}

		keyPos := p.c.Position()
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		raw := key.Bytes()
		if !utf8.Valid(raw) {
			e := errors.InvalidUTF8(errors.PhaseParse, nil, raw)
			e.Position = keyPos
			return nil, e
		}

		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		// Duplicate keys: last write wins.
		entries[string(raw)] = val
	}
}

func (p *parser) parseList(depth int) (*Value, error) {
	if depth >= p.maxDepth {
		return nil, errors.DepthExceeded(p.c.Position(), p.maxDepth)
	}
	p.c.ReadByte() // 'l'

	var elems []*Value
	for {
		b, err := p.c.Peek()
		if err != nil {
			return nil, errors.UnexpectedEOF(p.c.Position(), "list element or 'e'")
		}
		if b == 'e' {
			p.c.ReadByte()
			return NewList(elems...), nil
		}

		elem, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

func (p *parser) parseInteger() (*Value, error) {
	p.c.ReadByte() // 'i'

	negative := false
	b, err := p.c.Peek()
	if err != nil {
		return nil, errors.UnexpectedEOF(p.c.Position(), "integer digits")
	}
	if b == '-' {
		p.c.ReadByte()
		negative = true
	}

	mag, err := p.readMagnitude()
	if err != nil {
		return nil, err
	}
	if err := p.expect('e', "'e'"); err != nil {
		return nil, err
	}

	// Sign and magnitude are parsed independently, so "i-0e" yields 0.
	if negative {
		mag.Neg(mag)
	}
	return NewInteger(mag), nil
}

func (p *parser) parseString() (*Value, error) {
	length, err := p.readLength()
	if err != nil {
		return nil, err
	}
	if err := p.expect(':', "':'"); err != nil {
		return nil, err
	}

	// The declared length is exact: no delimiter terminates the data early,
	// and no UTF-8 validation happens at this layer.
	data, err := p.c.ReadBytes(length)
	if err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindUnexpectedEOF).
			Position(p.c.Position()).
			Expected("string data").
			Detail("declared length %d exceeds %d remaining bytes", length, p.c.Remaining()).
			Build()
	}
	return NewBytes(data), nil
}

// readMagnitude parses a decimal magnitude into an arbitrary-precision
// accumulator. A first digit of '0' is consumed as the permitted single-zero
// form; any further digit while that flag is set fails with
// integer_leading_zero.
func (p *parser) readMagnitude() (*big.Int, error) {
	b, err := p.c.Peek()
	if err != nil {
		return nil, errors.UnexpectedEOF(p.c.Position(), "digit")
	}
	if !isDigit(b) {
		return nil, errors.UnexpectedChar(p.c.Position(), b, "digit")
	}
	p.c.ReadByte()
	leadingZero := b == '0'

	acc := big.NewInt(int64(b - '0'))
	digit := new(big.Int)
	for {
		b, err := p.c.Peek()
		if err != nil || !isDigit(b) {
			return acc, nil
		}
		if leadingZero {
			return nil, errors.LeadingZero(p.c.Position())
		}
		p.c.ReadByte()
		acc.Mul(acc, bigTen)
		acc.Add(acc, digit.SetInt64(int64(b-'0')))
	}
}

// readLength parses a string-length magnitude into a native int with an
// explicit overflow guard; a length that does not fit is
// integer_not_representable rather than a silent truncation.
func (p *parser) readLength() (int, error) {
	b, err := p.c.Peek()
	if err != nil {
		return 0, errors.UnexpectedEOF(p.c.Position(), "digit")
	}
	if !isDigit(b) {
		return 0, errors.UnexpectedChar(p.c.Position(), b, "digit")
	}
	p.c.ReadByte()
	leadingZero := b == '0'

	n := int(b - '0')
	for {
		b, err := p.c.Peek()
		if err != nil || !isDigit(b) {
			return n, nil
		}
		if leadingZero {
			return 0, errors.LeadingZero(p.c.Position())
		}
		p.c.ReadByte()
		d := int(b - '0')
		if n > (maxInt-d)/10 {
			return 0, errors.NotRepresentable(p.c.Position(), "string length overflows int")
		}
		n = n*10 + d
	}
}

func (p *parser) expect(want byte, desc string) error {
	b, err := p.c.Peek()
	if err != nil {
		return errors.UnexpectedEOF(p.c.Position(), desc)
	}
	if b != want {
		return errors.UnexpectedChar(p.c.Position(), b, desc)
	}
	p.c.ReadByte()
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

const maxInt = int(^uint(0) >> 1)

var bigTen = big.NewInt(10)
