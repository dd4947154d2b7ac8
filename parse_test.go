package bencode

import (
	stderrors "errors"
	"math/big"
	"strings"
	"testing"

	"github.com/wirebit/bencode/errors"
)

func kindErr(phase errors.Phase, kind errors.Kind) *errors.Error {
	return &errors.Error{Phase: phase, Kind: kind}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"i0e", 0},
		{"i3e", 3},
		{"i-3e", -3},
		{"i42e", 42},
		{"i-42e", -42},
		{"i1000000007e", 1000000007},
		{"i9223372036854775807e", 9223372036854775807},
		// Sign and magnitude parse independently, so negative zero is zero.
		{"i-0e", 0},
	}

	for _, tt := range tests {
		v, err := Parse([]byte(tt.input))
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		if v.Kind() != KindInteger {
			t.Errorf("Parse(%q): kind %s, want integer", tt.input, v.Kind())
			continue
		}
		if !v.Integer().IsInt64() || v.Integer().Int64() != tt.want {
			t.Errorf("Parse(%q): got %s, want %d", tt.input, v.Integer(), tt.want)
		}
	}
}

func TestParseIntegerBeyondInt64(t *testing.T) {
	input := "i170141183460469231731687303715884105727e"
	want, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Integer().Cmp(want) != 0 {
		t.Errorf("got %s, want %s", v.Integer(), want)
	}

	v, err = Parse([]byte("i-170141183460469231731687303715884105727e"))
	if err != nil {
		t.Fatalf("Parse negative: %v", err)
	}
	if v.Integer().Cmp(new(big.Int).Neg(want)) != 0 {
		t.Errorf("got %s, want -%s", v.Integer(), want)
	}
}

func TestParseIntegerLeadingZero(t *testing.T) {
	for _, input := range []string{"i00e", "i01e", "i03e", "i007e", "i-01e"} {
		_, err := Parse([]byte(input))
		if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindLeadingZero)) {
			t.Errorf("Parse(%q): got %v, want integer_leading_zero", input, err)
		}
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4:spam", "spam"},
		{"0:", ""},
		{"10:hello12345", "hello12345"},
		{"2:i3", "i3"},
	}

	for _, tt := range tests {
		v, err := Parse([]byte(tt.input))
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		if v.Kind() != KindBytes {
			t.Errorf("Parse(%q): kind %s, want byte string", tt.input, v.Kind())
			continue
		}
		if got := string(v.Bytes()); got != tt.want {
			t.Errorf("Parse(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStringBinary(t *testing.T) {
	// Byte strings carry raw bytes; no UTF-8 validation at this layer.
	input := append([]byte("4:"), 0xde, 0xad, 0xbe, 0xef)
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if got := v.Bytes(); string(got) != string(want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestParseStringTruncated(t *testing.T) {
	for _, input := range []string{"4:sp", "4:", "1:"} {
		_, err := Parse([]byte(input))
		if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindUnexpectedEOF)) {
			t.Errorf("Parse(%q): got %v, want unexpected_eof", input, err)
		}
	}
}

func TestParseList(t *testing.T) {
	v, err := Parse([]byte("l4:spam4:eggse"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind() != KindList {
		t.Fatalf("kind: got %s, want list", v.Kind())
	}
	elems := v.List()
	if len(elems) != 2 {
		t.Fatalf("len: got %d, want 2", len(elems))
	}
	// Encounter order is preserved.
	if string(elems[0].Bytes()) != "spam" || string(elems[1].Bytes()) != "eggs" {
		t.Errorf("elements: got %s, %s", elems[0], elems[1])
	}
}

func TestParseListEmpty(t *testing.T) {
	v, err := Parse([]byte("le"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind() != KindList || v.Len() != 0 {
		t.Errorf("got %s", v)
	}
}

func TestParseListNested(t *testing.T) {
	v, err := Parse([]byte("ll4:spamei7ee"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	inner := v.List()[0]
	if inner.Kind() != KindList || string(inner.List()[0].Bytes()) != "spam" {
		t.Errorf("inner: got %s", inner)
	}
	if v.List()[1].Integer().Int64() != 7 {
		t.Errorf("second element: got %s", v.List()[1])
	}
}

func TestParseDict(t *testing.T) {
	v, err := Parse([]byte("d3:cow3:moo4:spam4:eggse"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind() != KindDict {
		t.Fatalf("kind: got %s, want dictionary", v.Kind())
	}
	if v.Len() != 2 {
		t.Fatalf("len: got %d, want 2", v.Len())
	}

	for key, want := range map[string]string{"cow": "moo", "spam": "eggs"} {
		got, ok := v.Get(key)
		if !ok {
			t.Errorf("key %q missing", key)
			continue
		}
		if string(got.Bytes()) != want {
			t.Errorf("key %q: got %q, want %q", key, got.Bytes(), want)
		}
	}
}

func TestParseDictEmpty(t *testing.T) {
	v, err := Parse([]byte("de"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind() != KindDict || v.Len() != 0 {
		t.Errorf("got %s", v)
	}
}

func TestParseDictDuplicateKeyLastWins(t *testing.T) {
	v, err := Parse([]byte("d1:ai1e1:ai2ee"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, _ := v.Get("a")
	if got.Integer().Int64() != 2 {
		t.Errorf(`key "a": got %s, want 2`, got)
	}
	if v.Len() != 1 {
		t.Errorf("len: got %d, want 1", v.Len())
	}
}

func TestParseDictInvalidUTF8Key(t *testing.T) {
	input := append([]byte("d2:"), 0xff, 0xfe)
	input = append(input, []byte("i1ee")...)

	_, err := Parse(input)
	if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindInvalidUTF8)) {
		t.Fatalf("got %v, want invalid_utf8", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Position != 1 {
		t.Errorf("position: got %d, want 1", e.Position)
	}
}

func TestParseDictNonStringKey(t *testing.T) {
	_, err := Parse([]byte("di1ei2ee"))
	if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindUnexpectedChar)) {
		t.Errorf("got %v, want unexpected_character", err)
	}
}

func TestParseMetainfoShaped(t *testing.T) {
	input := "d8:announce31:http://tracker.example.org:69694:infod6:lengthi170917e4:name8:file.iso12:piece lengthi16384e6:pieces20:aaaaaaaaaaaaaaaaaaaaee"

	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	info, ok := v.Get("info")
	if !ok {
		t.Fatal(`missing "info"`)
	}
	name, _ := info.Get("name")
	if string(name.Bytes()) != "file.iso" {
		t.Errorf("name: got %q", name.Bytes())
	}
	plen, _ := info.Get("piece length")
	if plen.Integer().Int64() != 16384 {
		t.Errorf("piece length: got %s", plen)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  errors.Kind
	}{
		{"", errors.KindUnexpectedEOF},
		{"x", errors.KindUnexpectedChar},
		{"i", errors.KindUnexpectedEOF},
		{"ie", errors.KindUnexpectedChar},
		{"i-e", errors.KindUnexpectedChar},
		{"i3", errors.KindUnexpectedEOF},
		{"i3x", errors.KindUnexpectedChar},
		{"i--3e", errors.KindUnexpectedChar},
		{"4spam", errors.KindUnexpectedChar},
		{"4", errors.KindUnexpectedEOF},
		{"l4:spam", errors.KindUnexpectedEOF},
		{"d3:cow", errors.KindUnexpectedEOF},
		{"d3:cow3:moo", errors.KindUnexpectedEOF},
		{"de1:x", errors.KindUnexpectedChar}, // trailing bytes
		{"i3ei4e", errors.KindUnexpectedChar},
		{"4:spamx", errors.KindUnexpectedChar},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		if err == nil {
			t.Errorf("Parse(%q): expected error", tt.input)
			continue
		}
		if !stderrors.Is(err, kindErr(errors.PhaseParse, tt.kind)) {
			t.Errorf("Parse(%q): got %v, want kind %s", tt.input, err, tt.kind)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("i03e"))
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("got %v, want *errors.Error", err)
	}
	if e.Kind != errors.KindLeadingZero {
		t.Fatalf("kind: got %s", e.Kind)
	}
	if e.Position != 2 {
		t.Errorf("position: got %d, want 2", e.Position)
	}
}

func TestParseTrailingBytesPosition(t *testing.T) {
	_, err := Parse([]byte("i3e4:spam"))
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("got %v, want *errors.Error", err)
	}
	if e.Position != 3 {
		t.Errorf("position: got %d, want 3", e.Position)
	}
	if !strings.Contains(e.Error(), "end of input") {
		t.Errorf("message %q should name the expectation", e.Error())
	}
}

func TestParseStringLengthOverflow(t *testing.T) {
	_, err := Parse([]byte("99999999999999999999999999:x"))
	if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindNotRepresentable)) {
		t.Errorf("got %v, want integer_not_representable", err)
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("l", 64) + strings.Repeat("e", 64)

	if _, err := Parse([]byte(deep)); err != nil {
		t.Errorf("default limit: %v", err)
	}

	_, err := ParseWithOptions([]byte(deep), ParseOptions{MaxDepth: 8})
	if !stderrors.Is(err, kindErr(errors.PhaseParse, errors.KindDepthExceeded)) {
		t.Errorf("got %v, want depth_exceeded", err)
	}

	if _, err := ParseWithOptions([]byte(deep), ParseOptions{MaxDepth: 64}); err != nil {
		t.Errorf("exact limit: %v", err)
	}
}
