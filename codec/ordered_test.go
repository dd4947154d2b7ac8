package codec

import (
	stderrors "errors"
	"testing"

	"github.com/wirebit/bencode"
	"github.com/wirebit/bencode/errors"
)

func parseOrdered(t *testing.T, input string) *Ordered {
	t.Helper()
	v, err := bencode.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	o, err := newDecoder(v, nil).Ordered()
	if err != nil {
		t.Fatalf("Ordered: %v", err)
	}
	return o
}

func TestOrderedSequence(t *testing.T) {
	o := parseOrdered(t, "l4:spam4:eggse")

	if o.Len() != 2 || o.Remaining() != 2 || o.AtEnd() || o.Index() != 0 {
		t.Fatalf("initial state: len=%d remaining=%d atEnd=%v index=%d",
			o.Len(), o.Remaining(), o.AtEnd(), o.Index())
	}

	want := []string{"spam", "eggs"}
	for i, w := range want {
		got, err := o.String()
		if err != nil {
			t.Fatalf("element %d: %v", i, err)
		}
		if got != w {
			t.Errorf("element %d: got %q, want %q", i, got, w)
		}
	}

	if !o.AtEnd() || o.Remaining() != 0 || o.Index() != 2 {
		t.Errorf("final state: remaining=%d atEnd=%v index=%d",
			o.Remaining(), o.AtEnd(), o.Index())
	}
}

func TestOrderedPastEnd(t *testing.T) {
	o := parseOrdered(t, "li1ee")

	if _, err := o.Int64(); err != nil {
		t.Fatalf("first element: %v", err)
	}

	_, err := o.Next()
	if !stderrors.Is(err, kindErr(errors.KindValueNotFound)) {
		t.Fatalf("got %v, want value_not_found", err)
	}
	var e *errors.Error
	stderrors.As(err, &e)
	if len(e.Path) != 1 || e.Path[0] != "1" {
		t.Errorf("path: got %v", e.Path)
	}
}

func TestOrderedElementPath(t *testing.T) {
	o := parseOrdered(t, "li1e4:spame")

	if _, err := o.Next(); err != nil {
		t.Fatal(err)
	}
	// Second element is an integer requested as... it is a byte string;
	// asking for an integer reports the index in the path.
	_, err := o.Int64()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Kind != errors.KindTypeMismatch {
		t.Errorf("kind: got %s", e.Kind)
	}
	if len(e.Path) != 1 || e.Path[0] != "1" {
		t.Errorf("path: got %v", e.Path)
	}
}

func TestOrderedMixedElements(t *testing.T) {
	o := parseOrdered(t, "l4:spami42eli1eee")

	s, err := o.String()
	if err != nil || s != "spam" {
		t.Errorf("string element: %q, %v", s, err)
	}
	n, err := o.Int64()
	if err != nil || n != 42 {
		t.Errorf("integer element: %d, %v", n, err)
	}

	inner, err := o.Next()
	if err != nil {
		t.Fatal(err)
	}
	io, err := inner.Ordered()
	if err != nil {
		t.Fatalf("nested Ordered: %v", err)
	}
	if got := io.Path().String(); got != "2" {
		t.Errorf("nested path: got %q", got)
	}
	if n, err := io.Int64(); err != nil || n != 1 {
		t.Errorf("nested element: %d, %v", n, err)
	}
}

func TestOrderedEmpty(t *testing.T) {
	o := parseOrdered(t, "le")
	if !o.AtEnd() || o.Len() != 0 {
		t.Errorf("empty list: atEnd=%v len=%d", o.AtEnd(), o.Len())
	}
	if _, err := o.Next(); !stderrors.Is(err, kindErr(errors.KindValueNotFound)) {
		t.Errorf("got %v, want value_not_found", err)
	}
}
