package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wirebit/bencode"
)

// textPreviewLimit caps how much of a byte string the tree view prints.
const textPreviewLimit = 48

type treeStyles struct {
	key  lipgloss.Style
	num  lipgloss.Style
	str  lipgloss.Style
	dim  lipgloss.Style
	kind lipgloss.Style
}

func newTreeStyles(color bool) treeStyles {
	if !color {
		return treeStyles{}
	}
	return treeStyles{
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		num:  lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		str:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		kind: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
	}
}

// renderTree prints the value as an indented tree, one node per line.
func renderTree(val *bencode.Value, color bool) string {
	var b strings.Builder
	s := newTreeStyles(color)
	writeTree(&b, s, val, "", 0)
	return b.String()
}

func writeTree(b *strings.Builder, s treeStyles, v *bencode.Value, label string, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	if label != "" {
		b.WriteString(s.key.Render(label))
		b.WriteString(": ")
	}

	switch v.Kind() {
	case bencode.KindDict:
		fmt.Fprintf(b, "%s %s\n", s.kind.Render("dictionary"), s.dim.Render(countSuffix(v.Len(), "entry", "entries")))
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			writeTree(b, s, child, key, depth+1)
		}
	case bencode.KindList:
		fmt.Fprintf(b, "%s %s\n", s.kind.Render("list"), s.dim.Render(countSuffix(v.Len(), "element", "elements")))
		for _, child := range v.List() {
			writeTree(b, s, child, "", depth+1)
		}
	case bencode.KindInteger:
		b.WriteString(s.num.Render(v.Integer().String()))
		b.WriteByte('\n')
	case bencode.KindBytes:
		b.WriteString(summarizeBytes(s, v.Bytes()))
		b.WriteByte('\n')
	}
}

func countSuffix(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("(1 %s)", singular)
	}
	return fmt.Sprintf("(%d %s)", n, plural)
}

func summarizeBytes(s treeStyles, data []byte) string {
	if utf8.Valid(data) {
		text := string(data)
		if len(text) > textPreviewLimit {
			return s.str.Render(fmt.Sprintf("%q", text[:textPreviewLimit])) +
				s.dim.Render(fmt.Sprintf("… (%d bytes)", len(data)))
		}
		return s.str.Render(fmt.Sprintf("%q", text))
	}
	preview := data
	if len(preview) > textPreviewLimit/2 {
		preview = preview[:textPreviewLimit/2]
	}
	return s.dim.Render(fmt.Sprintf("bytes(%d) 0x%s…", len(data), hex.EncodeToString(preview)))
}

// renderJSON re-encodes the tree as indented JSON. Binary byte strings
// become base64 with a marker prefix so the output stays valid text.
func renderJSON(val *bencode.Value) ([]byte, error) {
	out, err := json.MarshalIndent(plain(val, false), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// renderMsgpack re-encodes the tree as msgpack. Byte strings that are not
// valid UTF-8 stay binary.
func renderMsgpack(val *bencode.Value) ([]byte, error) {
	return msgpack.Marshal(plain(val, true))
}

// plain converts the parsed value into unwrapped Go values. Integers wider
// than int64 become decimal strings; binaryOK controls whether non-UTF-8
// byte strings stay []byte or get base64-encoded.
func plain(v *bencode.Value, binaryOK bool) any {
	switch v.Kind() {
	case bencode.KindDict:
		out := make(map[string]any, v.Len())
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			out[key] = plain(child, binaryOK)
		}
		return out
	case bencode.KindList:
		out := make([]any, 0, v.Len())
		for _, child := range v.List() {
			out = append(out, plain(child, binaryOK))
		}
		return out
	case bencode.KindInteger:
		n := v.Integer()
		if n.IsInt64() {
			return n.Int64()
		}
		return n.String()
	case bencode.KindBytes:
		data := v.Bytes()
		if utf8.Valid(data) {
			return string(data)
		}
		if binaryOK {
			return data
		}
		return "base64:" + base64.StdEncoding.EncodeToString(data)
	default:
		return nil
	}
}
