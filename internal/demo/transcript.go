package demo

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Transcript is the observable outcome of one demo run: an ordered list
// of seq-stamped output lines under a run token.
type Transcript struct {
	RunToken string `json:"run_token"`
	Demo     string `json:"demo"`
	Lines    []Line `json:"lines"`
}

// Texts returns just the line texts in emission order.
func (t *Transcript) Texts() []string {
	texts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		texts[i] = l.Text
	}
	return texts
}

// Canonical produces the deterministic JSON form of the transcript used
// for golden comparison:
//
//   - object keys in fixed sorted order (demo, lines, run_token)
//   - no HTML escaping (< > & are NOT escaped)
//   - strings NFC normalized
//   - no floats anywhere (line seqs are integers)
//
// Byte-identical across runs with the same run token and lines.
func (t *Transcript) Canonical() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"demo":`)
	demo, err := EncodeCanonicalString(t.Demo)
	if err != nil {
		return nil, fmt.Errorf("canonical transcript: %w", err)
	}
	buf.Write(demo)

	buf.WriteString(`,"lines":[`)
	for i, line := range t.Lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		text, err := EncodeCanonicalString(line.Text)
		if err != nil {
			return nil, fmt.Errorf("canonical transcript line %d: %w", i, err)
		}
		fmt.Fprintf(&buf, `{"seq":%d,"text":%s}`, line.Seq, text)
	}
	buf.WriteByte(']')

	buf.WriteString(`,"run_token":`)
	token, err := EncodeCanonicalString(t.RunToken)
	if err != nil {
		return nil, fmt.Errorf("canonical transcript: %w", err)
	}
	buf.Write(token)

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeCanonicalString encodes s as a canonical JSON string literal:
// NFC normalized, standard two-char escapes, control characters as
// \u00XX, and no HTML escaping.
func EncodeCanonicalString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("invalid UTF-8 string")
	}
	s = norm.NFC.String(s)

	var buf bytes.Buffer
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
	return buf.Bytes(), nil
}
