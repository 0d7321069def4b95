// Package shape defines the sealed operand values used by the overload
// resolver and the resolution rules over them.
//
// Value is a closed union: exactly Num and Text implement it. Floats are
// deliberately excluded - integer operands keep textual coercion
// deterministic across platforms.
package shape

import (
	"strconv"
	"strings"
)

// Value is the sealed union of operand shapes.
// Only Num and Text implement it.
type Value interface {
	Kind() string
	value() // sealed
}

// Num is a numeric operand.
type Num int64

// Text is a textual operand.
type Text string

func (Num) Kind() string  { return "num" }
func (Text) Kind() string { return "text" }

func (Num) value()  {}
func (Text) value() {}

// String renders the operand's decimal form, used when a numeric operand
// is coerced into a textual result.
func (n Num) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Split divides the text around each instance of sep. Split is available
// on Text without any narrowing - it is a textual-only operation carried
// by the textual shape itself.
func (t Text) Split(sep string) []Text {
	parts := strings.Split(string(t), sep)
	out := make([]Text, len(parts))
	for i, p := range parts {
		out[i] = Text(p)
	}
	return out
}
