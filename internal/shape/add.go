package shape

// The resolution table for Add:
//
//	a    | b    | behavior               | result
//	-----|------|------------------------|-------
//	num  | num  | arithmetic sum         | num
//	text | text | concatenation          | text
//	text | num  | concatenation (coerce) | text
//	num  | text | concatenation (coerce) | text
//
// If either operand is textual the result is textual; only the num/num
// pairing sums. The homogeneous rows are also exposed statically: Sum and
// Concat fix the result shape at compile time, and AddOf resolves any
// homogeneous pairing generically.

// Sum is the static num/num row: arithmetic sum, numeric result.
func Sum(a, b Num) Num {
	return a + b
}

// Concat is the static text/text row: concatenation, textual result.
// The result is Text, so textual-only operations such as Split are
// accepted on it without further narrowing.
func Concat(a, b Text) Text {
	return a + b
}

// Addable constrains AddOf to the operand shapes for which Go's + is the
// row behavior: sum on integers, concatenation on strings.
type Addable interface {
	~int64 | ~string
}

// AddOf resolves a homogeneous pairing at compile time. The result shape
// equals the operand shape: AddOf(Num, Num) is a sum, AddOf(Text, Text)
// a concatenation.
func AddOf[T Addable](a, b T) T {
	return a + b
}

// Add resolves the full table at runtime over sealed operands. Mixed
// pairings coerce the numeric operand to its decimal form and
// concatenate. The result carries its shape as a runtime tag (Kind).
func Add(a, b Value) Value {
	an, aIsNum := a.(Num)
	bn, bIsNum := b.(Num)
	if aIsNum && bIsNum {
		return an + bn
	}
	return Text(coerce(a) + coerce(b))
}

// coerce renders any operand in its textual form.
func coerce(v Value) string {
	switch t := v.(type) {
	case Text:
		return string(t)
	case Num:
		return t.String()
	default:
		// Unreachable: Value is sealed to Num and Text.
		panic("shape: impossible operand variant")
	}
}
