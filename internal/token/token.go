package token

import (
	"fmt"
)

// Type tells whether a token takes part in a numeric or an exact comparison.
type Type int

const (
	LITERAL Type = iota
	NUMBER
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case LITERAL:
		return "LITERAL"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is a whitespace-delimited field of one line.
type Token struct {
	Type  Type
	Text  string
	Value float64
	Pos   int
}

func NewToken(t Type, text string, value float64, pos int) Token {
	return Token{
		Type:  t,
		Text:  text,
		Value: value,
		Pos:   pos,
	}
}

// Classify builds the token for text at 1-based position pos, reading it as a
// number when it parses as one.
func Classify(text string, pos int) Token {
	if v, ok := ParseNumber(text); ok {
		return NewToken(NUMBER, text, v, pos)
	}
	return NewToken(LITERAL, text, 0, pos)
}

// IsNumber reports whether the token carries a numeric value.
func (t Token) IsNumber() bool {
	return t.Type == NUMBER
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.IsNumber() {
		return fmt.Sprintf("%s %s %v", t.Type, t.Text, t.Value)
	}
	return fmt.Sprintf("%s %s", t.Type, t.Text)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Text: %q, Value: %v, Pos: %d}", t.Type, t.Text, t.Value, t.Pos)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
