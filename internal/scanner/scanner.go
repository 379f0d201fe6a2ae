package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/leonardinius/floatdiff/internal/token"
)

// Scanner splits one line into classified tokens.
type Scanner interface {
	Scan() []token.Token
}

type scanner struct {
	source         string
	tokens         []token.Token
	start, current int
}

// NewScanner returns a new Scanner.
func NewScanner(line string) Scanner {
	return &scanner{source: line, start: 0, current: 0}
}

// Scan implements Scanner.
func (s *scanner) Scan() []token.Token {
	for !s.isAtEnd() {
		s.skipSpace()
		if s.isAtEnd() {
			break
		}
		// We are at the beginning of the next field.
		s.start = s.current
		s.field()
	}

	return s.tokens
}

// Fields returns the raw whitespace-delimited fields of line.
func Fields(line string) []string {
	tokens := NewScanner(line).Scan()
	fields := make([]string, len(tokens))
	for i, t := range tokens {
		fields[i] = t.Text
	}
	return fields
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// peek decodes the rune at the cursor. Invalid UTF-8 decodes as
// utf8.RuneError of width 1, so raw bytes pass through into field text.
func (s *scanner) peek() (rune, int) {
	if s.isAtEnd() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s.source[s.current:])
}

func (s *scanner) advance() rune {
	c, width := s.peek()
	s.current += width
	return c
}

func (s *scanner) atSpace() bool {
	c, _ := s.peek()
	return isSpace(c)
}

func (s *scanner) skipSpace() {
	for !s.isAtEnd() && s.atSpace() {
		s.advance()
	}
}

func (s *scanner) field() {
	for !s.isAtEnd() && !s.atSpace() {
		s.advance()
	}
	s.addToken(s.source[s.start:s.current])
}

func (s *scanner) addToken(text string) {
	s.tokens = append(s.tokens, token.Classify(text, len(s.tokens)+1))
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// (FS, GS, RS, US), which also delimit fields.
func isSpace(c rune) bool {
	return unicode.IsSpace(c) || (c >= 0x1c && c <= 0x1f)
}
