package scanner_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/leonardinius/floatdiff/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", " \t  ", nil},
		{
			"numbers",
			"1.0 2.0",
			[]string{
				`{Type: NUMBER, Text: "1.0", Value: 1, Pos: 1}`,
				`{Type: NUMBER, Text: "2.0", Value: 2, Pos: 2}`,
			},
		},
		{
			"mixed",
			"  x=  -3\t2.5e3 ",
			[]string{
				`{Type: LITERAL, Text: "x=", Value: 0, Pos: 1}`,
				`{Type: NUMBER, Text: "-3", Value: -3, Pos: 2}`,
				`{Type: NUMBER, Text: "2.5e3", Value: 2500, Pos: 3}`,
			},
		},
		{
			"trailing newline",
			"foo\n",
			[]string{
				`{Type: LITERAL, Text: "foo", Value: 0, Pos: 1}`,
			},
		},
		{
			"unicode space",
			"a\u00a0b\u3000c",
			[]string{
				`{Type: LITERAL, Text: "a", Value: 0, Pos: 1}`,
				`{Type: LITERAL, Text: "b", Value: 0, Pos: 2}`,
				`{Type: LITERAL, Text: "c", Value: 0, Pos: 3}`,
			},
		},
		{
			"unit separator",
			"1\x1f2",
			[]string{
				`{Type: NUMBER, Text: "1", Value: 1, Pos: 1}`,
				`{Type: NUMBER, Text: "2", Value: 2, Pos: 2}`,
			},
		},
		{
			"non ascii literal",
			"λ=1",
			[]string{
				`{Type: LITERAL, Text: "λ=1", Value: 0, Pos: 1}`,
			},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tokens := scanner.NewScanner(tc.input).Scan()
			var got []string
			for _, tok := range tokens {
				got = append(got, tok.GoString())
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestScanKeepsInvalidUTF8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a\xff", "b\xfe"}, scanner.Fields("a\xff b\xfe"))
	assert.NotEqual(t, scanner.Fields("\xff"), scanner.Fields("\xfe"))
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"single newline", "abc\n", []string{"abc"}},
		{"two lines", "1.0 2.0\n3.0 4.0\n", []string{"1.0 2.0", "3.0 4.0"}},
		{"blank lines", "\n\n", []string{"", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"trailing cr", "a\r", []string{"a"}},
		{"cr cr lf", "a\r\r\nb", []string{"a", "", "b"}},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lines, err := scanner.ReadLines(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lines)
		})
	}
}

func TestReadLinesSplitCRLFAcrossReads(t *testing.T) {
	t.Parallel()

	lines, err := scanner.ReadLines(iotest.OneByteReader(strings.NewReader("a\r\nb\rc\n")))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestReadLinesLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("1.5 ", 100_000)
	lines, err := scanner.ReadLines(strings.NewReader(long + "\nend"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
	assert.Len(t, scanner.Fields(lines[0]), 100_000)
}

func TestReadLinesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("a\n"), iotest.ErrReader(boom))
	lines, err := scanner.ReadLines(r)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, lines)
}
