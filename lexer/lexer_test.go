package lexer

import (
	"bytes"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a :b
			c-d-e-f
			"g
			hi"
		)`,

		`(def foo (+ 3 3))`,

		`(if (eq? 1 1) 10 20)`,

		`(do (def x 1) (def y 2) x)`,

		`(fn1 "😊")`,

		``,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenInteger,
				TokenEOF,
			},
		},
		{
			`+
			1`,
			[]TokenType{
				TokenSymbol,
				TokenInteger,
				TokenEOF,
			},
		},
		{
			`(def x (fn))`,
			[]TokenType{
				TokenOpenExpression,
				TokenKeyword,
				TokenSymbol,
				TokenOpenExpression,
				TokenKeyword,
				TokenCloseExpression,
				TokenCloseExpression,
				TokenEOF,
			},
		},
		{
			`((a)b"c d"12)`,
			[]TokenType{
				TokenOpenExpression,
				TokenOpenExpression,
				TokenSymbol,
				TokenCloseExpression,
				TokenSymbol,
				TokenSymbol,
				TokenCloseExpression,
				TokenEOF,
			},
		},
		{
			`(a "c d" 12)`,
			[]TokenType{
				TokenOpenExpression,
				TokenSymbol,
				TokenString,
				TokenInteger,
				TokenCloseExpression,
				TokenEOF,
			},
		},
		{
			`define fnord defn`,
			[]TokenType{
				TokenSymbol,
				TokenSymbol,
				TokenSymbol,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeMixed(t *testing.T) {
	tokens, err := Tokenize([]byte(`(+ - "123" 123)`))
	require.NoError(t, err)

	expected := []struct {
		tt   TokenType
		text string
	}{
		{TokenOpenExpression, "("},
		{TokenSymbol, "+"},
		{TokenSymbol, "-"},
		{TokenString, "123"},
		{TokenInteger, "123"},
		{TokenCloseExpression, ")"},
		{TokenEOF, ""},
	}

	require.Equal(t, len(expected), len(tokens))
	for i := range expected {
		assert.Equal(t, expected[i].tt, tokens[i].Type())
		assert.Equal(t, expected[i].text, tokens[i].Text())
	}
	assert.Equal(t, int64(123), tokens[4].Int())
}

func TestTokenizeStrings(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`""`, ``},
		{`"hello world"`, `hello world`},
		{`"a (b) c"`, `a (b) c`},
		{"\"multi\nline\"", "multi\nline"},
		{`"def"`, `def`},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		assert.True(t, tokens[0].Is(TokenString))
		assert.Equal(t, testCases[i].Out, tokens[0].Text())
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Pos [2]int
	}{
		{`"abc`, ErrUnterminatedString, [2]int{1, 1}},
		{`(+ 1 "abc`, ErrUnterminatedString, [2]int{1, 6}},
		{`12a`, ErrInvalidInteger, [2]int{1, 1}},
		{"(+ 1\n  99999999999999999999)", ErrInvalidInteger, [2]int{2, 3}},
		{`1"2"`, ErrInvalidInteger, [2]int{1, 1}},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		assert.Nil(t, tokens)
		assert.ErrorIs(t, err, testCases[i].Err)

		var lexErr *Error
		if assert.ErrorAs(t, err, &lexErr) {
			assert.Equal(t, testCases[i].Pos, [2]int{lexErr.Line, lexErr.Col})
		}
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
				{5, 1},
			},
		},
		{
			"(a\n\t(b 23456))",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 2}, {2, 3}, {2, 5}, {2, 10}, {2, 11},
				{2, 12},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []int64{0, 1, 7, 10, 42, 1 << 32, math.MaxInt32, math.MaxInt64}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		values = append(values, rnd.Int63())
	}

	for _, v := range values {
		text := strconv.FormatInt(v, 10)

		tokens, err := Tokenize([]byte(text))
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		assert.Equal(t, v, tokens[0].Int())
		assert.Equal(t, text, strconv.FormatInt(tokens[0].Int(), 10))
	}

	{
		tokens, err := Tokenize([]byte("9223372036854775808"))
		assert.Nil(t, tokens)
		assert.ErrorIs(t, err, ErrInvalidInteger)
	}
}

func TestLexerIsLazy(t *testing.T) {
	lx := New(bytes.NewReader([]byte(`(a) "unterminated`)))

	tokens := []Token{}
	for i := 0; i < 3 && lx.Next(); i++ {
		tokens = append(tokens, lx.Token())
	}

	assert.Len(t, tokens, 3)
	assert.NoError(t, lx.Err())

	assert.False(t, lx.Next())
	assert.ErrorIs(t, lx.Err(), ErrUnterminatedString)
	assert.False(t, lx.Next())
}

func TestKeywords(t *testing.T) {
	assert.True(t, IsKeyword("fn"))
	assert.True(t, IsKeyword("def"))
	assert.False(t, IsKeyword("if"))
	assert.False(t, IsKeyword("defn"))
}
