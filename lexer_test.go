package sqlclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_lexNumeric(t *testing.T) {
	tests := []struct {
		number bool
		value  string
	}{
		{number: true, value: "105"},
		{number: true, value: "105 "},
		{number: true, value: "123."},
		{number: true, value: "123.145"},
		{number: true, value: "1e5"},
		{number: true, value: "1E5"},
		{number: true, value: "1.1e-2"},
		{number: true, value: "1.1e+2"},
		{number: true, value: ".1"},
		// false tests
		{number: false, value: "e4"},
		{number: false, value: "1.."},
		{number: false, value: "1ee4"},
		{number: false, value: "1e"},
		{number: false, value: " 1"},
	}

	for _, test := range tests {
		tok, _, ok := lexNumeric(test.value, cursor{})
		assert.Equal(t, test.number, ok, test.value)
		if ok {
			assert.Equal(t, numericKind, tok.kind, test.value)
		}
	}
}

func TestToken_lexString(t *testing.T) {
	tests := []struct {
		source string
		value  string
		end    uint
	}{
		{source: "'abc'", value: "abc", end: 5},
		{source: "'a b' c", value: "a b", end: 5},
		{source: "'it''s'", value: "it's", end: 7},
		{source: "''", value: "", end: 2},
		{source: `"abc"`, value: "abc", end: 5},
		{source: "'unterminated", value: "unterminated", end: 13},
	}

	for _, test := range tests {
		tok, cur, ok := lexString(test.source, cursor{})
		assert.True(t, ok, test.source)
		assert.Equal(t, test.value, tok.value, test.source)
		assert.Equal(t, test.end, cur.pointer, test.source)
	}

	_, _, ok := lexString("abc", cursor{})
	assert.False(t, ok)
}

func TestToken_lexKeyword(t *testing.T) {
	tests := []struct {
		source  string
		keyword bool
		value   string
		kind    tokenKind
	}{
		{source: "select", keyword: true, value: "select", kind: keywordKind},
		{source: "SELECT *", keyword: true, value: "select", kind: keywordKind},
		{source: "Into users", keyword: true, value: "into", kind: keywordKind},
		{source: "int,", keyword: true, value: "int", kind: keywordKind},
		{source: "indexes;", keyword: true, value: "indexes", kind: keywordKind},
		{source: "NULL)", keyword: true, value: "null", kind: nullKind},
		{source: "true", keyword: true, value: "true", kind: boolKind},
		{source: "selection", keyword: false},
		{source: "users", keyword: false},
		{source: "into_x", keyword: false},
		{source: "in2", keyword: false},
	}

	for _, test := range tests {
		tok, _, ok := lexKeyword(test.source, cursor{})
		assert.Equal(t, test.keyword, ok, test.source)
		if ok {
			assert.Equal(t, test.value, tok.value, test.source)
			assert.Equal(t, test.kind, tok.kind, test.source)
		}
	}
}

func TestLex(t *testing.T) {
	type want struct {
		value string
		kind  tokenKind
	}

	tests := []struct {
		source string
		tokens []want
	}{
		{
			source: "SELECT name FROM users WHERE id >= 10;",
			tokens: []want{
				{"select", keywordKind},
				{"name", identifierKind},
				{"from", keywordKind},
				{"users", identifierKind},
				{"where", keywordKind},
				{"id", identifierKind},
				{">=", symbolKind},
				{"10", numericKind},
				{";", symbolKind},
			},
		},
		{
			source: "INSERT INTO t VALUES (1,'a b',NULL);",
			tokens: []want{
				{"insert", keywordKind},
				{"into", keywordKind},
				{"t", identifierKind},
				{"values", keywordKind},
				{"(", symbolKind},
				{"1", numericKind},
				{",", symbolKind},
				{"a b", stringKind},
				{",", symbolKind},
				{"null", nullKind},
				{")", symbolKind},
				{";", symbolKind},
			},
		},
		{
			source: "use shop\r\n",
			tokens: []want{
				{"use", keywordKind},
				{"shop", identifierKind},
			},
		},
		{
			source: "DESC `order`",
			tokens: []want{
				{"desc", keywordKind},
				{"order", identifierKind},
			},
		},
		{
			source: "show tables # ü",
			tokens: []want{
				{"show", keywordKind},
				{"tables", keywordKind},
				{"#", unknownKind},
				{"ü", unknownKind},
			},
		},
		{
			source: "",
		},
	}

	for _, test := range tests {
		var got []want
		for _, tok := range lex(test.source) {
			got = append(got, want{tok.value, tok.kind})
		}
		assert.Equal(t, test.tokens, got, test.source)
	}
}

func TestLex_Offsets(t *testing.T) {
	source := "Select  x"
	tokens := lex(source)
	assert.Len(t, tokens, 2)
	assert.Equal(t, "Select", source[tokens[0].start:tokens[0].end])
	assert.Equal(t, "x", source[tokens[1].start:tokens[1].end])
}

func TestKeywordPainter(t *testing.T) {
	p := newKeywordPainter()
	p.bold.EnableColor()

	tests := []struct {
		line string
		want string
	}{
		{
			line: "SELECT * FROM users;",
			want: "\x1b[1mSELECT\x1b[0m * \x1b[1mFROM\x1b[0m users;",
		},
		{
			line: "select 'from' from t",
			want: "\x1b[1mselect\x1b[0m 'from' \x1b[1mfrom\x1b[0m t",
		},
		{
			line: "selection",
			want: "selection",
		},
		{
			line: "naïve = null",
			want: "naïve = \x1b[1mnull\x1b[0m",
		},
		{
			line: "",
			want: "",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, string(p.Paint([]rune(test.line), 0)), test.line)
	}
}
