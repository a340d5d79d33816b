package sqlclient

import (
	"unicode/utf8"
)

// for storing SQL reserved keywords of the SimpleDB dialect
type keyword string

const (
	selectKeyword     keyword = "select"
	fromKeyword       keyword = "from"
	whereKeyword      keyword = "where"
	andKeyword        keyword = "and"
	orKeyword         keyword = "or"
	notKeyword        keyword = "not"
	isKeyword         keyword = "is"
	likeKeyword       keyword = "like"
	inKeyword         keyword = "in"
	asKeyword         keyword = "as"
	joinKeyword       keyword = "join"
	onKeyword         keyword = "on"
	orderKeyword      keyword = "order"
	groupKeyword      keyword = "group"
	byKeyword         keyword = "by"
	limitKeyword      keyword = "limit"
	offsetKeyword     keyword = "offset"
	insertKeyword     keyword = "insert"
	intoKeyword       keyword = "into"
	valuesKeyword     keyword = "values"
	updateKeyword     keyword = "update"
	setKeyword        keyword = "set"
	deleteKeyword     keyword = "delete"
	createKeyword     keyword = "create"
	dropKeyword       keyword = "drop"
	alterKeyword      keyword = "alter"
	addKeyword        keyword = "add"
	databaseKeyword   keyword = "database"
	databasesKeyword  keyword = "databases"
	tableKeyword      keyword = "table"
	tablesKeyword     keyword = "tables"
	indexKeyword      keyword = "index"
	indexesKeyword    keyword = "indexes"
	showKeyword       keyword = "show"
	useKeyword        keyword = "use"
	descKeyword       keyword = "desc"
	describeKeyword   keyword = "describe"
	primaryKeyword    keyword = "primary"
	foreignKeyword    keyword = "foreign"
	keyKeyword        keyword = "key"
	referencesKeyword keyword = "references"
	constraintKeyword keyword = "constraint"
	defaultKeyword    keyword = "default"
	uniqueKeyword     keyword = "unique"
	intKeyword        keyword = "int"
	floatKeyword      keyword = "float"
	varcharKeyword    keyword = "varchar"
	dateKeyword       keyword = "date"
	countKeyword      keyword = "count"
	sumKeyword        keyword = "sum"
	avgKeyword        keyword = "avg"
	minKeyword        keyword = "min"
	maxKeyword        keyword = "max"
	loadKeyword       keyword = "load"
	dataKeyword       keyword = "data"
	infileKeyword     keyword = "infile"
	fieldsKeyword     keyword = "fields"
	terminatedKeyword keyword = "terminated"
	trueKeyword       keyword = "true"
	falseKeyword      keyword = "false"
	nullKeyword       keyword = "null"
)

var keywords = []keyword{
	selectKeyword, fromKeyword, whereKeyword, andKeyword, orKeyword, notKeyword,
	isKeyword, likeKeyword, inKeyword, asKeyword, joinKeyword, onKeyword,
	orderKeyword, groupKeyword, byKeyword, limitKeyword, offsetKeyword,
	insertKeyword, intoKeyword, valuesKeyword, updateKeyword, setKeyword,
	deleteKeyword, createKeyword, dropKeyword, alterKeyword, addKeyword,
	databaseKeyword, databasesKeyword, tableKeyword, tablesKeyword,
	indexKeyword, indexesKeyword, showKeyword, useKeyword, descKeyword,
	describeKeyword, primaryKeyword, foreignKeyword, keyKeyword,
	referencesKeyword, constraintKeyword, defaultKeyword, uniqueKeyword,
	intKeyword, floatKeyword, varcharKeyword, dateKeyword, countKeyword,
	sumKeyword, avgKeyword, minKeyword, maxKeyword, loadKeyword, dataKeyword,
	infileKeyword, fieldsKeyword, terminatedKeyword, trueKeyword,
	falseKeyword, nullKeyword,
}

// for storing SQL syntax
type symbol string

const (
	semicolonSymbol  symbol = ";"
	asteriskSymbol   symbol = "*"
	commaSymbol      symbol = ","
	dotSymbol        symbol = "."
	leftParenSymbol  symbol = "("
	rightParenSymbol symbol = ")"
	eqSymbol         symbol = "="
	neqSymbol        symbol = "<>"
	neqSymbol2       symbol = "!="
	plusSymbol       symbol = "+"
	minusSymbol      symbol = "-"
	slashSymbol      symbol = "/"
	ltSymbol         symbol = "<"
	lteSymbol        symbol = "<="
	gtSymbol         symbol = ">"
	gteSymbol        symbol = ">="
)

var symbols = []symbol{
	eqSymbol, neqSymbol, neqSymbol2, ltSymbol, lteSymbol, gtSymbol, gteSymbol,
	plusSymbol, minusSymbol, slashSymbol, commaSymbol, dotSymbol,
	leftParenSymbol, rightParenSymbol, semicolonSymbol, asteriskSymbol,
}

type tokenKind uint

const (
	keywordKind tokenKind = iota
	symbolKind
	identifierKind
	stringKind
	numericKind
	boolKind
	nullKind
	unknownKind
)

// token is a slice of the source. start and end are byte offsets.
type token struct {
	value string
	kind  tokenKind
	start uint
	end   uint
}

// cursor indicates the current position of the lexer
type cursor struct {
	pointer uint
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isIdentifierByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') || c == '$' || c == '_'
}

// longestMatch iterates through a source string starting at the given
// cursor to find the longest matching substring among the provided
// options. Matching is case insensitive.
func longestMatch(source string, ic cursor, options []string) string {
	var value []byte
	var skipList []int
	var match string

	cur := ic

	for cur.pointer < uint(len(source)) {
		value = append(value, toLower(source[cur.pointer]))
		cur.pointer++

	match:
		for i, option := range options {
			for _, skip := range skipList {
				if i == skip {
					continue match
				}
			}

			// Deal with cases like INT vs INTO
			if option == string(value) {
				skipList = append(skipList, i)
				if len(option) > len(match) {
					match = option
				}

				continue
			}

			tooLong := len(value) > len(option)
			if tooLong || string(value) != option[:len(value)] {
				skipList = append(skipList, i)
			}
		}

		if len(skipList) == len(options) {
			break
		}
	}

	return match
}

func lexSymbol(source string, ic cursor) (*token, cursor, bool) {
	cur := ic

	switch source[ic.pointer] {
	// Syntax that should be thrown away
	case ' ', '\t', '\n', '\r':
		cur.pointer++
		return nil, cur, true
	}

	var options []string
	for _, s := range symbols {
		options = append(options, string(s))
	}

	// Use `ic`, not `cur`
	match := longestMatch(source, ic, options)
	if match == "" {
		return nil, ic, false
	}

	cur.pointer = ic.pointer + uint(len(match))
	return &token{
		value: match,
		kind:  symbolKind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

func lexKeyword(source string, ic cursor) (*token, cursor, bool) {
	cur := ic

	var options []string
	for _, k := range keywords {
		options = append(options, string(k))
	}

	match := longestMatch(source, ic, options)
	if match == "" {
		return nil, ic, false
	}

	cur.pointer = ic.pointer + uint(len(match))
	// SELECTION is an identifier, not SELECT followed by ION
	if cur.pointer < uint(len(source)) && isIdentifierByte(source[cur.pointer]) {
		return nil, ic, false
	}

	kind := keywordKind
	if match == string(trueKeyword) || match == string(falseKeyword) {
		kind = boolKind
	}

	if match == string(nullKeyword) {
		kind = nullKind
	}

	return &token{
		value: match,
		kind:  kind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

func lexNumeric(source string, ic cursor) (*token, cursor, bool) {
	cur := ic

	periodFound := false
	expMarkerFound := false

	for ; cur.pointer < uint(len(source)); cur.pointer++ {
		c := source[cur.pointer]

		isDigit := c >= '0' && c <= '9'
		isPeriod := c == '.'
		isExpMarker := c == 'e' || c == 'E'

		// Must start with a digit or period
		if cur.pointer == ic.pointer {
			if !isDigit && !isPeriod {
				return nil, ic, false
			}

			periodFound = isPeriod
			continue
		}

		if isPeriod {
			if periodFound {
				return nil, ic, false
			}

			periodFound = true
			continue
		}

		if isExpMarker {
			if expMarkerFound {
				return nil, ic, false
			}

			// No periods allowed after expMarker
			periodFound = true
			expMarkerFound = true

			// expMarker must be followed by digits
			if cur.pointer == uint(len(source)-1) {
				return nil, ic, false
			}

			cNext := source[cur.pointer+1]
			if cNext == '-' || cNext == '+' {
				cur.pointer++
			}
			continue
		}

		if !isDigit {
			break
		}
	}

	return &token{
		value: source[ic.pointer:cur.pointer],
		kind:  numericKind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

// lexCharacterDelimited looks through a source string starting at the
// given cursor to find a start- and end- delimiter. The delimiter can
// be escaped by preceding the delimiter with itself. A missing end
// delimiter extends the token to the end of the source, since the line
// being edited is often incomplete.
func lexCharacterDelimited(source string, ic cursor, delimiter byte) (*token, cursor, bool) {
	cur := ic

	if source[cur.pointer] != delimiter {
		return nil, ic, false
	}

	cur.pointer++

	var value []byte
	for ; cur.pointer < uint(len(source)); cur.pointer++ {
		c := source[cur.pointer]

		if c == delimiter {
			// SQL escapes are via double characters, not backslash.
			if cur.pointer+1 >= uint(len(source)) || source[cur.pointer+1] != delimiter {
				cur.pointer++
				return &token{
					value: string(value),
					kind:  stringKind,
					start: ic.pointer,
					end:   cur.pointer,
				}, cur, true
			}
			cur.pointer++
		}

		value = append(value, c)
	}

	return &token{
		value: string(value),
		kind:  stringKind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

func lexIdentifier(source string, ic cursor) (*token, cursor, bool) {
	// Handle separately if is a backquoted identifier
	if token, newCursor, ok := lexCharacterDelimited(source, ic, '`'); ok {
		token.kind = identifierKind
		return token, newCursor, true
	}

	cur := ic

	c := source[cur.pointer]
	// Other characters count too, big ignoring non-ascii for now
	isAlphabetical := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
	if !isAlphabetical {
		return nil, ic, false
	}
	cur.pointer++

	for ; cur.pointer < uint(len(source)); cur.pointer++ {
		if !isIdentifierByte(source[cur.pointer]) {
			break
		}
	}

	return &token{
		value: source[ic.pointer:cur.pointer],
		kind:  identifierKind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

func lexString(source string, ic cursor) (*token, cursor, bool) {
	if token, newCursor, ok := lexCharacterDelimited(source, ic, '\''); ok {
		return token, newCursor, true
	}
	return lexCharacterDelimited(source, ic, '"')
}

// lexUnknown consumes one rune nothing else accepts.
func lexUnknown(source string, ic cursor) (*token, cursor, bool) {
	_, size := utf8.DecodeRuneInString(source[ic.pointer:])
	cur := cursor{pointer: ic.pointer + uint(size)}
	return &token{
		value: source[ic.pointer:cur.pointer],
		kind:  unknownKind,
		start: ic.pointer,
		end:   cur.pointer,
	}, cur, true
}

type lexer func(string, cursor) (*token, cursor, bool)

// lex splits an input string into a list of tokens. Every lexer is tried
// in turn at the cursor; the first one to accept moves the cursor past
// what it consumed. Input no lexer accepts becomes an unknownKind token,
// so lex never fails and the tokens cover every non-blank byte.
func lex(source string) []*token {
	var tokens []*token
	cur := cursor{}
	lexers := []lexer{lexKeyword, lexSymbol, lexString, lexNumeric, lexIdentifier, lexUnknown}

lex:
	for cur.pointer < uint(len(source)) {
		for _, l := range lexers {
			if token, newCursor, ok := l(source, cur); ok {
				cur = newCursor

				// Omit nil tokens for valid, but empty syntax like newlines
				if token != nil {
					tokens = append(tokens, token)
				}

				continue lex
			}
		}
	}

	return tokens
}
