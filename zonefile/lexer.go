package zonefile

import "strings"

// token is one lexical unit of a logical line. Quoted strings are captured
// with the surrounding quotes removed; quoted records that they were there.
type token struct {
	text   string
	quoted bool
	line   int
	col    int
}

// logicalLine is one grammar line after comments are stripped and
// parenthesis continuations are joined. endLine/endCol point just past the
// last token, where missing-field errors are reported.
type logicalLine struct {
	toks    []token
	endLine int
	endCol  int
}

// maxParenDepth bounds continuation nesting so pathological input cannot
// grow scanner state without bound.
const maxParenDepth = 8

type lexer struct {
	lines []logicalLine

	toks []token
	cur  strings.Builder
	// start position of the token being accumulated
	tokLine, tokCol int

	line, col int

	inQuote             bool
	quoteLine, quoteCol int

	// positions of currently open parentheses
	parens []token
}

// flush ends the bare token being accumulated, if any.
func (lx *lexer) flush() {
	if lx.cur.Len() == 0 {
		return
	}
	lx.toks = append(lx.toks, token{
		text: lx.cur.String(),
		line: lx.tokLine,
		col:  lx.tokCol,
	})
	lx.cur.Reset()
}

// endLine closes the current logical line at the scanner's position.
func (lx *lexer) endLine() {
	lx.flush()
	if len(lx.toks) > 0 {
		lx.lines = append(lx.lines, logicalLine{
			toks:    lx.toks,
			endLine: lx.line,
			endCol:  lx.col,
		})
		lx.toks = nil
	}
}

// scanLines splits raw zone-file text into logical lines of position-tagged
// tokens. Comments run from an unquoted ';' to the end of the physical
// line. Inside an unquoted (...) region, newlines and comments are ordinary
// whitespace, so a record may span several physical lines.
func scanLines(text string) ([]logicalLine, error) {
	lx := &lexer{line: 1, col: 1}
	inComment := false

	for _, r := range text {
		if r == '\n' {
			if inComment {
				inComment = false
			}
			if lx.inQuote {
				return nil, syntaxErrorf(lx.quoteLine, lx.quoteCol, "unterminated quoted string")
			}
			lx.flush()
			if len(lx.parens) == 0 {
				lx.endLine()
			}
			lx.line++
			lx.col = 1
			continue
		}

		switch {
		case inComment:
			// skip to end of physical line

		case lx.inQuote:
			if r == '"' {
				lx.toks = append(lx.toks, token{
					text:   lx.cur.String(),
					quoted: true,
					line:   lx.quoteLine,
					col:    lx.quoteCol,
				})
				lx.cur.Reset()
				lx.inQuote = false
			} else {
				lx.cur.WriteRune(r)
			}

		case r == '"':
			lx.flush()
			lx.inQuote = true
			lx.quoteLine, lx.quoteCol = lx.line, lx.col

		case r == ';':
			lx.flush()
			inComment = true

		case r == '(':
			lx.flush()
			if len(lx.parens) >= maxParenDepth {
				return nil, syntaxErrorf(lx.line, lx.col, "parentheses nested too deeply")
			}
			lx.parens = append(lx.parens, token{line: lx.line, col: lx.col})

		case r == ')':
			lx.flush()
			if len(lx.parens) == 0 {
				return nil, syntaxErrorf(lx.line, lx.col, "unexpected \")\"")
			}
			lx.parens = lx.parens[:len(lx.parens)-1]

		case r == ' ' || r == '\t' || r == '\r':
			lx.flush()

		default:
			if lx.cur.Len() == 0 {
				lx.tokLine, lx.tokCol = lx.line, lx.col
			}
			lx.cur.WriteRune(r)
		}

		lx.col++
	}

	if lx.inQuote {
		return nil, syntaxErrorf(lx.quoteLine, lx.quoteCol, "unterminated quoted string")
	}
	if len(lx.parens) > 0 {
		open := lx.parens[len(lx.parens)-1]
		return nil, syntaxErrorf(open.line, open.col, "unterminated \"(\"")
	}
	lx.endLine()

	return lx.lines, nil
}
