package zonefile

import "fmt"

// SyntaxError reports the first token in the input that no grammar
// alternative could match. Line and Col are 1-based positions in the
// original text (continuation lines keep their physical positions).
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Col, e.Msg)
}

// syntaxErrorf builds a SyntaxError at an explicit position.
func syntaxErrorf(line, col int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// errAt builds a SyntaxError pointing at a token.
func errAt(t token, format string, args ...interface{}) *SyntaxError {
	return syntaxErrorf(t.line, t.col, format, args...)
}
