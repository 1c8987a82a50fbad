package zonefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLinesTokensAndPositions(t *testing.T) {
	lines, err := scanLines("www IN A 1.2.3.4\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	toks := lines[0].toks
	require.Len(t, toks, 4)
	assert.Equal(t, token{text: "www", line: 1, col: 1}, toks[0])
	assert.Equal(t, token{text: "IN", line: 1, col: 5}, toks[1])
	assert.Equal(t, token{text: "A", line: 1, col: 8}, toks[2])
	assert.Equal(t, token{text: "1.2.3.4", line: 1, col: 10}, toks[3])
}

func TestScanLinesSkipsBlankAndCommentLines(t *testing.T) {
	input := `; a full-line comment

www IN A 1.2.3.4 ; trailing comment
	; indented comment
`
	lines, err := scanLines(input)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].toks, 4)
	assert.Equal(t, "1.2.3.4", lines[0].toks[3].text)
}

func TestScanLinesQuotedStrings(t *testing.T) {
	lines, err := scanLines("www IN TXT \"a b;c(d)\"\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	toks := lines[0].toks
	require.Len(t, toks, 4)
	assert.Equal(t, "a b;c(d)", toks[3].text)
	assert.True(t, toks[3].quoted)
}

func TestScanLinesEmptyQuotedString(t *testing.T) {
	lines, err := scanLines("e NAPTR 100 50 \"s\" \"SIP\" \"\" foo.example.com.\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	toks := lines[0].toks
	require.Len(t, toks, 8)
	assert.Equal(t, "", toks[6].text)
	assert.True(t, toks[6].quoted)
}

func TestScanLinesParenthesesContinuation(t *testing.T) {
	input := `@ IN SOA ns1.example.com. admin.example.com. (
		2023010101 ; Serial
		3600       ; Refresh
		1800 604800
		86400 )
`
	lines, err := scanLines(input)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	var texts []string
	for _, tok := range lines[0].toks {
		texts = append(texts, tok.text)
	}
	assert.Equal(t, []string{
		"@", "IN", "SOA", "ns1.example.com.", "admin.example.com.",
		"2023010101", "3600", "1800", "604800", "86400",
	}, texts)
}

func TestScanLinesUnterminatedParenthesis(t *testing.T) {
	_, err := scanLines("@ IN SOA ns1. admin. (\n\t1 2 3 4 5\n")
	require.Error(t, err)

	synErr, ok := err.(*SyntaxError)
	require.True(t, ok)
	assert.Equal(t, 1, synErr.Line)
	assert.Equal(t, 22, synErr.Col)
	assert.Contains(t, synErr.Msg, "unterminated")
}

func TestScanLinesUnexpectedCloseParenthesis(t *testing.T) {
	_, err := scanLines("www IN A ) 1.2.3.4\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected \")\"")
}

func TestScanLinesUnterminatedQuote(t *testing.T) {
	_, err := scanLines("www IN TXT \"abc\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated quoted string")
}

func TestScanLinesNestingBound(t *testing.T) {
	_, err := scanLines(strings.Repeat("(", maxParenDepth+1) + "\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested too deeply")
}

func TestScanLinesNoTrailingNewline(t *testing.T) {
	lines, err := scanLines("www IN A 1.2.3.4")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].toks, 4)
}

func TestScanLinesCarriageReturns(t *testing.T) {
	lines, err := scanLines("www IN A 1.2.3.4\r\nmail IN A 1.2.3.5\r\n")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "mail", lines[1].toks[0].text)
	assert.Equal(t, 2, lines[1].toks[0].line)
}
