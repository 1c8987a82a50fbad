package zonefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.zone")
	content := "$ORIGIN example.com.\nwww IN A 192.0.2.1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := ParseFile(path, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "www", entries[1].Record.Domain)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.zone"), ParseOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading zone file")
}

func TestParseFileWrapsSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zone")
	require.NoError(t, os.WriteFile(path, []byte("www IN MX ten mail.example.com.\n"), 0o644))

	_, err := ParseFile(path, ParseOptions{})
	require.Error(t, err)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, 1, synErr.Line)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zone")
	content := "$TTL 3600\nexample.com. IN NS ns.example.com.\nwww.example.com. IN A 192.0.2.1\n"

	entries := mustParse(t, content)
	require.NoError(t, WriteFile(path, entries, FormatOptions{}))

	reparsed, err := ParseFile(path, ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, entries, reparsed)
}
