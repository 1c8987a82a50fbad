package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) []ZoneEntry {
	t.Helper()
	entries, err := Parse(content, ParseOptions{})
	require.NoError(t, err)
	return entries
}

func TestResolveDefaultIsNoOp(t *testing.T) {
	content := "$ORIGIN example.com.\n$TTL 3600\n@ IN A 192.0.2.1\nwww IN A 192.0.2.2\n"

	entries := mustParse(t, content)
	untouched := mustParse(t, content)

	Resolve(entries, ResolveOptions{})
	assert.Equal(t, untouched, entries)
}

func TestResolveExpandDomains(t *testing.T) {
	content := `$ORIGIN example.com.
@ IN A 192.0.2.1
www IN A 192.0.2.2
mail.example.com. IN A 192.0.2.3
`
	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{ExpandDomains: true})

	assert.Equal(t, "example.com.", entries[1].Record.Domain)
	assert.Equal(t, "www.example.com.", entries[2].Record.Domain)
	// Fully qualified names are left alone.
	assert.Equal(t, "mail.example.com.", entries[3].Record.Domain)
}

func TestResolveOriginIsForwardOnly(t *testing.T) {
	content := `$ORIGIN alpha.test.
www IN A 192.0.2.1
$ORIGIN beta.test.
www IN A 192.0.2.2
`
	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{ExpandDomains: true})

	assert.Equal(t, "www.alpha.test.", entries[1].Record.Domain)
	assert.Equal(t, "www.beta.test.", entries[3].Record.Domain)
}

func TestResolveWithoutOriginLeavesNamesAlone(t *testing.T) {
	content := "www IN A 192.0.2.1\n@ IN A 192.0.2.2\n"

	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{ExpandDomains: true})

	assert.Equal(t, "www", entries[0].Record.Domain)
	assert.Equal(t, "@", entries[1].Record.Domain)
}

func TestResolveSkipsContinuationDomains(t *testing.T) {
	content := "$ORIGIN example.com.\nwww IN A 192.0.2.1\n    IN AAAA ::1\n"

	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{ExpandDomains: true})

	assert.Equal(t, "www.example.com.", entries[1].Record.Domain)
	assert.Equal(t, "", entries[2].Record.Domain)
}

func TestResolveInheritTTL(t *testing.T) {
	content := `before.example.com. IN NS ns.example.com.
$TTL 86400
example.com. IN NS ns.example.com.
explicit.example.com. 300 IN NS ns.example.com.
$TTL 7200
later.example.com. IN NS ns.example.com.
`
	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{InheritTTL: true})

	// No $TTL seen yet: stays absent.
	assert.Nil(t, entries[0].Record.TTL)
	assert.Equal(t, uint32ptr(86400), entries[2].Record.TTL)
	// An explicit TTL is never overwritten.
	assert.Equal(t, uint32ptr(300), entries[3].Record.TTL)
	// Later $TTL applies forward only.
	assert.Equal(t, uint32ptr(7200), entries[5].Record.TTL)
}

func TestResolveOptionsAreIndependent(t *testing.T) {
	content := "$ORIGIN example.com.\n$TTL 3600\nwww IN A 192.0.2.1\n"

	entries := mustParse(t, content)
	Resolve(entries, ResolveOptions{InheritTTL: true})
	assert.Equal(t, "www", entries[2].Record.Domain)
	assert.Equal(t, uint32ptr(3600), entries[2].Record.TTL)

	entries = mustParse(t, content)
	Resolve(entries, ResolveOptions{ExpandDomains: true})
	assert.Equal(t, "www.example.com.", entries[2].Record.Domain)
	assert.Nil(t, entries[2].Record.TTL)
}

func TestQualifyDomainName(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		origin string
		want   string
	}{
		{"at sign", "@", "example.com.", "example.com."},
		{"relative", "www", "example.com.", "www.example.com."},
		{"fqdn", "www.example.com.", "example.com.", "www.example.com."},
		{"empty continuation", "", "example.com.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qualifyDomainName(tt.domain, tt.origin))
		})
	}
}
