package zonefile

import (
	"fmt"
	"strconv"
	"strings"
)

// Column widths for record lines. Fields longer than their column simply
// push the rest of the line right.
const (
	domainWidth = 18
	ttlWidth    = 6
	classWidth  = 4
	typeWidth   = 8
)

// FormatOptions controls zone-file rendering.
type FormatOptions struct {
	// IncludeBlankLines inserts a blank line between consecutive records
	// of different types. Cosmetic only; the output reparses the same.
	IncludeBlankLines bool
}

// Format renders an entry sequence back into zone-file text, one line per
// entry in sequence order, with a trailing newline. The output is a
// structural round-trip: reparsing it yields the same entries, though not
// necessarily the same bytes as the original source.
func Format(entries []ZoneEntry, opts FormatOptions) string {
	var b strings.Builder
	lastType := ""
	for _, entry := range entries {
		switch entry.Type {
		case EntryTypeOrigin:
			b.WriteString("$ORIGIN " + entry.Origin.Domain + "\n")

		case EntryTypeTTL:
			b.WriteString("$TTL " + strconv.FormatUint(uint64(entry.TTL.Value), 10) + "\n")

		case EntryTypeRecord:
			if opts.IncludeBlankLines && lastType != "" && lastType != entry.Record.Type {
				b.WriteByte('\n')
			}
			lastType = entry.Record.Type
			b.WriteString(FormatRecord(entry.Record))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatRecord renders a single record line with aligned columns. A record
// whose Data does not match its Type mnemonic is a programming error and
// panics.
func FormatRecord(r *Record) string {
	codec, ok := rdataCodecs[r.Type]
	if !ok {
		panic(fmt.Sprintf("zonefile: unknown record type %q", r.Type))
	}

	// The TTL column stays empty on continuation lines: with no owner
	// name of its own, the line should inherit everything from context.
	ttl := ""
	if r.TTL != nil && r.Domain != "" {
		ttl = strconv.FormatUint(uint64(*r.TTL), 10)
	}

	line := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		domainWidth, r.Domain,
		ttlWidth, ttl,
		classWidth, r.Class,
		typeWidth, r.Type,
		codec.encode(r.Data))
	return strings.TrimRight(line, " ")
}
