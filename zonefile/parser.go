// Package zonefile parses and serializes BIND-style DNS zone files
// (RFC 1035 master-file format). It supports the standard record types
// including A, AAAA, CNAME, MX, TXT, NS, SOA, PTR, SRV, CAA, DNSKEY, DS,
// RRSIG, NSEC, TLSA, SSHFP, DNAME, NAPTR, LOC, HINFO, SPF and ZONEMD, plus
// the $ORIGIN and $TTL directives. The parser performs no semantic
// validation of record contents; what the file says is what you get.
package zonefile

import "strconv"

// ClassIN is the conventional class for records that omit one.
const ClassIN = "IN"

// ParseOptions selects the post-parse resolution behavior. The zero value
// leaves the parsed entries exactly as written.
type ParseOptions struct {
	// ExpandDomains rewrites "@" and relative owner names against the
	// current $ORIGIN.
	ExpandDomains bool
	// InheritTTL fills absent record TTLs from the most recent $TTL.
	InheritTTL bool
}

// Parse converts zone-file text into its ordered entry sequence. It returns
// a *SyntaxError pointing at the first token no grammar alternative could
// match; there is no per-line recovery.
func Parse(text string, opts ParseOptions) ([]ZoneEntry, error) {
	lines, err := scanLines(text)
	if err != nil {
		return nil, err
	}

	entries := make([]ZoneEntry, 0, len(lines))
	for _, ln := range lines {
		entry, err := parseLine(ln)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if opts.ExpandDomains || opts.InheritTTL {
		Resolve(entries, ResolveOptions{
			ExpandDomains: opts.ExpandDomains,
			InheritTTL:    opts.InheritTTL,
		})
	}

	return entries, nil
}

// parseLine recognizes one logical line as a directive or a record.
func parseLine(ln logicalLine) (ZoneEntry, error) {
	first := ln.toks[0]
	if !first.quoted && len(first.text) > 0 && first.text[0] == '$' {
		return parseDirective(ln)
	}
	return parseRecord(ln)
}

// parseDirective handles $ORIGIN and $TTL. Anything else starting with '$'
// ($INCLUDE and $GENERATE included) is outside the supported set.
func parseDirective(ln logicalLine) (ZoneEntry, error) {
	name := ln.toks[0]

	switch name.text {
	case "$ORIGIN":
		if len(ln.toks) < 2 {
			return ZoneEntry{}, syntaxErrorf(ln.endLine, ln.endCol, "missing $ORIGIN domain")
		}
		domain := ln.toks[1]
		if domain.quoted {
			return ZoneEntry{}, errAt(domain, "invalid $ORIGIN domain: quoted string not allowed")
		}
		if len(ln.toks) > 2 {
			return ZoneEntry{}, errAt(ln.toks[2], "unexpected token %q after $ORIGIN", ln.toks[2].text)
		}
		return ZoneEntry{
			Type:   EntryTypeOrigin,
			Origin: &OriginDirective{Domain: domain.text},
		}, nil

	case "$TTL":
		if len(ln.toks) < 2 {
			return ZoneEntry{}, syntaxErrorf(ln.endLine, ln.endCol, "missing $TTL value")
		}
		value := ln.toks[1]
		ttl, err := strconv.ParseUint(value.text, 10, 32)
		if err != nil || value.quoted {
			return ZoneEntry{}, errAt(value, "invalid $TTL value %q", value.text)
		}
		if len(ln.toks) > 2 {
			return ZoneEntry{}, errAt(ln.toks[2], "unexpected token %q after $TTL", ln.toks[2].text)
		}
		return ZoneEntry{
			Type: EntryTypeTTL,
			TTL:  &TTLDirective{Value: uint32(ttl)},
		}, nil

	default:
		return ZoneEntry{}, errAt(name, "unknown directive %q", name.text)
	}
}

// parseRecord handles the "[domain] [ttl] [class] type rdata..." grammar.
// The owner name is present only when the line starts at column one; a line
// indented by whitespace is a continuation and keeps an empty Domain.
func parseRecord(ln logicalLine) (ZoneEntry, error) {
	toks := ln.toks
	i := 0

	domain := ""
	if toks[0].col == 1 && !toks[0].quoted {
		domain = toks[0].text
		i++
	}

	// TTL and class are both optional and may appear in either order
	// before the type mnemonic.
	var ttl *uint32
	class := ""
	typeName := ""
	for typeName == "" {
		if i >= len(toks) {
			return ZoneEntry{}, syntaxErrorf(ln.endLine, ln.endCol, "missing record type")
		}
		t := toks[i]
		switch {
		case t.quoted:
			return ZoneEntry{}, errAt(t, "unexpected quoted string %q before record type", t.text)
		case isKnownRRType(t.text):
			typeName = t.text
		case ttl == nil && isNumeric(t.text):
			v, err := strconv.ParseUint(t.text, 10, 32)
			if err != nil {
				return ZoneEntry{}, errAt(t, "invalid TTL %q", t.text)
			}
			ttl32 := uint32(v)
			ttl = &ttl32
		case class == "":
			class = t.text
		default:
			return ZoneEntry{}, errAt(t, "unknown record type %q", t.text)
		}
		i++
	}
	if class == "" {
		class = ClassIN
	}

	reader := &fieldReader{
		toks:    toks[i:],
		endLine: ln.endLine,
		endCol:  ln.endCol,
	}
	data, err := rdataCodecs[typeName].decode(reader)
	if err != nil {
		return ZoneEntry{}, err
	}
	if reader.remaining() > 0 {
		extra := reader.toks[reader.pos]
		return ZoneEntry{}, errAt(extra, "unexpected token %q after %s record data", extra.text, typeName)
	}

	return ZoneEntry{
		Type: EntryTypeRecord,
		Record: &Record{
			Domain: domain,
			TTL:    ttl,
			Class:  class,
			Type:   typeName,
			Data:   data,
		},
	}, nil
}

// isNumeric checks if a string is a base-10 non-negative integer
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
