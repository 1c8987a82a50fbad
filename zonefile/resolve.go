package zonefile

import "strings"

// ResolveOptions selects which fields the resolution pass rewrites. The
// zero value makes Resolve a no-op.
type ResolveOptions struct {
	ExpandDomains bool
	InheritTTL    bool
}

// resolveState is the running $ORIGIN/$TTL context of the left-to-right
// sweep. Directives only affect entries after them.
type resolveState struct {
	origin string
	ttl    *uint32
}

// Resolve sweeps the entry sequence once, updating the running state on
// directives and rewriting records in place per opts. Length and order are
// untouched; records are only ever touched in their Domain and TTL fields.
func Resolve(entries []ZoneEntry, opts ResolveOptions) {
	if !opts.ExpandDomains && !opts.InheritTTL {
		return
	}

	var st resolveState
	for i := range entries {
		entry := &entries[i]
		switch entry.Type {
		case EntryTypeOrigin:
			st.origin = entry.Origin.Domain

		case EntryTypeTTL:
			v := entry.TTL.Value
			st.ttl = &v

		case EntryTypeRecord:
			rec := entry.Record
			if opts.InheritTTL && rec.TTL == nil && st.ttl != nil {
				v := *st.ttl
				rec.TTL = &v
			}
			if opts.ExpandDomains && st.origin != "" {
				rec.Domain = qualifyDomainName(rec.Domain, st.origin)
			}
		}
	}
}

// qualifyDomainName resolves a name against the current origin. Fully
// qualified names and the empty continuation marker pass through unchanged.
func qualifyDomainName(name, origin string) string {
	if name == "@" {
		return origin
	}
	if name != "" && !strings.HasSuffix(name, ".") {
		return name + "." + origin
	}
	return name
}
