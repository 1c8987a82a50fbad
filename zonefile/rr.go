package zonefile

import (
	"fmt"

	"github.com/miekg/dns"
)

// RR converts the record into a miekg/dns resource record, so parsed zones
// can feed DNS servers and resolvers built on that library. The record must
// carry an owner name; continuation lines have to be resolved first (see
// Resolve or RRs). miekg/dns applies its own semantic validation here, which
// the parser deliberately skips.
func (r *Record) RR() (dns.RR, error) {
	if r.Domain == "" {
		return nil, fmt.Errorf("cannot convert %s record without an owner name", r.Type)
	}
	rr, err := dns.NewRR(FormatRecord(r))
	if err != nil {
		return nil, fmt.Errorf("converting %s record for %s: %w", r.Type, r.Domain, err)
	}
	return rr, nil
}

// RRs converts a whole entry sequence into miekg/dns resource records,
// applying $ORIGIN and $TTL context the way the resolution pass does. The
// input entries are left untouched.
func RRs(entries []ZoneEntry) ([]dns.RR, error) {
	rrs := make([]dns.RR, 0, len(entries))

	var st resolveState
	for _, entry := range entries {
		switch entry.Type {
		case EntryTypeOrigin:
			st.origin = entry.Origin.Domain

		case EntryTypeTTL:
			v := entry.TTL.Value
			st.ttl = &v

		case EntryTypeRecord:
			rec := *entry.Record
			if rec.TTL == nil && st.ttl != nil {
				v := *st.ttl
				rec.TTL = &v
			}
			if st.origin != "" {
				rec.Domain = qualifyDomainName(rec.Domain, st.origin)
			}
			rr, err := rec.RR()
			if err != nil {
				return nil, err
			}
			rrs = append(rrs, rr)
		}
	}

	return rrs, nil
}
