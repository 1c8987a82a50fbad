package zonefile

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// rdataCodec pairs the decoder and encoder for one record type. rdataCodecs
// is the closed set of supported mnemonics; adding a type means adding one
// row here plus its data shape in types.go.
type rdataCodec struct {
	decode func(r *fieldReader) (RData, error)
	encode func(d RData) string
}

var rdataCodecs = map[string]rdataCodec{
	"A":      {decodeA, encodeA},
	"AAAA":   {decodeAAAA, encodeAAAA},
	"CNAME":  {decodeCNAME, encodeCNAME},
	"DNAME":  {decodeDNAME, encodeDNAME},
	"MX":     {decodeMX, encodeMX},
	"TXT":    {decodeTXT, encodeTXT},
	"SPF":    {decodeSPF, encodeSPF},
	"NS":     {decodeNS, encodeNS},
	"SOA":    {decodeSOA, encodeSOA},
	"PTR":    {decodePTR, encodePTR},
	"SRV":    {decodeSRV, encodeSRV},
	"CAA":    {decodeCAA, encodeCAA},
	"HINFO":  {decodeHINFO, encodeHINFO},
	"NAPTR":  {decodeNAPTR, encodeNAPTR},
	"DNSKEY": {decodeDNSKEY, encodeDNSKEY},
	"DS":     {decodeDS, encodeDS},
	"RRSIG":  {decodeRRSIG, encodeRRSIG},
	"NSEC":   {decodeNSEC, encodeNSEC},
	"TLSA":   {decodeTLSA, encodeTLSA},
	"SSHFP":  {decodeSSHFP, encodeSSHFP},
	"LOC":    {decodeLOC, encodeLOC},
	"ZONEMD": {decodeZONEMD, encodeZONEMD},
}

// isKnownRRType checks if a string is a known DNS record type
func isKnownRRType(s string) bool {
	_, ok := rdataCodecs[s]
	return ok
}

// fieldReader walks the rdata tokens of one logical line. Missing-field
// errors point just past the last token of the line.
type fieldReader struct {
	toks    []token
	pos     int
	endLine int
	endCol  int
}

func (r *fieldReader) next(what string) (token, error) {
	if r.pos >= len(r.toks) {
		return token{}, syntaxErrorf(r.endLine, r.endCol, "missing %s", what)
	}
	t := r.toks[r.pos]
	r.pos++
	return t, nil
}

func (r *fieldReader) remaining() int {
	return len(r.toks) - r.pos
}

// stringField accepts a quoted string or a single bare token.
func (r *fieldReader) stringField(what string) (string, error) {
	t, err := r.next(what)
	return t.text, err
}

// nameField accepts a bare token; domain names and mnemonics are never quoted.
func (r *fieldReader) nameField(what string) (string, error) {
	t, err := r.next(what)
	if err != nil {
		return "", err
	}
	if t.quoted {
		return "", errAt(t, "invalid %s: quoted string not allowed", what)
	}
	return t.text, nil
}

// uintField parses a base-10 non-negative integer. No record-specific range
// check is applied (a 16-bit wire field still accepts any 32-bit value here).
func (r *fieldReader) uintField(what string) (uint32, error) {
	t, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseUint(t.text, 10, 32)
	if perr != nil || t.quoted {
		return 0, errAt(t, "invalid %s %q", what, t.text)
	}
	return uint32(v), nil
}

// uint64Field is uintField for values that exceed 32 bits in presentation
// form (RRSIG YYYYMMDDHHmmSS timestamps).
func (r *fieldReader) uint64Field(what string) (uint64, error) {
	t, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseUint(t.text, 10, 64)
	if perr != nil || t.quoted {
		return 0, errAt(t, "invalid %s %q", what, t.text)
	}
	return v, nil
}

// blobField consumes every remaining token and concatenates them: Base64
// and hex material may be split across whitespace inside a continuation.
func (r *fieldReader) blobField(what string) (string, error) {
	if r.remaining() == 0 {
		return "", syntaxErrorf(r.endLine, r.endCol, "missing %s", what)
	}
	var b strings.Builder
	for ; r.pos < len(r.toks); r.pos++ {
		b.WriteString(r.toks[r.pos].text)
	}
	return b.String(), nil
}

// restField consumes every remaining token, space-joined (LOC content).
func (r *fieldReader) restField(what string) (string, error) {
	if r.remaining() == 0 {
		return "", syntaxErrorf(r.endLine, r.endCol, "missing %s", what)
	}
	parts := make([]string, 0, r.remaining())
	for ; r.pos < len(r.toks); r.pos++ {
		parts = append(parts, r.toks[r.pos].text)
	}
	return strings.Join(parts, " "), nil
}

// Deliberately permissive: the A address is captured as-is without IPv4
// validation, while AAAA below does require valid IPv6. Keep the asymmetry.
func decodeA(r *fieldReader) (RData, error) {
	addr, err := r.nameField("A record address")
	if err != nil {
		return nil, err
	}
	return AData{Address: addr}, nil
}

func decodeAAAA(r *fieldReader) (RData, error) {
	t, err := r.next("AAAA record address")
	if err != nil {
		return nil, err
	}
	ip := net.ParseIP(t.text)
	if t.quoted || ip == nil {
		return nil, errAt(t, "invalid AAAA record address %q", t.text)
	}
	if ip.To4() != nil {
		return nil, errAt(t, "AAAA record must be an IPv6 address, got %q", t.text)
	}
	return AAAAData{Address: ip}, nil
}

func decodeCNAME(r *fieldReader) (RData, error) {
	target, err := r.nameField("CNAME record target")
	if err != nil {
		return nil, err
	}
	return CNAMEData{Target: target}, nil
}

func decodeDNAME(r *fieldReader) (RData, error) {
	target, err := r.nameField("DNAME record target")
	if err != nil {
		return nil, err
	}
	return DNAMEData{Target: target}, nil
}

func decodeMX(r *fieldReader) (RData, error) {
	priority, err := r.uintField("MX priority")
	if err != nil {
		return nil, err
	}
	mail, err := r.nameField("MX mail server")
	if err != nil {
		return nil, err
	}
	return MXData{Priority: priority, Mail: mail}, nil
}

func decodeTXT(r *fieldReader) (RData, error) {
	text, err := r.stringField("TXT record text")
	if err != nil {
		return nil, err
	}
	return TXTData{Text: text}, nil
}

func decodeSPF(r *fieldReader) (RData, error) {
	text, err := r.stringField("SPF record text")
	if err != nil {
		return nil, err
	}
	return SPFData{Text: text}, nil
}

func decodeNS(r *fieldReader) (RData, error) {
	ns, err := r.nameField("NS record name server")
	if err != nil {
		return nil, err
	}
	return NSData{NameServer: ns}, nil
}

func decodeSOA(r *fieldReader) (RData, error) {
	primaryNS, err := r.nameField("SOA primary name server")
	if err != nil {
		return nil, err
	}
	email, err := r.nameField("SOA contact")
	if err != nil {
		return nil, err
	}
	serial, err := r.uintField("SOA serial")
	if err != nil {
		return nil, err
	}
	refresh, err := r.uintField("SOA refresh")
	if err != nil {
		return nil, err
	}
	retry, err := r.uintField("SOA retry")
	if err != nil {
		return nil, err
	}
	expire, err := r.uintField("SOA expire")
	if err != nil {
		return nil, err
	}
	minimumTTL, err := r.uintField("SOA minimum TTL")
	if err != nil {
		return nil, err
	}
	return SOAData{
		PrimaryNS:  primaryNS,
		Email:      email,
		Serial:     serial,
		Refresh:    refresh,
		Retry:      retry,
		Expire:     expire,
		MinimumTTL: minimumTTL,
	}, nil
}

func decodePTR(r *fieldReader) (RData, error) {
	pointer, err := r.nameField("PTR record pointer")
	if err != nil {
		return nil, err
	}
	return PTRData{Pointer: pointer}, nil
}

func decodeSRV(r *fieldReader) (RData, error) {
	priority, err := r.uintField("SRV priority")
	if err != nil {
		return nil, err
	}
	weight, err := r.uintField("SRV weight")
	if err != nil {
		return nil, err
	}
	port, err := r.uintField("SRV port")
	if err != nil {
		return nil, err
	}
	target, err := r.nameField("SRV target")
	if err != nil {
		return nil, err
	}
	return SRVData{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func decodeCAA(r *fieldReader) (RData, error) {
	flags, err := r.uintField("CAA flags")
	if err != nil {
		return nil, err
	}
	tag, err := r.nameField("CAA tag")
	if err != nil {
		return nil, err
	}
	value, err := r.stringField("CAA value")
	if err != nil {
		return nil, err
	}
	return CAAData{Flags: flags, Tag: tag, Value: value}, nil
}

func decodeHINFO(r *fieldReader) (RData, error) {
	cpu, err := r.stringField("HINFO cpu")
	if err != nil {
		return nil, err
	}
	os, err := r.stringField("HINFO os")
	if err != nil {
		return nil, err
	}
	return HINFOData{CPU: cpu, OS: os}, nil
}

func decodeNAPTR(r *fieldReader) (RData, error) {
	order, err := r.uintField("NAPTR order")
	if err != nil {
		return nil, err
	}
	preference, err := r.uintField("NAPTR preference")
	if err != nil {
		return nil, err
	}
	flags, err := r.stringField("NAPTR flags")
	if err != nil {
		return nil, err
	}
	service, err := r.stringField("NAPTR service")
	if err != nil {
		return nil, err
	}
	regexp, err := r.stringField("NAPTR regexp")
	if err != nil {
		return nil, err
	}
	replacement, err := r.nameField("NAPTR replacement")
	if err != nil {
		return nil, err
	}
	return NAPTRData{
		Order:       order,
		Preference:  preference,
		Flags:       flags,
		Service:     service,
		Regexp:      regexp,
		Replacement: replacement,
	}, nil
}

func decodeDNSKEY(r *fieldReader) (RData, error) {
	flags, err := r.uintField("DNSKEY flags")
	if err != nil {
		return nil, err
	}
	protocol, err := r.uintField("DNSKEY protocol")
	if err != nil {
		return nil, err
	}
	algorithm, err := r.uintField("DNSKEY algorithm")
	if err != nil {
		return nil, err
	}
	publicKey, err := r.blobField("DNSKEY public key")
	if err != nil {
		return nil, err
	}
	return DNSKEYData{Flags: flags, Protocol: protocol, Algorithm: algorithm, PublicKey: publicKey}, nil
}

func decodeDS(r *fieldReader) (RData, error) {
	keyTag, err := r.uintField("DS key tag")
	if err != nil {
		return nil, err
	}
	algorithm, err := r.uintField("DS algorithm")
	if err != nil {
		return nil, err
	}
	digestType, err := r.uintField("DS digest type")
	if err != nil {
		return nil, err
	}
	digest, err := r.blobField("DS digest")
	if err != nil {
		return nil, err
	}
	return DSData{KeyTag: keyTag, Algorithm: algorithm, DigestType: digestType, Digest: digest}, nil
}

func decodeRRSIG(r *fieldReader) (RData, error) {
	typeCovered, err := r.nameField("RRSIG type covered")
	if err != nil {
		return nil, err
	}
	algorithm, err := r.uintField("RRSIG algorithm")
	if err != nil {
		return nil, err
	}
	labels, err := r.uintField("RRSIG labels")
	if err != nil {
		return nil, err
	}
	originalTTL, err := r.uintField("RRSIG original TTL")
	if err != nil {
		return nil, err
	}
	expiration, err := r.uint64Field("RRSIG expiration")
	if err != nil {
		return nil, err
	}
	inception, err := r.uint64Field("RRSIG inception")
	if err != nil {
		return nil, err
	}
	keyTag, err := r.uintField("RRSIG key tag")
	if err != nil {
		return nil, err
	}
	signer, err := r.nameField("RRSIG signer")
	if err != nil {
		return nil, err
	}
	signature, err := r.blobField("RRSIG signature")
	if err != nil {
		return nil, err
	}
	return RRSIGData{
		TypeCovered: typeCovered,
		Algorithm:   algorithm,
		Labels:      labels,
		OriginalTTL: originalTTL,
		Expiration:  expiration,
		Inception:   inception,
		KeyTag:      keyTag,
		Signer:      signer,
		Signature:   signature,
	}, nil
}

func decodeNSEC(r *fieldReader) (RData, error) {
	next, err := r.nameField("NSEC next domain")
	if err != nil {
		return nil, err
	}
	if r.remaining() == 0 {
		return nil, syntaxErrorf(r.endLine, r.endCol, "missing NSEC type list")
	}
	types := make([]string, 0, r.remaining())
	for r.remaining() > 0 {
		typ, err := r.nameField("NSEC type")
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
	}
	return NSECData{NextDomain: next, Types: types}, nil
}

func decodeTLSA(r *fieldReader) (RData, error) {
	usage, err := r.uintField("TLSA usage")
	if err != nil {
		return nil, err
	}
	selector, err := r.uintField("TLSA selector")
	if err != nil {
		return nil, err
	}
	matchingType, err := r.uintField("TLSA matching type")
	if err != nil {
		return nil, err
	}
	certificate, err := r.blobField("TLSA certificate data")
	if err != nil {
		return nil, err
	}
	return TLSAData{Usage: usage, Selector: selector, MatchingType: matchingType, Certificate: certificate}, nil
}

func decodeSSHFP(r *fieldReader) (RData, error) {
	algorithm, err := r.uintField("SSHFP algorithm")
	if err != nil {
		return nil, err
	}
	fpType, err := r.uintField("SSHFP fingerprint type")
	if err != nil {
		return nil, err
	}
	fingerprint, err := r.blobField("SSHFP fingerprint")
	if err != nil {
		return nil, err
	}
	return SSHFPData{Algorithm: algorithm, FingerprintType: fpType, Fingerprint: fingerprint}, nil
}

func decodeLOC(r *fieldReader) (RData, error) {
	content, err := r.restField("LOC record data")
	if err != nil {
		return nil, err
	}
	return LOCData{Content: content}, nil
}

func decodeZONEMD(r *fieldReader) (RData, error) {
	serial, err := r.uintField("ZONEMD serial")
	if err != nil {
		return nil, err
	}
	scheme, err := r.uintField("ZONEMD scheme")
	if err != nil {
		return nil, err
	}
	hashAlgo, err := r.uintField("ZONEMD hash algorithm")
	if err != nil {
		return nil, err
	}
	digest, err := r.blobField("ZONEMD digest")
	if err != nil {
		return nil, err
	}
	return ZONEMDData{Serial: serial, Scheme: scheme, HashAlgo: hashAlgo, Digest: digest}, nil
}

// quote wraps a field in double quotes without escaping; zone-file strings
// carry no escape grammar here.
func quote(s string) string {
	return "\"" + s + "\""
}

// quoteIfSpaced quotes only when the text would not survive as a single
// bare token: it splits on whitespace, or it is empty and would vanish
// from the line entirely.
func quoteIfSpaced(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return quote(s)
	}
	return s
}

func encodeA(d RData) string {
	return d.(AData).Address
}

func encodeAAAA(d RData) string {
	return d.(AAAAData).Address.String()
}

func encodeCNAME(d RData) string {
	return d.(CNAMEData).Target
}

func encodeDNAME(d RData) string {
	return d.(DNAMEData).Target
}

func encodeMX(d RData) string {
	mx := d.(MXData)
	return fmt.Sprintf("%d %s", mx.Priority, mx.Mail)
}

func encodeTXT(d RData) string {
	return quoteIfSpaced(d.(TXTData).Text)
}

func encodeSPF(d RData) string {
	return quote(d.(SPFData).Text)
}

func encodeNS(d RData) string {
	return d.(NSData).NameServer
}

func encodeSOA(d RData) string {
	soa := d.(SOAData)
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		soa.PrimaryNS, soa.Email, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.MinimumTTL)
}

func encodePTR(d RData) string {
	return d.(PTRData).Pointer
}

func encodeSRV(d RData) string {
	srv := d.(SRVData)
	return fmt.Sprintf("%d %d %d %s", srv.Priority, srv.Weight, srv.Port, srv.Target)
}

func encodeCAA(d RData) string {
	caa := d.(CAAData)
	return fmt.Sprintf("%d %s %s", caa.Flags, caa.Tag, quote(caa.Value))
}

func encodeHINFO(d RData) string {
	hinfo := d.(HINFOData)
	return fmt.Sprintf("%s %s", quote(hinfo.CPU), quote(hinfo.OS))
}

func encodeNAPTR(d RData) string {
	naptr := d.(NAPTRData)
	return fmt.Sprintf("%d %d %s %s %s %s",
		naptr.Order, naptr.Preference,
		quote(naptr.Flags), quote(naptr.Service), quote(naptr.Regexp),
		naptr.Replacement)
}

func encodeDNSKEY(d RData) string {
	key := d.(DNSKEYData)
	return fmt.Sprintf("%d %d %d %s", key.Flags, key.Protocol, key.Algorithm, key.PublicKey)
}

func encodeDS(d RData) string {
	ds := d.(DSData)
	return fmt.Sprintf("%d %d %d %s", ds.KeyTag, ds.Algorithm, ds.DigestType, ds.Digest)
}

func encodeRRSIG(d RData) string {
	sig := d.(RRSIGData)
	return fmt.Sprintf("%s %d %d %d %d %d %d %s %s",
		sig.TypeCovered, sig.Algorithm, sig.Labels, sig.OriginalTTL,
		sig.Expiration, sig.Inception, sig.KeyTag, sig.Signer, sig.Signature)
}

func encodeNSEC(d RData) string {
	nsec := d.(NSECData)
	return nsec.NextDomain + " " + strings.Join(nsec.Types, " ")
}

func encodeTLSA(d RData) string {
	tlsa := d.(TLSAData)
	return fmt.Sprintf("%d %d %d %s", tlsa.Usage, tlsa.Selector, tlsa.MatchingType, tlsa.Certificate)
}

func encodeSSHFP(d RData) string {
	fp := d.(SSHFPData)
	return fmt.Sprintf("%d %d %s", fp.Algorithm, fp.FingerprintType, fp.Fingerprint)
}

func encodeLOC(d RData) string {
	return d.(LOCData).Content
}

func encodeZONEMD(d RData) string {
	md := d.(ZONEMDData)
	return fmt.Sprintf("%d %d %d %s", md.Serial, md.Scheme, md.HashAlgo, md.Digest)
}
