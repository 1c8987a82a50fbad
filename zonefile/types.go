package zonefile

import "net"

// EntryType represents the type of zone file entry
type EntryType int

const (
	EntryTypeRecord EntryType = iota
	EntryTypeTTL
	EntryTypeOrigin
)

// TTLDirective represents a $TTL directive
type TTLDirective struct {
	Value uint32
}

// OriginDirective represents an $ORIGIN directive
type OriginDirective struct {
	Domain string
}

// ZoneEntry represents any entry in a zone file. Entries keep the order
// they appeared in; the sequence is never resorted.
type ZoneEntry struct {
	Type EntryType

	// Entry data - only one of these will be populated based on Type
	Record *Record
	TTL    *TTLDirective
	Origin *OriginDirective
}

// Record is a single resource record line. An empty Domain marks a
// continuation line whose owner name was omitted in the source; the parser
// never fills it in from the previous record.
type Record struct {
	Domain string
	TTL    *uint32 // nil when the line carried no TTL
	Class  string
	Type   string // record-type mnemonic, e.g. "MX"
	Data   RData
}

// RData is the type-specific payload of a record. Its concrete type is
// determined by the record's mnemonic; the correspondence is closed over
// the types registered in rdataCodecs.
type RData interface {
	rdata()
}

// A record (IPv4 address). The address is kept as the raw token; it is not
// checked for IPv4 shape.
type AData struct {
	Address string
}

// AAAA record (IPv6 address)
type AAAAData struct {
	Address net.IP
}

// CNAME record (canonical name)
type CNAMEData struct {
	Target string
}

// DNAME record (delegation name)
type DNAMEData struct {
	Target string
}

// MX record (mail exchange)
type MXData struct {
	Priority uint32
	Mail     string
}

// TXT record (text data)
type TXTData struct {
	Text string
}

// SPF record (sender policy framework)
type SPFData struct {
	Text string
}

// NS record (name server)
type NSData struct {
	NameServer string
}

// SOA record (start of authority)
type SOAData struct {
	PrimaryNS  string
	Email      string
	Serial     uint32
	Refresh    uint32
	Retry      uint32
	Expire     uint32
	MinimumTTL uint32
}

// PTR record (pointer)
type PTRData struct {
	Pointer string
}

// SRV record (service location)
type SRVData struct {
	Priority uint32
	Weight   uint32
	Port     uint32
	Target   string
}

// CAA record (certification authority authorization)
type CAAData struct {
	Flags uint32
	Tag   string
	Value string
}

// HINFO record (host information)
type HINFOData struct {
	CPU string
	OS  string
}

// NAPTR record (naming authority pointer)
type NAPTRData struct {
	Order       uint32
	Preference  uint32
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

// DNSKEY record (DNSSEC public key). The key material is kept as an opaque
// Base64 string.
type DNSKEYData struct {
	Flags     uint32
	Protocol  uint32
	Algorithm uint32
	PublicKey string
}

// DS record (delegation signer)
type DSData struct {
	KeyTag     uint32
	Algorithm  uint32
	DigestType uint32
	Digest     string
}

// RRSIG record (DNSSEC signature). Expiration and Inception are the raw
// numeric timestamps from the file (either epoch seconds or YYYYMMDDHHmmSS).
type RRSIGData struct {
	TypeCovered string
	Algorithm   uint32
	Labels      uint32
	OriginalTTL uint32
	Expiration  uint64
	Inception   uint64
	KeyTag      uint32
	Signer      string
	Signature   string
}

// NSEC record (next secure). Types keeps the order from the file.
type NSECData struct {
	NextDomain string
	Types      []string
}

// TLSA record (TLS association)
type TLSAData struct {
	Usage        uint32
	Selector     uint32
	MatchingType uint32
	Certificate  string
}

// SSHFP record (SSH fingerprint)
type SSHFPData struct {
	Algorithm       uint32
	FingerprintType uint32
	Fingerprint     string
}

// LOC record (location). The content is kept as one opaque string, not
// decomposed into coordinates.
type LOCData struct {
	Content string
}

// ZONEMD record (zone message digest)
type ZONEMDData struct {
	Serial   uint32
	Scheme   uint32
	HashAlgo uint32
	Digest   string
}

func (AData) rdata()      {}
func (AAAAData) rdata()   {}
func (CNAMEData) rdata()  {}
func (DNAMEData) rdata()  {}
func (MXData) rdata()     {}
func (TXTData) rdata()    {}
func (SPFData) rdata()    {}
func (NSData) rdata()     {}
func (SOAData) rdata()    {}
func (PTRData) rdata()    {}
func (SRVData) rdata()    {}
func (CAAData) rdata()    {}
func (HINFOData) rdata()  {}
func (NAPTRData) rdata()  {}
func (DNSKEYData) rdata() {}
func (DSData) rdata()     {}
func (RRSIGData) rdata()  {}
func (NSECData) rdata()   {}
func (TLSAData) rdata()   {}
func (SSHFPData) rdata()  {}
func (LOCData) rdata()    {}
func (ZONEMDData) rdata() {}
