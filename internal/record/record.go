package record

import (
	"encoding/binary"
	"fmt"
)

// Known type tags, the only reliable discriminator between layouts observed
// in sample data.
const (
	TagSent4009     = 0x4009
	TagReceived400C = 0x400C
	TagLegacyPlain  = 0x0000
	TagLegacyTrsm   = 0x0002
)

const (
	typeTagOffset    = 10
	minimumRecordLen = typeTagOffset + 2
)

// Kind identifies the decoding strategy a type tag selects.
type Kind int

const (
	KindUnknown Kind = iota
	KindInbound4009Family
	KindOutboundLegacyA
	KindOutboundLegacyB
)

// Record is one raw entry from the messages database together with its type
// tag. The byte slice is never mutated, only sliced.
type Record struct {
	Raw  []byte
	Type uint16
}

// Parse validates that the blob is long enough to carry a type tag and reads
// the big-endian 16-bit tag at the fixed offset. Any tag value is acceptable;
// tags without a registered layout are handled downstream.
func Parse(raw []byte) (Record, error) {
	if len(raw) < minimumRecordLen {
		return Record{}, fmt.Errorf("malformed record: %d bytes, need at least %d to read the type tag", len(raw), minimumRecordLen)
	}
	return Record{
		Raw:  raw,
		Type: binary.BigEndian.Uint16(raw[typeTagOffset : typeTagOffset+2]),
	}, nil
}

// Kind classifies the record's type tag. Tags outside the known set are a
// recognized, permanent category for undeciphered formats, not an error.
func (r Record) Kind() Kind {
	switch r.Type {
	case TagSent4009, TagReceived400C:
		return KindInbound4009Family
	case TagLegacyPlain:
		return KindOutboundLegacyA
	case TagLegacyTrsm:
		return KindOutboundLegacyB
	default:
		return KindUnknown
	}
}

// TypeString returns the tag in the fixed-width hex form used in output.
func (r Record) TypeString() string {
	return fmt.Sprintf("0x%04X", r.Type)
}
