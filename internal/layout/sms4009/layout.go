// Package sms4009 decodes the newer message layout, tagged 0x400C for
// received and 0x4009 for sent messages. Offsets come from byte-level
// comparison of sample records; nothing about this format is documented.
package sms4009

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout/treo"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/options"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/palmtime"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/record"
)

const (
	tagSent     = record.TagSent4009
	tagReceived = record.TagReceived400C

	// The number always starts here; everything before it is header bytes
	// whose meaning is unknown apart from the type tag.
	numberOffset = 0x22

	// After the name terminator the trailer carries four undeciphered
	// bytes, the null-terminated body, two more undeciphered bytes, the
	// four-byte big-endian Palm timestamp, and whatever is left.
	unknown1Len  = 4
	unknown2Len  = 2
	timestampLen = 4
)

func init() {
	layout.Register(layout.Detection{Type: tagSent}, Layout{})
	layout.Register(layout.Detection{Type: tagReceived}, Layout{})
}

// Layout implements decoding for the 0x4009/0x400C message family.
type Layout struct{}

// Name returns the canonical layout name.
func (Layout) Name() string { return "sms4009" }

// Process extracts number, name, body and timestamp from the record.
// Extraction is best effort: a record that ends early degrades to empty
// fields rather than an error.
func (Layout) Process(ctx context.Context, rec *record.Record) (map[string]any, error) {
	cfg := options.FromContext(ctx)
	if len(rec.Raw) <= numberOffset {
		return nil, fmt.Errorf("malformed record: %d bytes is too short for a %s message", len(rec.Raw), rec.TypeString())
	}

	direction := layout.DirectionOutbound
	if rec.Type == tagReceived {
		direction = layout.DirectionInbound
	}
	fields := map[string]any{
		"device":    layout.DeviceName,
		"type":      rec.TypeString(),
		"direction": direction,
		"name":      "",
		"text":      "",
	}

	number, rest, ok := treo.NullTerminated(rec.Raw[numberOffset:])
	layout.SetNumber(fields, string(number))
	if !ok {
		// No terminator anywhere: the remainder is the number.
		if cfg.Debug >= options.DebugVerbose {
			logrus.Warnf("sms4009: %s record has no number terminator", rec.TypeString())
		}
		return fields, nil
	}

	name, trailer, ok := treo.NextField(rest)
	if !ok {
		if cfg.Debug >= options.DebugVerbose {
			logrus.Warnf("sms4009: %s record ends inside the name field", rec.TypeString())
		}
		return fields, nil
	}
	fields["name"] = string(name)

	text, stamp, residue, ok := splitTrailer(trailer)
	if !ok {
		// The whole trailer shape has to fit before any of it is trusted.
		if cfg.Debug >= options.DebugVerbose {
			logrus.Warnf("sms4009: %s record trailer is %d bytes, too short for body and timestamp", rec.TypeString(), len(trailer))
		}
		return fields, nil
	}
	fields["unknown1"] = treo.HexRange(trailer[:unknown1Len])
	fields["text"] = string(text)
	fields["unknown2"] = treo.HexRange(stamp[:unknown2Len])
	if len(residue) > 0 {
		fields["unknown3"] = treo.HexRange(residue)
	}

	wall := palmtime.WallClock(binary.BigEndian.Uint32(stamp[unknown2Len : unknown2Len+timestampLen]))
	epoch, ok := palmtime.Resolve(wall, cfg.Location)
	layout.SetEpoch(fields, epoch)
	if ok {
		fields["date"] = wall.Format(palmtime.DateFormat)
		fields["time"] = wall.Format(palmtime.TimeFormat)
	} else if cfg.Debug >= options.DebugVerbose {
		logrus.Warnf("sms4009: wall clock %s does not exist in zone %s", wall.Format("2006-01-02 15:04:05"), cfg.Location)
	}
	return fields, nil
}

// splitTrailer locates the message body and timestamp inside the trailer.
// The body runs from the fixed prefix to its null terminator; the stamp
// block (two undeciphered bytes plus the counter) must fit after it or the
// trailer does not match the known shape at all.
func splitTrailer(trailer []byte) (text, stamp, residue []byte, ok bool) {
	if len(trailer) < unknown1Len {
		return nil, nil, nil, false
	}
	body := trailer[unknown1Len:]
	i := bytes.IndexByte(body, 0)
	if i < 0 || len(body)-(i+1) < unknown2Len+timestampLen {
		return nil, nil, nil, false
	}
	stamp = body[i+1 : i+1+unknown2Len+timestampLen]
	return body[:i], stamp, body[i+1+unknown2Len+timestampLen:], true
}
