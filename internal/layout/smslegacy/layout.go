// Package smslegacy decodes the two older sent-message layouts, tagged
// 0x0000 and 0x0002. Their field boundaries are less well understood than
// the 0x4009 family: observed behaviour is reproduced exactly, including the
// overlapping split-then-truncate rules, rather than normalized.
package smslegacy

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout/treo"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/options"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/record"
)

const (
	tagPlain = record.TagLegacyPlain
	tagTrsm  = record.TagLegacyTrsm

	offsetPlain = 0x4C
	offsetTrsm  = 0x46

	// Both variants carry a 9-byte header of unknown meaning in front of
	// the message body.
	messageHeaderLen = 9

	maxSplitParts = 3
)

// The 0x0002 header has a recognizable shape: one arbitrary byte, the
// literal Trsm, four arbitrary bytes.
var trsmLiteral = []byte("Trsm")

func hasTrsmHeader(message []byte) bool {
	return len(message) >= messageHeaderLen && bytes.Equal(message[1:5], trsmLiteral)
}

func init() {
	layout.Register(layout.Detection{Type: tagPlain}, Layout{tag: tagPlain, offset: offsetPlain, name: "legacy-plain"})
	layout.Register(layout.Detection{Type: tagTrsm}, Layout{tag: tagTrsm, offset: offsetTrsm, name: "legacy-trsm"})
}

// Layout implements decoding for one of the legacy sent-message variants.
type Layout struct {
	tag    uint16
	offset int
	name   string
}

// Name returns the canonical layout name.
func (l Layout) Name() string { return l.name }

// Process splits the record body on null runs into number, name and message,
// then strips the message header and truncates at the first remaining null.
// These records never carry a timestamp.
func (l Layout) Process(ctx context.Context, rec *record.Record) (map[string]any, error) {
	cfg := options.FromContext(ctx)
	if len(rec.Raw) <= l.offset {
		return nil, fmt.Errorf("malformed record: %d bytes is too short for a %s message", len(rec.Raw), rec.TypeString())
	}

	fields := map[string]any{
		"device":    layout.DeviceName,
		"type":      rec.TypeString(),
		"direction": layout.DirectionOutbound,
		"name":      "",
		"text":      "",
	}

	parts := treo.SplitNullRuns(rec.Raw[l.offset:], maxSplitParts)
	var number, name, message []byte
	number = parts[0]
	if len(parts) > 1 {
		name = parts[1]
	}
	if len(parts) > 2 {
		message = parts[2]
	}
	layout.SetNumber(fields, string(number))
	fields["name"] = string(name)

	message = l.stripHeader(message, cfg)
	text, _, _ := treo.NullTerminated(message)
	fields["text"] = string(text)
	return fields, nil
}

func (l Layout) stripHeader(message []byte, cfg *options.Config) []byte {
	if l.tag == tagPlain {
		if len(message) < messageHeaderLen {
			return nil
		}
		return message[messageHeaderLen:]
	}
	if hasTrsmHeader(message) {
		return message[messageHeaderLen:]
	}
	if cfg.Debug >= options.DebugVerbose {
		logrus.Warnf("smslegacy: %s message lacks the Trsm-shaped header", l.name)
	}
	return message
}
