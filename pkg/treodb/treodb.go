// Package treodb decodes the reverse-engineered binary SMS records found in
// a Treo 680 messages database. Callers hand it one raw record at a time;
// the enclosing database container format is someone else's problem.
package treodb

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/hexdump"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout"
	_ "github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout/sms4009"   // register layout
	_ "github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/layout/smslegacy" // register layout
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/options"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/record"
)

// UnknownType marks record types that have not been deciphered. Meeting one
// is normal operation, not an error.
const UnknownType = "unknown"

// Result captures the outcome of decoding one record.
type Result struct {
	Layout    string
	Type      string
	Direction string
	ByteCount int
	Record    *record.Record
	Fields    map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"layout":     r.Layout,
		"type":       r.Type,
		"byte_count": r.ByteCount,
	}
	if r.Direction != "" {
		summary["direction"] = r.Direction
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("layout: %s type:%s bytes:%d (marshal error: %v)", r.Layout, r.Type, r.ByteCount, err)
	}
	return string(data)
}

// DecodeRecord decodes one raw record with default options.
func DecodeRecord(ctx context.Context, raw []byte) (Result, error) {
	return DecodeRecordWithOptions(ctx, raw, DecodeOptions{})
}

// DecodeRecordWithOptions decodes one raw record with custom options.
func DecodeRecordWithOptions(ctx context.Context, raw []byte, opts DecodeOptions) (Result, error) {
	ctx, cfg, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	return decodeParsed(ctx, raw, cfg)
}

// DecodeHex decodes a hex-encoded record with default options.
func DecodeHex(ctx context.Context, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes a hex-encoded record with custom options.
func DecodeHexWithOptions(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return DecodeRecordWithOptions(ctx, data, opts)
}

func decodeParsed(ctx context.Context, raw []byte, cfg *options.Config) (Result, error) {
	rec, err := record.Parse(raw)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Layout:    "unknown",
		Type:      rec.TypeString(),
		ByteCount: len(raw),
		Record:    &rec,
	}

	if rec.Kind() == record.KindUnknown {
		result.Type = UnknownType
		result.Fields = unknownFields()
		attachDiagnostics(result.Fields, raw, cfg)
		return result, nil
	}
	l, err := layout.Lookup(&rec)
	if err != nil {
		return result, err
	}
	fields, err := l.Process(ctx, &rec)
	if err != nil {
		return result, err
	}
	result.Layout = l.Name()
	if d, ok := fields["direction"].(string); ok {
		result.Direction = d
	}
	attachDiagnostics(fields, raw, cfg)
	result.Fields = fields
	return result, nil
}

// unknownFields is the fixed result shape for undeciphered tags: marker type,
// empty extracted fields, no direction, no further interpretation.
func unknownFields() map[string]any {
	fields := map[string]any{
		"device": layout.DeviceName,
		"type":   UnknownType,
		"name":   "",
		"text":   "",
	}
	layout.SetNumber(fields, "")
	return fields
}

func attachDiagnostics(fields map[string]any, raw []byte, cfg *options.Config) {
	if cfg.RetainRawData {
		buf := make([]byte, len(raw))
		copy(buf, raw)
		fields["rawdata"] = buf
	}
	if cfg.Debug >= options.DebugHexdump {
		fields["hexdump"] = hexdump.Dump(raw)
	}
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex record must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
