package treodb

import (
	"context"

	internalopts "github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/options"
)

// DecodeOptions configures decoding. The zero value uses the default time
// zone, keeps no raw data and attaches no diagnostics. Options are frozen
// into an immutable snapshot before any bytes are read, so a batch started
// with one set of options is unaffected by later changes.
type DecodeOptions struct {
	// TimeZone names the zone used to render date and time from the
	// record's wall clock. Empty selects the default.
	TimeZone string
	// RetainRawData copies the original record bytes into the result.
	RetainRawData bool
	// Debug attaches a hex dump at 1 and logs non-fatal warnings about
	// unexpected byte patterns at 2.
	Debug int
}

func (opts DecodeOptions) toInternal(ctx context.Context) (context.Context, *internalopts.Config, error) {
	cfg, err := internalopts.Resolve(opts.TimeZone, opts.RetainRawData, opts.Debug)
	if err != nil {
		return ctx, nil, err
	}
	ctx = internalopts.WithConfig(ctx, cfg)
	return ctx, cfg, nil
}
