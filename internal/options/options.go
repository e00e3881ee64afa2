package options

import (
	"context"
	"fmt"
	"time"
)

// DefaultZone is used when no time zone is configured. The sample databases
// this format was reverse engineered from came from UK handsets.
const DefaultZone = "Europe/London"

// Debug levels. Level 1 attaches a hex dump to results; level 2 additionally
// logs non-fatal warnings about unexpected byte patterns.
const (
	DebugOff     = 0
	DebugHexdump = 1
	DebugVerbose = 2
)

// Config is an immutable snapshot of decode settings, resolved once per call
// or batch. It must not be mutated after decoding starts.
type Config struct {
	Location      *time.Location
	RetainRawData bool
	Debug         int
}

// Resolve validates the settings and freezes them into a Config.
func Resolve(zone string, retainRawData bool, debug int) (*Config, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", zone, err)
	}
	return &Config{Location: loc, RetainRawData: retainRawData, Debug: debug}, nil
}

type contextKey struct{}

// WithConfig stores the frozen config inside the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	if cfg == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext retrieves the config, falling back to defaults when decoding
// was started without one.
func FromContext(ctx context.Context) *Config {
	if v := ctx.Value(contextKey{}); v != nil {
		if cfg, ok := v.(*Config); ok {
			return cfg
		}
	}
	cfg, err := Resolve("", false, DebugOff)
	if err != nil {
		// Only possible without tzdata on the host; keep decoding in UTC.
		return &Config{Location: time.UTC}
	}
	return cfg
}
