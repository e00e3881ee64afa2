package layout

import (
	"context"
	"fmt"
	"sync"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/record"
)

// DeviceName identifies the handset model these layouts were recovered from.
const DeviceName = "Treo 680"

// Directions a message can travel. The legacy layouts only ever appear for
// sent messages; the 0x4009 family encodes both.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Detection contains minimal information required to identify a layout.
type Detection struct {
	Type uint16
}

// Layout processes records once selected.
type Layout interface {
	Name() string
	Process(context.Context, *record.Record) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredLayout
)

type registeredLayout struct {
	detect Detection
	layout Layout
}

// Register stores a layout/detection pair in memory.
func Register(det Detection, l Layout) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredLayout{detect: det, layout: l})
}

// Lookup returns the first layout that matches the record's type tag.
func Lookup(rec *record.Record) (Layout, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rl := range registry {
		if rl.detect.Type == rec.Type {
			return rl.layout, nil
		}
	}
	return nil, fmt.Errorf("no layout registered for type tag 0x%04X", rec.Type)
}
