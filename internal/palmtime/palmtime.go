package palmtime

import "time"

// EpochOffset is the number of seconds between the Palm epoch
// (1904-01-01T00:00:00Z) and the Unix epoch.
const EpochOffset = 2082844800

// Sentinel marks a wall clock with no valid representation in the zone.
const Sentinel = -1

// Formats used for the date/time output fields.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// WallClock converts a raw Palm counter to the device wall clock it encodes.
// The handset counts local seconds since the Palm epoch, so the UTC
// components of the returned value are the calendar fields as shown on the
// device, not a real instant.
func WallClock(counter uint32) time.Time {
	return time.Unix(int64(counter)-EpochOffset, 0).UTC()
}

// Resolve maps a device wall clock onto the configured zone and returns the
// Unix epoch of the matching instant. A wall clock repeated by clocks going
// back resolves to the later of the two candidates. A wall clock skipped by
// clocks going forward has no candidate and reports ok=false.
func Resolve(wall time.Time, loc *time.Location) (epoch int64, ok bool) {
	base := wall.Unix()
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	found := false
	var best int64
	for _, off := range candidateOffsets(base, loc) {
		cand := time.Unix(base-int64(off), 0).In(loc)
		cy, cmo, cd := cand.Date()
		ch, cmi, cs := cand.Clock()
		if cy != y || cmo != mo || cd != d || ch != h || cmi != mi || cs != s {
			continue
		}
		if !found || cand.Unix() > best {
			best = cand.Unix()
		}
		found = true
	}
	if !found {
		return Sentinel, false
	}
	return best, true
}

// candidateOffsets gathers the UTC offsets in force around the wall clock.
// Probing a day either side covers any nearby DST transition.
func candidateOffsets(base int64, loc *time.Location) []int {
	seen := make(map[int]bool)
	var offs []int
	for _, delta := range []int64{-86400, 0, 86400} {
		_, off := time.Unix(base+delta, 0).In(loc).Zone()
		if !seen[off] {
			seen[off] = true
			offs = append(offs, off)
		}
	}
	return offs
}
