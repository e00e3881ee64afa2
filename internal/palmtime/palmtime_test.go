package palmtime

import (
	"testing"
	"time"
)

func london(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestWallClock(t *testing.T) {
	counter := uint32(time.Date(2008, time.July, 4, 12, 0, 0, 0, time.UTC).Unix() + EpochOffset)
	wall := WallClock(counter)
	if got := wall.Format("2006-01-02 15:04:05"); got != "2008-07-04 12:00:00" {
		t.Fatalf("unexpected wall clock: %s", got)
	}
}

func TestResolveUTCRoundTrip(t *testing.T) {
	want := time.Date(2008, time.July, 4, 12, 0, 0, 0, time.UTC).Unix()
	wall := WallClock(uint32(want + EpochOffset))
	epoch, ok := Resolve(wall, time.UTC)
	if !ok {
		t.Fatal("expected a valid resolution")
	}
	if epoch != want {
		t.Fatalf("epoch mismatch: got %d want %d", epoch, want)
	}
}

func TestResolveNamedZone(t *testing.T) {
	loc := london(t)
	// 2008-07-04 12:00 on the handset is BST, one hour ahead of UTC.
	wall := time.Date(2008, time.July, 4, 12, 0, 0, 0, time.UTC)
	epoch, ok := Resolve(wall, loc)
	if !ok {
		t.Fatal("expected a valid resolution")
	}
	want := time.Date(2008, time.July, 4, 12, 0, 0, 0, loc).Unix()
	if epoch != want {
		t.Fatalf("epoch mismatch: got %d want %d", epoch, want)
	}
}

func TestResolveAmbiguousPicksLater(t *testing.T) {
	loc := london(t)
	// Clocks went back at 2008-10-26 02:00 BST, so 01:30 occurred twice:
	// 00:30Z (BST) and 01:30Z (GMT). The later instant wins.
	wall := time.Date(2008, time.October, 26, 1, 30, 0, 0, time.UTC)
	epoch, ok := Resolve(wall, loc)
	if !ok {
		t.Fatal("expected a valid resolution")
	}
	if want := wall.Unix(); epoch != want {
		t.Fatalf("expected the later (GMT) instant %d, got %d", want, epoch)
	}
}

func TestResolveNonexistent(t *testing.T) {
	loc := london(t)
	// Clocks went forward at 2008-03-30 01:00 GMT; 01:30 never happened.
	wall := time.Date(2008, time.March, 30, 1, 30, 0, 0, time.UTC)
	epoch, ok := Resolve(wall, loc)
	if ok {
		t.Fatalf("expected no resolution, got epoch %d", epoch)
	}
	if epoch != Sentinel {
		t.Fatalf("expected sentinel, got %d", epoch)
	}
}
