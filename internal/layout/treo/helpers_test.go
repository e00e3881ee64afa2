package treo

import (
	"bytes"
	"testing"
)

func TestNullTerminated(t *testing.T) {
	run, rest, ok := NullTerminated([]byte("+441234\x00tail"))
	if !ok || string(run) != "+441234" || string(rest) != "tail" {
		t.Fatalf("unexpected split: %q %q %v", run, rest, ok)
	}
}

func TestNullTerminatedNoTerminator(t *testing.T) {
	run, rest, ok := NullTerminated([]byte("+441234"))
	if ok {
		t.Fatal("expected ok=false without a terminator")
	}
	if string(run) != "+441234" || rest != nil {
		t.Fatalf("unexpected fallback: %q %q", run, rest)
	}
}

func TestNextFieldConsumesNullRun(t *testing.T) {
	run, trailer, ok := NextField([]byte("Jane Doe\x00\x00\x00trailer"))
	if !ok {
		t.Fatal("expected a match")
	}
	if string(run) != "Jane Doe" {
		t.Fatalf("unexpected run: %q", run)
	}
	if string(trailer) != "trailer" {
		t.Fatalf("unexpected trailer: %q", trailer)
	}
}

func TestNextFieldEmptyRun(t *testing.T) {
	run, trailer, ok := NextField([]byte("\x00\x00rest"))
	if !ok || len(run) != 0 || string(trailer) != "rest" {
		t.Fatalf("unexpected: %q %q %v", run, trailer, ok)
	}
}

func TestNextFieldNoDelimiter(t *testing.T) {
	if _, _, ok := NextField([]byte("no nulls here")); ok {
		t.Fatal("expected ok=false without a null run")
	}
}

func TestSplitNullRunsLimit(t *testing.T) {
	parts := SplitNullRuns([]byte("a\x00\x00b\x00c\x00d"), 3)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if string(parts[0]) != "a" || string(parts[1]) != "b" {
		t.Fatalf("unexpected leading parts: %q %q", parts[0], parts[1])
	}
	// The final piece absorbs everything after the second delimiter run.
	if !bytes.Equal(parts[2], []byte("c\x00d")) {
		t.Fatalf("unexpected final part: %q", parts[2])
	}
}

func TestHexRange(t *testing.T) {
	if got := HexRange([]byte{0xDE, 0xAD, 0x00}); got != "DEAD00" {
		t.Fatalf("unexpected hex: %s", got)
	}
}
