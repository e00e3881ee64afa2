package treo

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strings"
)

// Field boundaries in the Treo layouts follow delimiter conventions rather
// than length prefixes: useful runs are separated by one or more null bytes,
// and real records contain consecutive nulls in places the format does not
// explain. These helpers reproduce the observed boundaries exactly.

var (
	nullRun   = regexp.MustCompile(`\x00+`)
	nextField = regexp.MustCompile(`(?s)\A([^\x00]*)\x00+(.*)\z`)
)

// NullTerminated returns the run before the first null byte and the bytes
// after the terminator. Input without any null yields the whole input and
// ok=false; callers treat that as a lenient fallback, not an error.
func NullTerminated(b []byte) (run, rest []byte, ok bool) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, false
}

// NextField matches the earliest maximal non-null run, one or more null
// bytes, and the remaining trailer. The run may be empty.
func NextField(b []byte) (run, trailer []byte, ok bool) {
	m := nextField.FindSubmatch(b)
	if m == nil {
		return nil, nil, false
	}
	return m[1], m[2], true
}

// SplitNullRuns splits b on runs of one-or-more null bytes into at most n
// pieces. The final piece keeps everything after the previous delimiter run,
// nulls included.
func SplitNullRuns(b []byte, n int) [][]byte {
	parts := nullRun.Split(string(b), n)
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

// HexRange renders undeciphered bytes as upper-case hex for diagnostics.
func HexRange(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
