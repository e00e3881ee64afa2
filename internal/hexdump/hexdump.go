package hexdump

import (
	"fmt"
	"strings"
)

const bytesPerLine = 16

// Dump renders data in the classic three-column form: offset, hex bytes and
// a printable-ASCII gutter. Pure formatting, attached to results only when
// debugging is enabled.
func Dump(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(&b, "0x%04X : ", i)
		for j := i; j < i+bytesPerLine; j++ {
			if j < len(data) {
				fmt.Fprintf(&b, "%02X ", data[j])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(": ")
		for j := i; j < i+bytesPerLine && j < len(data); j++ {
			c := data[j]
			if c < 0x20 || c > 0x7E {
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
