package split

import (
	"strings"
	"testing"
)

var benchCmdline = strings.Repeat(`run --name "my container" -v /data:/data "image:latest" `, 64)

// BenchmarkNext measures pulling tokens one at a time.
func BenchmarkNext(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCmdline)))
	for i := 0; i < b.N; i++ {
		tok := Whitespace(benchCmdline).UnwrapQuotes(true)
		for {
			if _, ok := tok.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkCollect measures collecting all tokens into a slice.
func BenchmarkCollect(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCmdline)))
	for i := 0; i < b.N; i++ {
		_ = Args(benchCmdline)
	}
}

// BenchmarkFields compares against strings.Fields, which ignores quotes.
func BenchmarkFields(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCmdline)))
	for i := 0; i < b.N; i++ {
		_ = strings.Fields(benchCmdline)
	}
}
