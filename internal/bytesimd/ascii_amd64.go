//go:build amd64

package bytesimd

import "golang.org/x/sys/cpu"

// hasAVX2 gates the wider 32-byte scan stride. The teacher's own AVX2
// kernel is a hand-written assembly routine; the retrieved reference pack
// does not carry that .s file, so this toolkit cannot adapt it without
// fabricating object code it can't verify. Instead the flag picks between
// two portable Go strides: a 32-byte-wide SWAR unroll on CPUs that could
// run a real vector kernel, and the plain 8-byte stride otherwise.
var hasAVX2 = cpu.X86.HasAVX2

// ASCIIRunLength returns the length of the leading run of data consisting
// entirely of ASCII bytes (0x00-0x7F).
func ASCIIRunLength(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	if hasAVX2 && len(data) >= 32 {
		return asciiRunLenWide(data)
	}
	return asciiRunLenGeneric(data)
}
