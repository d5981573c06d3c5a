package endian

import "math/bits"

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// ReverseBytes reverses b in place: byte i is swapped with byte len(b)-1-i.
// It works for any length, including 0 and 1 (both no-ops).
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Convert reverses the byte order of one fixed-width element in place,
// converting it between little-endian and big-endian representation.
//
// Elements of 2, 4 and 8 bytes take specialized paths; any other width
// falls back to generic byte reversal. Converting twice restores the
// original bytes.
//
// Convert never allocates and never fails; it touches exactly len(elem)
// bytes.
func Convert(elem []byte) {
	switch len(elem) {
	case 2:
		elem[0], elem[1] = elem[1], elem[0]
	case 4:
		elem[0], elem[3] = elem[3], elem[0]
		elem[1], elem[2] = elem[2], elem[1]
	case 8:
		elem[0], elem[7] = elem[7], elem[0]
		elem[1], elem[6] = elem[6], elem[1]
		elem[2], elem[5] = elem[5], elem[2]
		elem[3], elem[4] = elem[4], elem[3]
	default:
		ReverseBytes(elem)
	}
}
