package bitstream

// BitsPerByte is the number of bits each byte expands to.
const BitsPerByte = 8

// BytesToBits expands a byte slice into a boolean slice, one element
// per bit. Each byte contributes 8 bits, most significant first, so
// byte value v yields bits (v>>7)&1 .. v&1 in order.
func BytesToBits(data []byte) []bool {
	if len(data) == 0 {
		return nil
	}
	bits := make([]bool, len(data)*BitsPerByte)
	for i, b := range data {
		offset := i * BitsPerByte
		for j := 0; j < BitsPerByte; j++ {
			bits[offset+j] = (b>>(BitsPerByte-1-j))&1 == 1
		}
	}
	return bits
}

// BitsToBytes regroups a boolean slice into bytes, most significant
// bit first. A trailing group of fewer than 8 bits is padded on the
// right with zero bits before conversion; use Aligned to detect that
// case when partial groups should be rejected instead.
func BitsToBytes(bits []bool) []byte {
	if len(bits) == 0 {
		return nil
	}
	data := make([]byte, (len(bits)+BitsPerByte-1)/BitsPerByte)
	for i, bit := range bits {
		if bit {
			data[i/BitsPerByte] |= 1 << (BitsPerByte - 1 - i%BitsPerByte)
		}
	}
	return data
}

// Aligned reports whether the bit slice splits into whole bytes.
func Aligned(bits []bool) bool {
	return len(bits)%BitsPerByte == 0
}
