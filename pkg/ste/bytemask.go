package ste

// ToByteMask reduces a bit-mask to a byte-granular mask: 0xff for every
// byte with at least one bit set, 0x00 otherwise.
func ToByteMask(bitMask [TagSize]byte) [TagSize]byte {
	var byteMask [TagSize]byte
	for i, b := range bitMask {
		if b != 0 {
			byteMask[i] = 0xff
		}
	}
	return byteMask
}

// PackByteMask folds a byte mask into the one-bit-per-byte word carried
// in the STE control section. Byte 0 maps to the most significant bit.
func PackByteMask(byteMask [TagSize]byte) uint16 {
	var packed uint16
	for i, b := range byteMask {
		if b != 0 {
			packed |= 1 << (TagSize - 1 - i)
		}
	}
	return packed
}
