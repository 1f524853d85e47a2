package huffman

// BitsPerSymbol is the size of one uncoded Symbol, the baseline for
// CompressionRatio.
const BitsPerSymbol = 8

// CompressionRatio returns the space saved by encoding, as a percentage of
// the original size:
//
//     ((originalLength*8 - encodedLength) / (originalLength*8)) * 100
//
// originalLength counts Symbols and encodedLength counts code digits.  The
// result is negative when the encoding is larger than the original, and 0
// when originalLength is 0.
//
func CompressionRatio(originalLength, encodedLength int) float64 {
	if originalLength == 0 {
		return 0
	}
	originalBits := float64(originalLength) * BitsPerSymbol
	return ((originalBits - float64(encodedLength)) / originalBits) * 100
}
