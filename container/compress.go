package container

import (
	"bytes"
	"fmt"

	huffman "github.com/chronos-tachyon/huffcode"
)

// Stats summarizes one Compress call.
type Stats struct {
	OriginalBytes int
	CodeDigits    int
	PackedBytes   int
	Distinct      int
}

// Ratio is the space saved by the code stream, as computed by
// huffman.CompressionRatio.
func (s Stats) Ratio() float64 {
	return huffman.CompressionRatio(s.OriginalBytes, s.CodeDigits)
}

// Compress runs a full coding session over data and returns the packed
// container.  reporter receives the session's diagnostics and may be nil.
func Compress(data []byte, reporter huffman.Reporter) ([]byte, Stats, error) {
	var buf bytes.Buffer
	stats := Stats{OriginalBytes: len(data)}

	if len(data) == 0 {
		if err := Write(&buf, nil, ""); err != nil {
			return nil, stats, err
		}
		stats.PackedBytes = buf.Len()
		return buf.Bytes(), stats, nil
	}

	s := huffman.NewSession(reporter)
	s.CountFrequencies(data)
	if err := s.BuildTree(); err != nil {
		return nil, stats, err
	}
	digits, err := s.Encode(data)
	if err != nil {
		return nil, stats, err
	}
	if err := Write(&buf, s.Tree(), digits); err != nil {
		return nil, stats, fmt.Errorf("container: write: %w", err)
	}

	stats.CodeDigits = len(digits)
	stats.PackedBytes = buf.Len()
	stats.Distinct = s.Frequencies().Len()
	return buf.Bytes(), stats, nil
}

// Decompress reverses Compress.
func Decompress(blob []byte) ([]byte, error) {
	tree, digits, err := Read(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	if tree == nil || digits == "" {
		return []byte{}, nil
	}
	return huffman.Decode(digits, tree)
}
