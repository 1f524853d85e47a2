package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFrequencyTable is returned when a tree is requested for a
	// table that has no counted symbols.
	ErrEmptyFrequencyTable = errors.New("no data to build tree")

	// ErrNoCodesAvailable is returned when encoding with an empty CodeTable.
	ErrNoCodesAvailable = errors.New("no Huffman codes available; build tree first")

	// ErrNoTreeOrEmptyInput is returned when decoding without a tree or
	// with an empty code stream.
	ErrNoTreeOrEmptyInput = errors.New("no tree or empty code stream")

	// ErrInvalidDigit matches every *InvalidDigitError.
	ErrInvalidDigit = errors.New("invalid digit in code stream")
)

// InvalidDigitError reports a code stream byte other than '0' or '1'.
type InvalidDigitError struct {
	Offset int
	Digit  byte
}

func (err *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit in code stream: %q at offset %d", err.Digit, err.Offset)
}

// Is lets errors.Is match ErrInvalidDigit.
func (err *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// MissingCodeWarning reports an input Symbol that has no Code.  The
// occurrence at Offset was skipped; the rest of the input was still encoded.
type MissingCodeWarning struct {
	Offset int
	Symbol Symbol
}

func (w MissingCodeWarning) Error() string {
	return fmt.Sprintf("symbol %s at offset %d not found in codes", w.Symbol, w.Offset)
}

var (
	_ error = (*InvalidDigitError)(nil)
	_ error = MissingCodeWarning{}
)
