package huffman

import (
	"fmt"
	"math"
	"strconv"
)

// Symbol represents one unit of the input alphabet: a single byte.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// String returns a human-readable name for the symbol, suitable for table
// dumps.  Whitespace symbols get bracketed names; other non-printable
// symbols are shown in hex.
func (s Symbol) String() string {
	switch s {
	case ' ':
		return "[SPACE]"
	case '\n':
		return "[NEWLINE]"
	case '\t':
		return "[TAB]"
	case '\r':
		return "[RETURN]"
	}
	if s < 0x80 && strconv.IsPrint(rune(s)) {
		return string(rune(s))
	}
	return fmt.Sprintf("0x%02x", byte(s))
}

var _ fmt.Stringer = Symbol(0)
