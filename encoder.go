package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Encoder translates Symbols into their Huffman codes.
type Encoder struct {
	table   CodeTable
	minSize int
	maxSize int
}

// Init initializes this Encoder with the given CodeTable.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{
		table:   table,
		minSize: table.MinSize(),
		maxSize: table.MaxSize(),
	}
}

// NewEncoder is a convenience function that constructs an Encoder.
func NewEncoder(table CodeTable) Encoder {
	var e Encoder
	e.Init(table)
	return e
}

// Encode concatenates the Code of each byte of data, in input order.
//
// Bytes without a Code are skipped; each skipped occurrence is returned as a
// MissingCodeWarning and the rest of the input is still encoded.  If the
// Encoder has no codes at all, Encode returns ErrNoCodesAvailable and an
// empty result.
//
func (e Encoder) Encode(data []byte) (string, []MissingCodeWarning, error) {
	if e.table.IsEmpty() {
		return "", nil, ErrNoCodesAvailable
	}

	var out strings.Builder
	out.Grow(len(data) * e.maxSize)

	var warnings []MissingCodeWarning
	for offset, b := range data {
		hc, found := e.table.Lookup(Symbol(b))
		if !found {
			warnings = append(warnings, MissingCodeWarning{Offset: offset, Symbol: Symbol(b)})
			continue
		}
		out.WriteString(string(hc))
	}
	return out.String(), warnings, nil
}

// EncodeSymbol returns the Code for a single Symbol.
func (e Encoder) EncodeSymbol(symbol Symbol) (Code, bool) {
	return e.table.Lookup(symbol)
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Table returns the CodeTable this Encoder was initialized with.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.table.Symbols() {
		hc, _ := e.table.Lookup(symbol)
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode is a convenience function equivalent to NewEncoder(table).Encode(data).
func Encode(data []byte, table CodeTable) (string, []MissingCodeWarning, error) {
	return NewEncoder(table).Encode(data)
}
