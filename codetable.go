package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its Code.  The zero value is an empty table.
//
// Tables derived from a Tree are prefix-free: no Code is a prefix of another.
type CodeTable struct {
	codes [NumSymbols]Code
	n     int
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	if ct.codes[symbol] == "" {
		ct.n++
	}
	ct.codes[symbol] = hc
}

// Lookup returns the Code for symbol, if any.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc != ""
}

// Len returns the number of Symbols with a Code.
func (ct CodeTable) Len() int {
	return ct.n
}

// IsEmpty reports whether the table holds no codes.
func (ct CodeTable) IsEmpty() bool {
	return ct.n == 0
}

// Symbols returns the Symbols with a Code, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.n)
	for i := 0; i < NumSymbols; i++ {
		if ct.codes[i] != "" {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (ct CodeTable) MinSize() int {
	min := 0
	for _, hc := range ct.codes {
		if hc != "" && (min == 0 || len(hc) < min) {
			min = len(hc)
		}
	}
	return min
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (ct CodeTable) MaxSize() int {
	max := 0
	for _, hc := range ct.codes {
		if len(hc) > max {
			max = len(hc)
		}
	}
	return max
}

// EncodedLength returns the number of code digits Encode would produce for an
// input with the given frequencies, skipping Symbols that have no Code.
func (ct CodeTable) EncodedLength(ft FrequencyTable) uint64 {
	var sum uint64
	for _, symbol := range ft.Symbols() {
		sum += ft.Count(symbol) * uint64(len(ct.codes[symbol]))
	}
	return sum
}

// IsPrefixFree reports whether every Code is non-empty, well-formed, and not
// a prefix of any other Code.
func (ct CodeTable) IsPrefixFree() bool {
	list := make(byCode, 0, ct.n)
	for _, hc := range ct.codes {
		if hc == "" {
			continue
		}
		if !hc.Valid() {
			return false
		}
		list = append(list, hc)
	}
	list.Sort()

	// Shorter codes sort first, so only later entries can extend earlier ones.
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if list[i].IsPrefixOf(list[j]) {
				return false
			}
		}
	}
	return true
}

// Dump writes a human-readable code table to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Symbol\tCode\n")
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "%s\t%s\n", symbol, string(ct.codes[symbol]))
	}
	return buf.WriteTo(w)
}

// CodeEntry is one row of a CodeTable, as marshaled to JSON.
type CodeEntry struct {
	Symbol Symbol `json:"symbol"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// Entries returns one CodeEntry per coded Symbol, in ascending order.
func (ct CodeTable) Entries() []CodeEntry {
	symbols := ct.Symbols()
	out := make([]CodeEntry, len(symbols))
	for i, symbol := range symbols {
		out[i] = CodeEntry{Symbol: symbol, Name: symbol.String(), Code: string(ct.codes[symbol])}
	}
	return out
}

// MarshalJSON renders the table as an array of CodeEntry.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(ct.Entries())
}

var _ json.Marshaler = CodeTable{}
