package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each Symbol in an input sequence.
//
// The zero value is an empty table.  Iteration is always in ascending Symbol
// order, which keeps tree construction reproducible.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// CountFrequencies builds a FrequencyTable from data.  An empty input yields an
// empty table.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add counts every byte of data into the table.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.distinct++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(data))
}

// Count returns the number of occurrences of symbol.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct Symbols with a non-zero count.
func (ft FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// IsEmpty reports whether no Symbol has been counted.
func (ft FrequencyTable) IsEmpty() bool {
	return ft.distinct == 0
}

// Symbols returns the Symbols with a non-zero count, in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for i := 0; i < NumSymbols; i++ {
		if ft.counts[i] != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// Dump writes a human-readable frequency table to the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Symbol\tFrequency\n")
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "%s\t%d\n", symbol, ft.counts[symbol])
	}
	return buf.WriteTo(w)
}

// FrequencyEntry is one row of a FrequencyTable, as marshaled to JSON.
type FrequencyEntry struct {
	Symbol Symbol `json:"symbol"`
	Name   string `json:"name"`
	Count  uint64 `json:"count"`
}

// Entries returns one FrequencyEntry per counted Symbol, in ascending order.
func (ft FrequencyTable) Entries() []FrequencyEntry {
	symbols := ft.Symbols()
	out := make([]FrequencyEntry, len(symbols))
	for i, symbol := range symbols {
		out[i] = FrequencyEntry{Symbol: symbol, Name: symbol.String(), Count: ft.counts[symbol]}
	}
	return out
}

// MarshalJSON renders the table as an array of FrequencyEntry.
func (ft FrequencyTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.Entries())
}

var _ json.Marshaler = FrequencyTable{}
