package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as ASCII '0' and '1' digits.  The first
// digit is the edge taken from the root of the tree.
type Code string

// Len returns the number of bits in the Code.
func (hc Code) Len() int {
	return len(hc)
}

// IsPrefixOf reports whether hc is a prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// Valid reports whether hc is non-empty and contains only '0' and '1'.
func (hc Code) Valid() bool {
	if len(hc) == 0 {
		return false
	}
	for i := 0; i < len(hc); i++ {
		if hc[i] != '0' && hc[i] != '1' {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
