package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder translates a code stream back into Symbols by walking a Tree.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder with the given Tree.  A nil Tree is
// permitted; decoding with it fails with ErrNoTreeOrEmptyInput.
func (d *Decoder) Init(tree *Tree) {
	*d = Decoder{tree: tree}
}

// NewDecoder is a convenience function that constructs a Decoder.
func NewDecoder(tree *Tree) Decoder {
	var d Decoder
	d.Init(tree)
	return d
}

// Decode walks the tree once per digit, '0' to the left child and '1' to the
// right child, emitting a Symbol and returning to the root at each leaf.
//
// With a single-leaf tree every digit, whatever its value, stands for the
// lone Symbol.
//
// Any digit other than '0' or '1' aborts the whole call with an
// *InvalidDigitError and no partial output.  A stream that ends partway down
// a path silently drops the unterminated tail.
//
func (d Decoder) Decode(digits string) ([]byte, error) {
	t := d.tree
	if t == nil || len(t.nodes) == 0 || len(digits) == 0 {
		return nil, ErrNoTreeOrEmptyInput
	}

	root := t.nodes[t.root]
	if root.isLeaf() {
		return bytes.Repeat([]byte{byte(root.symbol)}, len(digits)), nil
	}

	out := make([]byte, 0, len(digits)/maxInt(t.minDepth(), 1))
	cursor := t.root
	for offset := 0; offset < len(digits); offset++ {
		n := t.nodes[cursor]
		switch digits[offset] {
		case '0':
			cursor = n.left
		case '1':
			cursor = n.right
		default:
			return nil, &InvalidDigitError{Offset: offset, Digit: digits[offset]}
		}
		if leaf := t.nodes[cursor]; leaf.isLeaf() {
			out = append(out, byte(leaf.symbol))
			cursor = t.root
		}
	}
	return out, nil
}

// Tree returns the Tree this Decoder was initialized with.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	table := d.tree.CodeTable()
	bySymbol := make(map[Code]Symbol, table.Len())
	keys := make(byCode, 0, table.Len())
	for _, symbol := range table.Symbols() {
		hc, _ := table.Lookup(symbol)
		bySymbol[hc] = symbol
		keys = append(keys, hc)
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, bySymbol[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode is a convenience function equivalent to NewDecoder(tree).Decode(digits).
func Decode(digits string, tree *Tree) ([]byte, error) {
	return NewDecoder(tree).Decode(digits)
}

// minDepth returns the depth of the shallowest leaf.
func (t *Tree) minDepth() int {
	type item struct {
		index int32
		depth int
	}
	queue := []item{{t.root, 0}}
	for len(queue) != 0 {
		it := queue[0]
		queue = queue[1:]
		n := t.nodes[it.index]
		if n.isLeaf() {
			return it.depth
		}
		queue = append(queue, item{n.left, it.depth + 1}, item{n.right, it.depth + 1})
	}
	return 0
}
