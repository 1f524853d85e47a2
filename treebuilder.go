package huffman

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is returned by TreeBuilder when the assembled nodes do not
// form a single well-shaped binary tree.
var ErrMalformedTree = errors.New("malformed Huffman tree")

// TreeBuilder reassembles a Tree whose shape was recorded elsewhere, e.g. by
// a serialized pre-order walk.  Reassembled trees carry no weights.
//
// Nodes are added bottom-up: Leaf and Node return handles that are later
// passed as children to Node or as the root to Finish.  Each handle may be
// used as a child at most once.
type TreeBuilder struct {
	nodes  []node
	used   []bool
	leaves int
	seen   [NumSymbols]bool
	err    error
}

// NewTreeBuilder returns an empty TreeBuilder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// Leaf adds a leaf for symbol and returns its handle.
func (tb *TreeBuilder) Leaf(symbol Symbol) int {
	if tb.seen[symbol] {
		tb.fail(fmt.Errorf("%w: duplicate leaf for symbol %s", ErrMalformedTree, symbol))
	}
	tb.seen[symbol] = true
	tb.leaves++
	return tb.add(node{left: noChild, right: noChild, symbol: symbol})
}

// Node adds a merged node with the given children and returns its handle.
func (tb *TreeBuilder) Node(left, right int) int {
	tb.claim(left)
	tb.claim(right)
	return tb.add(node{left: int32(left), right: int32(right)})
}

// Finish validates the assembled nodes and returns the Tree rooted at root.
func (tb *TreeBuilder) Finish(root int) (*Tree, error) {
	if tb.err != nil {
		return nil, tb.err
	}
	if len(tb.nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrMalformedTree)
	}
	tb.claim(root)
	if tb.err != nil {
		return nil, tb.err
	}
	for index, used := range tb.used {
		if !used {
			return nil, fmt.Errorf("%w: node %d is not reachable from the root", ErrMalformedTree, index)
		}
	}
	return &Tree{nodes: tb.nodes, root: int32(root), leaves: tb.leaves}, nil
}

func (tb *TreeBuilder) add(n node) int {
	tb.nodes = append(tb.nodes, n)
	tb.used = append(tb.used, false)
	return len(tb.nodes) - 1
}

func (tb *TreeBuilder) claim(handle int) {
	if handle < 0 || handle >= len(tb.nodes) {
		tb.fail(fmt.Errorf("%w: unknown node handle %d", ErrMalformedTree, handle))
		return
	}
	if tb.used[handle] {
		tb.fail(fmt.Errorf("%w: node %d has more than one parent", ErrMalformedTree, handle))
		return
	}
	tb.used[handle] = true
}

func (tb *TreeBuilder) fail(err error) {
	if tb.err == nil {
		tb.err = err
	}
}
