package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the absent child of a leaf node.
const noChild = int32(-1)

// internalTieKey is the tie key of every merged node.  It sorts before every
// leaf, so a merged node is extracted ahead of a leaf of equal weight.
const internalTieKey = int32(-1)

// Tree is a Huffman code tree stored as an arena of nodes addressed by index.
//
// A Tree is immutable once built.  Node identities are never exposed; callers
// see the tree through its CodeTable, Walk, and Dump.
type Tree struct {
	nodes  []node
	root   int32
	leaves int
}

type node struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

func (n node) tieKey() int32 {
	if n.isLeaf() {
		return int32(n.symbol)
	}
	return internalTieKey
}

// BuildTree constructs the Huffman tree for the given FrequencyTable.
//
// Leaves are created in ascending Symbol order.  The two lowest-ranked nodes
// are repeatedly extracted (a, then b) and replaced by a merged node whose
// left child is b and whose right child is a.  Ranking is by weight, then tie
// key, then creation order, which is a total order; see the package
// documentation.
//
// An empty table yields ErrEmptyFrequencyTable.
//
func BuildTree(ft FrequencyTable) (*Tree, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyFrequencyTable
	}

	t := &Tree{
		nodes:  make([]node, 0, 2*numLeaves-1),
		leaves: numLeaves,
	}

	// Step 1: one leaf per distinct symbol, in ascending symbol order.

	for _, symbol := range ft.Symbols() {
		t.nodes = append(t.nodes, node{
			weight: ft.Count(symbol),
			left:   noChild,
			right:  noChild,
			symbol: symbol,
		})
	}

	if numLeaves == 1 {
		t.root = 0
		return t, nil
	}

	// Step 2: build a minheap over the leaves.

	h := nodeHeap{tree: t, list: make([]int32, numLeaves, numLeaves)}
	for index := range h.list {
		h.list[index] = int32(index)
	}
	h.Init()

	// Step 3: merge the two lowest-ranked nodes until one remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		merged := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   b,
			right:  a,
		})
		heap.Push(&h, merged)
	}

	t.root = heap.Pop(&h).(int32)

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "arena has %d nodes, expected %d", len(t.nodes), 2*numLeaves-1)
	assert.Assertf(t.nodes[t.root].weight == ft.Total(), "root weight %d != total %d", t.nodes[t.root].weight, ft.Total())

	return t, nil
}

// Leaves returns the number of leaves, i.e. the number of distinct Symbols.
func (t *Tree) Leaves() int {
	if t == nil {
		return 0
	}
	return t.leaves
}

// Weight returns the weight of the root.  For a tree built by BuildTree this
// equals the length of the counted input.  Trees reconstructed with
// TreeBuilder carry no weights and report 0.
func (t *Tree) Weight() uint64 {
	if t == nil || len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root].weight
}

// IsSingleLeaf reports whether the tree consists of a lone leaf.
func (t *Tree) IsSingleLeaf() bool {
	return t != nil && len(t.nodes) != 0 && t.nodes[t.root].isLeaf()
}

// CodeTable derives the code for every leaf by walking the tree depth-first,
// appending '0' for each left edge and '1' for each right edge.  A lone leaf
// gets the code "0".
func (t *Tree) CodeTable() CodeTable {
	var ct CodeTable
	if t == nil || len(t.nodes) == 0 {
		return ct
	}

	root := t.nodes[t.root]
	if root.isLeaf() {
		ct.set(root.symbol, Code("0"))
		return ct
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the edges from the root to the top of the stack.

	type stackItem struct {
		index int32
		x     byte
	}

	depthHint := log2uint32(uint32(t.leaves)) + 1
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	processChild := func(child int32, digit byte) {
		path = append(path, digit)
		if n := t.nodes[child]; n.isLeaf() {
			ct.set(n.symbol, Code(path))
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{index: child})
	}

	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.nodes[top.index]
		switch x {
		case 0:
			processChild(n.left, '0')
		case 1:
			processChild(n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(ct.Len() == t.leaves, "derived %d codes for %d leaves", ct.Len(), t.leaves)
	return ct
}

// Walk visits the tree in pre-order.  fn is called with leaf=false for each
// merged node and with leaf=true plus the leaf's Symbol for each leaf.  A
// non-nil error from fn stops the walk and is returned.
func (t *Tree) Walk(fn func(leaf bool, symbol Symbol) error) error {
	if t == nil || len(t.nodes) == 0 {
		return nil
	}
	stack := make([]int32, 1, log2uint32(uint32(t.leaves))+1)
	stack[0] = t.root
	for len(stack) != 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[index]
		if n.isLeaf() {
			if err := fn(true, n.symbol); err != nil {
				return err
			}
			continue
		}
		if err := fn(false, 0); err != nil {
			return err
		}
		stack = append(stack, n.right, n.left)
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t != nil && len(t.nodes) != 0 {
		t.dumpNode(&buf, t.root, 1, "")
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) dumpNode(buf *bytes.Buffer, index int32, depth int, edge string) {
	n := t.nodes[index]
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	buf.WriteString(edge)
	if n.isLeaf() {
		fmt.Fprintf(buf, "Leaf(%s, %d)\n", n.symbol, n.weight)
		return
	}
	fmt.Fprintf(buf, "Node(%d)\n", n.weight)
	t.dumpNode(buf, n.left, depth+1, "0: ")
	t.dumpNode(buf, n.right, depth+1, "1: ")
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	ai, bi := h.list[i], h.list[j]
	a, b := h.tree.nodes[ai], h.tree.nodes[bi]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if ak, bk := a.tieKey(), b.tieKey(); ak != bk {
		return ak < bk
	}
	return ai < bi
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
