package huffman

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, input string) *Tree {
	t.Helper()
	tree, err := BuildTree(CountFrequencies([]byte(input)))
	if err != nil {
		t.Fatalf("BuildTree(%q) failed: %v", input, err)
	}
	return tree
}

func codesOf(tree *Tree) map[string]string {
	ct := tree.CodeTable()
	out := make(map[string]string, ct.Len())
	for _, symbol := range ct.Symbols() {
		hc, _ := ct.Lookup(symbol)
		out[string(rune(symbol))] = string(hc)
	}
	return out
}

func TestBuildTree_Codes(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect map[string]string
	}

	testData := [...]testRow{
		{
			name:   "two-symbols",
			input:  "aab",
			expect: map[string]string{"a": "0", "b": "1"},
		},
		{
			name:   "equal-weights",
			input:  "ab",
			expect: map[string]string{"a": "1", "b": "0"},
		},
		{
			name:   "three-way-tie",
			input:  "abcabc",
			expect: map[string]string{"a": "01", "b": "00", "c": "1"},
		},
		{
			name:   "merged-node-beats-leaf",
			input:  "aabbcccc",
			expect: map[string]string{"a": "11", "b": "10", "c": "0"},
		},
		{
			name:  "textbook",
			input: strings.Repeat("a", 5) + strings.Repeat("b", 9) + strings.Repeat("c", 12) + strings.Repeat("d", 13) + strings.Repeat("e", 16) + strings.Repeat("f", 45),
			expect: map[string]string{
				"a": "0011",
				"b": "0010",
				"c": "011",
				"d": "010",
				"e": "000",
				"f": "1",
			},
		},
		{
			name:   "single-symbol",
			input:  "zzzz",
			expect: map[string]string{"z": "0"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := mustBuild(t, row.input)
			actual := codesOf(tree)
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(CountFrequencies(nil))
	if !errors.Is(err, ErrEmptyFrequencyTable) {
		t.Errorf("expected ErrEmptyFrequencyTable, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected nil tree, got %v", tree)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	input := []byte("hello world! this is a sample text for huffman compression.")
	first, _ := BuildTree(CountFrequencies(input))
	for i := 0; i < 10; i++ {
		again, _ := BuildTree(CountFrequencies(input))
		if !reflect.DeepEqual(first.CodeTable().Entries(), again.CodeTable().Entries()) {
			t.Fatalf("run %d produced a different code table", i)
		}
	}
}

func TestBuildTree_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		input := make([]byte, 1+rng.Intn(2000))
		alphabet := 1 + rng.Intn(256)
		for j := range input {
			input[j] = byte(rng.Intn(alphabet))
		}

		tree, err := BuildTree(CountFrequencies(input))
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		ct := tree.CodeTable()
		if !ct.IsPrefixFree() {
			t.Fatalf("code table for input %d is not prefix-free", i)
		}
		if ct.Len() != CountFrequencies(input).Len() {
			t.Errorf("expected %d codes, got %d", CountFrequencies(input).Len(), ct.Len())
		}
		if tree.Weight() != uint64(len(input)) {
			t.Errorf("expected root weight %d, got %d", len(input), tree.Weight())
		}
	}
}

func TestBuildTree_FullAlphabet(t *testing.T) {
	input := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%3; j++ {
			input = append(input, byte(i))
		}
	}
	tree := mustBuild(t, string(input))
	if tree.Leaves() != 256 {
		t.Errorf("expected 256 leaves, got %d", tree.Leaves())
	}
	if !tree.CodeTable().IsPrefixFree() {
		t.Errorf("code table is not prefix-free")
	}
}

func TestTree_Dump(t *testing.T) {
	tree := mustBuild(t, "aabbcccc")

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode(8)\n",
		"\t\t0: Leaf(c, 4)\n",
		"\t\t1: Node(4)\n",
		"\t\t\t0: Leaf(b, 2)\n",
		"\t\t\t1: Leaf(a, 2)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTree_Walk(t *testing.T) {
	tree := mustBuild(t, "aabbcccc")

	var buf strings.Builder
	err := tree.Walk(func(leaf bool, symbol Symbol) error {
		if leaf {
			buf.WriteString(symbol.String())
		} else {
			buf.WriteByte('*')
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if expect, actual := "*c*ba", buf.String(); expect != actual {
		t.Errorf("wrong walk order:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	stop := errors.New("stop")
	calls := 0
	err = tree.Walk(func(bool, Symbol) error {
		calls++
		return stop
	})
	if err != stop || calls != 1 {
		t.Errorf("expected Walk to stop after the first error, got err=%v calls=%d", err, calls)
	}
}

func TestTree_SingleLeaf(t *testing.T) {
	tree := mustBuild(t, "qqq")
	if !tree.IsSingleLeaf() {
		t.Errorf("expected a single-leaf tree")
	}
	if tree.Weight() != 3 {
		t.Errorf("expected weight 3, got %d", tree.Weight())
	}
	if mustBuild(t, "qr").IsSingleLeaf() {
		t.Errorf("two-symbol tree reported as single leaf")
	}
}

func TestTreeBuilder(t *testing.T) {
	tb := NewTreeBuilder()
	c := tb.Leaf('c')
	b := tb.Leaf('b')
	a := tb.Leaf('a')
	inner := tb.Node(b, a)
	root := tb.Node(c, inner)
	tree, err := tb.Finish(root)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	expect := mustBuild(t, "aabbcccc").CodeTable().Entries()
	actual := tree.CodeTable().Entries()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	if tree.Weight() != 0 {
		t.Errorf("rebuilt tree should carry no weight, got %d", tree.Weight())
	}
}

func TestTreeBuilder_Malformed(t *testing.T) {
	type testRow struct {
		name  string
		build func(tb *TreeBuilder) int
	}

	testData := [...]testRow{
		{
			name: "empty",
			build: func(tb *TreeBuilder) int {
				return 0
			},
		},
		{
			name: "duplicate-leaf",
			build: func(tb *TreeBuilder) int {
				return tb.Node(tb.Leaf('x'), tb.Leaf('x'))
			},
		},
		{
			name: "shared-child",
			build: func(tb *TreeBuilder) int {
				x := tb.Leaf('x')
				return tb.Node(x, x)
			},
		},
		{
			name: "unreachable",
			build: func(tb *TreeBuilder) int {
				tb.Leaf('x')
				return tb.Leaf('y')
			},
		},
		{
			name: "unknown-handle",
			build: func(tb *TreeBuilder) int {
				return tb.Node(tb.Leaf('x'), 7)
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tb := NewTreeBuilder()
			root := row.build(tb)
			if _, err := tb.Finish(root); !errors.Is(err, ErrMalformedTree) {
				t.Errorf("expected ErrMalformedTree, got %v", err)
			}
		})
	}
}
