// Package huffman builds frequency-driven Huffman codes over a byte alphabet
// and uses them to translate between raw bytes and a symbolic code stream made
// of ASCII '0' and '1' digits.
//
// The typical flow is:
//
//     ft := huffman.CountFrequencies(data)
//     tree, err := huffman.BuildTree(ft)
//     digits, warnings, err := huffman.Encode(data, tree.CodeTable())
//     back, err := huffman.Decode(digits, tree)
//
// Tree construction is deterministic.  Candidates are ordered by weight, then
// by a tie key (the symbol value for leaves, -1 for merged nodes), then by
// creation order, so the same input always yields the same code table.
//
// The code stream is symbolic and carries no tree.  See the container
// subpackage for a bit-packed form that stores the tree alongside the data.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
