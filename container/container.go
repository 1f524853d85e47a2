// Package container stores a Huffman code stream in packed form, together
// with the tree needed to decode it.
//
// Layout:
//
//     magic    "HUF\x01"             4 bytes
//     flags    byte                  0 = empty input, 1 = tree present
//     tree     pre-order bit stream  merged node: 0, left, right
//                                    leaf:        1, 8-bit symbol
//                                    zero padded to a byte boundary
//     count    uint64 big-endian     number of code digits
//     payload  code digits           MSB first, zero padded to a byte boundary
//
// The flags byte is the last field of an empty container.
//
package container

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	bitstream "github.com/dgryski/go-bitstream"
	"github.com/icza/bitio"

	huffman "github.com/chronos-tachyon/huffcode"
)

var magic = [4]byte{'H', 'U', 'F', 0x01}

const (
	flagEmpty byte = 0
	flagTree  byte = 1
)

// maxDepth bounds the depth of a serialized tree: 256 leaves need at most
// 255 levels of merged nodes.
const maxDepth = huffman.NumSymbols - 1

// maxPrealloc caps the buffer reserved up front for the payload, so that a
// corrupt count cannot force a huge allocation.
const maxPrealloc = 1 << 20

var (
	// ErrBadMagic is returned when the input does not start with the
	// container magic.
	ErrBadMagic = errors.New("container: bad magic; not a packed Huffman stream")

	// ErrCorruptTree is returned when the serialized tree is malformed.
	ErrCorruptTree = errors.New("container: corrupt tree")

	// ErrTruncated is returned when the input ends early.
	ErrTruncated = errors.New("container: truncated input")
)

// Write stores tree and digits to w.  A nil tree writes an empty container
// and requires digits to be empty.  digits must consist of '0' and '1' only.
func Write(w io.Writer, tree *huffman.Tree, digits string) error {
	if tree == nil && digits != "" {
		return errors.New("container: code digits without a tree")
	}
	for offset := 0; offset < len(digits); offset++ {
		if d := digits[offset]; d != '0' && d != '1' {
			return fmt.Errorf("container: %w", &huffman.InvalidDigitError{Offset: offset, Digit: d})
		}
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if tree == nil {
		_, err := w.Write([]byte{flagEmpty})
		return err
	}
	if _, err := w.Write([]byte{flagTree}); err != nil {
		return err
	}
	if err := writeTree(w, tree); err != nil {
		return err
	}

	var count [8]byte
	binary.BigEndian.PutUint64(count[:], uint64(len(digits)))
	if _, err := w.Write(count[:]); err != nil {
		return err
	}
	return writeDigits(w, digits)
}

// Read loads a container written by Write.  It returns a nil tree and empty
// digits for an empty container.
func Read(r io.Reader) (*huffman.Tree, string, error) {
	br := bufio.NewReader(r)

	var header [5]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, "", ErrBadMagic
		}
		return nil, "", err
	}
	if [4]byte{header[0], header[1], header[2], header[3]} != magic {
		return nil, "", ErrBadMagic
	}
	switch header[4] {
	case flagEmpty:
		return nil, "", nil
	case flagTree:
		// pass
	default:
		return nil, "", fmt.Errorf("container: unknown flags %#02x", header[4])
	}

	tree, err := readTree(br)
	if err != nil {
		return nil, "", err
	}

	var count [8]byte
	if _, err := io.ReadFull(br, count[:]); err != nil {
		return nil, "", truncated(err)
	}
	digits, err := readDigits(br, binary.BigEndian.Uint64(count[:]))
	if err != nil {
		return nil, "", err
	}
	return tree, digits, nil
}

func writeTree(w io.Writer, tree *huffman.Tree) error {
	bw := bitstream.NewWriter(w)
	err := tree.Walk(func(leaf bool, symbol huffman.Symbol) error {
		if !leaf {
			return bw.WriteBit(bitstream.Zero)
		}
		if err := bw.WriteBit(bitstream.One); err != nil {
			return err
		}
		return bw.WriteByte(byte(symbol))
	})
	if err != nil {
		return err
	}
	return bw.Flush(bitstream.Zero)
}

func readTree(r io.Reader) (*huffman.Tree, error) {
	br := bitstream.NewReader(r)
	tb := huffman.NewTreeBuilder()

	var readNode func(depth int) (int, error)
	readNode = func(depth int) (int, error) {
		if depth > maxDepth {
			return 0, fmt.Errorf("%w: deeper than %d levels", ErrCorruptTree, maxDepth)
		}
		bit, err := br.ReadBit()
		if err != nil {
			return 0, truncated(err)
		}
		if bit == bitstream.One {
			b, err := br.ReadByte()
			if err != nil {
				return 0, truncated(err)
			}
			return tb.Leaf(huffman.Symbol(b)), nil
		}
		left, err := readNode(depth + 1)
		if err != nil {
			return 0, err
		}
		right, err := readNode(depth + 1)
		if err != nil {
			return 0, err
		}
		return tb.Node(left, right), nil
	}

	root, err := readNode(0)
	if err != nil {
		return nil, err
	}
	tree, err := tb.Finish(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTree, err)
	}
	return tree, nil
}

func writeDigits(w io.Writer, digits string) error {
	bw := bitio.NewWriter(w)
	for offset := 0; offset < len(digits); offset++ {
		if err := bw.WriteBool(digits[offset] == '1'); err != nil {
			return err
		}
	}
	return bw.Close()
}

func readDigits(r io.Reader, count uint64) (string, error) {
	prealloc := count
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}

	var out strings.Builder
	out.Grow(int(prealloc))

	br := bitio.NewReader(r)
	for i := uint64(0); i < count; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return "", truncated(err)
		}
		if bit {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	return out.String(), nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
