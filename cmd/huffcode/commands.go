package main

import (
	"bytes"
	"errors"
	"fmt"

	huffman "github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/container"
)

const demoText = "hello world! this is a sample text for huffman compression."

var errEmptyInput = errors.New("input is empty")

func runDemo(u *ui) error {
	u.heading("DEMO: HUFFMAN CODING")
	fmt.Fprintf(u.stdout, "Original text: %q\n", demoText)
	u.printer.Fprintf(u.stdout, "Original length: %d characters\n", len(demoText))

	data := []byte(demoText)
	s := huffman.NewSession(u)
	s.CountFrequencies(data)
	if err := s.BuildTree(); err != nil {
		return err
	}
	u.frequencyTable(s.Frequencies())
	u.codeTable(s.Codes())

	digits, err := s.Encode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(u.stdout, "\nEncoded text: %s\n", digits)
	u.printer.Fprintf(u.stdout, "Encoded length: %d bits\n", len(digits))

	decoded, err := s.Decode(digits)
	if err != nil {
		return err
	}
	fmt.Fprintf(u.stdout, "\nDecoded text: %q\n", decoded)
	if !bytes.Equal(decoded, data) {
		u.bad.Fprintln(u.stdout, "ERROR: Decoded text doesn't match original!")
		return errors.New("round trip mismatch")
	}
	u.good.Fprintln(u.stdout, "SUCCESS: Decoded text matches original!")

	u.statistics(len(data), len(digits), 0)
	return nil
}

func runEncode(u *ui, cfg config) error {
	data, err := u.readFile(cfg.in)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errEmptyInput
	}

	s := huffman.NewSession(u)
	s.CountFrequencies(data)
	if err := s.BuildTree(); err != nil {
		return err
	}
	digits, err := s.Encode(data)
	if err != nil {
		return err
	}

	var output []byte
	if cfg.packed {
		var buf bytes.Buffer
		if err := container.Write(&buf, s.Tree(), digits); err != nil {
			return err
		}
		output = buf.Bytes()
	} else {
		output = []byte(digits)
	}
	if err := u.writeFile(cfg.out, output); err != nil {
		return err
	}

	if cfg.tables {
		u.frequencyTable(s.Frequencies())
		u.codeTable(s.Codes())
	}
	u.good.Fprintln(u.stdout, "File compressed successfully!")
	packedBytes := 0
	if cfg.packed {
		packedBytes = len(output)
	}
	u.statistics(len(data), len(digits), packedBytes)
	return nil
}

func runDecode(u *ui, cfg config) error {
	blob, err := u.readFile(cfg.in)
	if err != nil {
		return err
	}
	if len(blob) == 0 {
		return errEmptyInput
	}

	decoded, err := container.Decompress(blob)
	switch {
	case errors.Is(err, container.ErrBadMagic) && looksLikeDigits(blob):
		return fmt.Errorf("%s holds a bare code stream without its tree; re-encode with -packed to make it decodable", cfg.in)
	case err != nil:
		return err
	}

	if err := u.writeFile(cfg.out, decoded); err != nil {
		return err
	}
	u.good.Fprintln(u.stdout, "File decompressed successfully!")
	u.printer.Fprintf(u.stdout, "Decompressed size: %d bytes\n", len(decoded))
	return nil
}

func runTables(u *ui, cfg config) error {
	data, err := u.readFile(cfg.in)
	if err != nil {
		return err
	}

	s := huffman.NewSession(u)
	s.CountFrequencies(data)
	if err := s.BuildTree(); err != nil {
		return err
	}
	if cfg.asJSON {
		return u.tablesJSON(s.Frequencies(), s.Codes())
	}
	u.frequencyTable(s.Frequencies())
	u.codeTable(s.Codes())
	return nil
}

func looksLikeDigits(blob []byte) bool {
	for _, b := range bytes.TrimRight(blob, "\r\n") {
		if b != '0' && b != '1' {
			return false
		}
	}
	return true
}
