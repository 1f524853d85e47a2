package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run("huffcode", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, "Valid commands include")

	code, stdout, _ := runCLI(t, "help")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "demo, encode, decode, tables")

	code, _, stderr = runCLI(t, "bogus")
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, `Unknown command "bogus"`)

	code, _, stderr = runCLI(t, "encode", "-out", "x")
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, "No input file provided")
}

func TestRun_Demo(t *testing.T) {
	code, stdout, stderr := runCLI(t, "demo")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "=== FREQUENCY TABLE ===")
	require.Contains(t, stdout, "=== HUFFMAN CODES ===")
	require.Contains(t, stdout, "[SPACE]")
	require.Contains(t, stdout, "SUCCESS: Decoded text matches original!")
	require.Contains(t, stdout, "Compression ratio:")
}

func TestRun_EncodeDecodePacked(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 50)
	in := writeTemp(t, "input.txt", input)
	packed := filepath.Join(t.TempDir(), "input.huf")
	out := filepath.Join(t.TempDir(), "output.txt")

	code, stdout, stderr := runCLI(t, "encode", "-in", in, "-out", packed, "-packed", "-quiet")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "File compressed successfully!")
	require.Contains(t, stdout, "Original size: 2,200 bytes")

	code, stdout, stderr = runCLI(t, "decode", "-in", packed, "-out", out, "-quiet")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "File decompressed successfully!")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestRun_EncodeSymbolic(t *testing.T) {
	in := writeTemp(t, "input.txt", []byte("aab"))
	digits := filepath.Join(t.TempDir(), "input.bits")

	code, stdout, stderr := runCLI(t, "encode", "-in", in, "-out", digits, "-tables", "-quiet")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "=== HUFFMAN CODES ===")

	got, err := os.ReadFile(digits)
	require.NoError(t, err)
	require.Equal(t, "001", string(got))

	code, _, stderr = runCLI(t, "decode", "-in", digits, "-out", filepath.Join(t.TempDir(), "x"), "-quiet")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "without its tree")
}

func TestRun_EmptyInput(t *testing.T) {
	in := writeTemp(t, "empty.txt", nil)
	code, _, stderr := runCLI(t, "encode", "-in", in, "-out", filepath.Join(t.TempDir(), "x"), "-quiet")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "input is empty")

	code, _, stderr = runCLI(t, "tables", "-in", in, "-quiet")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "EmptyFrequencyTable")
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "tables", "-in", filepath.Join(t.TempDir(), "nope"), "-quiet")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "could not open input file")
}

func TestRun_TablesJSON(t *testing.T) {
	in := writeTemp(t, "input.txt", []byte("aab"))
	code, stdout, stderr := runCLI(t, "tables", "-in", in, "-json", "-quiet")
	require.Equal(t, exitOK, code, stderr)

	var got struct {
		Frequencies []struct {
			Symbol int    `json:"symbol"`
			Count  uint64 `json:"count"`
		} `json:"frequencies"`
		Codes []struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Frequencies, 2)
	require.Equal(t, uint64(2), got.Frequencies[0].Count)
	require.Equal(t, "a", got.Codes[0].Name)
	require.Equal(t, "0", got.Codes[0].Code)
	require.Equal(t, "1", got.Codes[1].Code)
}
