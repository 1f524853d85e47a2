package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/chronos-tachyon/huffcode"
)

type ui struct {
	stdout   io.Writer
	stderr   io.Writer
	progress bool
	printer  *message.Printer
	title    *color.Color
	good     *color.Color
	warn     *color.Color
	bad      *color.Color
}

func newUI(stdout, stderr io.Writer, quiet bool) *ui {
	return &ui{
		stdout:   stdout,
		stderr:   stderr,
		progress: !quiet && isTerminal(stderr),
		printer:  message.NewPrinter(language.English),
		title:    color.New(color.FgCyan, color.Bold),
		good:     color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		bad:      color.New(color.FgRed, color.Bold),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Report implements huffman.Reporter.
func (u *ui) Report(d huffman.Diagnostic) {
	if d.Kind.IsWarning() {
		u.warn.Fprintf(u.stderr, "Warning: %v\n", d.Err)
		return
	}
	u.bad.Fprintf(u.stderr, "%s: %v\n", d.Kind, d.Err)
}

var _ huffman.Reporter = (*ui)(nil)

func (u *ui) fail(err error) {
	u.bad.Fprintf(u.stderr, "Error: %v\n", err)
}

func (u *ui) heading(text string) {
	u.title.Fprintf(u.stdout, "\n=== %s ===\n", text)
}

// readFile reads the whole file, with a progress bar on interactive terminals.
func (u *ui) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if u.progress {
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		bar := pb.New64(fi.Size()).SetTemplate(pb.Full).Set(pb.Bytes, true).SetWriter(u.stderr).Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}
	return data, nil
}

func (u *ui) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	return nil
}

func (u *ui) frequencyTable(ft huffman.FrequencyTable) {
	u.heading("FREQUENCY TABLE")
	tw := tabwriter.NewWriter(u.stdout, 0, 8, 2, ' ', 0)
	ft.Dump(tw)
	tw.Flush()
}

func (u *ui) codeTable(ct huffman.CodeTable) {
	u.heading("HUFFMAN CODES")
	tw := tabwriter.NewWriter(u.stdout, 0, 8, 2, ' ', 0)
	ct.Dump(tw)
	tw.Flush()
}

type tablesJSON struct {
	Frequencies huffman.FrequencyTable `json:"frequencies"`
	Codes       huffman.CodeTable      `json:"codes"`
}

func (u *ui) tablesJSON(ft huffman.FrequencyTable, ct huffman.CodeTable) error {
	enc := json.NewEncoder(u.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tablesJSON{Frequencies: ft, Codes: ct})
}

func (u *ui) statistics(originalBytes, codeDigits, packedBytes int) {
	u.heading("COMPRESSION STATISTICS")
	u.printer.Fprintf(u.stdout, "Original size: %d bytes (%d bits)\n", originalBytes, originalBytes*huffman.BitsPerSymbol)
	u.printer.Fprintf(u.stdout, "Compressed size: %d bits\n", codeDigits)
	if packedBytes > 0 {
		u.printer.Fprintf(u.stdout, "Packed size: %d bytes\n", packedBytes)
	}
	u.printer.Fprintf(u.stdout, "Compression ratio: %.2f%%\n", huffman.CompressionRatio(originalBytes, codeDigits))
}
