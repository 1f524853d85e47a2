// Command huffcode builds Huffman codes for files and text, and translates
// between raw bytes and code streams.
//
// Usage:
//
//     huffcode demo
//     huffcode encode -in FILE -out FILE [-packed] [-tables] [-quiet]
//     huffcode decode -in FILE -out FILE [-quiet]
//     huffcode tables -in FILE [-json] [-quiet]
//
// Without -packed, encode writes the code stream as one ASCII '0' or '1' per
// bit and the tree is not saved, so the output cannot be decoded later.  With
// -packed, encode writes a container holding both the tree and the packed
// bits, which decode accepts.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var Commands = [...]string{"demo", "encode", "decode", "tables", "help"}

type config struct {
	in     string
	out    string
	packed bool
	tables bool
	asJSON bool
	quiet  bool
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

func run(application string, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(application, stderr)
		return exitUsage
	}

	command, rest := args[0], args[1:]
	fs := flag.NewFlagSet(application+" "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	switch command {
	case "demo":
		// no flags
	case "encode":
		fs.StringVar(&cfg.in, "in", "", "File to encode")
		fs.StringVar(&cfg.out, "out", "", "File to write the code stream to")
		fs.BoolVar(&cfg.packed, "packed", false, "Write a packed container that includes the tree")
		fs.BoolVar(&cfg.tables, "tables", false, "Print the frequency and code tables")
		fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress the progress bar")
	case "decode":
		fs.StringVar(&cfg.in, "in", "", "Packed container to decode")
		fs.StringVar(&cfg.out, "out", "", "File to write the decoded bytes to")
		fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress the progress bar")
	case "tables":
		fs.StringVar(&cfg.in, "in", "", "File to analyze")
		fs.BoolVar(&cfg.asJSON, "json", false, "Print the tables as JSON")
		fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress the progress bar")
	case "help", "-help", "--help", "-h":
		usage(application, stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n", command)
		usage(application, stderr)
		return exitUsage
	}

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if command != "demo" && cfg.in == "" {
		fmt.Fprintf(stderr, "No input file provided; use -in FILE\n")
		return exitUsage
	}
	if (command == "encode" || command == "decode") && cfg.out == "" {
		fmt.Fprintf(stderr, "No output file provided; use -out FILE\n")
		return exitUsage
	}

	ui := newUI(stdout, stderr, cfg.quiet)
	var err error
	switch command {
	case "demo":
		err = runDemo(ui)
	case "encode":
		err = runEncode(ui, cfg)
	case "decode":
		err = runDecode(ui, cfg)
	case "tables":
		err = runTables(ui, cfg)
	}
	if err != nil {
		ui.fail(err)
		return exitError
	}
	return exitOK
}

func usage(application string, w io.Writer) {
	fmt.Fprintf(w, "Usage of %s:\n", application)
	fmt.Fprintf(w, "\t%s <command> [OPTIONS]\n", application)
	fmt.Fprintf(w, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(w, "Run %s <command> -help for the options of a command.\n", application)
}
