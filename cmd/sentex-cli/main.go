package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sentex "github.com/jamesainslie/go-sentex"
	"github.com/jamesainslie/go-sentex/symbols"
)

// Set by the build through -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	terminators := flag.String("terminators", "", "Comma-separated terminator symbols; ',' itself cannot be listed, use -symbols for it (default: from symbol table)")
	symbolFile := flag.String("symbols", "", "Path to TOML symbol file")
	mode := flag.String("mode", "extract", "Mode: extract or stream")
	format := flag.String("format", "text", "Output format: text or proto (proto appends a non-empty remainder as a final record at position -1)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("sentex-cli %s (%s, %s)\n", version, commit, date)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []sentex.Option{sentex.WithLogger(logger)}
	if *symbolFile != "" {
		tbl, err := symbols.Load(*symbolFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading symbols: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, sentex.WithSymbols(tbl))
	}
	if *terminators != "" {
		opts = append(opts, sentex.WithTerminators(parseTerminators(*terminators)...))
	}

	ext, err := sentex.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating extractor: %v\n", err)
		os.Exit(1)
	}

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	var (
		sentences []sentex.Sentence
		rest      string
	)
	switch *mode {
	case "extract":
		sentences, rest = ext.Extract(string(input), nil)

	case "stream":
		sentences, err = ext.ExtractLines(context.Background(), bytes.NewReader(input))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}

	if err := writeOutput(os.Stdout, *format, sentences, rest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readInput joins the arguments, or reads stdin when there are none.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	return io.ReadAll(os.Stdin)
}
