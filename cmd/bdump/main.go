package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wirebit/bencode"
	"github.com/wirebit/bencode/codec"
	berrors "github.com/wirebit/bencode/errors"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to bencoded file (.torrent or raw)")
		format      = flag.String("format", "tree", "Output format: tree, json or msgpack")
		maxDepth    = flag.Int("max-depth", 0, "Parser recursion limit (0 = default)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: bdump -file <data.torrent> [-format tree|json|msgpack]")
		fmt.Fprintln(os.Stderr, "       bdump -file <data.torrent> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*file, *maxDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *format, *maxDepth); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, format string, maxDepth int) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	val, err := bencode.ParseWithOptions(data, bencode.ParseOptions{MaxDepth: maxDepth})
	if err != nil {
		return describeParseError(err, data)
	}

	switch format {
	case "tree":
		// Styling only when stdout is a terminal.
		color := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Print(renderTree(val, color))
		return nil
	case "json":
		out, err := renderJSON(val)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	case "msgpack":
		out, err := renderMsgpack(val)
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want tree, json or msgpack)", format)
	}
}

// describeParseError adds a short context window around the failing offset.
func describeParseError(err error, data []byte) error {
	var e *berrors.Error
	if !errors.As(err, &e) {
		return err
	}
	start := e.Position - 8
	if start < 0 {
		start = 0
	}
	end := e.Position + 8
	if end > len(data) {
		end = len(data)
	}
	return fmt.Errorf("%w (near %q)", err, data[start:end])
}
