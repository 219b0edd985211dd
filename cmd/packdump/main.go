// packdump decodes consecutive fixed-layout records from a binary file.
//
// The record layout is a TOML file listing fields in order; every field is a
// little-endian integer (u8..u128, i8..i128) or a fixed-length array of one
// (u16[4]). Records are packed back to back with no padding.
//
//	packdump --layout header.toml [--offset N] [--count N] [--json] FILE
//
// FILE "-" reads standard input. Records go to standard output, diagnostics
// to standard error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/oy3o/packed/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "packdump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		layoutPath string
		offset     int
		count      int
		jsonOut    bool
		logLevel   string
	)

	flagSet := pflag.NewFlagSet("packdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&layoutPath, "layout", "l", "", "TOML file describing one record")
	flagSet.IntVar(&offset, "offset", 0, "byte offset of the first record")
	flagSet.IntVarP(&count, "count", "n", 0, "number of records to decode (0 decodes until the data ends)")
	flagSet.BoolVar(&jsonOut, "json", false, "write records and logs as JSON lines")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if layoutPath == "" {
		return errors.New("--layout is required")
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("expected one input file, got %d", flagSet.NArg())
	}
	if offset < 0 || count < 0 {
		return errors.New("--offset and --count must not be negative")
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parse --log-level: %w", err)
	}
	logger := logging.New(stderr, logging.Options{Level: level, JSON: jsonOut})
	out := logging.New(stdout, logging.Options{Level: zerolog.DebugLevel, JSON: jsonOut, NoTimestamp: true})

	layout, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}
	data, err := readInput(flagSet.Arg(0), stdin)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("layout", layout.Name).
		Int("record_size", newRecord(layout).PackedSize()).
		Int("bytes", len(data)).
		Msg("decoding")

	res, err := dump(data, layout, dumpOptions{Offset: offset, Count: count}, func(index, off int, values []namedValue) {
		ev := out.Log().Int("record", index).Int("offset", off)
		for _, v := range values {
			ev = ev.Interface(v.Name, v.Value)
		}
		ev.Msg(layout.Name)
	})
	if err != nil {
		return err
	}

	ev := logger.Info()
	if res.Trailing > 0 && count == 0 {
		ev = logger.Warn()
	}
	ev.Int("records", res.Records).
		Int("next_offset", res.Next).
		Int("trailing", res.Trailing).
		Msg("done")
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
