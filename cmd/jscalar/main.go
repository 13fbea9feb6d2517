// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jscalar parses files containing a single scalar JSON value and
// reports the type and value of each, or the reason it could not be parsed.
//
// Usage:
//
//	jscalar [flags] [file ...]
//
// With no file arguments, or for a file named "-", standard input is read.
// The exit status is 0 if every input parsed, 1 if any did not, and 2 for a
// usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/creachadair/jscalar"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns its exit
// status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jscalar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := fs.Bool("pretty", false, "Enable pretty logging output")
	quiet := fs.Bool("quiet", false, "Do not print results, only set the exit status")
	showVersion := fs.Bool("version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jscalar [flags] [file ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "jscalar version %s\n", version)
		return 0
	}

	setupLogging(stderr, *logLevel, *prettyLogs)

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	status := 0
	for _, name := range names {
		line, ok := check(name, stdin)
		if !ok {
			status = 1
		}
		if !*quiet {
			fmt.Fprintln(stdout, line)
		}
	}
	return status
}

// check parses the named input and returns a one-line summary of the result,
// and whether the parse succeeded.
func check(name string, stdin io.Reader) (string, bool) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to open input")
			return fmt.Sprintf("%s\terror: %v", name, err), false
		}
		defer f.Close()
		r = f
	}

	v, err := jscalar.ParseReader(r)
	if err != nil {
		var serr *jscalar.SyntaxError
		if !errors.As(err, &serr) {
			log.Error().Err(err).Str("file", name).Msg("Failed to read input")
			return fmt.Sprintf("%s\terror: %v", name, err), false
		}
		log.Error().
			Str("file", name).
			Str("code", serr.Code.String()).
			Int("offset", serr.Offset).
			Int("line", serr.Location.Line).
			Int("column", serr.Location.Column).
			Msg("Invalid input")
		return fmt.Sprintf("%s\t%v at %v", name, serr.Code, serr.Location), false
	}

	ev := log.Debug().Str("file", name).Stringer("type", v.Type())
	line := fmt.Sprintf("%s\t%v", name, v.Type())
	if v.Type() == jscalar.Number {
		ev = ev.Float64("number", v.Float64())
		line += "\t" + strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	}
	ev.Msg("Parsed value")
	return line, true
}

func setupLogging(w io.Writer, level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
}
