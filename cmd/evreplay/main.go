// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/evloop/evloop/app"
)

var (
	scale    = flag.Float64("scale", 1, "scale factor of windows that do not specify one")
	logLevel = flag.String("log-level", "warning", "log level (trace, debug, info, warning, error, off)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "evreplay: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a script")
	}
	level, ok := app.ParseLevel(*logLevel)
	if !ok {
		return fmt.Errorf("invalid -log-level %s", *logLevel)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	s, err := parseScript(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return replay(s, os.Stdout, replayOptions{
		scale:  float32(*scale),
		logger: app.NewLogger(os.Stderr, level),
	})
}
