package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Flags
var quiet bool
var list_devs bool
var watch bool
var configfile string

const usage_text = `Usage: %s [options] command [args...]

Watch for game controllers and run a command each time a controller's
home/guide button is pressed. Controllers already attached are picked up
at startup, newly plugged ones as they arrive. Configuration file is
optional and defaults to the standard XDG location (usually
~/.config/guiders/config.toml).

`

func flagParse() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage_text, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "  -h    Help\n")
		os.Exit(1)
	}
	flag.StringVar(&configfile, "c", "", "Use `configfile` for your config")
	flag.BoolVar(&list_devs, "l", false, "List input devices connected")
	flag.BoolVar(&watch, "w", false,
		"Watch and write controller key events to STDOUT")
	flag.BoolVar(&quiet, "q", false, "Quiet all normal output")
	flag.Parse()
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
	if quiet {
		log.SetOutput(io.Discard)
	}
}
