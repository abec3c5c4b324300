package main

import (
	"fmt"
	"os"

	"ced/buffer"
	"ced/config"
	"ced/editor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	// An optional file argument overrides the configured file name.
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: ced [file]")
		os.Exit(2)
	}
	if len(args) == 1 {
		cfg.Filename = args[0]
	}

	e := editor.New(cfg, buffer.DiskStorage{})
	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
