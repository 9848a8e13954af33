//go:build !cgo

package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Retro Rally %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Retro Rally needs the cgo build (raylib).")
	os.Exit(1)
}
