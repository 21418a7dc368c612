package main

import (
	"fmt"
	"os"
)

// Version is reported by --version.
const Version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "go-syntaxdemo:", err)
		os.Exit(1)
	}
}
