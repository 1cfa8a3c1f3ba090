// Package main is the entry point for the ivchecker CLI.
package main

import (
	"os"

	"github.com/lilellia/ivchecker/cmd/ivchecker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
