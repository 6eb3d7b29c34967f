// Package main is the entry point for the cidian CLI.
package main

import (
	"os"

	"github.com/luojia/cidian/cmd/cidian/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
