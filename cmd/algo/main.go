// Package main provides the entry point for the algo CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/algo/cmd/algo/commands"
	"github.com/Sumatoshi-tech/algo/pkg/version"
)

func main() {
	version.Init()

	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
