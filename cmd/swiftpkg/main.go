// Package main provides the swiftpkg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/irmakcan/swift-package-manager/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
