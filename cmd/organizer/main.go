// Package main provides the CLI entry point for Organizer.
package main

import (
	"organizer/internal/cli"
)

func main() {
	cli.Execute()
}
