package main

import (
	"fmt"
	"os"
	"strings"

	"salsite/internal/cmd/build"
	"salsite/internal/cmd/publish"
)

const binaryName = "salsite"

const version = "1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	sub := strings.ToLower(strings.TrimSpace(os.Args[1]))
	args := os.Args[2:]

	switch sub {
	case "build":
		code := build.Run(args)
		os.Exit(code)
	case "sync", "publish":
		code := publish.Run(args)
		os.Exit(code)
	case "version", "--version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %q\n\n", sub)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", binaryName)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  build          Generate index pages from the topic bucket listing")
	fmt.Fprintln(os.Stderr, "  sync, publish  Upload a generated site directory to the topic bucket")
	fmt.Fprintln(os.Stderr, "  version        Print the version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Use \"%s <command> -h\" for command-specific help.\n", binaryName)
}
