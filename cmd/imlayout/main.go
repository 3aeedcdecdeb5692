package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/imlayout/cmd/imlayout/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args, os.Stdout)
	case "config":
		err = commands.Config(args, os.Stdout)
	case "demo":
		err = commands.Demo(args, os.Stdout)
	case "version", "-v", "--version":
		fmt.Printf("imlayout version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`imlayout - immediate-mode layout engine tools

Usage: imlayout <command> [options]

Commands:
  init       Write a default imlayout.toml (or .yaml) to the current directory
  config     Print the resolved engine configuration
  demo       Run a demo app headlessly and dump the resulting widgets
  version    Print version information
  help       Show this help message

Examples:
  imlayout init --format yaml              Create imlayout.yaml with defaults
  imlayout config                          Show the config the engine would use
  imlayout demo --root . --query "go test" Search files under . and dump results
  imlayout demo --app stats                Show the runtime statistics panel

Configuration:
  The engine reads imlayout.toml, imlayout.yaml or imlayout.yml from the
  current directory or the nearest parent. Pass --config to use another file.`)
}
