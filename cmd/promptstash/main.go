package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/db"
	"github.com/jmallek/promptstash/internal/export"
	"github.com/jmallek/promptstash/internal/mcp"
	"github.com/jmallek/promptstash/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"prompt": true, "collection": true, "category": true, "project": true,
	"model": true, "consolidate": true, "optimize": true,
	"export": true, "import": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___  ___
  | _ \/ __|  promptstash
  |  _/\__ \  Prompt library with project consolidation
  |_|  |___/

  Usage: promptstash <command> [options]
         promptstash --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".promptstash")

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	prompts, err := store.NewPromptStore(database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load prompt library: %v\n", err)
		os.Exit(1)
	}
	projects, err := store.NewProjectStore(database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load projects: %v\n", err)
		os.Exit(1)
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = filepath.Join(baseDir, "exports")
	}
	writer := export.NewWriter(exportDir)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(prompts, projects, writer, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'promptstash --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	h := mcp.NewHandlers(prompts, projects, writer, cfg)
	if err := mcp.Run(h, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
