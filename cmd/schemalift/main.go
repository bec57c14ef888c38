package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/erraggy/schemalift"
	"github.com/erraggy/schemalift/internal/cliutil"
	"github.com/erraggy/schemalift/internal/mcpserver"
	"github.com/erraggy/schemalift/lifter"
	"github.com/erraggy/schemalift/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schemalift v%s\n", schemalift.Version())
	case "help", "-h", "--help":
		printUsage()
	case "lift":
		if err := handleLift(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// liftFlags contains flags for the lift command
type liftFlags struct {
	output  string
	quiet   bool
	verbose bool
}

func setupLiftFlags() (*flag.FlagSet, *liftFlags) {
	fs := flag.NewFlagSet("lift", flag.ContinueOnError)
	flags := &liftFlags{}

	fs.StringVar(&flags.output, "output", "", "write the rewritten document to this file (default: stdout)")
	fs.StringVar(&flags.output, "o", "", "shorthand for -output")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress the registration summary")
	fs.BoolVar(&flags.quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schemalift lift [flags] <file|->\n\n")
		_, _ = fmt.Fprintf(output, "Lift inline request/response schemas into components/schemas.\n")
		_, _ = fmt.Fprintf(output, "Use - to read the document from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schemalift lift openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  schemalift lift -o lifted.yaml openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  cat openapi.json | schemalift lift -q -\n")
	}

	return fs, flags
}

func handleLift(args []string) error {
	fs, flags := setupLiftFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file")
	}
	input := fs.Arg(0)

	opts := []lifter.LiftOption{liftInputOption(input)}
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, lifter.WithLogger(parser.NewSlogAdapter(slog.New(handler))))
	}

	result, err := lifter.LiftWithOptions(opts...)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(result.Document, result.SourceFormat)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flags.output, err)
		}
	} else {
		cliutil.Writef(os.Stdout, "%s", data)
	}

	if !flags.quiet {
		printSummary(os.Stderr, result)
	}
	return nil
}

// liftInputOption maps the positional argument to a lifter input source,
// treating "-" as stdin.
func liftInputOption(input string) lifter.LiftOption {
	if input != "-" {
		return lifter.WithFilePath(input)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		// Surfaced by the lifter as a parse failure on empty input.
		data = nil
	}
	return lifter.WithBytes(data, "")
}

func printSummary(w io.Writer, result *lifter.LiftResult) {
	cliutil.Writef(w, "Registered %d schema(s)\n", len(result.Registered))
	for _, reg := range result.Registered {
		cliutil.Writef(w, "  %s (%d usage(s))\n", reg.Name, len(reg.Contexts))
	}
	if len(result.Renames) > 0 {
		cliutil.Writef(w, "Shortened %d name(s)\n", len(result.Renames))
		for _, r := range result.Renames {
			cliutil.Writef(w, "  %s -> %s\n", r.From, r.To)
		}
	}
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	cliutil.Writef(os.Stdout, "schemalift v%s - lift inline OpenAPI schemas into named components\n\n", schemalift.Version())
	cliutil.Writef(os.Stdout, "Usage: schemalift <command> [flags] [arguments]\n\n")
	cliutil.Writef(os.Stdout, "Commands:\n")
	cliutil.Writef(os.Stdout, "  lift      Lift inline schemas into components/schemas\n")
	cliutil.Writef(os.Stdout, "  mcp       Run as an MCP server over stdio\n")
	cliutil.Writef(os.Stdout, "  version   Print the version\n")
	cliutil.Writef(os.Stdout, "  help      Show this help\n\n")
	cliutil.Writef(os.Stdout, "Run 'schemalift <command> -h' for command-specific flags.\n")
}
