package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"nyalang/config"
	"nyalang/eval"
	"nyalang/parser"
	"nyalang/trace"
	"nyalang/types"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1 // runtime error, strict parse error or unreadable file
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals, so it can be tested
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nya", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nya [flags] [file ...]\n\n")
		fmt.Fprintf(stderr, "Runs the files in order, each linked against the globals of the ones before.\n")
		fmt.Fprintf(stderr, "With no files and no -e, starts an interactive session.\n\n")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML configuration file")
	strict := fs.Bool("strict", false, "Abort compilation on the first parse error")
	traceEnabled := fs.Bool("trace", false, "Enable call tracing")
	traceFilter := fs.String("trace-filter", "", "Trace filter patterns (comma separated globs, e.g. 'fact,$*')")
	evalSrc := fs.String("e", "", "Evaluate source and print the resulting value")
	dump := fs.Bool("dump", false, "Print the compiled program graph instead of running it")
	maxTicks := fs.Int64("max-ticks", 0, "Statement budget per run (0 = unlimited)")
	maxDepth := fs.Int("max-depth", 0, "Call depth limit (negative = unlimited)")
	quiet := fs.Bool("quiet", false, "Hide runtime warnings")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	cfg.ApplyEnv()

	// Flags given on the command line win over the file and the environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *strict
		case "trace":
			cfg.Trace = *traceEnabled
		case "trace-filter":
			cfg.TraceFilters = config.SplitFilters(*traceFilter)
		case "max-ticks":
			cfg.MaxTicks = *maxTicks
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "quiet":
			cfg.Quiet = *quiet
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := log.New(stderr, "", log.LstdFlags)
	if cfg.Trace {
		trace.Init(true, cfg.TraceFilters, stderr)
		logger.Printf("Tracing enabled (filters: %v)", cfg.TraceFilters)
	} else {
		trace.Init(false, nil, nil)
	}

	session := eval.NewSession(eval.SessionOptions{
		Strict:      cfg.Strict,
		Diagnostics: stderr,
		Output:      stdout,
		Input:       stdin,
		Warnings:    stderr,
		Quiet:       cfg.Quiet,
		MaxTicks:    cfg.MaxTicks,
		MaxDepth:    cfg.MaxDepth,
	})

	files := fs.Args()
	if *dump {
		return dumpSources(session, files, *evalSrc, stdout, stderr)
	}

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		if _, err := session.Run(string(src)); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			return exitFailure
		}
	}

	if *evalSrc != "" {
		v, err := session.Run(*evalSrc)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		fmt.Fprintln(stdout, formatResult(v))
		return exitOK
	}

	if len(files) == 0 {
		return runREPL(session, cfg.History, stdout, stderr)
	}
	return exitOK
}

// dumpSources compiles each file (then the -e source) and prints its
// program graph. Later units are linked against earlier ones.
func dumpSources(session *eval.Session, files []string, evalSrc string, stdout, stderr io.Writer) int {
	var sources []string
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		sources = append(sources, string(src))
	}
	if evalSrc != "" {
		sources = append(sources, evalSrc)
	}
	if len(sources) == 0 {
		fmt.Fprintln(stderr, "Error: -dump needs a file or -e source")
		return exitUsage
	}

	status := exitOK
	var linked parser.Globals
	for _, src := range sources {
		prog, err := parser.Compile(src, parser.Options{
			Linked:      linked,
			Strict:      session.Strict(),
			Natives:     session.Registry(),
			Diagnostics: stderr,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		if prog.HasErrors() {
			status = exitFailure
		}
		fmt.Fprint(stdout, parser.Dump(prog.Body))
		linked = parser.Link(linked, prog)
	}
	return status
}

// formatResult renders a value in its literal form
func formatResult(v types.Value) string {
	if v == nil {
		return types.Null.String()
	}
	return v.String()
}
