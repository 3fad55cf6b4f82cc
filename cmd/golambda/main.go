package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/vic/golambda/pkg/lambda"
	"github.com/vic/golambda/pkg/tracestore"
)

const (
	exitOK      = 0
	exitError   = 1
	exitUsage   = 2
	exitStopped = 3
)

type config struct {
	trace    bool
	plain    bool
	stats    bool
	verbose  bool
	maxSteps int
	timeout  time.Duration
	traceDB  string
	file     string
}

func usage(fs *flag.FlagSet) {
	fmt.Fprint(fs.Output(), "usage: golambda [flags] [file]\n\n")
	fmt.Fprint(fs.Output(), "golambda reduces an untyped lambda term to normal form in normal order.\n")
	fmt.Fprint(fs.Output(), "The term is read from file, or from stdin when no file is given.\n\n")
	fs.PrintDefaults()
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("golambda", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }
	fs.BoolVar(&cfg.trace, "trace", false, "print every intermediate term")
	fs.BoolVar(&cfg.plain, "plain", false, "omit <original> annotations on renamed identifiers")
	fs.BoolVar(&cfg.stats, "stats", false, "print reduction statistics to stderr")
	fs.BoolVar(&cfg.verbose, "v", os.Getenv("GOLAMBDA_DEBUG") != "", "debug logging (also GOLAMBDA_DEBUG=1)")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "stop after this many reductions (0 = no limit)")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "stop after this long (0 = no limit)")
	fs.StringVar(&cfg.traceDB, "trace-db", "", "record the run in this SQLite database")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 1 {
		return cfg, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if cfg.maxSteps < 0 {
		return cfg, fmt.Errorf("-max-steps must not be negative")
	}
	cfg.file = fs.Arg(0)
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitUsage)
	}
	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr))
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) int {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var input []byte
	var err error
	if cfg.file != "" {
		input, err = os.ReadFile(cfg.file)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading file: %v\n", err)
			return exitError
		}
	} else {
		input, err = io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading stdin: %v\n", err)
			return exitError
		}
	}

	term, err := lambda.Parse(string(input))
	if err != nil {
		fmt.Fprintf(stderr, "Parse error: %v\n", err)
		return exitError
	}

	printer := lambda.Printer{Annotate: !cfg.plain}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	rec, err := openRecorder(ctx, cfg.traceDB, printer.Render(term), logger)
	if err != nil {
		fmt.Fprintf(stderr, "Trace store error: %v\n", err)
		return exitError
	}
	defer rec.close()

	ev := lambda.NewEvaluator(cfg.maxSteps)
	ev.Logger = logger.With("section", "eval")
	ev.OnStep = func(e lambda.TraceEvent) {
		if cfg.trace {
			fmt.Fprintf(stdout, "step %d: %s\n", e.Step, printer.Render(e.Term))
		}
		rec.step(e, printer)
	}

	start := time.Now()
	result, evalErr := ev.Run(ctx, term)
	elapsed := time.Since(start)

	status := tracestore.StatusNormal
	if evalErr != nil {
		status = tracestore.StatusStopped
	}
	if err := rec.finish(printer.Render(result), status, ev.Stats().Reductions); err != nil {
		fmt.Fprintf(stderr, "Trace store error: %v\n", err)
		return exitError
	}

	if cfg.stats {
		printStats(stderr, ev.Stats(), elapsed)
	}

	if evalErr != nil {
		fmt.Fprintf(stderr, "Stopped: %v\n", evalErr)
		fmt.Fprintf(stderr, "Last term: %s\n", printer.Render(result))
		return exitStopped
	}
	fmt.Fprintln(stdout, printer.Render(result))
	return exitOK
}
