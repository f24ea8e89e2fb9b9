// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"dicgen-core/alphabet"
	"dicgen-core/sequence"
	"dicgen/internal/cli"
	"dicgen/internal/config"
	"dicgen/internal/logging"
	"dicgen/internal/metrics"
	"dicgen/internal/version"
	"dicgen/internal/writers"
)

// ctxCheckEvery bounds how many lines are written between cancellation
// checks. The generator itself is context-free; only the emit loop polls.
const ctxCheckEvery = 1 << 16

// RunContext drives one full generation pass and returns the process exit
// code: 0 on success (including broken-pipe termination), 2 on usage or
// domain validation errors, 3 on I/O failure, 130 when ctx is canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("dicgen")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "dicgen version %s\n", version.Version)
		return 0
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		config.Merge(&opts, cfg)
	}
	if err := cli.Validate(&opts); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	alpha, err := alphabet.New(opts.Alphabet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	gen, err := sequence.New(alpha, opts.Init, opts.End,
		sequence.WithPrefix(opts.Prefix),
		sequence.WithSuffix(opts.Suffix),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logging.New(stderr, opts.Verbose)
	defer func() { _ = log.Sync() }()
	log.Info("starting run",
		zap.Int("base", alpha.Len()),
		zap.Int("width", gen.Width()),
		zap.String("expected", gen.Count().String()),
		zap.String("destination", destName(opts.File)),
	)

	dst, err := writers.Open(opts.File, stdout, opts.Buffer)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	run := metrics.NewRun()
	start := time.Now()

	emitErr := emit(parent, gen, dst, run)

	cerr := dst.Close()
	if emitErr == nil && cerr != nil && !writers.IsBrokenPipe(cerr) {
		emitErr = cerr
	}

	values, bytes := run.Totals()

	switch {
	case emitErr == nil:
		log.Info("run complete",
			zap.Int64("values", values),
			zap.Int64("bytes", bytes),
			zap.Duration("elapsed", time.Since(start)),
		)
		return 0
	case errors.Is(emitErr, context.Canceled):
		if !opts.Quiet {
			fmt.Fprintln(stderr, "interrupted")
		}
		return 130
	default:
		fmt.Fprintln(stderr, emitErr)
		return 3
	}
}

// Run is RunContext without external cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// emit drains gen into dst. A broken pipe is clean termination; the caller
// still flushes and reports whatever was counted so far.
func emit(ctx context.Context, gen *sequence.Generator, dst *writers.Destination, run *metrics.Run) error {
	buf := make([]byte, 0, 64)
	n := 0
	for {
		rec, ok := gen.NextAppend(buf[:0])
		if !ok {
			return nil
		}
		buf = rec
		wrote, err := dst.WriteLine(rec)
		run.AddBytes(int64(wrote))
		if err != nil {
			if writers.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
		run.AddValues(1)
		if n++; n%ctxCheckEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func destName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
