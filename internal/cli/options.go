// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dicgen/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Numeral system and bounds
	Alphabet string
	Init     string
	End      string

	// Output
	File   string
	Prefix string
	Suffix string
	Buffer int

	ConfigFile string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool

	// set tracks which flags appeared on the command line, so config-file
	// values only fill the gaps.
	set map[string]bool
}

// Changed reports whether the named flag was given explicitly.
func (o *Options) Changed(name string) bool { return o.set[name] }

// canonical maps short aliases to their long flag names.
var canonical = map[string]string{
	"a": "alphabet",
	"i": "init",
	"e": "end",
	"f": "file",
	"c": "config",
	"q": "quiet",
	"v": "version",
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s – bounded dictionary generator

Enumerates every fixed-width value between --init and --end (inclusive)
over an ordered alphabet, one value per line.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Numeral system and bounds
	fs.StringVar(&opt.Alphabet, "alphabet", "", "ordered symbol set defining the numeral system [*]")
	fs.StringVar(&opt.Alphabet, "a", "", "alias of --alphabet")
	fs.StringVar(&opt.Init, "init", "", "starting value, a string over the alphabet [*]")
	fs.StringVar(&opt.Init, "i", "", "alias of --init")
	fs.StringVar(&opt.End, "end", "", "ending value, inclusive [*]")
	fs.StringVar(&opt.End, "e", "", "alias of --end")

	// Output
	fs.StringVar(&opt.File, "file", "", "output file (default: stdout)")
	fs.StringVar(&opt.File, "f", "", "alias of --file")
	fs.StringVar(&opt.Prefix, "prefix", "", "literal prepended to every value")
	fs.StringVar(&opt.Suffix, "suffix", "", "literal appended to every value")
	fs.IntVar(&opt.Buffer, "buffer", 0, "output buffer size in bytes (0 = default) [0]")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run file; explicit flags win over file values")
	fs.StringVar(&opt.ConfigFile, "c", "", "alias of --config")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential messages [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log run diagnostics to stderr [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}

	opt.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if c, ok := canonical[name]; ok {
			name = c
		}
		opt.set[name] = true
	})
	return opt, nil
}

// Validate applies the CLI invariants once config-file values are merged in.
func Validate(o *Options) error {
	switch {
	case o.Alphabet == "":
		return errors.New("--alphabet is required")
	case o.Init == "":
		return errors.New("--init is required")
	case o.End == "":
		return errors.New("--end is required")
	}
	if o.Buffer < 0 {
		return errors.New("--buffer must be ≥ 0")
	}
	return nil
}
