// Command nfaregex-demo compiles a pattern and reports whether it fully or
// partially matches a set of inputs, optionally resolving named variables
// first.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/nfaregex"
)

type options struct {
	pattern string
	vars    goflags.RuntimeMap
	inputs  goflags.StringSlice
	partial bool
	debug   bool
	verbose bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compile and test a pattern against one or more input strings.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.pattern, "pattern", "p", "", "pattern to compile"),
		flagSet.RuntimeMapVarP(&opts.vars, "var", "e", nil, "named variable in name=pattern form, may be repeated"),
		flagSet.StringSliceVarP(&opts.inputs, "input", "i", nil, "input string to match against (comma-separated, repeatable)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.partial, "partial", "m", false, "report partial_match instead of full_match"),
		flagSet.BoolVar(&opts.debug, "debug", false, "dump the compiled automaton before matching"),
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "display verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}
	if opts.verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	return opts
}

func main() {
	opts := parseFlags()
	if opts.pattern == "" {
		gologger.Fatal().Msgf("-pattern is required")
	}

	rawVars := opts.vars.AsMap()
	vars := make(map[string]*nfaregex.Regex, len(rawVars))
	for name, v := range rawVars {
		src, ok := v.(string)
		if !ok {
			gologger.Fatal().Msgf("variable %q: expected a string pattern", name)
		}
		re, err := nfaregex.Compile(src, nil)
		if err != nil {
			gologger.Fatal().Msgf("compiling variable %q: %s", name, err)
		}
		vars[name] = re
		gologger.Verbose().Msgf("compiled variable %s = %q", name, src)
	}

	re, err := nfaregex.Compile(opts.pattern, vars)
	if err != nil {
		gologger.Fatal().Msgf("compiling %q: %s", opts.pattern, err)
	}
	gologger.Info().Msgf("compiled pattern %q", opts.pattern)
	if opts.debug {
		gologger.Print().Msgf("%s", re.Debug())
	}

	exitCode := 0
	for _, input := range opts.inputs {
		var matched bool
		if opts.partial {
			matched = re.PartialMatch(input)
		} else {
			matched = re.FullMatch(input)
		}
		if matched {
			gologger.Print().Msgf("%q: match", input)
		} else {
			gologger.Print().Msgf("%q: no match", input)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
