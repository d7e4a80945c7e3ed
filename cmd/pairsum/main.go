package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/goose-lang/pairsum"
	"github.com/goose-lang/pairsum/config"
	"github.com/goose-lang/pairsum/readval"
	"github.com/goose-lang/pairsum/util"
)

type options struct {
	configPath string
	inPath     string
	format     string
	outPath    string
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pairsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: pairsum [options] [ignored args...]")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "pairsum.toml",
		"toml config file (a missing file means defaults)")
	fs.StringVar(&opts.inPath, "in", "",
		"input file, overriding the config (- for stdin)")
	fs.StringVar(&opts.format, "format", "",
		"input format, text or binary (default from config, else text)")
	fs.StringVar(&opts.outPath, "out", "",
		"write the result to this file instead of stdout")
	fs.BoolVar(&opts.debug, "debug", false,
		"spew the filled records to stderr")
	err := fs.Parse(args)
	return opts, err
}

func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.inPath != "" {
		cfg.Input.Path = opts.inPath
		cfg.Input.Values = nil
	}
	if opts.format != "" {
		cfg.Input.Format = config.Format(opts.format)
	}
	if opts.outPath != "" {
		cfg.Output.Path = opts.outPath
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed).SprintFunc()
	fail := func(err error, what string) int {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintln(stderr, red(what))
		return 1
	}

	opts, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fail(err, "invalid configuration")
	}
	if cfg.Output.NoColor {
		red = fmt.Sprint
	}

	src, closeFn, err := readval.Open(cfg.Input, stdin)
	if err != nil {
		return fail(err, "could not open input")
	}
	defer closeFn()

	p, err := pairsum.Fill(src)
	if err != nil {
		return fail(err, "could not read input")
	}
	if opts.debug {
		spew.Fdump(stderr, p)
	}

	out := pairsum.Format(pairsum.Sum(&p))
	if cfg.Output.Path == "" {
		fmt.Fprint(stdout, out)
		return 0
	}
	err = util.WriteFileIfChanged(cfg.Output.Path, []byte(out), 0666)
	if err != nil {
		return fail(err, "could not write output")
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
