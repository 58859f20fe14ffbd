// Command uddf validates, inspects, indexes and serves UDDF dive logs.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/uddf/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// Globals are flags shared by every command. Commands receive them as a
// Run argument.
type Globals struct {
	Config    kong.ConfigFlag `help:"Load flag defaults from a JSON file" type:"path"`
	LogLevel  string          `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn"`
	LogFormat string          `name:"log-format" help:"Log format" enum:"text,json" default:"text"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

func (g *Globals) initLogging() error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLoggerWithWriter(g.Stderr, level, format)
	return nil
}

// CLI defines the command-line interface for uddf.
type CLI struct {
	Globals

	Validate ValidateCmd `cmd:"" help:"Validate logbooks"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve identifiers and references in a logbook"`
	Info     InfoCmd     `cmd:"" help:"Summarize a file without decoding it"`
	Fmt      FmtCmd      `cmd:"" help:"Pretty-print a logbook"`
	Query    QueryCmd    `cmd:"" help:"Evaluate an XPath expression against a logbook"`
	Convert  ConvertCmd  `cmd:"" help:"Re-encode a logbook, compressing when the output ends in .xz"`
	Index    IndexCmd    `cmd:"" help:"Validate logbooks and record them in a catalog"`
	Catalog  CatalogCmd  `cmd:"" help:"Catalog queries"`
	Serve    ServeCmd    `cmd:"" help:"Start the REST API server"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// defaultConfigPaths are searched for flag defaults in order.
var defaultConfigPaths = []string{"./.uddf.json", "~/.config/uddf/config.json"}

// exitStatus is returned by commands that have already reported their
// outcome and only need a non-zero exit code.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func (e exitStatus) ExitCode() int { return int(e) }

// exitCalled carries kong's requested exit code out of a parse, for
// example after --help.
type exitCalled int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, defaultConfigPaths...))
}

func run(args []string, stdout, stderr io.Writer, configPaths ...string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(exitCalled)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	var cli CLI
	cli.Stdout = stdout
	cli.Stderr = stderr

	parser, err := kong.New(&cli,
		kong.Name("uddf"),
		kong.Description("UDDF dive log validation and indexing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, configPaths...),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCalled(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "uddf: error: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(cli.initLogging())

	err = ctx.Run(&cli.Globals)
	var status exitStatus
	if errors.As(err, &status) {
		return status.ExitCode()
	}
	ctx.FatalIfErrorf(err)
	return 0
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Stdout, "uddf version %s\n", version)
	return nil
}
