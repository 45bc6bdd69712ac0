// Command emoji256 encodes and decodes emoji256 text from the command line.
//
//	$ emoji256 encode kiwi
//	💢💟💸💟
//	$ emoji256 decode 💢💟💸💟
//	kiwi
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arloliu/emoji256/codec"
)

// Set by the release build via ldflags.
var version = "latest"

// app carries the state shared by all sub-commands of one invocation.
type app struct {
	cfgFile         string
	verbose         bool
	legacyUTF8Index bool
	maxDecodedLen   int
	noColor         bool

	cfg    Config
	color  bool
	logger *log.Logger

	outWriter io.Writer
	errWriter io.Writer
	inReader  io.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{
		outWriter: os.Stdout,
		errWriter: os.Stderr,
		inReader:  os.Stdin,
		logger:    log.New(io.Discard, "", 0),
	}

	cmd := &cobra.Command{
		Use:           "emoji256",
		Short:         "Encode binary data as emoji, one emoji per byte",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/"+defaultConfigName+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.BoolVar(&a.legacyUTF8Index, "legacy-utf8-index", false,
		"report invalid UTF-8 one byte past the valid prefix, as older implementations did")
	flags.IntVar(&a.maxDecodedLen, "max-decoded-len", 0, "reject input that decodes to more bytes than this (0 = unlimited)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output on terminals")

	cmd.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newTableCmd(a))

	return cmd
}

// setup wires the I/O streams and loads the configuration before any sub-command runs.
func (a *app) setup(cmd *cobra.Command) error {
	a.outWriter = cmd.OutOrStdout()
	a.color = false
	if a.outWriter == os.Stdout {
		a.color = !a.noColor && isTerminal(os.Stdout)
		a.outWriter = colorable.NewColorableStdout()
	}
	a.errWriter = cmd.ErrOrStderr()
	a.inReader = cmd.InOrStdin()

	if a.verbose {
		a.logger = log.New(a.errWriter, "[emoji256] ", log.Lmsgprefix|log.LstdFlags)
	}

	cfg, path, err := readConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Printf("loaded config from %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("legacy-utf8-index") {
		cfg.LegacyUTF8Index = a.legacyUTF8Index
	}
	if flags.Changed("max-decoded-len") {
		cfg.MaxDecodedLen = a.maxDecodedLen
	}
	a.cfg = cfg

	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) codec() (*codec.Codec, error) {
	return codec.New(
		codec.WithLegacyUTF8Index(a.cfg.LegacyUTF8Index),
		codec.WithMaxDecodedLen(a.cfg.MaxDecodedLen),
	)
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "emoji256: %v\n", err)
		os.Exit(1)
	}
}
