package cmd

import (
	"io"
	"log/slog"
	"os"
)

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" description:"morph configuration YAML URL"`
	Verbose bool   `short:"V" long:"verbose" description:"debug logging on stderr"`

	Convert *ConvertCmd `command:"convert" description:"Convert a value into the requested type"`
	Types   *TypesCmd   `command:"types"   description:"List known type names"`

	out io.Writer
}

// NewOptions creates options with all sub-commands instantiated, so that go-flags can
// populate them regardless of the argument order
func NewOptions(out io.Writer) *Options {
	ret := &Options{out: out}
	ret.Convert = &ConvertCmd{root: ret}
	ret.Types = &TypesCmd{root: ret}
	return ret
}

func (o *Options) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
