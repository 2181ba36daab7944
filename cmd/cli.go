package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI
func Run(args []string) {
	if err := Execute(args, os.Stdout); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			return
		}
		log.Fatalf("%v", err)
	}
}

// Execute parses args and runs the selected command writing its output to out
func Execute(args []string, out io.Writer) error {
	opts := NewOptions(out)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}
