package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kovidgoyal/csscolor"
)

type Options struct {
	Verbose bool   `short:"v" long:"verbose" description:"Report clamped channel values on stderr"`
	Name    string `short:"n" long:"name" description:"Format the CSS named color NAME" value-name:"NAME"`
	Batch   bool   `short:"b" long:"batch" description:"Read one color per line (R G B [A]) from stdin"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [R G B [A]]\n\nEach channel is a fraction in [0, 1] or the keyword none. Use -- before negative values."
	args, err := parser.Parse()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.Verbose {
		csscolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err = run(opts, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
