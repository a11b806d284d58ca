// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/Creative-Genius2/LinkPlay/internal/gamedef"
	"github.com/Creative-Genius2/LinkPlay/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Dir == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if opts.Dir == "" {
		opts.Dir = args[0]
	}
	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: linkplay [options] <extracted data directory>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the data directory, please pass the data directory as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Game == "" && opts.Image == "" {
		return fmt.Errorf("game code unknown, pass -game or -image")
	}
	if opts.Game != "" {
		if _, ok := gamedef.ByCode(opts.Game); !ok {
			return fmt.Errorf("unsupported game code %q", opts.Game)
		}
	}

	// Without a one-shot request the program serves.
	if !opts.OneShot() {
		opts.Serve = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Dir, "d", "", "directory of the extracted container tree to read data from")
	flags.StringVar(&opts.Image, "image", "", "cartridge image file, used to detect the game code from its header")
	flags.StringVar(&opts.Game, "game", "", "game code (e.g. IRE) when no cartridge image is given")
	flags.StringVar(&opts.Ref, "ref", "", "decode one archive entry reference (<archive path>:<index>) and exit")
	flags.StringVar(&opts.Table, "table", "", "dump one text table by alias or archive index and exit")
	flags.StringVar(&opts.Addr, "addr", ":8590", "listen address in serve mode")
	flags.BoolVar(&opts.Serve, "serve", false, "serve the decoded data over HTTP and websocket")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
