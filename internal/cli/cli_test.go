package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/Creative-Genius2/LinkPlay/internal/options"
)

func parseArgs(t *testing.T, args []string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "serve is the default mode",
			args: []string{"prog", "-game", "IRE", "dump/"},
			want: options.Program{
				Parameters: options.Parameters{Dir: "dump/"},
				Flags:      options.Flags{Game: "IRE", Addr: ":8590", Serve: true},
			},
		},
		{
			name: "one-shot ref does not serve",
			args: []string{"prog", "-game", "CPU", "-ref", "poketool/trainer/trpoke.narc:3", "dump/"},
			want: options.Program{
				Parameters: options.Parameters{Dir: "dump/"},
				Flags:      options.Flags{Game: "CPU", Ref: "poketool/trainer/trpoke.narc:3", Addr: ":8590"},
			},
		},
		{
			name: "table dump with explicit dir flag",
			args: []string{"prog", "-d", "dump/", "-game", "IPK", "-table", "species"},
			want: options.Program{
				Parameters: options.Parameters{Dir: "dump/"},
				Flags:      options.Flags{Game: "IPK", Table: "species", Addr: ":8590"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	// No data directory shows usage.
	_, err := parseArgs(t, []string{"prog"})
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	// Flags after the positional argument are rejected.
	_, err = parseArgs(t, []string{"prog", "-game", "IRE", "dump/", "-debug"})
	assert.True(t, errors.As(err, &usageErr))

	// Neither a game code nor an image to read one from.
	_, err = parseArgs(t, []string{"prog", "dump/"})
	assert.Error(t, err, "game code unknown, pass -game or -image")

	// Unknown game codes fail early.
	_, err = parseArgs(t, []string{"prog", "-game", "ZZZ", "dump/"})
	assert.Error(t, err, `unsupported game code "ZZZ"`)
}
