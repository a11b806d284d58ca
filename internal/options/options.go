// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Dir   string // extracted container tree to read data from
	Image string // cartridge image, for header display and game detection
}

// Flags contains behavior options.
type Flags struct {
	Game  string // game code override when no image is given
	Ref   string // one-shot decode of an "<archive>:<index>" reference
	Table string // one-shot dump of a text table by alias or index
	Addr  string // listen address in serve mode

	Serve bool
	Debug bool
	Quiet bool
}

// Program options of the explorer.
type Program struct {
	Parameters
	Flags
}

// OneShot reports whether the program prints a single result instead of
// serving.
func (p Program) OneShot() bool {
	return p.Ref != "" || p.Table != ""
}
