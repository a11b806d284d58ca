// Package codec classifies and reverses the block compression transforms
// used inside ROM containers. External format tools are preferred, a native
// LZ10 implementation serves as fallback.
package codec

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Kind identifies a block compression transform.
type Kind string

// Compression transforms recognized by header byte.
const (
	None     Kind = "none"
	LZ10     Kind = "lz10"
	LZ11     Kind = "lz11"
	LZ40     Kind = "lz40"
	Huffman4 Kind = "huffman4"
	Huffman8 Kind = "huffman8"
	RLE      Kind = "rle"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Classify detects the compression transform from the block's header byte.
func Classify(data []byte) Kind {
	if len(data) < 4 {
		return None
	}
	switch data[0] {
	case 0x10:
		return LZ10
	case 0x11:
		return LZ11
	case 0x40:
		return LZ40
	case 0x20:
		return Huffman4
	case 0x28:
		return Huffman8
	case 0x30:
		return RLE
	default:
		return None
	}
}

// toolTimeout bounds one external tool invocation.
const toolTimeout = 5 * time.Second

// ToolResolver maps a tool name to an executable path. An empty result marks
// the tool as unavailable.
type ToolResolver func(name string) string

// Codec applies and reverses block compression transforms.
type Codec struct {
	resolve ToolResolver
}

// New creates a codec that resolves external format tools through the given
// resolver. A nil resolver searches the system path.
func New(resolve ToolResolver) *Codec {
	if resolve == nil {
		resolve = func(name string) string {
			path, err := exec.LookPath(name)
			if err != nil {
				return ""
			}
			return path
		}
	}
	return &Codec{resolve: resolve}
}

var decodeTools = map[Kind]string{
	LZ10:     "lzss",
	LZ11:     "lzx",
	LZ40:     "lzx",
	Huffman4: "huffman",
	Huffman8: "huffman",
	RLE:      "rle",
}

var encodeFlags = map[Kind][2]string{
	LZ10:     {"lzss", "-evn"},
	LZ11:     {"lzx", "-evb"},
	LZ40:     {"lzx", "-evb"},
	Huffman4: {"huffman", "-e4"},
	Huffman8: {"huffman", "-e8"},
	RLE:      {"rle", "-e"},
}

// Decode reverses the block's transform. On total failure the original bytes
// come back with the detected kind, so the caller can see the block is still
// compressed. No error is ever returned to the caller.
func (c *Codec) Decode(ctx context.Context, data []byte) ([]byte, Kind) {
	kind := Classify(data)
	if kind == None {
		return data, None
	}

	if out, ok := c.runTool(ctx, decodeTools[kind], "-d", data); ok {
		// A same-length result is a tool no-op, real decompression
		// almost always changes the size.
		if len(out) > 0 && len(out) != len(data) {
			return out, kind
		}
	}

	if kind == LZ10 {
		if out, err := inflateLZ10(data); err == nil {
			return out, kind
		}
	}

	return data, kind
}

// Encode applies the given transform. Unavailable transforms return the
// input unchanged; callers verify success by classifying the result.
func (c *Codec) Encode(ctx context.Context, data []byte, kind Kind) []byte {
	if kind == None || kind == "" {
		return data
	}
	flags, ok := encodeFlags[kind]
	if !ok {
		return data
	}

	if out, ok := c.runTool(ctx, flags[0], flags[1], data); ok && len(out) > 0 {
		return out
	}

	if kind == LZ10 {
		return deflateLZ10(data)
	}

	return data
}

// runTool pipes data through an external format tool with a bounded wait.
// Any failure is reported as unavailable, never as an error.
func (c *Codec) runTool(ctx context.Context, name, flag string, data []byte) ([]byte, bool) {
	path := c.resolve(name)
	if path == "" {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, flag, "-")
	cmd.Stdin = bytes.NewReader(data)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, false
	}
	return stdout.Bytes(), true
}
