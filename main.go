// Package main implements the main entry point for the game data explorer
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/Creative-Genius2/LinkPlay/internal/cli"
	"github.com/Creative-Genius2/LinkPlay/internal/codec"
	"github.com/Creative-Genius2/LinkPlay/internal/config"
	"github.com/Creative-Genius2/LinkPlay/internal/gamedef"
	"github.com/Creative-Genius2/LinkPlay/internal/header"
	"github.com/Creative-Genius2/LinkPlay/internal/options"
	"github.com/Creative-Genius2/LinkPlay/internal/server"
	"github.com/Creative-Genius2/LinkPlay/internal/session"
	"github.com/Creative-Genius2/LinkPlay/internal/source"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts, version, commit)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	config.PrintBanner(logger, opts, version, commit)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal(err.Error())
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	profile, info, err := resolveProfile(logger, opts)
	if err != nil {
		return err
	}

	sess := session.New(logger, source.NewDir(opts.Dir), codec.New(nil), profile)
	if err := sess.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrapping text tables: %w", err)
	}

	switch {
	case opts.Ref != "":
		return printEntry(ctx, sess, opts.Ref)
	case opts.Table != "":
		return printTable(sess, opts.Table)
	default:
		return server.New(logger, sess, info).Run(ctx, opts.Addr)
	}
}

// resolveProfile picks the game profile from the -game flag or the
// cartridge image header.
func resolveProfile(logger *log.Logger, opts options.Program) (gamedef.Profile, *header.Info, error) {
	code := opts.Game
	var info *header.Info
	if opts.Image != "" {
		parsed, err := header.Read(opts.Image)
		if err != nil {
			return gamedef.Profile{}, nil, fmt.Errorf("reading image header: %w", err)
		}
		info = &parsed
		logger.Info("image header",
			log.String("code", info.FullCode),
			log.String("title", info.Title),
			log.String("region", info.Region))
		if code == "" {
			code = info.GameCode
		}
	}

	profile, ok := gamedef.ByCode(code)
	if !ok {
		return gamedef.Profile{}, nil, fmt.Errorf("unsupported game code %q", code)
	}
	return profile, info, nil
}

func printEntry(ctx context.Context, sess *session.Session, ref string) error {
	entry, err := sess.EntryByRef(ctx, ref)
	if err != nil {
		return err
	}

	var payload any = entry.Record
	if payload == nil {
		payload = map[string]any{
			"role":        entry.Role.String(),
			"compression": entry.Kind.String(),
			"size":        len(entry.Raw),
		}
	}
	return printJSON(payload)
}

func printTable(sess *session.Session, key string) error {
	entries, ok := sess.Table(key)
	if !ok {
		return fmt.Errorf("table %q not found", key)
	}
	return printJSON(entries)
}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
