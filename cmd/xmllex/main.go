// Command xmllex reads a file, lexes it, and prints its token stream.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/maloquacious/semver"
)

var version = semver.Version{Major: 0, Minor: 1, Patch: 0, Build: semver.Commit()}

type cli struct {
	File     string `arg:"" help:"XML or HTML file to lex."`
	HTML     bool   `help:"Lex under HTML rules (unquoted attributes, raw-text elements)."`
	Watch    bool   `help:"Re-lex the file each time it changes."`
	NoColor  bool   `help:"Disable colorized output even on a terminal." name:"no-color"`
	Store    string `help:"Record every event to a SQLite database at this path." name:"store"`
	LogLevel string `help:"Logging level: debug, info, warn, error." default:"warn" enum:"debug,info,warn,error"`
	Version  bool   `help:"Print the version and exit."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("xmllex"),
		kong.Description("Stream the token events produced by lexing an XML or HTML file."),
		kong.UsageOnError(),
	)

	if c.Version {
		fmt.Println(version.String())
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(c.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := run(&c); err != nil {
		kctx.FatalIfErrorf(err)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
