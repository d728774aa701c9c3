package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/taglog/go-taglog/taglog"
)

// CLI holds the demo's command line options.
type CLI struct {
	Color   string `name:"color" enum:"auto,always,never" default:"auto" help:"Colorize tier tags. One of: ${enum}"`
	FromEnv bool   `name:"from-env" help:"Configure from TAGLOG_* environment variables instead of flags"`
	Fail    string `name:"fail" default:"" help:"Log this message on the EXIT tier and terminate"`
}

// Example exercising the taglog tiers.
// Usage: ./go-taglog [--color=always] [--fail="boom"]
func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("taglog-demo"),
		kong.Description("Exercise the taglog tiers from the command line"),
		kong.UsageOnError(),
	)

	if cli.FromEnv {
		ctx.FatalIfErrorf(taglog.InitFromEnv())
	} else {
		mode := taglog.ColorAuto
		switch cli.Color {
		case "always":
			mode = taglog.ColorAlways
		case "never":
			mode = taglog.ColorNever
		}
		taglog.Init(taglog.Config{Color: mode})
	}

	taglog.Info(taglog.Here(), "demo starting")
	taglog.Infof(taglog.Here(), "pid=%d color=%s", os.Getpid(), cli.Color)
	taglog.Warn(taglog.Here(), "this warning goes to stderr")
	taglog.InfofIf(cli.Fail == "", taglog.Here(), "no --fail given, skipping the exit tier")

	// Never returns when --fail is set.
	taglog.ExitfIf(cli.Fail != "", taglog.Here(), "fatal: %s", cli.Fail)

	taglog.Info(taglog.Here(), "demo finished")
}
