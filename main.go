package main

import (
	"github.com/alecthomas/kong"
	"github.com/mrdunski/publication-zone/cmd/changes/ls"
	"github.com/mrdunski/publication-zone/cmd/generate"
	"github.com/mrdunski/publication-zone/cmd/publish"
	watchCmd "github.com/mrdunski/publication-zone/cmd/watch"
	"github.com/mrdunski/publication-zone/logger"
)

var CLI struct {
	logger.LogConfig

	Manifest struct {
		Generate generate.Cmd `cmd:"" help:"Regenerate the manifest file."`
	} `cmd:"" help:"manifest management"`
	Changes struct {
		Ls ls.Cmd `cmd:"" help:"List changes since the last regeneration."`
	} `cmd:"" help:"changes management"`
	Publish publish.Cmd  `cmd:"" help:"Run one regeneration and publish cycle."`
	Watch   watchCmd.Cmd `cmd:"" help:"Watch the directory and publish on change."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("publication-zone"),
		kong.Description("Keeps a directory manifest regenerated and published to a git remote."))
	CLI.LogConfig.InitLogger(ctx)
	ctx.FatalIfErrorf(ctx.Run())
}
