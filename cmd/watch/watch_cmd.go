package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrdunski/publication-zone/gitrepo"
	"github.com/mrdunski/publication-zone/sitevol"
	"github.com/mrdunski/publication-zone/telemetry"
	watchloop "github.com/mrdunski/publication-zone/watch"
)

type Cmd struct {
	sitevol.Site
	telemetry.TeleConfig
	Git   gitrepo.Config   `embed:""`
	Watch watchloop.Config `embed:""`
}

// Run polls the site until SIGINT or SIGTERM. An in-flight publish completes
// before the process exits.
func (c Cmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, err := gitrepo.Open(c.Git, c.Path)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	recorderDone := make(chan struct{})
	go func() {
		defer close(recorderDone)
		c.NewRecorder().ContinuousRecord(ctx)
	}()

	err = watchloop.NewLoop(c.Watch, c.Site, publisher, c.ManifestFile).Run(ctx)

	// the recorder flushes once more on cancellation, wait for it
	<-recorderDone
	return err
}
