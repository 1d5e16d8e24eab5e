package watch

import (
	"context"
	"time"

	"github.com/mrdunski/publication-zone/gitrepo"
	"github.com/mrdunski/publication-zone/logger"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mock_watch/publisher.go . Publisher

// Publisher pushes manifest updates to the remote.
type Publisher interface {
	Publish(ctx context.Context, paths []string, message string) (bool, error)
	Push(ctx context.Context) error
}

// Config is the watch loop configuration, embeddable in kong commands.
type Config struct {
	Interval   time.Duration `env:"WATCH_INTERVAL" help:"Delay between change checks." default:"30s" group:"Watch"`
	MaxBackoff time.Duration `env:"WATCH_MAX_BACKOFF" help:"Upper bound for the failure backoff." default:"4m" group:"Watch"`
	AlertAfter int           `env:"WATCH_ALERT_AFTER" help:"Consecutive failures before an alert is logged." default:"5" group:"Watch"`
}

// Loop is the polling watch loop: detect changes, regenerate the manifest,
// publish. Errors inside a cycle are logged and retried on the next one,
// with exponential backoff while they persist. At most one loop may run per
// working directory.
type Loop struct {
	cfg          Config
	site         Site
	detector     Detector
	publisher    Publisher
	manifestFile string
	log          *logrus.Entry

	failures    int
	pushPending bool
}

func NewLoop(cfg Config, site Site, publisher Publisher, manifestFile string) *Loop {
	return &Loop{
		cfg:          cfg,
		site:         site,
		detector:     NewDetector(site),
		publisher:    publisher,
		manifestFile: manifestFile,
		log:          logger.WithComponent("watch"),
	}
}

// Run polls until the context is cancelled. Cancellation is checked between
// cycles only, so an in-flight publish always completes before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	l.log.WithField("interval", l.cfg.Interval).Info("watch loop started")

	for {
		l.runCycle()

		select {
		case <-ctx.Done():
			l.log.Info("watch loop stopped")
			return nil
		case <-time.After(l.delay()):
		}
	}
}

func (l *Loop) runCycle() {
	state, changes, err := l.detector.Check()
	if err != nil {
		l.fail("change detection failed", err)
		return
	}
	cycleCount.Inc()

	if state == StateClean {
		// a commit left behind by a failed push still needs publishing
		if l.pushPending {
			if err := l.publisher.Push(context.Background()); err != nil {
				publishFailureCount.Inc()
				l.fail("push retry failed", err)
				return
			}
			l.pushPending = false
		}
		l.succeed()
		return
	}

	l.log.WithFields(logrus.Fields{
		"changes":    changes.Len(),
		"touch_only": changes.TouchOnly(),
	}).Info("changes detected, regenerating manifest")
	changeCount.Add(float64(changes.Len()))
	touchOnlyCount.Add(float64(changes.TouchOnly()))

	m, err := l.site.RegenerateManifest()
	if err != nil {
		l.fail("manifest regeneration failed", err)
		return
	}
	manifestEntryCount.Set(float64(m.Len()))
	manifestByteCount.Set(float64(m.TotalSize()))

	paths := append([]string{l.manifestFile}, changes.Paths()...)
	created, err := l.publisher.Publish(context.Background(), paths, gitrepo.CommitMessage(time.Now()))
	if created {
		commitCount.Inc()
	}
	if err != nil {
		publishFailureCount.Inc()
		l.pushPending = true
		l.fail("publish failed", err)
		return
	}

	// the publish pushed everything, including a commit stranded earlier
	l.pushPending = false
	l.succeed()
}

func (l *Loop) succeed() {
	if l.failures > 0 {
		l.log.Info("recovered after failures")
	}
	l.failures = 0
}

// fail logs the cycle error and grows the backoff. The loop never dies on a
// transient error; persistent ones escalate to a single alert log.
func (l *Loop) fail(message string, err error) {
	l.failures++
	l.log.WithError(err).Warn(message)
	if l.failures == l.cfg.AlertAfter {
		l.log.WithError(err).Errorf("%d consecutive failures, still retrying", l.failures)
	}
}

func (l *Loop) delay() time.Duration {
	delay := l.cfg.Interval
	for i := 0; i < l.failures; i++ {
		delay *= 2
		if delay >= l.cfg.MaxBackoff {
			return l.cfg.MaxBackoff
		}
	}

	return delay
}
