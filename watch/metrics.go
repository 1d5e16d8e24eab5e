package watch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cycleCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pz_cycles_total",
		Help: "Completed change detection cycles.",
	})
	changeCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pz_changes_detected_total",
		Help: "Tracked file changes detected.",
	})
	commitCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pz_commits_created_total",
		Help: "Manifest commits created.",
	})
	publishFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pz_publish_failures_total",
		Help: "Publish attempts that failed and were left for retry.",
	})
	touchOnlyCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pz_touch_only_changes_total",
		Help: "Modifications whose recorded content hash did not change.",
	})
	manifestEntryCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pz_manifest_entries",
		Help: "Entries in the last regenerated manifest.",
	})
	manifestByteCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pz_manifest_bytes",
		Help: "Byte sum of the tree behind the last regenerated manifest.",
	})
)
