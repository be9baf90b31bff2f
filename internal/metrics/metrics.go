package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/dijkstep/dijkstra"
)

var (
	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dijkstep_runs_started_total",
		Help: "Total number of stepper runs started.",
	})

	RunsFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dijkstep_runs_finished_total",
		Help: "Total number of stepper runs that reached RunFinished.",
	})

	RunsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dijkstep_runs_abandoned_total",
		Help: "Total number of runs replaced by a scenario reload or stopped before finishing.",
	})

	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dijkstep_events_total",
		Help: "Total number of stepper events, labelled by kind.",
	}, []string{"kind"})

	Relaxations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dijkstep_relaxations_total",
		Help: "Total number of relaxations, labelled by whether the distance improved.",
	}, []string{"improved"})

	StepsPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dijkstep_steps_per_run",
		Help:    "Number of events emitted by a finished run.",
		Buckets: prometheus.ExponentialBuckets(4, 2, 12),
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dijkstep_run_duration_ms",
		Help:    "Wall-clock duration of a finished run in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000, 60000},
	})

	ReloadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dijkstep_reload_failures_total",
		Help: "Total number of scenario reloads rejected as invalid.",
	})
)

// Observer returns a dijkstra observer that records one run. It counts
// the run as started immediately.
func Observer() func(dijkstra.Event) {
	RunsStarted.Inc()
	began := time.Now()
	steps := 0
	return func(ev dijkstra.Event) {
		steps++
		EventsEmitted.WithLabelValues(ev.Kind.String()).Inc()
		switch ev.Kind {
		case dijkstra.RelaxationResult:
			if ev.Improved {
				Relaxations.WithLabelValues("true").Inc()
			} else {
				Relaxations.WithLabelValues("false").Inc()
			}
		case dijkstra.RunFinished:
			RunsFinished.Inc()
			StepsPerRun.Observe(float64(steps))
			RunDuration.Observe(float64(time.Since(began).Milliseconds()))
		}
	}
}
