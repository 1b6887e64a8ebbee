// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Compliance-engine metrics, registered on the default Prometheus registry
// and exposed through the scrape endpoint InitMeter wires up.
var (
	// EventsAppended counts accepted duty-status events.
	EventsAppended = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fleethos",
		Name:      "events_appended_total",
		Help:      "Number of duty-status events accepted into the log.",
	})

	// EventsAmended counts accepted amendments.
	EventsAmended = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fleethos",
		Name:      "events_amended_total",
		Help:      "Number of duty-status events superseded by amendments.",
	})

	// LogsCertified counts certification signatures applied.
	LogsCertified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fleethos",
		Name:      "logs_certified_total",
		Help:      "Number of daily logs certified.",
	})

	// ViolationsDetected counts detected records by rule and severity.
	ViolationsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleethos",
		Name:      "violations_detected_total",
		Help:      "Number of compliance records detected.",
	}, []string{"rule", "severity"})

	// RecomputeDuration observes per-day recomputation latency.
	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fleethos",
		Name:      "recompute_duration_seconds",
		Help:      "Latency of single driver-day recomputations.",
		Buckets:   prometheus.DefBuckets,
	})
)
