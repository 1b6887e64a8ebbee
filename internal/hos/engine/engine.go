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

// Package engine is the orchestration facade of the Hours-of-Service
// compliance core. It wires the event log, calculator, detector,
// certification lifecycle, audit trail, and notification hook behind the
// operations the surrounding platform calls. All collaborators are
// injected; the engine owns no global state.
package engine

import (
	"log/slog"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/hos/eventlog"
	"github.com/fleethos-io/fleethos/internal/hos/store"
	"github.com/fleethos-io/fleethos/internal/hos/violation"
	"github.com/fleethos-io/fleethos/internal/notify"
)

// DefaultLockTimeout bounds how long a mutation waits for the per-driver-
// day writer slot before returning hos.ErrRecomputationTimeout.
const DefaultLockTimeout = 5 * time.Second

// Stores bundles the persistence collaborators.
type Stores struct {
	Events     store.EventStore
	Logs       store.DailyLogStore
	Violations store.ViolationStore
	Snapshots  store.SnapshotStore
}

// Engine exposes the compliance core's operations.
type Engine struct {
	logger      *slog.Logger
	stores      Stores
	trail       *audittrail.Trail
	notifier    notify.Notifier
	directory   DriverDirectory
	eventLog    *eventlog.Log
	detector    *violation.Detector
	ruleset     hos.Ruleset
	locks       *keyedLocks
	lockTimeout time.Duration
	now         func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithRuleset overrides the default cycle ruleset.
func WithRuleset(
	ruleset hos.Ruleset,
) Option {
	return func(e *Engine) {
		e.ruleset = ruleset
	}
}

// WithLockTimeout overrides the writer-slot timeout.
func WithLockTimeout(
	timeout time.Duration,
) Option {
	return func(e *Engine) {
		e.lockTimeout = timeout
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(
	now func() time.Time,
) Option {
	return func(e *Engine) {
		e.now = now
		e.eventLog = eventlog.New(e.logger, e.stores.Events, eventlog.WithClock(now))
	}
}

// WithDetector overrides the violation detector, letting deployments tune
// the warning buffer.
func WithDetector(
	detector *violation.Detector,
) Option {
	return func(e *Engine) {
		e.detector = detector
	}
}

// New creates a new Engine.
func New(
	logger *slog.Logger,
	stores Stores,
	trail *audittrail.Trail,
	notifier notify.Notifier,
	directory DriverDirectory,
	opts ...Option,
) *Engine {
	e := &Engine{
		logger:      logger,
		stores:      stores,
		trail:       trail,
		notifier:    notifier,
		directory:   directory,
		eventLog:    eventlog.New(logger, stores.Events),
		detector:    violation.New(logger),
		ruleset:     hos.Ruleset70Hour8Day,
		locks:       newKeyedLocks(),
		lockTimeout: DefaultLockTimeout,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// rulesetFor resolves the driver's cycle ruleset, falling back to the
// engine default.
func (e *Engine) rulesetFor(
	info *DriverInfo,
) hos.Ruleset {
	if info.RulesetID == "" {
		return e.ruleset
	}

	ruleset, err := hos.RulesetByID(info.RulesetID)
	if err != nil {
		e.logger.Warn(
			"unknown driver ruleset, using default",
			slog.String("driver_id", info.ID),
			slog.String("ruleset", info.RulesetID),
		)
		return e.ruleset
	}

	return ruleset
}

// lockKey is the single-writer boundary: one driver, one local day.
func lockKey(
	driverID string,
	date string,
) string {
	return driverID + "|" + date
}
