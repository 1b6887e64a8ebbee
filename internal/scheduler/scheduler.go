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

// Package scheduler runs periodic compliance sweeps. Rule windows roll
// forward with the clock, so cycle limits can be crossed without any new
// duty event; the sweep recomputes every driver's recent days to surface
// those violations promptly.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the sweep hourly.
const DefaultSchedule = "0 * * * *"

// Sweeper recomputes recent days for a set of drivers.
type Sweeper interface {
	Sweep(ctx context.Context, driverID string) error
}

// DriverLister enumerates the drivers to sweep.
type DriverLister func(ctx context.Context) ([]string, error)

// Scheduler triggers compliance sweeps on a cron schedule.
type Scheduler struct {
	logger   *slog.Logger
	sweeper  Sweeper
	drivers  DriverLister
	schedule string
	cron     *cron.Cron
}

// Option is a function that configures the Scheduler.
type Option func(*Scheduler)

// WithSchedule overrides the cron expression.
func WithSchedule(
	schedule string,
) Option {
	return func(s *Scheduler) {
		if schedule != "" {
			s.schedule = schedule
		}
	}
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	sweeper Sweeper,
	drivers DriverLister,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		logger:   logger,
		sweeper:  sweeper,
		drivers:  drivers,
		schedule: DefaultSchedule,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start registers the sweep job and starts the cron runner.
func (s *Scheduler) Start(
	ctx context.Context,
) error {
	c := cron.New()

	if _, err := c.AddFunc(s.schedule, func() {
		s.RunSweep(ctx)
	}); err != nil {
		return err
	}

	s.cron = c
	c.Start()

	s.logger.Info(
		"compliance sweep scheduled",
		slog.String("schedule", s.schedule),
	)

	return nil
}

// Stop stops the cron runner and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}

	<-s.cron.Stop().Done()
	s.logger.Info("compliance sweep stopped")
}

// RunSweep sweeps every known driver once. A failing driver is logged and
// skipped so one bad history cannot stall the fleet.
func (s *Scheduler) RunSweep(
	ctx context.Context,
) {
	driverIDs, err := s.drivers(ctx)
	if err != nil {
		s.logger.Error(
			"failed to list drivers for sweep",
			slog.String("error", err.Error()),
		)
		return
	}

	swept := 0
	for _, driverID := range driverIDs {
		if ctx.Err() != nil {
			return
		}

		if err := s.sweeper.Sweep(ctx, driverID); err != nil {
			s.logger.Error(
				"sweep failed for driver",
				slog.String("driver_id", driverID),
				slog.String("error", err.Error()),
			)
			continue
		}
		swept++
	}

	s.logger.Info(
		"compliance sweep completed",
		slog.Int("drivers", len(driverIDs)),
		slog.Int("swept", swept),
	)
}
