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

package audittrail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Trail records mutations to the compliance engine's entities. Record is
// the only mutation; every amendment and certification transition must
// produce exactly one entry.
type Trail struct {
	logger *slog.Logger
	store  Store
	now    func() time.Time
}

// Option configures the Trail.
type Option func(*Trail)

// WithClock overrides the time source. Used by tests.
func WithClock(
	now func() time.Time,
) Option {
	return func(t *Trail) {
		t.now = now
	}
}

// New creates a new Trail.
func New(
	logger *slog.Logger,
	store Store,
	opts ...Option,
) *Trail {
	t := &Trail{
		logger: logger,
		store:  store,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Record assigns identity and timestamp to the entry and appends it.
func (t *Trail) Record(
	ctx context.Context,
	entry Entry,
) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = t.now()
	}

	if err := t.store.Write(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("recording audit entry: %w", err)
	}

	t.logger.Debug(
		"audit entry recorded",
		slog.String("id", entry.ID),
		slog.String("target_type", string(entry.TargetType)),
		slog.String("target_id", entry.TargetID),
		slog.String("action", entry.Action),
		slog.String("actor", entry.Actor),
	)

	return entry, nil
}

// Get retrieves a single entry by ID.
func (t *Trail) Get(
	ctx context.Context,
	id string,
) (*Entry, error) {
	return t.store.Get(ctx, id)
}

// ByTarget returns all entries for one target, oldest first.
func (t *Trail) ByTarget(
	ctx context.Context,
	targetType TargetType,
	targetID string,
) ([]Entry, error) {
	return t.store.ListByTarget(ctx, targetType, targetID)
}

// Range returns entries within [from, to) with pagination.
func (t *Trail) Range(
	ctx context.Context,
	from time.Time,
	to time.Time,
	limit int,
	offset int,
) ([]Entry, int, error) {
	return t.store.ListRange(ctx, from, to, limit, offset)
}
