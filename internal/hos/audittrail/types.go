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

// Package audittrail provides the append-only edit ledger of the
// compliance engine. Entries are created, never mutated or deleted, and
// outlive the mutable entities they describe.
package audittrail

import (
	"context"
	"encoding/json"
	"time"
)

// TargetType identifies what kind of entity an entry describes.
type TargetType string

const (
	// TargetEvent marks entries describing duty-event mutations.
	TargetEvent TargetType = "event"
	// TargetCertification marks entries describing certification state
	// transitions.
	TargetCertification TargetType = "certification"
	// TargetDailyLog marks entries describing daily-log flags such as
	// NeedsReview.
	TargetDailyLog TargetType = "daily_log"
	// TargetViolation marks entries describing violation review-status
	// changes.
	TargetViolation TargetType = "violation"
)

// Entry is a single audit ledger record.
type Entry struct {
	// ID is the unique identifier for this entry.
	ID string `json:"id"`
	// TargetType identifies the kind of entity mutated.
	TargetType TargetType `json:"target_type"`
	// TargetID identifies the entity mutated.
	TargetID string `json:"target_id"`
	// Action names the mutation, e.g. "event.append", "certify".
	Action string `json:"action"`
	// Actor is the authenticated subject that performed the mutation.
	Actor string `json:"actor"`
	// Timestamp is when the mutation occurred.
	Timestamp time.Time `json:"timestamp"`
	// DriverID indexes the entry to a driver.
	DriverID string `json:"driver_id,omitempty"`
	// Date indexes the entry to a local calendar day.
	Date string `json:"date,omitempty"`
	// PreviousValue is the serialized state before the mutation.
	PreviousValue json.RawMessage `json:"previous_value,omitempty"`
	// NewValue is the serialized state after the mutation.
	NewValue json.RawMessage `json:"new_value,omitempty"`
	// Reason is the supplied justification, mandatory for amendments of
	// certified logs.
	Reason string `json:"reason,omitempty"`
}

// Store persists audit entries. Write is the only mutation; there is no
// update or delete.
type Store interface {
	// Write appends an entry.
	Write(ctx context.Context, entry Entry) error
	// Get retrieves a single entry by ID.
	Get(ctx context.Context, id string) (*Entry, error)
	// ListByTarget returns all entries for one target, oldest first.
	ListByTarget(
		ctx context.Context,
		targetType TargetType,
		targetID string,
	) ([]Entry, error)
	// ListRange returns entries within [from, to) with pagination,
	// oldest first, along with the total matching count.
	ListRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
		limit int,
		offset int,
	) ([]Entry, int, error)
}
