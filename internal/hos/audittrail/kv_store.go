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
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// ensure KVStore implements Store at compile time.
var _ Store = (*KVStore)(nil)

// KVStore implements Store backed by a NATS KeyValue bucket. Entries are
// written under Create so the bucket itself enforces append-only; keys are
// <unix-nano>.<id> and therefore sort chronologically.
type KVStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVStore creates a new KVStore.
func NewKVStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVStore {
	return &KVStore{kv: kv, logger: logger}
}

// Write appends an audit entry.
func (s *KVStore) Write(
	_ context.Context,
	entry Entry,
) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	key := fmt.Sprintf("%020d.%s", entry.Timestamp.UnixNano(), entry.ID)
	if _, err := s.kv.Create(key, data); err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}

	return nil
}

// Get retrieves a single entry by ID.
func (s *KVStore) Get(
	ctx context.Context,
	id string,
) (*Entry, error) {
	entries, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.ID == id {
			found := entry
			return &found, nil
		}
	}

	return nil, fmt.Errorf("audit entry %s: %w", id, hos.ErrNotFound)
}

// ListByTarget returns all entries for one target, oldest first.
func (s *KVStore) ListByTarget(
	ctx context.Context,
	targetType TargetType,
	targetID string,
) ([]Entry, error) {
	entries, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.TargetType == targetType && entry.TargetID == targetID {
			out = append(out, entry)
		}
	}

	return out, nil
}

// ListRange returns entries within [from, to) with pagination, oldest
// first, along with the total matching count.
func (s *KVStore) ListRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
	limit int,
	offset int,
) ([]Entry, int, error) {
	entries, err := s.all(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if !from.IsZero() && entry.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && !entry.Timestamp.Before(to) {
			continue
		}
		matched = append(matched, entry)
	}

	total := len(matched)
	if offset >= total {
		return []Entry{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

// all loads every entry, oldest first. The zero-padded key prefix makes
// the bucket's key order chronological.
func (s *KVStore) all(
	_ context.Context,
) ([]Entry, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		if err == nats.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list audit keys: %w", err)
	}

	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get audit entry",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var entry Entry
		if err := json.Unmarshal(kve.Value(), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal audit entry %s: %w", key, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}