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
	"sync"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is the in-memory twin of KVStore, used by unit tests and
// development runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Write appends an entry.
func (s *MemoryStore) Write(
	_ context.Context,
	entry Entry,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing.ID == entry.ID {
			return fmt.Errorf("audit entry %s already exists", entry.ID)
		}
	}

	s.entries = append(s.entries, entry)

	return nil
}

// Get retrieves a single entry by ID.
func (s *MemoryStore) Get(
	_ context.Context,
	id string,
) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			found := entry
			return &found, nil
		}
	}

	return nil, fmt.Errorf("audit entry %s: %w", id, hos.ErrNotFound)
}

// ListByTarget returns all entries for one target, oldest first.
func (s *MemoryStore) ListByTarget(
	_ context.Context,
	targetType TargetType,
	targetID string,
) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.TargetType == targetType && entry.TargetID == targetID {
			out = append(out, entry)
		}
	}

	return out, nil
}

// ListRange returns entries within [from, to) with pagination, oldest
// first, along with the total matching count.
func (s *MemoryStore) ListRange(
	_ context.Context,
	from time.Time,
	to time.Time,
	limit int,
	offset int,
) ([]Entry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
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
