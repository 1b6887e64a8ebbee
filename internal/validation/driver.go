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

package validation

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DriverLister returns the identifiers of known drivers.
type DriverLister func(ctx context.Context) ([]string, error)

var driverLister DriverLister

var (
	cacheMu       sync.Mutex
	cachedDrivers map[string]struct{}
	cacheExpiry   time.Time
	cacheTTL      = 5 * time.Second
)

// RegisterDriverValidator registers the known_driver custom validator and
// sets the DriverLister it uses. Call this at API server startup after the
// directory is created, or in test SetupSuite to inject a mock.
func RegisterDriverValidator(
	lister DriverLister,
) {
	// Cannot error: tag is non-empty and function is non-nil.
	_ = instance.RegisterValidation("known_driver", knownDriver)
	driverLister = lister
	// Reset cache so the new lister is used immediately.
	cacheMu.Lock()
	cacheExpiry = time.Time{}
	cacheMu.Unlock()
}

// getDrivers returns the cached driver set, refreshing from the directory
// when the cache has expired.
func getDrivers() (map[string]struct{}, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if time.Now().Before(cacheExpiry) {
		return cachedDrivers, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ids, err := driverLister(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	cachedDrivers = set
	cacheExpiry = time.Now().Add(cacheTTL)

	return set, nil
}

// knownDriver checks the field against the master-data directory.
func knownDriver(fl validator.FieldLevel) bool {
	if driverLister == nil {
		return false
	}

	drivers, err := getDrivers()
	if err != nil {
		return false
	}

	_, ok := drivers[fl.Field().String()]

	return ok
}
