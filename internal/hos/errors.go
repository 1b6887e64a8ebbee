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

package hos

import "errors"

// Sentinel errors returned by the compliance engine. Callers discriminate
// with errors.Is; wrapped messages carry the specifics.
var (
	// ErrOverlappingEvent indicates a new event's interval intersects an
	// existing event for the same driver.
	ErrOverlappingEvent = errors.New("event overlaps an existing event")

	// ErrInvalidEventOrdering indicates a new event starts before the end
	// of the driver's most recent event.
	ErrInvalidEventOrdering = errors.New("event violates chronological ordering")

	// ErrUnknownDriverOrVehicle indicates the master-data collaborator
	// does not know the referenced driver or vehicle.
	ErrUnknownDriverOrVehicle = errors.New("unknown driver or vehicle")

	// ErrEditAfterCertificationWithoutReason indicates an amendment to a
	// certified log arrived without the mandatory reason.
	ErrEditAfterCertificationWithoutReason = errors.New(
		"amendment of a certified log requires a reason",
	)

	// ErrCertificationConflict indicates a concurrent certification is
	// already in flight for the same driver and date. Retryable.
	ErrCertificationConflict = errors.New("certification already in flight")

	// ErrRecomputationTimeout indicates the per-driver-day writer lock
	// could not be acquired within the bounded timeout. Retryable.
	ErrRecomputationTimeout = errors.New("recomputation timed out")

	// ErrMalformedHistoricalData indicates the lookback window contains
	// gaps or corrupt data preventing a trustworthy rolling-window
	// calculation. The affected log is marked NeedsReview.
	ErrMalformedHistoricalData = errors.New("malformed historical data in lookback window")

	// ErrIllegalTransition indicates a certification state transition that
	// the lifecycle does not permit.
	ErrIllegalTransition = errors.New("illegal certification state transition")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Retryable reports whether the caller may safely retry the operation.
func Retryable(
	err error,
) bool {
	return errors.Is(err, ErrCertificationConflict) ||
		errors.Is(err, ErrRecomputationTimeout)
}
