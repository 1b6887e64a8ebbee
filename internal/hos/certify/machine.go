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

// Package certify implements the daily-log certification lifecycle:
// DRAFT → PENDING_CERTIFICATION → CERTIFIED → AMENDED, with AMENDED
// looping back through certification for re-signature. The transition
// rules are pure; orchestration (locking, recomputation) lives in the
// service layer.
package certify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// CanCertify reports whether a log in the given state accepts a
// signature. AMENDED logs loop back through certification, so they
// qualify alongside DRAFT and PENDING_CERTIFICATION.
func CanCertify(
	state hos.CertificationState,
) bool {
	switch state {
	case hos.StateDraft, hos.StatePendingCertification, hos.StateAmended:
		return true
	default:
		return false
	}
}

// TransitionCertify returns the post-signature state.
func TransitionCertify(
	state hos.CertificationState,
) (hos.CertificationState, error) {
	if !CanCertify(state) {
		return state, fmt.Errorf(
			"certify from %s: %w", state, hos.ErrIllegalTransition,
		)
	}

	return hos.StateCertified, nil
}

// TransitionComplete returns the state once a day has rolled past its
// local midnight without a signature. Only DRAFT logs move to
// PENDING_CERTIFICATION; every other state keeps what it has.
func TransitionComplete(
	state hos.CertificationState,
) hos.CertificationState {
	if state == hos.StateDraft {
		return hos.StatePendingCertification
	}

	return state
}

// TransitionAmend returns the state after an event amendment. Editing a
// certified log moves it to AMENDED and voids the signature; editing an
// uncertified log leaves its state untouched.
func TransitionAmend(
	state hos.CertificationState,
) hos.CertificationState {
	if state == hos.StateCertified {
		return hos.StateAmended
	}

	return state
}

// frozen is the serialized form stored in a snapshot's Raw field.
type frozen struct {
	Log        hos.DailyLog    `json:"log"`
	Violations []hos.Violation `json:"violations"`
}

// Freeze produces the immutable certified snapshot: the log and its
// violation set serialized at signing time. The Raw bytes are what later
// retrieval must return verbatim.
func Freeze(
	log hos.DailyLog,
	violations []hos.Violation,
	signature string,
	actor string,
	at time.Time,
) (hos.CertifiedSnapshot, error) {
	raw, err := json.Marshal(frozen{Log: log, Violations: violations})
	if err != nil {
		return hos.CertifiedSnapshot{}, fmt.Errorf("freezing log: %w", err)
	}

	return hos.CertifiedSnapshot{
		ID:          uuid.New().String(),
		DriverID:    log.DriverID,
		Date:        log.Date,
		Version:     log.Version,
		CertifiedAt: at,
		CertifiedBy: actor,
		Signature:   signature,
		Raw:         raw,
	}, nil
}

// Thaw decodes a snapshot's Raw payload.
func Thaw(
	snap hos.CertifiedSnapshot,
) (hos.DailyLog, []hos.Violation, error) {
	var f frozen
	if err := json.Unmarshal(snap.Raw, &f); err != nil {
		return hos.DailyLog{}, nil, fmt.Errorf("thawing snapshot %s: %w", snap.ID, err)
	}

	return f.Log, f.Violations, nil
}
