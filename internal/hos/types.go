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

// Package hos defines the domain types for the Hours-of-Service compliance
// engine: duty-status events, daily logs, violations, certified snapshots,
// and the audit entries that record every mutation to them.
package hos

import (
	"time"
)

// DutyStatus represents a driver's duty status for one logged interval.
type DutyStatus string

const (
	// StatusOffDuty indicates the driver is relieved of all duty.
	StatusOffDuty DutyStatus = "OFF_DUTY"
	// StatusSleeperBerth indicates time spent resting in the sleeper berth.
	StatusSleeperBerth DutyStatus = "SLEEPER_BERTH"
	// StatusDriving indicates time at the controls of a moving CMV.
	StatusDriving DutyStatus = "DRIVING"
	// StatusOnDutyNotDriving indicates working time that is not driving
	// (fueling, inspections, loading).
	StatusOnDutyNotDriving DutyStatus = "ON_DUTY_NOT_DRIVING"
	// StatusPersonalConveyance indicates off-duty movement of the CMV for
	// personal use. It does not start or extend the on-duty window.
	StatusPersonalConveyance DutyStatus = "PERSONAL_CONVEYANCE"
	// StatusYardMove indicates on-duty movement within a yard or terminal.
	// It is excluded from driving-limit accumulation.
	StatusYardMove DutyStatus = "YARD_MOVE"
)

// AllDutyStatuses is the full set of valid duty statuses.
var AllDutyStatuses = []DutyStatus{
	StatusOffDuty,
	StatusSleeperBerth,
	StatusDriving,
	StatusOnDutyNotDriving,
	StatusPersonalConveyance,
	StatusYardMove,
}

// MaxAnnotationLength is the ELD-mandated cap on event annotations.
const MaxAnnotationLength = 60

// DutyEvent is a single duty-status interval in a driver's log. Events are
// totally ordered by StartTime within a driver's log and never overlap. An
// event with a nil EndTime is "open"; at most one open event exists per
// driver at any time.
type DutyEvent struct {
	// ID is the unique identifier for this event.
	ID string `json:"id"`
	// DriverID identifies the driver this event belongs to.
	DriverID string `json:"driver_id"`
	// VehicleID identifies the CMV, when one is involved.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Status is the duty status for this interval.
	Status DutyStatus `json:"status"`
	// StartTime is the UTC instant the interval began.
	StartTime time.Time `json:"start_time"`
	// EndTime is the UTC instant the interval ended. Nil while open.
	EndTime *time.Time `json:"end_time,omitempty"`
	// DurationMinutes is derived from StartTime/EndTime once closed.
	DurationMinutes int `json:"duration_minutes"`
	// Location is the reported location at the status change.
	Location string `json:"location,omitempty"`
	// OdometerMiles is the vehicle odometer at the status change.
	OdometerMiles float64 `json:"odometer_miles,omitempty"`
	// Annotation is a free-form driver remark, at most 60 characters.
	Annotation string `json:"annotation,omitempty"`
	// AdverseConditions marks the event as driven under adverse driving
	// conditions, extending the 11- and 14-hour limits by up to 2 hours.
	AdverseConditions bool `json:"adverse_conditions,omitempty"`
	// Edited is true once the event has been amended.
	Edited bool `json:"edited,omitempty"`
	// EditReason is the mandatory reason supplied with an amendment.
	EditReason string `json:"edit_reason,omitempty"`
	// EditedBy is the actor who performed the amendment.
	EditedBy string `json:"edited_by,omitempty"`
	// SupersedesEventID links an amended copy back to the event it replaces.
	SupersedesEventID string `json:"supersedes_event_id,omitempty"`
	// Superseded is true on the original once an amended copy exists.
	// Superseded events stay retrievable but drop out of window reads.
	Superseded bool `json:"superseded,omitempty"`
	// CreatedAt is when the event was first recorded.
	CreatedAt time.Time `json:"created_at"`
}

// Open reports whether the event has not yet been closed.
func (e DutyEvent) Open() bool {
	return e.EndTime == nil
}

// Close sets the end time and derives the duration.
func (e *DutyEvent) Close(
	end time.Time,
) {
	e.EndTime = &end
	e.DurationMinutes = int(end.Sub(e.StartTime) / time.Minute)
}

// EffectiveEnd returns the event's end time, or now for an open event.
func (e DutyEvent) EffectiveEnd(
	now time.Time,
) time.Time {
	if e.EndTime != nil {
		return *e.EndTime
	}

	return now
}

// Rest reports whether the status counts toward a qualifying off-duty
// break (off duty, sleeper berth, or personal conveyance).
func (s DutyStatus) Rest() bool {
	return s == StatusOffDuty || s == StatusSleeperBerth || s == StatusPersonalConveyance
}

// OnDuty reports whether the status accumulates against the cycle limit.
// Yard moves and personal conveyance are excluded.
func (s DutyStatus) OnDuty() bool {
	return s == StatusDriving || s == StatusOnDutyNotDriving
}

// CertificationState is the lifecycle state of a daily log.
type CertificationState string

const (
	// StateDraft is the initial state while the day is being logged.
	StateDraft CertificationState = "DRAFT"
	// StatePendingCertification indicates the day is complete and awaiting
	// the driver's signature.
	StatePendingCertification CertificationState = "PENDING_CERTIFICATION"
	// StateCertified indicates the driver has signed the log.
	StateCertified CertificationState = "CERTIFIED"
	// StateAmended indicates a certified log was edited and requires
	// re-certification.
	StateAmended CertificationState = "AMENDED"
)

// DailyTotals is the per-day minute breakdown across the four grid rows.
// For a fully logged day the four buckets sum to 1440. Personal conveyance
// counts into OffDutyMinutes and yard moves into OnDutyMinutes for grid
// purposes; limit accumulation treats them separately.
type DailyTotals struct {
	// DrivingMinutes is time in DRIVING status.
	DrivingMinutes int `json:"driving_minutes"`
	// OnDutyMinutes is time in ON_DUTY_NOT_DRIVING or YARD_MOVE status.
	OnDutyMinutes int `json:"on_duty_minutes"`
	// SleeperMinutes is time in SLEEPER_BERTH status.
	SleeperMinutes int `json:"sleeper_minutes"`
	// OffDutyMinutes is time in OFF_DUTY or PERSONAL_CONVEYANCE status.
	OffDutyMinutes int `json:"off_duty_minutes"`
}

// Sum returns the total logged minutes across all four buckets.
func (t DailyTotals) Sum() int {
	return t.DrivingMinutes + t.OnDutyMinutes + t.SleeperMinutes + t.OffDutyMinutes
}

// Remaining holds the remaining-minute balances for each HOS rule as of a
// point in time. Balances are clamped at zero, never negative.
type Remaining struct {
	// DrivingMinutes remaining under the 11-hour driving limit.
	DrivingMinutes int `json:"driving_minutes"`
	// WindowMinutes remaining under the 14-hour on-duty window.
	WindowMinutes int `json:"window_minutes"`
	// CycleMinutes remaining under the 60/70-hour cycle limit.
	CycleMinutes int `json:"cycle_minutes"`
	// WindowStart is when the current 14-hour window opened. Nil when no
	// window is running.
	WindowStart *time.Time `json:"window_start,omitempty"`
	// WindowSuppressed is true when the short-haul exemption suppresses
	// the 14-hour clock for the day.
	WindowSuppressed bool `json:"window_suppressed,omitempty"`
}

// RecapDay is one entry of the 8-day recap: the on-duty minutes consumed on
// a trailing day and the minutes that return to the cycle balance when that
// day ages out of the rolling window.
type RecapDay struct {
	// Date is the local calendar day, formatted 2006-01-02.
	Date string `json:"date"`
	// OnDutyMinutes consumed against the cycle on this day.
	OnDutyMinutes int `json:"on_duty_minutes"`
	// RecapMinutes returned to the balance when this day drops off.
	RecapMinutes int `json:"recap_minutes"`
}

// RecapDays is the fixed length of the recap array. Under the 60-hour/7-day
// ruleset the eighth entry is present but zero-valued.
const RecapDays = 8

// DailyLog is one driver-day of the HOS record: the ordered events, the
// computed totals and balances, and the certification lifecycle state.
type DailyLog struct {
	// DriverID identifies the driver.
	DriverID string `json:"driver_id"`
	// CarrierID identifies the motor carrier.
	CarrierID string `json:"carrier_id"`
	// Date is the local calendar day, formatted 2006-01-02.
	Date string `json:"date"`
	// Timezone is the driver's home-terminal IANA time zone. Events are
	// stored UTC and bucketed into days using this zone.
	Timezone string `json:"timezone"`
	// Events are the live (non-superseded) events of the day, ordered by
	// start time.
	Events []DutyEvent `json:"events"`
	// Totals is the per-day minute breakdown.
	Totals DailyTotals `json:"totals"`
	// Remaining holds the rule balances as of the last recomputation.
	Remaining Remaining `json:"remaining"`
	// Recap is the trailing 8-day cycle recap.
	Recap []RecapDay `json:"recap"`
	// State is the certification lifecycle state.
	State CertificationState `json:"state"`
	// CertifiedAt is when the log was last certified.
	CertifiedAt *time.Time `json:"certified_at,omitempty"`
	// CertifiedBy is the actor who certified the log.
	CertifiedBy string `json:"certified_by,omitempty"`
	// ViolationIDs references the violations detected for this day.
	ViolationIDs []string `json:"violation_ids,omitempty"`
	// Version increments on every amendment.
	Version int `json:"version"`
	// ShortHaul marks the day as operating under the short-haul exemption,
	// suppressing the 14-hour clock.
	ShortHaul bool `json:"short_haul,omitempty"`
	// NeedsReview is set when the lookback window contained malformed
	// historical data and the balances cannot be trusted.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ReviewReason explains why NeedsReview was set.
	ReviewReason string `json:"review_reason,omitempty"`
}

// DateFormat is the calendar-day key format used throughout the engine.
const DateFormat = "2006-01-02"

// Day parses the log's Date in its home-terminal zone.
func (l DailyLog) Day() (time.Time, error) {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.Time{}, err
	}

	return time.ParseInLocation(DateFormat, l.Date, loc)
}

// Severity classifies a detected compliance record.
type Severity string

const (
	// SeverityWarning indicates the driver is approaching a limit.
	SeverityWarning Severity = "WARNING"
	// SeverityViolation indicates a limit was actually exceeded.
	SeverityViolation Severity = "VIOLATION"
)

// RuleID identifies the HOS rule a violation was detected against.
type RuleID string

const (
	// Rule11HourDriving is the 11-hour driving limit.
	Rule11HourDriving RuleID = "11_HOUR_DRIVING"
	// Rule14HourWindow is the 14-hour on-duty window.
	Rule14HourWindow RuleID = "14_HOUR_WINDOW"
	// Rule60Hour7Day is the 60-hour/7-day cycle limit.
	Rule60Hour7Day RuleID = "60_HOUR_7_DAY"
	// Rule70Hour8Day is the 70-hour/8-day cycle limit.
	Rule70Hour8Day RuleID = "70_HOUR_8_DAY"
)

// ViolationStatus is the review lifecycle of a violation record.
type ViolationStatus string

const (
	// ViolationOpen is the initial status of a detected record.
	ViolationOpen ViolationStatus = "OPEN"
	// ViolationAcknowledged indicates the carrier has seen the record.
	ViolationAcknowledged ViolationStatus = "ACKNOWLEDGED"
	// ViolationDisputed indicates the record is contested.
	ViolationDisputed ViolationStatus = "DISPUTED"
	// ViolationResolved indicates the record has been closed out.
	ViolationResolved ViolationStatus = "RESOLVED"
)

// Violation is a derived compliance record. It is recomputable from the
// event log at any time and stored only for audit and query convenience;
// it is never hand-edited independent of the log.
type Violation struct {
	// ID is the unique identifier for this record.
	ID string `json:"id"`
	// DriverID identifies the driver.
	DriverID string `json:"driver_id"`
	// CarrierID identifies the motor carrier.
	CarrierID string `json:"carrier_id,omitempty"`
	// RuleID is the HOS rule that was breached or approached.
	RuleID RuleID `json:"rule_id"`
	// Severity is WARNING or VIOLATION.
	Severity Severity `json:"severity"`
	// DetectedAt is when detection first emitted this record.
	DetectedAt time.Time `json:"detected_at"`
	// WindowStart is the start of the accumulation window. Together with
	// DriverID and RuleID it forms the record's dedupe identity.
	WindowStart time.Time `json:"window_start"`
	// WindowEnd is the end of the accumulation window.
	WindowEnd time.Time `json:"window_end"`
	// ActualMinutes is the accumulated value that was measured.
	ActualMinutes int `json:"actual_minutes"`
	// AllowedMinutes is the limit in force, including any exemption.
	AllowedMinutes int `json:"allowed_minutes"`
	// ExcessMinutes is max(0, ActualMinutes-AllowedMinutes).
	ExcessMinutes int `json:"excess_minutes"`
	// Status is the review lifecycle status.
	Status ViolationStatus `json:"status"`
	// ResolvedAt is when the record was resolved, if it has been.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy is the actor who resolved the record.
	ResolvedBy string `json:"resolved_by,omitempty"`
	// ResolutionNote explains the resolution.
	ResolutionNote string `json:"resolution_note,omitempty"`
}

// Key returns the dedupe identity for open-violation diffing:
// driver + rule + window start.
func (v Violation) Key() string {
	return v.DriverID + "|" + string(v.RuleID) + "|" + v.WindowStart.UTC().Format(time.RFC3339)
}

// CertifiedSnapshot is the frozen record produced at certification: the
// events, totals, and violation set exactly as they stood when the driver
// signed. Raw preserves the serialized form byte-for-byte so the
// pre-amendment state stays retrievable verbatim.
type CertifiedSnapshot struct {
	// ID is the unique identifier for this snapshot.
	ID string `json:"id"`
	// DriverID identifies the driver.
	DriverID string `json:"driver_id"`
	// Date is the certified calendar day.
	Date string `json:"date"`
	// Version is the log version that was certified.
	Version int `json:"version"`
	// CertifiedAt is when the signature was applied.
	CertifiedAt time.Time `json:"certified_at"`
	// CertifiedBy is the signing actor.
	CertifiedBy string `json:"certified_by"`
	// Signature is the driver's certification signature.
	Signature string `json:"signature"`
	// Raw is the serialized log and violation set at signing time.
	Raw []byte `json:"raw"`
}
