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

package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// DriverInfo is what the engine needs to know about a driver. Master-data
// CRUD lives outside the engine; this is the collaborator's contract.
type DriverInfo struct {
	// ID is the driver identifier.
	ID string
	// CarrierID is the motor carrier the driver operates for.
	CarrierID string
	// Timezone is the driver's home-terminal IANA zone.
	Timezone string
	// RulesetID selects the cycle ruleset, e.g. "70_HOUR_8_DAY".
	RulesetID string
}

// DriverDirectory validates driver and vehicle references against the
// external master-data service.
type DriverDirectory interface {
	// Driver returns the driver's info, or hos.ErrUnknownDriverOrVehicle.
	Driver(ctx context.Context, driverID string) (*DriverInfo, error)
	// VehicleExists reports whether the vehicle is known.
	VehicleExists(ctx context.Context, vehicleID string) (bool, error)
	// Drivers returns every known driver, used by sweep jobs.
	Drivers(ctx context.Context) ([]DriverInfo, error)
}

// ensure StaticDirectory implements DriverDirectory at compile time.
var _ DriverDirectory = (*StaticDirectory)(nil)

// StaticDirectory is a config-backed DriverDirectory for deployments that
// sync master data out of band, and for tests.
type StaticDirectory struct {
	mu       sync.RWMutex
	drivers  map[string]DriverInfo
	vehicles map[string]struct{}
}

// NewStaticDirectory creates a StaticDirectory from known drivers and
// vehicles.
func NewStaticDirectory(
	drivers []DriverInfo,
	vehicleIDs []string,
) *StaticDirectory {
	d := &StaticDirectory{
		drivers:  make(map[string]DriverInfo, len(drivers)),
		vehicles: make(map[string]struct{}, len(vehicleIDs)),
	}

	for _, info := range drivers {
		d.drivers[info.ID] = info
	}
	for _, id := range vehicleIDs {
		d.vehicles[id] = struct{}{}
	}

	return d
}

// Driver returns the driver's info.
func (d *StaticDirectory) Driver(
	_ context.Context,
	driverID string,
) (*DriverInfo, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	info, ok := d.drivers[driverID]
	if !ok {
		return nil, fmt.Errorf("driver %s: %w", driverID, hos.ErrUnknownDriverOrVehicle)
	}

	return &info, nil
}

// VehicleExists reports whether the vehicle is known.
func (d *StaticDirectory) VehicleExists(
	_ context.Context,
	vehicleID string,
) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.vehicles[vehicleID]

	return ok, nil
}

// Drivers returns every known driver.
func (d *StaticDirectory) Drivers(
	_ context.Context,
) ([]DriverInfo, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	infos := make([]DriverInfo, 0, len(d.drivers))
	for _, info := range d.drivers {
		infos = append(infos, info)
	}

	return infos, nil
}

// Upsert registers or updates a driver at runtime.
func (d *StaticDirectory) Upsert(
	info DriverInfo,
) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.drivers[info.ID] = info
}

// AddVehicle registers a vehicle at runtime.
func (d *StaticDirectory) AddVehicle(
	vehicleID string,
) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.vehicles[vehicleID] = struct{}{}
}
