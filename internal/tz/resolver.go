// Package tz resolves the UTC offset in effect for a zone at a given instant.
package tz

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

// Resolver returns the offset, in seconds east of UTC, that zone observes at t.
// Implementations must be deterministic and safe for concurrent use.
type Resolver interface {
	Offset(t time.Time, zone string) (int, error)
}

// UnknownZoneError is returned for zone identifiers missing from the database.
type UnknownZoneError struct {
	Zone string
	Err  error
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q", e.Zone)
}

func (e *UnknownZoneError) Unwrap() error {
	return e.Err
}

// Database resolves offsets from the IANA zone database shipped with the Go
// runtime. Loaded locations are cached.
type Database struct {
	locations sync.Map
}

func NewDatabase() *Database {
	return &Database{}
}

// Location returns the location for zone. As with time.LoadLocation, "" and
// "UTC" both resolve to UTC.
func (db *Database) Location(zone string) (*time.Location, error) {
	if loc, ok := db.locations.Load(zone); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &UnknownZoneError{Zone: zone, Err: err}
	}
	actual, _ := db.locations.LoadOrStore(zone, loc)
	return actual.(*time.Location), nil
}

func (db *Database) Offset(t time.Time, zone string) (int, error) {
	loc, err := db.Location(zone)
	if err != nil {
		return 0, err
	}
	_, offset := t.In(loc).Zone()
	return offset, nil
}

// Fixed maps zone identifiers to constant offsets in seconds.
type Fixed map[string]int

func (f Fixed) Offset(_ time.Time, zone string) (int, error) {
	offset, ok := f[zone]
	if !ok {
		return 0, &UnknownZoneError{Zone: zone}
	}
	return offset, nil
}
