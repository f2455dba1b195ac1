// Package clock supplies the time source for session expiry checks and
// journal timestamps. Wall time enters through one interface so tests can
// pin it.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads wall time in UTC. Everything stamped or compared (token
// expiry, journal note names) is UTC, so the conversion happens here once.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always answers the same instant.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }
