// Package entity contains the core business objects of the project.
package entity

import "time"

// MaxAddressLength is the longest address a building may carry.
const MaxAddressLength = 500

// Building is a physical location that hosts organizations.
type Building struct {
	ID        int64     // Surrogate key assigned by the store.
	Address   string    // Human-readable street address.
	Latitude  float64   // Degrees, [-90, 90].
	Longitude float64   // Degrees, [-180, 180].
	CreatedAt time.Time // Timestamp of when this building was created.
}
