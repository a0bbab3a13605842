package entity

import "time"

// MigrationRecord is an applied migration
type MigrationRecord struct {
	Name      string
	Batch     int
	AppliedAt time.Time
}
