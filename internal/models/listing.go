package models

import "time"

// StatusDeleted marks a listing as logically removed. Deleted listings
// stay in the table and remain readable.
const StatusDeleted = "deleted"

// ListingDB represents a listing record in the database
type ListingDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	Owner      string    `json:"owner" db:"owner"`             // Listing owner
	Title      string    `json:"title" db:"title"`             // Listing title
	Descr      string    `json:"descr" db:"descr"`             // Unique description
	Status     string    `json:"status" db:"status"`           // Free-form status, "deleted" is the soft-delete marker
	CreateTime time.Time `json:"create_time" db:"create_time"` // Creation timestamp, assigned by the store
}

// ListingPatch is the set of client-patchable listing fields.
// Nil fields are left untouched; status is only ever changed by delete.
type ListingPatch struct {
	Title *string `json:"title"`
	Descr *string `json:"descr"`
	Owner *string `json:"owner"`
}
