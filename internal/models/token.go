package models

import "time"

// TokenDB represents an issued authentication token. Tokens are
// create/read only: there is no update or delete operation.
type TokenDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	Token      string    `json:"token" db:"token"`             // Unique token value
	UserID     int64     `json:"user_id" db:"user_id"`         // Owning user
	CreateTime time.Time `json:"create_time" db:"create_time"` // Issuance timestamp
}
