package models

import "time"

// UserDB represents a user record in the database.
// Password holds the bcrypt digest, never the plaintext, and is not
// part of any JSON view.
type UserDB struct {
	ID               int64     `json:"id" db:"id"`                               // Primary key
	Name             string    `json:"name" db:"name"`                           // Unique name
	Password         string    `json:"-" db:"password"`                          // bcrypt digest
	RegistrationTime time.Time `json:"registration_time" db:"registration_time"` // Registration timestamp, assigned by the store
}

// UserPatch is the set of client-patchable user fields.
// A non-nil Password is re-hashed before it is stored.
type UserPatch struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
