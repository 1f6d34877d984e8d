package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/egormalkin/adboard/internal/models"
)

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: record not found
	Error string `json:"error"`
}

// IDResponse carries the identifier of a created or updated entity
// swagger:model IDResponse
type IDResponse struct {
	// Entity identifier
	// default: 1
	ID int64 `json:"id"`
}

// DeleteResponse confirms a delete operation
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Deletion status
	// default: deleted
	Status string `json:"status"`
}

// RecordResponse is the public JSON view of a listing
// swagger:model RecordResponse
type RecordResponse struct {
	ID     int64  `json:"id"`
	Owner  string `json:"owner"`
	Title  string `json:"title"`
	Descr  string `json:"descr"`
	Status string `json:"status"`
	// Creation time as a unix timestamp
	CreateTime int64 `json:"create_time"`
}

// UserResponse is the public JSON view of a user. It never carries the
// password digest.
// swagger:model UserResponse
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Registration time as a unix timestamp
	RegistrationTime int64 `json:"registration_time"`
}

func newRecordResponse(listing *models.ListingDB) RecordResponse {
	return RecordResponse{
		ID:         listing.ID,
		Owner:      listing.Owner,
		Title:      listing.Title,
		Descr:      listing.Descr,
		Status:     listing.Status,
		CreateTime: listing.CreateTime.Unix(),
	}
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		RegistrationTime: user.RegistrationTime.Unix(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
