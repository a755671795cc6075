// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package models

// Envelope status values, shared by the remote backend and the gateway.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the standard {status, data, pagination?} wrapper returned by the
// remote Analogue Memory API. Data is a pointer so a missing payload can be
// told apart from an empty one.
type Envelope[T any] struct {
	Status     string      `json:"status"`
	Data       *T          `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Results    int         `json:"results,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a paginated list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasMore reports whether pages remain after this one.
func (p *Pagination) HasMore() bool {
	if p == nil {
		return false
	}
	return p.Page < p.TotalPages
}

// ErrorResponse is the body returned by the backend for non-2xx responses.
type ErrorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MemoryItem is a catalog item as serialized by the backend.
type MemoryItem struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Decade      string   `json:"decade,omitempty"`
	Year        int      `json:"year" validate:"min=0,max=9999"`
	ImageURL    string   `json:"imageUrl"`
	Popularity  float64  `json:"popularity,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// APICategory is a category as serialized by the backend.
type APICategory struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CollectionEntry is an item of the user's server-side collection.
type CollectionEntry struct {
	MemoryItem
	AddedAt string `json:"addedAt"`
	Notes   string `json:"notes,omitempty"`
}

// ItemsPayload is the data of list endpoints (/items, /items/search, ...).
type ItemsPayload struct {
	Items []MemoryItem `json:"items" validate:"dive"`
	Query string       `json:"query,omitempty"`
}

// ItemPayload is the data of /items/{id}.
type ItemPayload struct {
	Item *MemoryItem `json:"item" validate:"required"`
}

// CategoriesPayload is the data of /categories.
type CategoriesPayload struct {
	Categories []APICategory `json:"categories" validate:"dive"`
}

// CategoryPayload is the data of /categories/{id}.
type CategoryPayload struct {
	Category *APICategory `json:"category" validate:"required"`
}

// CollectionPayload is the data of /collection.
type CollectionPayload struct {
	Items []CollectionEntry `json:"items" validate:"dive"`
}

// SuccessPayload is the data of collection mutation endpoints.
type SuccessPayload struct {
	Success bool `json:"success"`
}

// Location is the optional location of a user profile.
type Location struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
}

// UserCollectionRef references an item in a user's profile collection.
type UserCollectionRef struct {
	ItemID       string `json:"itemId"`
	DateAdded    string `json:"dateAdded"`
	PersonalNote string `json:"personalNote,omitempty"`
}

// User is the authenticated user's profile.
type User struct {
	ID         string              `json:"id" validate:"required"`
	Username   string              `json:"username"`
	Email      string              `json:"email"`
	BirthYear  int                 `json:"birthYear,omitempty"`
	Location   *Location           `json:"location,omitempty"`
	JoinDate   string              `json:"joinDate,omitempty"`
	Collection []UserCollectionRef `json:"collection,omitempty"`
	Following  []string            `json:"following,omitempty"`
	Followers  []string            `json:"followers,omitempty"`
}

// AuthPayload is the data of /users/login and /users/register.
type AuthPayload struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

// LoginCredentials is the body of /users/login.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterCredentials is the body of /users/register.
type RegisterCredentials struct {
	Username  string    `json:"username" validate:"required,min=3,max=64"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required,min=6"`
	BirthYear int       `json:"birthYear,omitempty" validate:"omitempty,min=1900,max=2100"`
	Location  *Location `json:"location,omitempty"`
}

// HealthStatus is the body of the backend /health endpoint.
type HealthStatus struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
