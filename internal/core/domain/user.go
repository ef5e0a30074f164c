package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleCommon = "common_user"
)

// User models an authenticated actor. Records are provisioned out of
// band; this service only reads them during signin and refresh.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
}
