package model

import "time"

// User is the admin account record. The table exists and is seeded by hand
// when needed, but no HTTP route consumes it yet: there is no login flow.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
