package domain

import "time"

// Partner is an organizational tenant. Users and tickets reference it by ID;
// one partner owns many users.
type Partner struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
