package domain

import "time"

// Ticket is a support request captured by the intake endpoint.
// ID and CreatedAt are assigned server side and never change.
type Ticket struct {
	ID        string    `json:"id"`
	Tier      Tier      `json:"tier"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
