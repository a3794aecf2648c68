package agent

import "time"

// Agent is a back-office user of the agency desk.
type Agent struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}
