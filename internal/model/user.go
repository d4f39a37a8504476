package model

import "time"

// User is a notification recipient within a company.
type User struct {
	ID             string
	CompanyID      string
	Email          string
	Name           string
	Role           string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
