// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// Alongside identity fields it owns the abstinence streak state: the start
// of the active streak and the append-only history of past resets.
type User struct {
	ID                 uuid.UUID   // The Global Unique Identifier for the user.
	Email              string      // The user's primary contact email, used as a login identifier.
	Name               string      // The user's display name. Optional.
	CurrentStreakStart time.Time   // Start of the active streak. Zero value means "needs repair".
	History            []time.Time // Past reset moments, oldest first. Append-only, uncapped.
	CreatedAt          time.Time   // Timestamp of when this account was created.
	UpdatedAt          time.Time   // Timestamp of the last modification to this user's data.
}

// StreakStatus is the derived view of a user's streak at a given instant.
type StreakStatus struct {
	StreakDays        int         `json:"streakDays"`
	StreakHours       int         `json:"streakHours"`
	StartDate         time.Time   `json:"startDate"`
	History           []time.Time `json:"history"`
	NextMilestone     int         `json:"nextMilestone"`
	MilestoneProgress float64     `json:"milestoneProgress"`
}
