package types

import "time"

// Candidate is a record owned by exactly one user. Candidates are
// created through the authenticated endpoint, which stamps the owning
// user's id; there is no update or delete path.
type Candidate struct {
	// ID is the unique identifier of the candidate.
	ID int `json:"id" db:"id"`

	// FirstName is the candidate's given name.
	FirstName string `json:"first_name" db:"first_name"`

	// LastName is the candidate's family name.
	LastName string `json:"last_name" db:"last_name"`

	// Email is the candidate's email address.
	Email string `json:"email" db:"email"`

	// UserID references the owning user.
	UserID int `json:"user_id" db:"user_id"`

	// CreatedAt is the timestamp when the candidate was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
