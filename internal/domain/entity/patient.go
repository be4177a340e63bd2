// Package entity contains the core business objects of the project.
package entity

import "time"

// Patient is an animal treated by the clinic, always linked to an Owner.
type Patient struct {
	ID          uint       `json:"id"`            // Numeric primary key.
	Name        string     `json:"name"`          // The animal's name.
	Species     string     `json:"species"`       // e.g. "canino", "felino".
	Breed       string     `json:"breed"`         // Breed, free-form.
	OwnerID     uint       `json:"owner_id"`      // Foreign key to the owning client.
	DateOfBirth *time.Time `json:"date_of_birth"` // Optional; age is often estimated.
	CreatedAt   time.Time  `json:"created_at"`    // Timestamp of record creation.
	UpdatedAt   time.Time  `json:"updated_at"`    // Timestamp of the last modification.
}
