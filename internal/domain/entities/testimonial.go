package entities

import (
	"time"
)

// Testimonial represents a patient review shown on the public site
type Testimonial struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Rating    int       `json:"rating" db:"rating"` // 1-5
	Treatment string    `json:"treatment" db:"treatment"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
