package entities

import (
	"time"
)

// BlogCategories is the fixed set of categories a post may carry.
var BlogCategories = []string{
	"Oral Hygiene",
	"Treatments",
	"Kids Tips",
	"Prevention",
	"Cosmetic Dentistry",
	"General Health",
	"Clinic News",
}

// IsValidBlogCategory reports whether category is one of BlogCategories.
func IsValidBlogCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

// BlogPost represents a learning hub article
type BlogPost struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Excerpt   string    `json:"excerpt" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Author    string    `json:"author" db:"author"`
	ReadTime  string    `json:"read_time" db:"read_time"`
	ImageURL  string    `json:"image_url,omitempty" db:"image_url"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
