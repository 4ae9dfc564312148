package testimonials

import "time"

type Testimonial struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	ReviewerName string    `bson:"reviewer_name" json:"reviewer_name"`
	Rating       int       `bson:"rating" json:"rating"`
	ReviewText   string    `bson:"review_text" json:"review_text"`
	Service      string    `bson:"service,omitempty" json:"service,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Date         string    `bson:"date,omitempty" json:"date,omitempty"`
	Source       string    `bson:"source,omitempty" json:"source,omitempty"`
	Badge        string    `bson:"badge,omitempty" json:"badge,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	Verified     bool      `bson:"verified" json:"verified"`
	Published    bool      `bson:"published" json:"published"`
	SortOrder    int       `bson:"sort_order" json:"sort_order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	ReviewerName string `json:"reviewer_name" validate:"required,max=120"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText   string `json:"review_text" validate:"required"`
	Service      string `json:"service" validate:"omitempty,max=120"`
	Location     string `json:"location" validate:"omitempty,max=120"`
	Date         string `json:"date" validate:"omitempty,max=40"`
	Source       string `json:"source" validate:"omitempty,max=60"`
	Badge        string `json:"badge" validate:"omitempty,max=60"`
	Featured     *bool  `json:"featured"`
	Verified     *bool  `json:"verified"`
	Published    *bool  `json:"published"`
	SortOrder    *int   `json:"sort_order" validate:"omitempty,gte=0"`
}

// ListFilter narrows the public testimonial list. Featured nil means
// no featured filter.
type ListFilter struct {
	Featured *bool
}
