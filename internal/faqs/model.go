package faqs

import "time"

type FAQ struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	Published bool      `bson:"published" json:"published"`
	SortOrder int       `bson:"sort_order" json:"sort_order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Question  string `json:"question" validate:"required,max=300"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category" validate:"omitempty,max=60"`
	Published *bool  `json:"published"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
}
