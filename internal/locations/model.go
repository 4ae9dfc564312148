package locations

import "time"

type Location struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	City            string    `bson:"city" json:"city"`
	State           string    `bson:"state" json:"state"`
	Slug            string    `bson:"slug" json:"slug"`
	County          string    `bson:"county,omitempty" json:"county,omitempty"`
	Description     string    `bson:"description" json:"description"`
	Neighborhoods   []string  `bson:"neighborhoods" json:"neighborhoods"`
	CommonIssues    []string  `bson:"common_issues" json:"common_issues"`
	MetaTitle       string    `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string    `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	Published       bool      `bson:"published" json:"published"`
	SortOrder       int       `bson:"sort_order" json:"sort_order"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	City            string   `json:"city" validate:"required,max=120"`
	State           string   `json:"state" validate:"required,max=2"`
	Slug            string   `json:"slug" validate:"omitempty,slug"`
	County          string   `json:"county" validate:"omitempty,max=120"`
	Description     string   `json:"description" validate:"required"`
	Neighborhoods   []string `json:"neighborhoods"`
	CommonIssues    []string `json:"common_issues"`
	MetaTitle       string   `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription string   `json:"meta_description" validate:"omitempty,max=300"`
	Published       *bool    `json:"published"`
	SortOrder       *int     `json:"sort_order" validate:"omitempty,gte=0"`
}
