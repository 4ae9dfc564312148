package services

import "time"

type Service struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Slug             string    `bson:"slug" json:"slug"`
	ShortDescription string    `bson:"short_description" json:"short_description"`
	FullDescription  string    `bson:"full_description" json:"full_description"`
	Icon             string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Benefits         []string  `bson:"benefits" json:"benefits"`
	Process          []string  `bson:"process" json:"process"`
	Pricing          string    `bson:"pricing,omitempty" json:"pricing,omitempty"`
	Duration         string    `bson:"duration,omitempty" json:"duration,omitempty"`
	MetaTitle        string    `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription  string    `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	Featured         bool      `bson:"featured" json:"featured"`
	Published        bool      `bson:"published" json:"published"`
	SortOrder        int       `bson:"sort_order" json:"sort_order"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Name             string   `json:"name" validate:"required,max=150"`
	Slug             string   `json:"slug" validate:"omitempty,slug"`
	ShortDescription string   `json:"short_description" validate:"required,max=300"`
	FullDescription  string   `json:"full_description" validate:"required"`
	Icon             string   `json:"icon" validate:"omitempty,max=60"`
	Benefits         []string `json:"benefits"`
	Process          []string `json:"process"`
	Pricing          string   `json:"pricing" validate:"omitempty,max=120"`
	Duration         string   `json:"duration" validate:"omitempty,max=120"`
	MetaTitle        string   `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription  string   `json:"meta_description" validate:"omitempty,max=300"`
	Featured         *bool    `json:"featured"`
	Published        *bool    `json:"published"`
	SortOrder        *int     `json:"sort_order" validate:"omitempty,gte=0"`
}
