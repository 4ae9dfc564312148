package blog

import "time"

var validCategories = map[string]struct{}{
	"buying":      {},
	"selling":     {},
	"maintenance": {},
	"insurance":   {},
	"seasonal":    {},
	"general":     {},
}

func IsValidCategory(value string) bool {
	_, ok := validCategories[value]
	return ok
}

type Post struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Title           string     `bson:"title" json:"title"`
	Slug            string     `bson:"slug" json:"slug"`
	Excerpt         string     `bson:"excerpt" json:"excerpt"`
	Content         string     `bson:"content" json:"content"`
	Category        string     `bson:"category" json:"category"`
	Tags            []string   `bson:"tags" json:"tags"`
	MetaTitle       string     `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string     `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	CoverImage      string     `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Published       bool       `bson:"published" json:"published"`
	Featured        bool       `bson:"featured" json:"featured"`
	PublishedAt     *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	AuthorID        string     `bson:"author_id,omitempty" json:"author_id,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Slug            string   `json:"slug" validate:"omitempty,slug"`
	Excerpt         string   `json:"excerpt" validate:"required,max=500"`
	Content         string   `json:"content" validate:"required"`
	Category        string   `json:"category" validate:"required,oneof=buying selling maintenance insurance seasonal general"`
	Tags            []string `json:"tags"`
	MetaTitle       string   `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription string   `json:"meta_description" validate:"omitempty,max=300"`
	CoverImage      string   `json:"cover_image" validate:"omitempty,url"`
	Published       *bool    `json:"published"`
	Featured        *bool    `json:"featured"`
}

type PublicListFilter struct {
	Category string
	Featured *bool
}

type AdminListFilter struct {
	Category  string
	Published *bool
}
