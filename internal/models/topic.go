package models

// Topic represents a discussion category identified by a unique slug
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	ImgURL      string `json:"img_url" db:"img_url"`
}
