package entity

import "time"

type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	Status      Status    `json:"status"`
	PublishDate time.Time `json:"publish_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks a new post before it is created.
func (p *Post) Validate() error {
	verr := &ValidationError{}
	if !ValidSlug(p.Slug) {
		verr.Add("slug must be lowercase letters, digits and hyphens")
	}
	if p.Title == "" {
		verr.Add("title is required")
	}
	if p.Status != "" && !p.Status.Valid() {
		verr.Add("status must be one of draft, published, archived")
	}
	return verr.Err()
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Slug        *string    `json:"slug,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Thumbnail   *string    `json:"thumbnail,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

func (p *PostPatch) Validate() error {
	verr := &ValidationError{}
	if p.Slug != nil && !ValidSlug(*p.Slug) {
		verr.Add("slug must be lowercase letters, digits and hyphens")
	}
	if p.Title != nil && *p.Title == "" {
		verr.Add("title cannot be empty")
	}
	if p.Status != nil && !p.Status.Valid() {
		verr.Add("status must be one of draft, published, archived")
	}
	return verr.Err()
}

type PostFilter struct {
	Status   Status
	Category string
	Tag      string
	Limit    int
	Offset   int
}
