package entity

import "time"

type Project struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Client      string    `json:"client"`
	ProjectURL  string    `json:"project_url"`
	Featured    bool      `json:"featured"`
	Status      Status    `json:"status"`
	PublishDate time.Time `json:"publish_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks a new project before it is created.
func (p *Project) Validate() error {
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

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Slug        *string    `json:"slug,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Thumbnail   *string    `json:"thumbnail,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Client      *string    `json:"client,omitempty"`
	ProjectURL  *string    `json:"project_url,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

func (p *ProjectPatch) Validate() error {
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

type ProjectFilter struct {
	Status   Status
	Category string
	Tag      string
	Featured *bool
	Limit    int
	Offset   int
}
