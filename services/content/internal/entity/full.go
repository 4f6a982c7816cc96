package entity

import (
	"encoding/json"
	"fmt"
)

// Aggregates is everything a parent owns outside its own row.
type Aggregates struct {
	Content       string            `json:"content"`
	ContentFormat ContentFormat     `json:"content_format"`
	Gallery       []GalleryItem     `json:"gallery"`
	Downloads     []DownloadItem    `json:"downloads"`
	FAQs          []FAQItem         `json:"faqs"`
	Recommended   []RecommendedItem `json:"recommended"`
	SEO           *SEO              `json:"seo"`
}

type FullPost struct {
	Post
	Aggregates
}

type FullProject struct {
	Project
	Aggregates
	RelatedProjects []Project `json:"related_projects"`
}

// AggregatesPayload carries child writes. A nil field means leave the
// aggregate unchanged; a non-nil empty list clears it.
type AggregatesPayload struct {
	Content       *string            `json:"content,omitempty"`
	ContentFormat *ContentFormat     `json:"content_format,omitempty"`
	Gallery       *[]GalleryItem     `json:"gallery,omitempty"`
	Downloads     *[]DownloadItem    `json:"downloads,omitempty"`
	FAQs          *[]FAQItem         `json:"faqs,omitempty"`
	Recommended   *[]RecommendedItem `json:"recommended,omitempty"`
	SEO           *SEO               `json:"seo,omitempty"`
}

func (p *AggregatesPayload) Validate() error {
	verr := &ValidationError{}
	if p.ContentFormat != nil && !p.ContentFormat.Valid() {
		verr.Add("content_format must be one of markdown, mdx, html")
	}
	validateItems(verr, "gallery", p.Gallery)
	validateItems(verr, "downloads", p.Downloads)
	validateItems(verr, "faqs", p.FAQs)
	validateItems(verr, "recommended", p.Recommended)
	if p.SEO != nil && len(p.SEO.StructuredData) > 0 && !json.Valid(p.SEO.StructuredData) {
		verr.Add("seo.structured_data must be valid JSON")
	}
	return verr.Err()
}

func validateItems[T interface{ Validate() error }](verr *ValidationError, field string, items *[]T) {
	if items == nil {
		return
	}
	for i, item := range *items {
		if err := item.Validate(); err != nil {
			verr.Add(indexed(field, i, err.Error()))
		}
	}
}

type SavePostPayload struct {
	Entity *PostPatch `json:"entity,omitempty"`
	AggregatesPayload
}

func (p *SavePostPayload) Validate() error {
	verr := &ValidationError{}
	if p.Entity != nil {
		if err := p.Entity.Validate(); err != nil {
			verr.Problems = append(verr.Problems, err.(*ValidationError).Problems...)
		}
	}
	if err := p.AggregatesPayload.Validate(); err != nil {
		verr.Problems = append(verr.Problems, err.(*ValidationError).Problems...)
	}
	return verr.Err()
}

type SaveProjectPayload struct {
	Entity            *ProjectPatch `json:"entity,omitempty"`
	RelatedProjectIDs *[]string     `json:"related_project_ids,omitempty"`
	AggregatesPayload
}

func (p *SaveProjectPayload) Validate() error {
	verr := &ValidationError{}
	if p.Entity != nil {
		if err := p.Entity.Validate(); err != nil {
			verr.Problems = append(verr.Problems, err.(*ValidationError).Problems...)
		}
	}
	if p.RelatedProjectIDs != nil {
		for i, id := range *p.RelatedProjectIDs {
			if id == "" {
				verr.Add(indexed("related_project_ids", i, "id is required"))
			}
		}
	}
	if err := p.AggregatesPayload.Validate(); err != nil {
		verr.Problems = append(verr.Problems, err.(*ValidationError).Problems...)
	}
	return verr.Err()
}

type SaveResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func indexed(field string, i int, msg string) string {
	return fmt.Sprintf("%s[%d]: %s", field, i, msg)
}
