package entity

import (
	"encoding/json"
	"errors"
	"time"
)

// Content is the body text of a parent. A parent has at most one.
type Content struct {
	ID        string        `json:"id"`
	Body      string        `json:"body"`
	Format    ContentFormat `json:"format"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type GalleryItem struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Order   *int   `json:"order,omitempty"`
}

type GalleryItemPatch struct {
	URL     *string `json:"url,omitempty"`
	Alt     *string `json:"alt,omitempty"`
	Caption *string `json:"caption,omitempty"`
	Order   *int    `json:"order,omitempty"`
}

type DownloadItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	Order       *int   `json:"order,omitempty"`
}

type DownloadItemPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	FileType    *string `json:"file_type,omitempty"`
	FileSize    *int64  `json:"file_size,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type FAQItem struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order,omitempty"`
}

type FAQItemPatch struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

type RecommendedItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Order       *int   `json:"order,omitempty"`
}

type RecommendedItemPatch struct {
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type SEO struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Keywords       []string        `json:"keywords"`
	CanonicalURL   string          `json:"canonical_url"`
	OGImage        string          `json:"og_image"`
	NoIndex        bool            `json:"no_index"`
	NoFollow       bool            `json:"no_follow"`
	StructuredData json.RawMessage `json:"structured_data,omitempty"`
}

// Robots renders the robots meta directive.
func (s *SEO) Robots() string {
	index, follow := "index", "follow"
	if s.NoIndex {
		index = "noindex"
	}
	if s.NoFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

func (i GalleryItem) Validate() error {
	if i.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

func (i DownloadItem) Validate() error {
	if i.URL == "" {
		return errors.New("url is required")
	}
	if i.FileSize < 0 {
		return errors.New("file_size cannot be negative")
	}
	return nil
}

func (i FAQItem) Validate() error {
	if i.Question == "" {
		return errors.New("question is required")
	}
	return nil
}

func (i RecommendedItem) Validate() error {
	if i.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

func (p GalleryItemPatch) Validate() error {
	if p.URL != nil && *p.URL == "" {
		return errors.New("url cannot be empty")
	}
	return nil
}

func (p DownloadItemPatch) Validate() error {
	if p.URL != nil && *p.URL == "" {
		return errors.New("url cannot be empty")
	}
	if p.FileSize != nil && *p.FileSize < 0 {
		return errors.New("file_size cannot be negative")
	}
	return nil
}

func (p FAQItemPatch) Validate() error {
	if p.Question != nil && *p.Question == "" {
		return errors.New("question cannot be empty")
	}
	return nil
}

func (p RecommendedItemPatch) Validate() error {
	if p.URL != nil && *p.URL == "" {
		return errors.New("url cannot be empty")
	}
	return nil
}

// OrderOr returns the explicit order or fallback when none was given.
func OrderOr(order *int, fallback int) int {
	if order != nil {
		return *order
	}
	return fallback
}
