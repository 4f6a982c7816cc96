package entity

import "regexp"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type ContentFormat string

const (
	FormatMarkdown ContentFormat = "markdown"
	FormatMDX      ContentFormat = "mdx"
	FormatHTML     ContentFormat = "html"
)

func (f ContentFormat) Valid() bool {
	switch f {
	case FormatMarkdown, FormatMDX, FormatHTML:
		return true
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is lowercase, URL-safe and hyphen separated.
func ValidSlug(s string) bool {
	return len(s) <= 200 && slugPattern.MatchString(s)
}
