package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Child rows are shared across parent kinds and scoped by
// (parent_id, parent_type). parent_id is not a foreign key because service
// parents have no table.

type ContentModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	ParentID   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_contents_parent" json:"parent_id"`
	ParentType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_contents_parent" json:"parent_type"`
	Body       string    `gorm:"type:text;not null;default:''" json:"body"`
	Format     string    `gorm:"type:varchar(20);not null;default:'markdown'" json:"format"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ContentModel) TableName() string { return "contents" }

func (m *ContentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type GalleryItemModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	ParentID   string    `gorm:"type:varchar(100);not null;index:idx_gallery_parent" json:"parent_id"`
	ParentType string    `gorm:"type:varchar(20);not null;index:idx_gallery_parent" json:"parent_type"`
	URL        string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	Alt        string    `gorm:"type:varchar(255)" json:"alt"`
	Caption    string    `gorm:"type:text" json:"caption"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (GalleryItemModel) TableName() string { return "gallery" }

func (m *GalleryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type DownloadItemModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ParentID    string    `gorm:"type:varchar(100);not null;index:idx_downloads_parent" json:"parent_id"`
	ParentType  string    `gorm:"type:varchar(20);not null;index:idx_downloads_parent" json:"parent_type"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	FileType    string    `gorm:"type:varchar(50)" json:"file_type"`
	FileSize    int64     `gorm:"not null;default:0" json:"file_size"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DownloadItemModel) TableName() string { return "downloads" }

func (m *DownloadItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type FAQItemModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	ParentID   string    `gorm:"type:varchar(100);not null;index:idx_faqs_parent" json:"parent_id"`
	ParentType string    `gorm:"type:varchar(20);not null;index:idx_faqs_parent" json:"parent_type"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text" json:"answer"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (FAQItemModel) TableName() string { return "faqs" }

func (m *FAQItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type RecommendedItemModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ParentID    string    `gorm:"type:varchar(100);not null;index:idx_recommended_parent" json:"parent_id"`
	ParentType  string    `gorm:"type:varchar(20);not null;index:idx_recommended_parent" json:"parent_type"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	URL         string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	Thumbnail   string    `gorm:"type:varchar(500)" json:"thumbnail"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (RecommendedItemModel) TableName() string { return "recommended" }

func (m *RecommendedItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type SEOModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	ParentID       string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_seo_parent" json:"parent_id"`
	ParentType     string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_seo_parent" json:"parent_type"`
	Title          string         `gorm:"type:varchar(255)" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Keywords       pq.StringArray `gorm:"type:text[]" json:"keywords"`
	CanonicalURL   string         `gorm:"column:canonical_url;type:varchar(500)" json:"canonical_url"`
	OGImage        string         `gorm:"column:og_image;type:varchar(500)" json:"og_image"`
	NoIndex        bool           `gorm:"not null;default:false" json:"no_index"`
	NoFollow       bool           `gorm:"not null;default:false" json:"no_follow"`
	StructuredData datatypes.JSON `json:"structured_data"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (SEOModel) TableName() string { return "seo" }

func (m *SEOModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
