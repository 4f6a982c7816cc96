package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string         `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Thumbnail   string         `gorm:"type:varchar(500)" json:"thumbnail"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Author      string         `gorm:"type:varchar(255)" json:"author"`
	Status      string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	PublishDate time.Time      `gorm:"not null;index" json:"publish_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string { return "posts" }

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ProjectModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string         `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Thumbnail   string         `gorm:"type:varchar(500)" json:"thumbnail"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Client      string         `gorm:"type:varchar(255)" json:"client"`
	ProjectURL  string         `gorm:"column:project_url;type:varchar(500)" json:"project_url"`
	Featured    bool           `gorm:"not null;default:false" json:"featured"`
	Status      string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	PublishDate time.Time      `gorm:"not null;index" json:"publish_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ProjectModel) TableName() string { return "projects" }

func (p *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// RelatedProjectModel links a project to another project, ordered per owner.
type RelatedProjectModel struct {
	ProjectID        string    `gorm:"type:uuid;primaryKey" json:"project_id"`
	RelatedProjectID string    `gorm:"type:uuid;primaryKey;index" json:"related_project_id"`
	SortOrder        int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
}

func (RelatedProjectModel) TableName() string { return "related_projects" }
