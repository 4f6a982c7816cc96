package persistent

import (
	"encoding/json"

	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Excerpt:     m.Excerpt,
		Thumbnail:   m.Thumbnail,
		Category:    m.Category,
		Tags:        toTags(m.Tags),
		Author:      m.Author,
		Status:      entity.Status(m.Status),
		PublishDate: m.PublishDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Excerpt:     e.Excerpt,
		Thumbnail:   e.Thumbnail,
		Category:    e.Category,
		Tags:        pq.StringArray(e.Tags),
		Author:      e.Author,
		Status:      string(e.Status),
		PublishDate: e.PublishDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// postPatchColumns maps only the fields present in the patch.
func postPatchColumns(p *entity.PostPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p == nil {
		return cols
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Excerpt != nil {
		cols["excerpt"] = *p.Excerpt
	}
	if p.Thumbnail != nil {
		cols["thumbnail"] = *p.Thumbnail
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Tags != nil {
		cols["tags"] = pq.StringArray(*p.Tags)
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.PublishDate != nil {
		cols["publish_date"] = *p.PublishDate
	}
	return cols
}

func ToProjectEntity(m *model.ProjectModel) *entity.Project {
	if m == nil {
		return nil
	}

	return &entity.Project{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		Thumbnail:   m.Thumbnail,
		Category:    m.Category,
		Tags:        toTags(m.Tags),
		Client:      m.Client,
		ProjectURL:  m.ProjectURL,
		Featured:    m.Featured,
		Status:      entity.Status(m.Status),
		PublishDate: m.PublishDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToProjectModel(e *entity.Project) *model.ProjectModel {
	if e == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		Thumbnail:   e.Thumbnail,
		Category:    e.Category,
		Tags:        pq.StringArray(e.Tags),
		Client:      e.Client,
		ProjectURL:  e.ProjectURL,
		Featured:    e.Featured,
		Status:      string(e.Status),
		PublishDate: e.PublishDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func projectPatchColumns(p *entity.ProjectPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p == nil {
		return cols
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Thumbnail != nil {
		cols["thumbnail"] = *p.Thumbnail
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Tags != nil {
		cols["tags"] = pq.StringArray(*p.Tags)
	}
	if p.Client != nil {
		cols["client"] = *p.Client
	}
	if p.ProjectURL != nil {
		cols["project_url"] = *p.ProjectURL
	}
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.PublishDate != nil {
		cols["publish_date"] = *p.PublishDate
	}
	return cols
}

func ToContentEntity(m *model.ContentModel) entity.Content {
	return entity.Content{
		ID:        m.ID,
		Body:      m.Body,
		Format:    entity.ContentFormat(m.Format),
		UpdatedAt: m.UpdatedAt,
	}
}

func ToContentModel(e entity.Content, parent entity.ParentRef) *model.ContentModel {
	format := e.Format
	if format == "" {
		format = entity.FormatMarkdown
	}
	return &model.ContentModel{
		ID:         e.ID,
		ParentID:   parent.ID(),
		ParentType: string(parent.Type()),
		Body:       e.Body,
		Format:     string(format),
	}
}

func ToGalleryItemEntity(m *model.GalleryItemModel) entity.GalleryItem {
	order := m.SortOrder
	return entity.GalleryItem{
		ID:      m.ID,
		URL:     m.URL,
		Alt:     m.Alt,
		Caption: m.Caption,
		Order:   &order,
	}
}

func ToGalleryItemModel(e entity.GalleryItem, parent entity.ParentRef, order int) *model.GalleryItemModel {
	return &model.GalleryItemModel{
		ID:         e.ID,
		ParentID:   parent.ID(),
		ParentType: string(parent.Type()),
		URL:        e.URL,
		Alt:        e.Alt,
		Caption:    e.Caption,
		SortOrder:  order,
	}
}

func galleryPatchColumns(p entity.GalleryItemPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.Alt != nil {
		cols["alt"] = *p.Alt
	}
	if p.Caption != nil {
		cols["caption"] = *p.Caption
	}
	if p.Order != nil {
		cols["sort_order"] = *p.Order
	}
	return cols
}

func ToDownloadItemEntity(m *model.DownloadItemModel) entity.DownloadItem {
	order := m.SortOrder
	return entity.DownloadItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		FileType:    m.FileType,
		FileSize:    m.FileSize,
		Order:       &order,
	}
}

func ToDownloadItemModel(e entity.DownloadItem, parent entity.ParentRef, order int) *model.DownloadItemModel {
	return &model.DownloadItemModel{
		ID:          e.ID,
		ParentID:    parent.ID(),
		ParentType:  string(parent.Type()),
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		FileType:    e.FileType,
		FileSize:    e.FileSize,
		SortOrder:   order,
	}
}

func downloadPatchColumns(p entity.DownloadItemPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.FileType != nil {
		cols["file_type"] = *p.FileType
	}
	if p.FileSize != nil {
		cols["file_size"] = *p.FileSize
	}
	if p.Order != nil {
		cols["sort_order"] = *p.Order
	}
	return cols
}

func ToFAQItemEntity(m *model.FAQItemModel) entity.FAQItem {
	order := m.SortOrder
	return entity.FAQItem{
		ID:       m.ID,
		Question: m.Question,
		Answer:   m.Answer,
		Order:    &order,
	}
}

func ToFAQItemModel(e entity.FAQItem, parent entity.ParentRef, order int) *model.FAQItemModel {
	return &model.FAQItemModel{
		ID:         e.ID,
		ParentID:   parent.ID(),
		ParentType: string(parent.Type()),
		Question:   e.Question,
		Answer:     e.Answer,
		SortOrder:  order,
	}
}

func faqPatchColumns(p entity.FAQItemPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Question != nil {
		cols["question"] = *p.Question
	}
	if p.Answer != nil {
		cols["answer"] = *p.Answer
	}
	if p.Order != nil {
		cols["sort_order"] = *p.Order
	}
	return cols
}

func ToRecommendedItemEntity(m *model.RecommendedItemModel) entity.RecommendedItem {
	order := m.SortOrder
	return entity.RecommendedItem{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		Thumbnail:   m.Thumbnail,
		Description: m.Description,
		Order:       &order,
	}
}

func ToRecommendedItemModel(e entity.RecommendedItem, parent entity.ParentRef, order int) *model.RecommendedItemModel {
	return &model.RecommendedItemModel{
		ID:          e.ID,
		ParentID:    parent.ID(),
		ParentType:  string(parent.Type()),
		Title:       e.Title,
		URL:         e.URL,
		Thumbnail:   e.Thumbnail,
		Description: e.Description,
		SortOrder:   order,
	}
}

func recommendedPatchColumns(p entity.RecommendedItemPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.Thumbnail != nil {
		cols["thumbnail"] = *p.Thumbnail
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Order != nil {
		cols["sort_order"] = *p.Order
	}
	return cols
}

func ToSEOEntity(m *model.SEOModel) entity.SEO {
	var structured json.RawMessage
	if len(m.StructuredData) > 0 {
		structured = json.RawMessage(m.StructuredData)
	}
	return entity.SEO{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Keywords:       toTags(m.Keywords),
		CanonicalURL:   m.CanonicalURL,
		OGImage:        m.OGImage,
		NoIndex:        m.NoIndex,
		NoFollow:       m.NoFollow,
		StructuredData: structured,
	}
}

func ToSEOModel(e entity.SEO, parent entity.ParentRef) *model.SEOModel {
	var structured datatypes.JSON
	if len(e.StructuredData) > 0 {
		structured = datatypes.JSON(e.StructuredData)
	}
	return &model.SEOModel{
		ID:             e.ID,
		ParentID:       parent.ID(),
		ParentType:     string(parent.Type()),
		Title:          e.Title,
		Description:    e.Description,
		Keywords:       pq.StringArray(e.Keywords),
		CanonicalURL:   e.CanonicalURL,
		OGImage:        e.OGImage,
		NoIndex:        e.NoIndex,
		NoFollow:       e.NoFollow,
		StructuredData: structured,
	}
}

func toTags(a pq.StringArray) []string {
	if len(a) == 0 {
		return []string{}
	}
	out := make([]string, len(a))
	copy(out, a)
	return out
}
