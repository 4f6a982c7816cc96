package persistent

import (
	"folio-cms/services/content/internal/entity"

	"gorm.io/gorm"
)

// Stores groups every table the content service reads and writes.
type Stores struct {
	Posts           PostRepository
	Projects        ProjectRepository
	RelatedProjects RelatedProjectRepository
	Content         SingletonStore[entity.Content]
	SEO             SingletonStore[entity.SEO]
	Gallery         ListStore[entity.GalleryItem, entity.GalleryItemPatch]
	Downloads       ListStore[entity.DownloadItem, entity.DownloadItemPatch]
	FAQs            ListStore[entity.FAQItem, entity.FAQItemPatch]
	Recommended     ListStore[entity.RecommendedItem, entity.RecommendedItemPatch]
}

func NewStores(db *gorm.DB) Stores {
	return Stores{
		Posts:           NewPostRepository(db),
		Projects:        NewProjectRepository(db),
		RelatedProjects: NewRelatedProjectRepository(db),
		Content:         NewContentRepository(db),
		SEO:             NewSEORepository(db),
		Gallery:         NewGalleryRepository(db),
		Downloads:       NewDownloadRepository(db),
		FAQs:            NewFAQRepository(db),
		Recommended:     NewRecommendedRepository(db),
	}
}
