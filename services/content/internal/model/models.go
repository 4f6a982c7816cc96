package model

// All lists every table model in migration order.
func All() []interface{} {
	return []interface{}{
		&PostModel{},
		&ProjectModel{},
		&RelatedProjectModel{},
		&ContentModel{},
		&GalleryItemModel{},
		&DownloadItemModel{},
		&FAQItemModel{},
		&RecommendedItemModel{},
		&SEOModel{},
	}
}
