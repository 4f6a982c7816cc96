package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListStore is an ordered child aggregate scoped by parent.
type ListStore[T any, P any] interface {
	GetByParent(ctx context.Context, parent entity.ParentRef) ([]T, error)
	Add(ctx context.Context, parent entity.ParentRef, item T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, parent entity.ParentRef, items []T) ([]T, error)
	DeleteByParent(ctx context.Context, parent entity.ParentRef) error
	ParentOf(ctx context.Context, id string) (entity.ParentRef, error)
}

// SingletonStore is a 0-or-1 child aggregate scoped by parent.
type SingletonStore[T any] interface {
	GetByParent(ctx context.Context, parent entity.ParentRef) (*T, error)
	Upsert(ctx context.Context, parent entity.ParentRef, value T) (T, error)
	DeleteByParent(ctx context.Context, parent entity.ParentRef) error
}

type listRepository[T any, P any, M any] struct {
	db       *gorm.DB
	name     string
	toEntity func(*M) T
	toModel  func(T, entity.ParentRef, int) *M
	columns  func(P) map[string]interface{}
	orderOf  func(T) *int
	idOf     func(*M) *string
}

func NewGalleryRepository(db *gorm.DB) ListStore[entity.GalleryItem, entity.GalleryItemPatch] {
	return &listRepository[entity.GalleryItem, entity.GalleryItemPatch, model.GalleryItemModel]{
		db:       db,
		name:     "gallery item",
		toEntity: ToGalleryItemEntity,
		toModel:  ToGalleryItemModel,
		columns:  galleryPatchColumns,
		orderOf:  func(i entity.GalleryItem) *int { return i.Order },
		idOf:     func(m *model.GalleryItemModel) *string { return &m.ID },
	}
}

func NewDownloadRepository(db *gorm.DB) ListStore[entity.DownloadItem, entity.DownloadItemPatch] {
	return &listRepository[entity.DownloadItem, entity.DownloadItemPatch, model.DownloadItemModel]{
		db:       db,
		name:     "download",
		toEntity: ToDownloadItemEntity,
		toModel:  ToDownloadItemModel,
		columns:  downloadPatchColumns,
		orderOf:  func(i entity.DownloadItem) *int { return i.Order },
		idOf:     func(m *model.DownloadItemModel) *string { return &m.ID },
	}
}

func NewFAQRepository(db *gorm.DB) ListStore[entity.FAQItem, entity.FAQItemPatch] {
	return &listRepository[entity.FAQItem, entity.FAQItemPatch, model.FAQItemModel]{
		db:       db,
		name:     "faq",
		toEntity: ToFAQItemEntity,
		toModel:  ToFAQItemModel,
		columns:  faqPatchColumns,
		orderOf:  func(i entity.FAQItem) *int { return i.Order },
		idOf:     func(m *model.FAQItemModel) *string { return &m.ID },
	}
}

func NewRecommendedRepository(db *gorm.DB) ListStore[entity.RecommendedItem, entity.RecommendedItemPatch] {
	return &listRepository[entity.RecommendedItem, entity.RecommendedItemPatch, model.RecommendedItemModel]{
		db:       db,
		name:     "recommended item",
		toEntity: ToRecommendedItemEntity,
		toModel:  ToRecommendedItemModel,
		columns:  recommendedPatchColumns,
		orderOf:  func(i entity.RecommendedItem) *int { return i.Order },
		idOf:     func(m *model.RecommendedItemModel) *string { return &m.ID },
	}
}

func scopeParent(db *gorm.DB, parent entity.ParentRef) *gorm.DB {
	return db.Where("parent_id = ? AND parent_type = ?", parent.ID(), string(parent.Type()))
}

func (r *listRepository[T, P, M]) GetByParent(ctx context.Context, parent entity.ParentRef) ([]T, error) {
	if !parent.Valid() {
		return nil, entity.ErrInvalidParent
	}

	var rows []M
	err := scopeParent(r.db.WithContext(ctx), parent).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]T, len(rows))
	for i := range rows {
		items[i] = r.toEntity(&rows[i])
	}
	return items, nil
}

// Add appends after the current last item unless the item carries an order.
func (r *listRepository[T, P, M]) Add(ctx context.Context, parent entity.ParentRef, item T) (T, error) {
	var zero T
	if !parent.Valid() {
		return zero, entity.ErrInvalidParent
	}

	order := r.orderOf(item)
	var next int
	if order == nil {
		err := scopeParent(r.db.WithContext(ctx).Model(new(M)), parent).
			Select("COALESCE(MAX(sort_order), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return zero, fmt.Errorf("failed to compute %s order: %w", r.name, err)
		}
	}

	row := r.toModel(item, parent, entity.OrderOr(order, next))
	// a new item never takes over an id the caller sent
	*r.idOf(row) = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return zero, fmt.Errorf("failed to add %s: %w", r.name, err)
	}
	return r.toEntity(row), nil
}

func (r *listRepository[T, P, M]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	cols := r.columns(patch)
	cols["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return zero, fmt.Errorf("failed to update %s: %w", r.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return zero, fmt.Errorf("%s %s: %w", r.name, id, entity.ErrNotFound)
	}

	row := new(M)
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(row).Error; err != nil {
		return zero, err
	}
	return r.toEntity(row), nil
}

func (r *listRepository[T, P, M]) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error
}

// ReplaceAll swaps the parent's rows for items in one transaction. An item
// id is kept only when the parent already owns a row with it, so references
// survive a save. Any other id, and a repeated one, is reissued.
func (r *listRepository[T, P, M]) ReplaceAll(ctx context.Context, parent entity.ParentRef, items []T) ([]T, error) {
	if !parent.Valid() {
		return nil, entity.ErrInvalidParent
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned []string
		if err := scopeParent(tx.Model(new(M)), parent).Pluck("id", &owned).Error; err != nil {
			return err
		}
		rows := r.replacementRows(parent, items, owned)

		if err := scopeParent(tx, parent).Delete(new(M)).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace %s rows for %s: %w", r.name, parent, err)
	}

	return r.GetByParent(ctx, parent)
}

func (r *listRepository[T, P, M]) replacementRows(parent entity.ParentRef, items []T, owned []string) []M {
	keep := make(map[string]bool, len(owned))
	for _, id := range owned {
		keep[id] = true
	}

	rows := make([]M, len(items))
	for i, item := range items {
		rows[i] = *r.toModel(item, parent, entity.OrderOr(r.orderOf(item), i))
		id := r.idOf(&rows[i])
		if _, err := uuid.Parse(*id); err != nil || !keep[*id] {
			*id = uuid.New().String()
		}
		// a second use of the same id in this list gets a fresh one
		delete(keep, *id)
	}
	return rows
}

func (r *listRepository[T, P, M]) DeleteByParent(ctx context.Context, parent entity.ParentRef) error {
	if !parent.Valid() {
		return entity.ErrInvalidParent
	}
	return scopeParent(r.db.WithContext(ctx), parent).Delete(new(M)).Error
}

func (r *listRepository[T, P, M]) ParentOf(ctx context.Context, id string) (entity.ParentRef, error) {
	var row struct {
		ParentID   string
		ParentType string
	}
	err := r.db.WithContext(ctx).Model(new(M)).
		Select("parent_id", "parent_type").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ParentRef{}, fmt.Errorf("%s %s: %w", r.name, id, entity.ErrNotFound)
	}
	if err != nil {
		return entity.ParentRef{}, err
	}
	return entity.ParseParentRef(row.ParentType, row.ParentID)
}

type singletonRepository[T any, M any] struct {
	db       *gorm.DB
	name     string
	toEntity func(*M) T
	toModel  func(T, entity.ParentRef) *M
	// columns overwritten when a row already exists for the parent
	updateColumns []string
}

func NewContentRepository(db *gorm.DB) SingletonStore[entity.Content] {
	return &singletonRepository[entity.Content, model.ContentModel]{
		db:            db,
		name:          "content",
		toEntity:      ToContentEntity,
		toModel:       ToContentModel,
		updateColumns: []string{"body", "format", "updated_at"},
	}
}

func NewSEORepository(db *gorm.DB) SingletonStore[entity.SEO] {
	return &singletonRepository[entity.SEO, model.SEOModel]{
		db:       db,
		name:     "seo",
		toEntity: ToSEOEntity,
		toModel:  ToSEOModel,
		updateColumns: []string{
			"title", "description", "keywords", "canonical_url", "og_image",
			"no_index", "no_follow", "structured_data", "updated_at",
		},
	}
}

func (r *singletonRepository[T, M]) GetByParent(ctx context.Context, parent entity.ParentRef) (*T, error) {
	if !parent.Valid() {
		return nil, entity.ErrInvalidParent
	}

	row := new(M)
	err := scopeParent(r.db.WithContext(ctx), parent).First(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	value := r.toEntity(row)
	return &value, nil
}

// Upsert keeps the existing row id and overwrites its columns.
func (r *singletonRepository[T, M]) Upsert(ctx context.Context, parent entity.ParentRef, value T) (T, error) {
	var zero T
	if !parent.Valid() {
		return zero, entity.ErrInvalidParent
	}

	row := r.toModel(value, parent)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "parent_id"}, {Name: "parent_type"}},
		DoUpdates: clause.AssignmentColumns(r.updateColumns),
	}).Create(row).Error
	if err != nil {
		return zero, fmt.Errorf("failed to upsert %s for %s: %w", r.name, parent, err)
	}

	stored, err := r.GetByParent(ctx, parent)
	if err != nil {
		return zero, err
	}
	if stored == nil {
		return zero, fmt.Errorf("%s for %s: %w", r.name, parent, entity.ErrNotFound)
	}
	return *stored, nil
}

func (r *singletonRepository[T, M]) DeleteByParent(ctx context.Context, parent entity.ParentRef) error {
	if !parent.Valid() {
		return entity.ErrInvalidParent
	}
	return scopeParent(r.db.WithContext(ctx), parent).Delete(new(M)).Error
}
