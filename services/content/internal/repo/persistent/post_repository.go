package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/model"

	"gorm.io/gorm"
)

// PostRepository is the posts table. Lookups return nil, nil when no row matches.
type PostRepository interface {
	GetAll(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, id string, patch *entity.PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetAll(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	query := r.db.WithContext(ctx).Model(&model.PostModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	query = query.Order("publish_date DESC").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var postModels []model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *postRepository) first(ctx context.Context, cond string, arg interface{}) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).Where(cond, arg).First(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.Status == "" {
		postModel.Status = string(entity.StatusDraft)
	}
	if postModel.PublishDate.IsZero() {
		postModel.PublishDate = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Update(ctx context.Context, id string, patch *entity.PostPatch) (*entity.Post, error) {
	cols := postPatchColumns(patch)
	cols["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("post %s: %w", id, entity.ErrNotFound)
	}

	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, entity.ErrNotFound)
	}
	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{}).Error
}
