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

// ProjectRepository is the projects table. Lookups return nil, nil when no row matches.
type ProjectRepository interface {
	GetAll(ctx context.Context, filter entity.ProjectFilter) ([]*entity.Project, error)
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, id string, patch *entity.ProjectPatch) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetAll(ctx context.Context, filter entity.ProjectFilter) ([]*entity.Project, error) {
	query := r.db.WithContext(ctx).Model(&model.ProjectModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	query = query.Order("publish_date DESC").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var projectModels []model.ProjectModel
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = ToProjectEntity(&projectModels[i])
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *projectRepository) first(ctx context.Context, cond string, arg interface{}) (*entity.Project, error) {
	var projectModel model.ProjectModel
	err := r.db.WithContext(ctx).Where(cond, arg).First(&projectModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToProjectEntity(&projectModel), nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := ToProjectModel(project)
	if projectModel.Status == "" {
		projectModel.Status = string(entity.StatusDraft)
	}
	if projectModel.PublishDate.IsZero() {
		projectModel.PublishDate = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(projectModel).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	*project = *ToProjectEntity(projectModel)
	return nil
}

func (r *projectRepository) Update(ctx context.Context, id string, patch *entity.ProjectPatch) (*entity.Project, error) {
	cols := projectPatchColumns(patch)
	cols["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.ProjectModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("project %s: %w", id, entity.ErrNotFound)
	}

	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", id, entity.ErrNotFound)
	}
	return project, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{}).Error
}
