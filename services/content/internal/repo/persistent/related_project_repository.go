package persistent

import (
	"context"
	"fmt"

	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelatedProjectRepository is the ordered project-to-project link table.
type RelatedProjectRepository interface {
	GetByProject(ctx context.Context, projectID string) ([]*entity.Project, error)
	Add(ctx context.Context, projectID, relatedID string, order *int) error
	Delete(ctx context.Context, projectID, relatedID string) error
	ReplaceAll(ctx context.Context, projectID string, relatedIDs []string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type relatedProjectRepository struct {
	db *gorm.DB
}

func NewRelatedProjectRepository(db *gorm.DB) RelatedProjectRepository {
	return &relatedProjectRepository{db: db}
}

func (r *relatedProjectRepository) GetByProject(ctx context.Context, projectID string) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	err := r.db.WithContext(ctx).Model(&model.ProjectModel{}).
		Select("projects.*").
		Joins("INNER JOIN related_projects ON related_projects.related_project_id = projects.id").
		Where("related_projects.project_id = ?", projectID).
		Order("related_projects.sort_order ASC").
		Order("related_projects.created_at ASC").
		Find(&projectModels).Error
	if err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = ToProjectEntity(&projectModels[i])
	}
	return projects, nil
}

func (r *relatedProjectRepository) Add(ctx context.Context, projectID, relatedID string, order *int) error {
	if projectID == relatedID {
		return fmt.Errorf("project %s cannot be related to itself", projectID)
	}

	var next int
	if order == nil {
		err := r.db.WithContext(ctx).Model(&model.RelatedProjectModel{}).
			Where("project_id = ?", projectID).
			Select("COALESCE(MAX(sort_order), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return err
		}
	}

	link := &model.RelatedProjectModel{
		ProjectID:        projectID,
		RelatedProjectID: relatedID,
		SortOrder:        entity.OrderOr(order, next),
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to relate project %s to %s: %w", projectID, relatedID, err)
	}
	return nil
}

func (r *relatedProjectRepository) Delete(ctx context.Context, projectID, relatedID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND related_project_id = ?", projectID, relatedID).
		Delete(&model.RelatedProjectModel{}).Error
}

// ReplaceAll stores relatedIDs in the given order. Self links, repeats and
// ids with no project row are dropped.
func (r *relatedProjectRepository) ReplaceAll(ctx context.Context, projectID string, relatedIDs []string) error {
	candidates := make([]string, 0, len(relatedIDs))
	seen := make(map[string]bool, len(relatedIDs))
	for _, id := range relatedIDs {
		if id == projectID || seen[id] {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		seen[id] = true
		candidates = append(candidates, id)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := make(map[string]bool, len(candidates))
		if len(candidates) > 0 {
			var found []string
			if err := tx.Model(&model.ProjectModel{}).Where("id IN ?", candidates).Pluck("id", &found).Error; err != nil {
				return err
			}
			for _, id := range found {
				existing[id] = true
			}
		}

		links := make([]model.RelatedProjectModel, 0, len(candidates))
		for _, id := range candidates {
			if !existing[id] {
				continue
			}
			links = append(links, model.RelatedProjectModel{
				ProjectID:        projectID,
				RelatedProjectID: id,
				SortOrder:        len(links),
			})
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&model.RelatedProjectModel{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}

// DeleteByProject removes links in both directions.
func (r *relatedProjectRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? OR related_project_id = ?", projectID, projectID).
		Delete(&model.RelatedProjectModel{}).Error
}
