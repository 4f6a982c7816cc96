package usecase

import (
	"context"
	"errors"
	"fmt"

	"folio-cms/pkg/queue"
	"folio-cms/services/content/internal/entity"
)

// DeletePost clears every child aggregate of the post, then the post row.
// If any child fails to clear the row is kept so the delete can be retried.
func (uc *contentUseCase) DeletePost(ctx context.Context, id string) error {
	post, err := uc.stores.Posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", id, entity.ErrNotFound)
	}

	parent := entity.PostParent(id)
	if err := uc.clearAggregates(ctx, parent); err != nil {
		return err
	}
	if err := uc.stores.Posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post row: %w", err)
	}

	uc.logger.Info("Deleted %s (%s)", parent, post.Slug)
	uc.afterWrite(ctx, parent, queue.EventTypeDeleted, []string{post.Slug}, false)
	return nil
}

// DeleteProject also removes related project links in both directions.
func (uc *contentUseCase) DeleteProject(ctx context.Context, id string) error {
	project, err := uc.stores.Projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return fmt.Errorf("project %s: %w", id, entity.ErrNotFound)
	}

	parent := entity.ProjectParent(id)
	err = uc.clearAggregates(ctx, parent, writeTask{kind: "related_projects", run: func(ctx context.Context) error {
		return uc.stores.RelatedProjects.DeleteByProject(ctx, id)
	}})
	if err != nil {
		return err
	}
	if err := uc.stores.Projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project row: %w", err)
	}

	uc.logger.Info("Deleted %s (%s)", parent, project.Slug)
	uc.afterWrite(ctx, parent, queue.EventTypeDeleted, []string{project.Slug}, false)
	return nil
}

func (uc *contentUseCase) DeleteServiceAggregates(ctx context.Context, serviceID string) error {
	parent, err := entity.ParseParentRef(string(entity.ParentTypeService), serviceID)
	if err != nil {
		return err
	}
	if err := uc.clearAggregates(ctx, parent); err != nil {
		return err
	}

	uc.afterWrite(ctx, parent, queue.EventTypeDeleted, []string{serviceID}, false)
	return nil
}

// clearAggregates deletes every child row of parent concurrently and joins
// the failures.
func (uc *contentUseCase) clearAggregates(ctx context.Context, parent entity.ParentRef, extra ...writeTask) error {
	tasks := []writeTask{
		{kind: "content", run: func(ctx context.Context) error { return uc.stores.Content.DeleteByParent(ctx, parent) }},
		{kind: "gallery", run: func(ctx context.Context) error { return uc.stores.Gallery.DeleteByParent(ctx, parent) }},
		{kind: "downloads", run: func(ctx context.Context) error { return uc.stores.Downloads.DeleteByParent(ctx, parent) }},
		{kind: "faqs", run: func(ctx context.Context) error { return uc.stores.FAQs.DeleteByParent(ctx, parent) }},
		{kind: "recommended", run: func(ctx context.Context) error { return uc.stores.Recommended.DeleteByParent(ctx, parent) }},
	}
	tasks = append(tasks, extra...)
	tasks = append(tasks, writeTask{kind: "seo", run: func(ctx context.Context) error { return uc.stores.SEO.DeleteByParent(ctx, parent) }})

	errs := runTasks(ctx, tasks)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("failed to clear %s: %w", parent, errors.Join(errs...))
}
