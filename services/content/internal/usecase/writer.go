package usecase

import (
	"context"
	"fmt"
	"sync"

	"folio-cms/pkg/queue"
	"folio-cms/services/content/internal/entity"
)

// writeTask is one child aggregate write. Tasks of a save run concurrently
// and their errors are reported in slice order.
type writeTask struct {
	kind string
	run  func(ctx context.Context) error
}

// SavePost updates the post row, then every child aggregate present in the
// payload. Failures are collected per kind and never stop the other writes.
// The returned error is set only when no post has the id.
func (uc *contentUseCase) SavePost(ctx context.Context, id string, payload *entity.SavePostPayload) (*entity.SaveResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	post, err := uc.stores.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, entity.ErrNotFound)
	}

	var errs []string
	slugs := []string{post.Slug}
	if payload.Entity != nil {
		updated, err := uc.stores.Posts.Update(ctx, id, payload.Entity)
		if err != nil {
			errs = append(errs, "entity: "+err.Error())
		} else if updated.Slug != post.Slug {
			slugs = append(slugs, updated.Slug)
		}
	}

	parent := entity.PostParent(id)
	errs = append(errs, runWrites(ctx, uc.aggregateWrites(parent, &payload.AggregatesPayload, nil))...)

	result := newSaveResult(errs)
	if !result.Success {
		uc.logger.Warn("Partial save of %s: %v", parent, result.Errors)
	}
	uc.afterWrite(ctx, parent, queue.EventTypeSaved, slugs, !result.Success)
	return result, nil
}

// SaveProject is SavePost for projects, plus the related project list.
func (uc *contentUseCase) SaveProject(ctx context.Context, id string, payload *entity.SaveProjectPayload) (*entity.SaveResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	project, err := uc.stores.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", id, entity.ErrNotFound)
	}

	var errs []string
	slugs := []string{project.Slug}
	if payload.Entity != nil {
		updated, err := uc.stores.Projects.Update(ctx, id, payload.Entity)
		if err != nil {
			errs = append(errs, "entity: "+err.Error())
		} else if updated.Slug != project.Slug {
			slugs = append(slugs, updated.Slug)
		}
	}

	parent := entity.ProjectParent(id)
	var related *writeTask
	if payload.RelatedProjectIDs != nil {
		ids := *payload.RelatedProjectIDs
		related = &writeTask{kind: "related_projects", run: func(ctx context.Context) error {
			return uc.stores.RelatedProjects.ReplaceAll(ctx, id, ids)
		}}
	}
	tasks := uc.aggregateWrites(parent, &payload.AggregatesPayload, related)
	errs = append(errs, runWrites(ctx, tasks)...)

	result := newSaveResult(errs)
	if !result.Success {
		uc.logger.Warn("Partial save of %s: %v", parent, result.Errors)
	}
	uc.afterWrite(ctx, parent, queue.EventTypeSaved, slugs, !result.Success)
	return result, nil
}

// SaveServiceAggregates writes child aggregates for a service page. There is
// no service row, so any well-formed id is accepted.
func (uc *contentUseCase) SaveServiceAggregates(ctx context.Context, serviceID string, payload *entity.AggregatesPayload) (*entity.SaveResult, error) {
	parent, err := entity.ParseParentRef(string(entity.ParentTypeService), serviceID)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	result := newSaveResult(runWrites(ctx, uc.aggregateWrites(parent, payload, nil)))
	if !result.Success {
		uc.logger.Warn("Partial save of %s: %v", parent, result.Errors)
	}
	uc.afterWrite(ctx, parent, queue.EventTypeSaved, []string{serviceID}, !result.Success)
	return result, nil
}

// aggregateWrites builds a task for every aggregate present in payload, in
// report order. A nil field is left alone; an empty list clears. related,
// when set, is reported between recommended and seo.
func (uc *contentUseCase) aggregateWrites(parent entity.ParentRef, payload *entity.AggregatesPayload, related *writeTask) []writeTask {
	var tasks []writeTask

	if payload.Content != nil || payload.ContentFormat != nil {
		body, format := payload.Content, payload.ContentFormat
		tasks = append(tasks, writeTask{kind: "content", run: func(ctx context.Context) error {
			return uc.writeContent(ctx, parent, body, format)
		}})
	}
	if payload.Gallery != nil {
		items := *payload.Gallery
		tasks = append(tasks, writeTask{kind: "gallery", run: func(ctx context.Context) error {
			_, err := uc.stores.Gallery.ReplaceAll(ctx, parent, items)
			return err
		}})
	}
	if payload.Downloads != nil {
		items := *payload.Downloads
		tasks = append(tasks, writeTask{kind: "downloads", run: func(ctx context.Context) error {
			_, err := uc.stores.Downloads.ReplaceAll(ctx, parent, items)
			return err
		}})
	}
	if payload.FAQs != nil {
		items := *payload.FAQs
		tasks = append(tasks, writeTask{kind: "faqs", run: func(ctx context.Context) error {
			_, err := uc.stores.FAQs.ReplaceAll(ctx, parent, items)
			return err
		}})
	}
	if payload.Recommended != nil {
		items := *payload.Recommended
		tasks = append(tasks, writeTask{kind: "recommended", run: func(ctx context.Context) error {
			_, err := uc.stores.Recommended.ReplaceAll(ctx, parent, items)
			return err
		}})
	}
	if related != nil {
		tasks = append(tasks, *related)
	}
	if payload.SEO != nil {
		seo := *payload.SEO
		tasks = append(tasks, writeTask{kind: "seo", run: func(ctx context.Context) error {
			_, err := uc.stores.SEO.Upsert(ctx, parent, seo)
			return err
		}})
	}
	return tasks
}

// writeContent upserts the content row. A missing body or format keeps the
// stored value.
func (uc *contentUseCase) writeContent(ctx context.Context, parent entity.ParentRef, body *string, format *entity.ContentFormat) error {
	content := entity.Content{Format: entity.FormatMarkdown}
	if body == nil || format == nil {
		current, err := uc.stores.Content.GetByParent(ctx, parent)
		if err != nil {
			return err
		}
		if current != nil {
			content = *current
		}
	}
	if body != nil {
		content.Body = *body
	}
	if format != nil {
		content.Format = *format
	}
	_, err := uc.stores.Content.Upsert(ctx, parent, content)
	return err
}

// runWrites runs tasks concurrently and returns "<kind>: <error>" for each
// failure in task order.
func runWrites(ctx context.Context, tasks []writeTask) []string {
	var errs []string
	for _, err := range runTasks(ctx, tasks) {
		errs = append(errs, err.Error())
	}
	return errs
}

// runTasks waits for every task and wraps each failure with its kind.
func runTasks(ctx context.Context, tasks []writeTask) []error {
	results := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task writeTask) {
			defer wg.Done()
			results[i] = task.run(ctx)
		}(i, task)
	}
	wg.Wait()

	var errs []error
	for i, err := range results {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tasks[i].kind, err))
		}
	}
	return errs
}

func newSaveResult(errs []string) *entity.SaveResult {
	if errs == nil {
		errs = []string{}
	}
	return &entity.SaveResult{Success: len(errs) == 0, Errors: errs}
}
