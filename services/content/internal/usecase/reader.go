package usecase

import (
	"context"
	"fmt"

	"folio-cms/services/content/internal/entity"

	"golang.org/x/sync/errgroup"
)

// GetFullPost returns nil, nil when no post has the slug.
func (uc *contentUseCase) GetFullPost(ctx context.Context, slug string) (*entity.FullPost, error) {
	key := fullCacheKey(entity.ParentTypePost, slug)
	var cached entity.FullPost
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	post, err := uc.stores.Posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	aggregates, err := uc.loadAggregates(ctx, entity.PostParent(post.ID))
	if err != nil {
		return nil, err
	}

	full := &entity.FullPost{Post: *post, Aggregates: *aggregates}
	uc.cacheSet(ctx, key, full)
	return full, nil
}

// GetFullProject returns nil, nil when no project has the slug.
func (uc *contentUseCase) GetFullProject(ctx context.Context, slug string) (*entity.FullProject, error) {
	key := fullCacheKey(entity.ParentTypeProject, slug)
	var cached entity.FullProject
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	project, err := uc.stores.Projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, nil
	}

	related := []entity.Project{}
	aggregates, err := uc.loadAggregates(ctx, entity.ProjectParent(project.ID), func(ctx context.Context) error {
		projects, err := uc.stores.RelatedProjects.GetByProject(ctx, project.ID)
		if err != nil {
			return fmt.Errorf("related_projects: %w", err)
		}
		for _, p := range projects {
			related = append(related, *p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	full := &entity.FullProject{Project: *project, Aggregates: *aggregates, RelatedProjects: related}
	uc.cacheSet(ctx, key, full)
	return full, nil
}

// GetServiceAggregates always succeeds for a well-formed id; a service
// with nothing stored reads as empty aggregates.
func (uc *contentUseCase) GetServiceAggregates(ctx context.Context, serviceID string) (*entity.Aggregates, error) {
	parent, err := entity.ParseParentRef(string(entity.ParentTypeService), serviceID)
	if err != nil {
		return nil, err
	}

	key := fullCacheKey(entity.ParentTypeService, serviceID)
	var cached entity.Aggregates
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	aggregates, err := uc.loadAggregates(ctx, parent)
	if err != nil {
		return nil, err
	}
	uc.cacheSet(ctx, key, aggregates)
	return aggregates, nil
}

// loadAggregates reads every child aggregate of parent concurrently. Any
// failed read fails the whole load. extra runs in the same group.
func (uc *contentUseCase) loadAggregates(ctx context.Context, parent entity.ParentRef, extra ...func(context.Context) error) (*entity.Aggregates, error) {
	agg := &entity.Aggregates{
		ContentFormat: entity.FormatMarkdown,
		Gallery:       []entity.GalleryItem{},
		Downloads:     []entity.DownloadItem{},
		FAQs:          []entity.FAQItem{},
		Recommended:   []entity.RecommendedItem{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		content, err := uc.stores.Content.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("content: %w", err)
		}
		if content != nil {
			agg.Content = content.Body
			if content.Format != "" {
				agg.ContentFormat = content.Format
			}
		}
		return nil
	})
	g.Go(func() error {
		items, err := uc.stores.Gallery.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("gallery: %w", err)
		}
		agg.Gallery = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.stores.Downloads.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("downloads: %w", err)
		}
		agg.Downloads = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.stores.FAQs.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("faqs: %w", err)
		}
		agg.FAQs = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.stores.Recommended.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("recommended: %w", err)
		}
		agg.Recommended = items
		return nil
	})
	g.Go(func() error {
		seo, err := uc.stores.SEO.GetByParent(gctx, parent)
		if err != nil {
			return fmt.Errorf("seo: %w", err)
		}
		agg.SEO = seo
		return nil
	})
	for _, fn := range extra {
		fn := fn
		g.Go(func() error { return fn(gctx) })
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", parent, err)
	}
	return agg, nil
}

func (uc *contentUseCase) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if uc.cache == nil {
		return false
	}
	hit, err := uc.cache.Get(ctx, key, dst)
	if err != nil {
		uc.logger.Warn("[CACHE] Read of %s failed, loading from database: %v", key, err)
		return false
	}
	return hit
}

func (uc *contentUseCase) cacheSet(ctx context.Context, key string, value interface{}) {
	if uc.cache == nil || uc.cacheTTL <= 0 {
		return
	}
	if err := uc.cache.Set(ctx, key, value, uc.cacheTTL); err != nil {
		uc.logger.Warn("[CACHE] Failed to store %s: %v", key, err)
	}
}
