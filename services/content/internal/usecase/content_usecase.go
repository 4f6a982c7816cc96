package usecase

import (
	"context"
	"fmt"
	"time"

	"folio-cms/pkg/logger"
	"folio-cms/pkg/queue"
	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/repo/persistent"
)

type ContentUseCase interface {
	ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	CreatePost(ctx context.Context, post *entity.Post) (*entity.Post, error)
	GetFullPost(ctx context.Context, slug string) (*entity.FullPost, error)
	SavePost(ctx context.Context, id string, payload *entity.SavePostPayload) (*entity.SaveResult, error)
	DeletePost(ctx context.Context, id string) error

	ListProjects(ctx context.Context, filter entity.ProjectFilter) ([]*entity.Project, error)
	CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetFullProject(ctx context.Context, slug string) (*entity.FullProject, error)
	SaveProject(ctx context.Context, id string, payload *entity.SaveProjectPayload) (*entity.SaveResult, error)
	DeleteProject(ctx context.Context, id string) error

	GetServiceAggregates(ctx context.Context, serviceID string) (*entity.Aggregates, error)
	SaveServiceAggregates(ctx context.Context, serviceID string, payload *entity.AggregatesPayload) (*entity.SaveResult, error)
	DeleteServiceAggregates(ctx context.Context, serviceID string) error

	ParentTracker
}

// ParentTracker lets item-level writes check their parent and mark it stale.
type ParentTracker interface {
	CheckParent(ctx context.Context, parent entity.ParentRef) error
	ParentChanged(ctx context.Context, parent entity.ParentRef)
}

// Cache is the read-through store for full views. Implemented by cache.JSONCache.
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Publisher sends revalidation events. Implemented by queue.Client.
type Publisher interface {
	PublishRevalidation(ctx context.Context, event queue.RevalidationEvent) error
}

type contentUseCase struct {
	stores    persistent.Stores
	cache     Cache
	cacheTTL  time.Duration
	publisher Publisher
	logger    *logger.Logger
}

// NewContentUseCase wires the stores. cache and publisher may be nil.
func NewContentUseCase(
	stores persistent.Stores,
	cache Cache,
	cacheTTL time.Duration,
	publisher Publisher,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		stores:    stores,
		cache:     cache,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *contentUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	return uc.stores.Posts.GetAll(ctx, filter)
}

func (uc *contentUseCase) CreatePost(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.stores.Posts.GetBySlug(ctx, post.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("post %q: %w", post.Slug, entity.ErrSlugTaken)
	}

	if err := uc.stores.Posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.initContent(ctx, entity.PostParent(post.ID))
	return post, nil
}

func (uc *contentUseCase) ListProjects(ctx context.Context, filter entity.ProjectFilter) ([]*entity.Project, error) {
	return uc.stores.Projects.GetAll(ctx, filter)
}

func (uc *contentUseCase) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.stores.Projects.GetBySlug(ctx, project.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("project %q: %w", project.Slug, entity.ErrSlugTaken)
	}

	if err := uc.stores.Projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	uc.initContent(ctx, entity.ProjectParent(project.ID))
	return project, nil
}

// initContent gives a new entity its empty content row. A failure here is
// repaired by the first save that carries content.
func (uc *contentUseCase) initContent(ctx context.Context, parent entity.ParentRef) {
	_, err := uc.stores.Content.Upsert(ctx, parent, entity.Content{Format: entity.FormatMarkdown})
	if err != nil {
		uc.logger.Warn("Failed to create empty content for %s: %v", parent, err)
	}
}

func (uc *contentUseCase) CheckParent(ctx context.Context, parent entity.ParentRef) error {
	if !parent.Valid() {
		return entity.ErrInvalidParent
	}
	_, err := uc.slugOf(ctx, parent)
	return err
}

func (uc *contentUseCase) ParentChanged(ctx context.Context, parent entity.ParentRef) {
	slug, err := uc.slugOf(ctx, parent)
	if err != nil {
		uc.logger.Warn("Could not resolve %s for invalidation: %v", parent, err)
		return
	}
	uc.afterWrite(ctx, parent, queue.EventTypeSaved, []string{slug}, false)
}

// slugOf returns the public key of a parent. Services are addressed by id.
func (uc *contentUseCase) slugOf(ctx context.Context, parent entity.ParentRef) (string, error) {
	switch parent.Type() {
	case entity.ParentTypePost:
		post, err := uc.stores.Posts.GetByID(ctx, parent.ID())
		if err != nil {
			return "", err
		}
		if post == nil {
			return "", fmt.Errorf("post %s: %w", parent.ID(), entity.ErrNotFound)
		}
		return post.Slug, nil
	case entity.ParentTypeProject:
		project, err := uc.stores.Projects.GetByID(ctx, parent.ID())
		if err != nil {
			return "", err
		}
		if project == nil {
			return "", fmt.Errorf("project %s: %w", parent.ID(), entity.ErrNotFound)
		}
		return project.Slug, nil
	case entity.ParentTypeService:
		return parent.ID(), nil
	}
	return "", entity.ErrInvalidParent
}

func fullCacheKey(parentType entity.ParentType, slug string) string {
	return fmt.Sprintf("full:%s:%s", parentType, slug)
}

// afterWrite drops cached views and announces the change. Neither step can
// fail the write that triggered it.
func (uc *contentUseCase) afterWrite(ctx context.Context, parent entity.ParentRef, eventType string, slugs []string, partial bool) {
	if uc.cache != nil && len(slugs) > 0 {
		keys := make([]string, len(slugs))
		for i, slug := range slugs {
			keys[i] = fullCacheKey(parent.Type(), slug)
		}
		if err := uc.cache.Delete(ctx, keys...); err != nil {
			uc.logger.Warn("[CACHE] Failed to invalidate %v: %v", keys, err)
		}
	}

	if uc.publisher != nil {
		event := queue.RevalidationEvent{
			Type:       eventType,
			ParentType: string(parent.Type()),
			ParentID:   parent.ID(),
			Slugs:      slugs,
			Partial:    partial,
			OccurredAt: time.Now().UTC(),
		}
		go uc.publishRevalidation(event)
	}
}

func (uc *contentUseCase) publishRevalidation(event queue.RevalidationEvent) {
	uc.logger.Info("[RABBITMQ] Publishing %s event for %s:%s", event.Type, event.ParentType, event.ParentID)
	if err := uc.publisher.PublishRevalidation(context.Background(), event); err != nil {
		uc.logger.Error("[RABBITMQ] Failed to publish %s event for %s:%s: %v", event.Type, event.ParentType, event.ParentID, err)
	}
}
