package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio-cms/pkg/config"
	"folio-cms/pkg/database"
	"folio-cms/pkg/logger"
	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/repo/persistent"
	"folio-cms/services/content/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// No cache or publisher: the seed writes straight to the tables
	contentUseCase := usecase.NewContentUseCase(persistent.NewStores(db), nil, 0, nil, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seedDatabase(ctx, contentUseCase, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, uc usecase.ContentUseCase, log *logger.Logger) error {
	if err := seedPosts(ctx, uc, log); err != nil {
		return err
	}
	if err := seedProjects(ctx, uc, log); err != nil {
		return err
	}
	return seedServices(ctx, uc, log)
}

func seedPosts(ctx context.Context, uc usecase.ContentUseCase, log *logger.Logger) error {
	post, err := uc.CreatePost(ctx, &entity.Post{
		Slug:     "hello-world",
		Title:    "Hello, world",
		Excerpt:  "The first post on the site.",
		Category: "news",
		Tags:     []string{"intro"},
		Author:   "Editor",
		Status:   entity.StatusPublished,
	})
	if errors.Is(err, entity.ErrSlugTaken) {
		log.Info("Post hello-world already exists, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	body := "# Hi"
	first, second := 0, 1
	gallery := []entity.GalleryItem{
		{URL: "/images/hello/a.png", Alt: "A", Order: &second},
		{URL: "/images/hello/b.png", Alt: "B", Order: &first},
	}
	faqs := []entity.FAQItem{
		{Question: "What is this?", Answer: "A sample post."},
	}
	result, err := uc.SavePost(ctx, post.ID, &entity.SavePostPayload{
		AggregatesPayload: entity.AggregatesPayload{
			Content: &body,
			Gallery: &gallery,
			FAQs:    &faqs,
			SEO: &entity.SEO{
				Title:       "Hello, world",
				Description: "The first post on the site.",
				Keywords:    []string{"hello", "intro"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("save post: %w", err)
	}
	logResult(log, "post hello-world", result)
	return nil
}

func seedProjects(ctx context.Context, uc usecase.ContentUseCase, log *logger.Logger) error {
	projects := []entity.Project{
		{Slug: "brand-site", Title: "Brand site", Client: "Acme", Category: "web", Featured: true, Status: entity.StatusPublished},
		{Slug: "online-shop", Title: "Online shop", Client: "Acme", Category: "web", Status: entity.StatusPublished},
		{Slug: "annual-report", Title: "Annual report", Client: "Globex", Category: "print", Status: entity.StatusDraft},
	}

	ids := make([]string, 0, len(projects))
	for i := range projects {
		project, err := uc.CreateProject(ctx, &projects[i])
		if errors.Is(err, entity.ErrSlugTaken) {
			log.Info("Project %s already exists, skipping projects", projects[i].Slug)
			return nil
		}
		if err != nil {
			return fmt.Errorf("create project %s: %w", projects[i].Slug, err)
		}
		ids = append(ids, project.ID)
	}

	for i, id := range ids {
		related := make([]string, 0, len(ids)-1)
		for j, other := range ids {
			if j != i {
				related = append(related, other)
			}
		}
		body := fmt.Sprintf("## %s\n\nCase study.", projects[i].Title)
		result, err := uc.SaveProject(ctx, id, &entity.SaveProjectPayload{
			RelatedProjectIDs: &related,
			AggregatesPayload: entity.AggregatesPayload{Content: &body},
		})
		if err != nil {
			return fmt.Errorf("save project %s: %w", projects[i].Slug, err)
		}
		logResult(log, "project "+projects[i].Slug, result)
	}
	return nil
}

func seedServices(ctx context.Context, uc usecase.ContentUseCase, log *logger.Logger) error {
	body := "## Web design\n\nSites that load fast and read well."
	downloads := []entity.DownloadItem{
		{Title: "Service sheet", URL: "/files/web-design.pdf", FileType: "pdf", FileSize: 482133},
	}
	faqs := []entity.FAQItem{
		{Question: "How long does a site take?", Answer: "Four to eight weeks."},
		{Question: "Do you host?", Answer: "We can."},
	}
	recommended := []entity.RecommendedItem{
		{Title: "Brand site", URL: "/projects/brand-site"},
	}
	result, err := uc.SaveServiceAggregates(ctx, "web-design", &entity.AggregatesPayload{
		Content:     &body,
		Downloads:   &downloads,
		FAQs:        &faqs,
		Recommended: &recommended,
		SEO:         &entity.SEO{Title: "Web design"},
	})
	if err != nil {
		return fmt.Errorf("save service web-design: %w", err)
	}
	logResult(log, "service web-design", result)
	return nil
}

func logResult(log *logger.Logger, what string, result *entity.SaveResult) {
	if result.Success {
		log.Info("Seeded %s", what)
		return
	}
	for _, e := range result.Errors {
		log.Warn("Seeding %s: %s", what, e)
	}
}
