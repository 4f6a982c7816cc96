package persistent

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"folio-cms/services/content/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPostRepository_CreateDefaults(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post := &entity.Post{Slug: "hello-world", Title: "Hello"}
	require.NoError(t, repo.Create(ctx, post))

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, entity.StatusDraft, post.Status)
	assert.WithinDuration(t, time.Now(), post.PublishDate, 5*time.Second)
	assert.Equal(t, []string{}, post.Tags)

	stored, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hello-world", stored.Slug)
	assert.Equal(t, entity.StatusDraft, stored.Status)
}

func TestPostRepository_CreateKeepsGivenFields(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	published := time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC)
	post := &entity.Post{
		Slug:        "release-notes",
		Title:       "Release notes",
		Tags:        []string{"go", "release"},
		Status:      entity.StatusPublished,
		PublishDate: published,
	}
	require.NoError(t, repo.Create(ctx, post))

	stored, err := repo.GetBySlug(ctx, "release-notes")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.StatusPublished, stored.Status)
	assert.True(t, published.Equal(stored.PublishDate))
	assert.Equal(t, []string{"go", "release"}, stored.Tags)
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Post{Slug: "same", Title: "One"}))
	assert.Error(t, repo.Create(ctx, &entity.Post{Slug: "same", Title: "Two"}))
}

func TestPostRepository_NotFoundIsNotAnError(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post, err := repo.GetBySlug(ctx, "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, post)

	post, err = repo.GetByID(ctx, "3f2c8d0e-0000-4000-8000-000000000000")
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostRepository_UpdateIsPartial(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post := &entity.Post{
		Slug:    "partial",
		Title:   "Before",
		Excerpt: "keep me",
		Tags:    []string{"a"},
		Author:  "Sam",
	}
	require.NoError(t, repo.Create(ctx, post))

	updated, err := repo.Update(ctx, post.ID, &entity.PostPatch{Title: strPtr("After")})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "keep me", updated.Excerpt)
	assert.Equal(t, "Sam", updated.Author)
	assert.Equal(t, []string{"a"}, updated.Tags)
	assert.Equal(t, "partial", updated.Slug)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))
}

func TestPostRepository_UpdateEmptyPatchRefreshesUpdatedAt(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post := &entity.Post{Slug: "touch", Title: "Touch"}
	require.NoError(t, repo.Create(ctx, post))
	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, post.ID, &entity.PostPatch{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	assert.Equal(t, "Touch", updated.Title)
}

func TestPostRepository_UpdateMissing(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	_, err := repo.Update(context.Background(), "missing-id", &entity.PostPatch{Title: strPtr("x")})
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestPostRepository_GetAll(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	seed := []*entity.Post{
		{Slug: "old", Title: "Old", Category: "news", Status: entity.StatusPublished, PublishDate: day(1)},
		{Slug: "new", Title: "New", Category: "news", Status: entity.StatusPublished, PublishDate: day(3)},
		{Slug: "draft", Title: "Draft", Category: "news", PublishDate: day(4)},
		{Slug: "guide", Title: "Guide", Category: "guides", Status: entity.StatusPublished, PublishDate: day(2)},
	}
	for _, p := range seed {
		require.NoError(t, repo.Create(ctx, p))
	}

	tests := []struct {
		name   string
		filter entity.PostFilter
		want   []string
	}{
		{"all newest first", entity.PostFilter{}, []string{"draft", "new", "guide", "old"}},
		{"published", entity.PostFilter{Status: entity.StatusPublished}, []string{"new", "guide", "old"}},
		{"published news", entity.PostFilter{Status: entity.StatusPublished, Category: "news"}, []string{"new", "old"}},
		{"paged", entity.PostFilter{Status: entity.StatusPublished, Limit: 1, Offset: 1}, []string{"guide"}},
		{"no match", entity.PostFilter{Category: "nothing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.GetAll(ctx, tt.filter)
			require.NoError(t, err)

			slugs := make([]string, len(posts))
			for i, p := range posts {
				slugs[i] = p.Slug
			}
			assert.Equal(t, tt.want, slugs)
		})
	}
}

func TestPostRepository_Delete(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post := &entity.Post{Slug: "bye", Title: "Bye"}
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, repo.Delete(ctx, post.ID))

	stored, err := repo.GetByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestPostRepository_GetAll_TagFilterPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "slug", "title", "tags", "status"}).
		AddRow("p1", "hello-world", "Hello", "{go,web}", "published")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE status = $1 AND $2 = ANY(tags) ORDER BY publish_date DESC,created_at DESC`)).
		WithArgs("published", "go").
		WillReturnRows(rows)

	repo := NewPostRepository(db)
	posts, err := repo.GetAll(context.Background(), entity.PostFilter{Status: entity.StatusPublished, Tag: "go"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello-world", posts[0].Slug)
	assert.Equal(t, []string{"go", "web"}, posts[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}
