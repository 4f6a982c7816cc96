package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"folio-cms/pkg/cache"
	"folio-cms/pkg/logger"
	"folio-cms/pkg/queue"
	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/model"
	"folio-cms/services/content/internal/repo/persistent"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var errStoreDown = errors.New("store unavailable")

func newTestStores(t *testing.T) (persistent.Stores, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return persistent.NewStores(db), db
}

func newTestUseCase(t *testing.T) (ContentUseCase, persistent.Stores, *gorm.DB) {
	stores, db := newTestStores(t)
	return NewContentUseCase(stores, nil, 0, nil, logger.New()), stores, db
}

func newTestRedisCache(t *testing.T) (*cache.JSONCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewJSONCache(client, "test:"), mr
}

// failingGallery fails every write and clear but still reads.
type failingGallery struct {
	persistent.ListStore[entity.GalleryItem, entity.GalleryItemPatch]
}

func (failingGallery) ReplaceAll(context.Context, entity.ParentRef, []entity.GalleryItem) ([]entity.GalleryItem, error) {
	return nil, errStoreDown
}

func (failingGallery) DeleteByParent(context.Context, entity.ParentRef) error {
	return errStoreDown
}

// failingFAQs fails reads.
type failingFAQs struct {
	persistent.ListStore[entity.FAQItem, entity.FAQItemPatch]
}

func (failingFAQs) GetByParent(context.Context, entity.ParentRef) ([]entity.FAQItem, error) {
	return nil, errStoreDown
}

type recordingPublisher struct {
	events chan queue.RevalidationEvent
	err    error
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan queue.RevalidationEvent, 16)}
}

func (p *recordingPublisher) PublishRevalidation(_ context.Context, event queue.RevalidationEvent) error {
	p.events <- event
	return p.err
}

func (p *recordingPublisher) next(t *testing.T) queue.RevalidationEvent {
	t.Helper()
	select {
	case event := <-p.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no revalidation event published")
	}
	return queue.RevalidationEvent{}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}, parent entity.ParentRef) int64 {
	t.Helper()
	var n int64
	err := db.Model(m).
		Where("parent_id = ? AND parent_type = ?", parent.ID(), string(parent.Type())).
		Count(&n).Error
	require.NoError(t, err)
	return n
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func formatPtr(f entity.ContentFormat) *entity.ContentFormat { return &f }
