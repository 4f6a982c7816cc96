package usecase

import (
	"context"
	"fmt"

	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/repo/persistent"
)

// Item is a list aggregate entry or patch that can check its own fields.
type Item interface {
	Validate() error
}

// ItemUseCase edits one list aggregate an item at a time. Every write
// invalidates the owning parent's full view.
type ItemUseCase[T Item, P Item] interface {
	List(ctx context.Context, parent entity.ParentRef) ([]T, error)
	Add(ctx context.Context, parent entity.ParentRef, item T) (T, error)
	Replace(ctx context.Context, parent entity.ParentRef, items []T) ([]T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type itemUseCase[T Item, P Item] struct {
	kind    string
	store   persistent.ListStore[T, P]
	parents ParentTracker
}

func NewItemUseCase[T Item, P Item](kind string, store persistent.ListStore[T, P], parents ParentTracker) ItemUseCase[T, P] {
	return &itemUseCase[T, P]{kind: kind, store: store, parents: parents}
}

func (uc *itemUseCase[T, P]) List(ctx context.Context, parent entity.ParentRef) ([]T, error) {
	if err := uc.parents.CheckParent(ctx, parent); err != nil {
		return nil, err
	}
	return uc.store.GetByParent(ctx, parent)
}

func (uc *itemUseCase[T, P]) Add(ctx context.Context, parent entity.ParentRef, item T) (T, error) {
	var zero T
	if err := item.Validate(); err != nil {
		return zero, uc.problem(err)
	}
	if err := uc.parents.CheckParent(ctx, parent); err != nil {
		return zero, err
	}

	added, err := uc.store.Add(ctx, parent, item)
	if err != nil {
		return zero, err
	}
	uc.parents.ParentChanged(ctx, parent)
	return added, nil
}

func (uc *itemUseCase[T, P]) Replace(ctx context.Context, parent entity.ParentRef, items []T) ([]T, error) {
	verr := &entity.ValidationError{}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			verr.Add(fmt.Sprintf("%s[%d]: %v", uc.kind, i, err))
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	if err := uc.parents.CheckParent(ctx, parent); err != nil {
		return nil, err
	}

	saved, err := uc.store.ReplaceAll(ctx, parent, items)
	if err != nil {
		return nil, err
	}
	uc.parents.ParentChanged(ctx, parent)
	return saved, nil
}

func (uc *itemUseCase[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	if err := patch.Validate(); err != nil {
		return zero, uc.problem(err)
	}
	parent, err := uc.store.ParentOf(ctx, id)
	if err != nil {
		return zero, err
	}

	updated, err := uc.store.Update(ctx, id, patch)
	if err != nil {
		return zero, err
	}
	uc.parents.ParentChanged(ctx, parent)
	return updated, nil
}

func (uc *itemUseCase[T, P]) Delete(ctx context.Context, id string) error {
	parent, err := uc.store.ParentOf(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	uc.parents.ParentChanged(ctx, parent)
	return nil
}

func (uc *itemUseCase[T, P]) problem(err error) error {
	verr := &entity.ValidationError{}
	verr.Add(uc.kind + ": " + err.Error())
	return verr
}
