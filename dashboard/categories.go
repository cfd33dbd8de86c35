package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jordan10001/soramatcha-admin/entity"
)

var (
	ErrDuplicateCategory = errors.New("Category already exists")
	ErrCategoryInUse     = errors.New("Cannot delete a category that still has menus")
	ErrNameRequired      = errors.New("Name is required")
)

type CategoryActions interface {
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// Categories is the category pane on the menu page. It holds the loaded
// list and owns the pre-checks that run before any server call.
type Categories struct {
	store   *Store[entity.Category]
	menus   *Store[entity.Menu]
	actions CategoryActions
}

// NewCategories wires the pane to its actions. menus is the sibling list
// used to refuse deleting a category that still has menus; it may be nil
// when the pane is mounted without one.
func NewCategories(actions CategoryActions, menus *Store[entity.Menu]) *Categories {
	return &Categories{
		store:   NewStore(func(c entity.Category) string { return c.ID }, actions.ListCategories),
		menus:   menus,
		actions: actions,
	}
}

func (p *Categories) Load(ctx context.Context) error { return p.store.Load(ctx) }

func (p *Categories) Items() []entity.Category { return p.store.Items() }

// Create pre-checks the name against the loaded list case-insensitively; a
// duplicate never reaches the server and never touches the displayed list.
func (p *Categories) Create(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	upper := strings.ToUpper(trimmed)
	for _, existing := range p.store.Items() {
		if strings.EqualFold(existing.Name, trimmed) {
			return ErrDuplicateCategory
		}
	}

	optimistic := entity.Category{
		ID:        "temp-" + uuid.NewString(),
		Name:      upper,
		CreatedAt: time.Now(),
	}
	return p.store.Create(ctx, optimistic, func(ctx context.Context) (*entity.Category, error) {
		return p.actions.CreateCategory(ctx, trimmed)
	})
}

// Delete refuses a category that still has linked menus, checked against
// the locally held menu list before any server call.
func (p *Categories) Delete(ctx context.Context, id string) error {
	if p.menus != nil {
		for _, m := range p.menus.Items() {
			if m.CategoryID != nil && *m.CategoryID == id {
				return ErrCategoryInUse
			}
		}
	}
	return p.store.Delete(ctx, id, func(ctx context.Context) error {
		return p.actions.DeleteCategory(ctx, id)
	})
}
