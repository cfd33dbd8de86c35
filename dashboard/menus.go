package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/services"
)

var ErrNegativePrice = errors.New("Price must be a non-negative number")

type MenuActions interface {
	CreateMenu(ctx context.Context, name, description string, price int64, categoryID, imgURL, imgPath *string) (*entity.Menu, error)
	UpdateMenu(ctx context.Context, id, name, description string, price int64, categoryID *string, img services.ImagePatch) (*entity.Menu, error)
	DeleteMenu(ctx context.Context, id string) error
	ListMenus(ctx context.Context) ([]entity.Menu, error)
}

// Menus is the menu pane. Its store doubles as the linked-menu check for
// the Categories pane.
type Menus struct {
	store   *Store[entity.Menu]
	actions MenuActions
}

func NewMenus(actions MenuActions) *Menus {
	return &Menus{
		store:   NewStore(func(m entity.Menu) string { return m.ID }, actions.ListMenus),
		actions: actions,
	}
}

// Store exposes the underlying list, for wiring into NewCategories.
func (p *Menus) Store() *Store[entity.Menu] { return p.store }

func (p *Menus) Load(ctx context.Context) error { return p.store.Load(ctx) }

func (p *Menus) Items() []entity.Menu { return p.store.Items() }

func (p *Menus) Create(ctx context.Context, name, description string, price int64, categoryID, imgURL, imgPath *string) error {
	if name == "" {
		return ErrNameRequired
	}
	if price < 0 {
		return ErrNegativePrice
	}

	now := time.Now()
	optimistic := entity.Menu{
		ID:          "temp-" + uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		ImgURL:      imgURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return p.store.Create(ctx, optimistic, func(ctx context.Context) (*entity.Menu, error) {
		return p.actions.CreateMenu(ctx, name, description, price, categoryID, imgURL, imgPath)
	})
}

func (p *Menus) Update(ctx context.Context, id, name, description string, price int64, categoryID *string, img services.ImagePatch) error {
	if name == "" {
		return ErrNameRequired
	}
	if price < 0 {
		return ErrNegativePrice
	}

	current, ok := p.store.Find(id)
	if !ok {
		return errors.New("Menu not found")
	}
	updated := current
	updated.Name = name
	updated.Description = description
	updated.Price = price
	updated.CategoryID = categoryID
	if img.Set {
		updated.ImgURL = img.URL
	}

	return p.store.Update(ctx, id, updated, func(ctx context.Context) (*entity.Menu, error) {
		return p.actions.UpdateMenu(ctx, id, name, description, price, categoryID, img)
	})
}

func (p *Menus) Delete(ctx context.Context, id string) error {
	return p.store.Delete(ctx, id, func(ctx context.Context) error {
		return p.actions.DeleteMenu(ctx, id)
	})
}
