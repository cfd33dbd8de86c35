package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/repository"
	"github.com/Jordan10001/soramatcha-admin/storage"
)

type CategoryService struct {
	repo  *repository.CategoryRepository
	menus *repository.MenuRepository
	store storage.ObjectStore
	bus   *changes.Bus
}

func NewCategoryService(repo *repository.CategoryRepository, menus *repository.MenuRepository, store storage.ObjectStore, bus *changes.Bus) *CategoryService {
	return &CategoryService{repo: repo, menus: menus, store: store, bus: bus}
}

// Create trims and upper-cases the name before insert. Name uniqueness is
// the dashboard's pre-check, not a table constraint, so two concurrent
// submissions can still race into duplicates.
func (s *CategoryService) Create(name string) (*entity.Category, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Category name is required"}
	}

	category := &entity.Category{
		ID:        uuid.NewString(),
		Name:      strings.ToUpper(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}

	s.bus.Publish(changes.Change{Table: changes.TableCategory, Kind: changes.KindCreated, ID: category.ID, Row: *category})
	return category, nil
}

// List backs initial render and therefore never errors: any failure is
// logged and an empty slice returned.
func (s *CategoryService) List() []entity.Category {
	if s.repo == nil {
		log.Println("database is not configured in CategoryService.List")
		return []entity.Category{}
	}
	categories, err := s.repo.FindAll()
	if err != nil {
		log.Printf("error fetching categories: %v", err)
		return []entity.Category{}
	}
	return categories
}

// Delete cascades by explicit sequential calls: locate referencing menus,
// best-effort remove their images, delete the menu rows, then the category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}

	menus, err := s.menus.FindByCategory(id)
	if err != nil {
		return err
	}
	for i := range menus {
		removeStoredImage(ctx, s.store, storage.BucketMenus, menuImagePath(&menus[i]))
	}
	if len(menus) > 0 {
		if err := s.menus.DeleteByCategory(id); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.bus.Publish(changes.Change{Table: changes.TableCategory, Kind: changes.KindDeleted, ID: id})
	return nil
}
