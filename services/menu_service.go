package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/repository"
	"github.com/Jordan10001/soramatcha-admin/storage"
)

type MenuService struct {
	repo  *repository.MenuRepository
	store storage.ObjectStore
	bus   *changes.Bus
}

func NewMenuService(repo *repository.MenuRepository, store storage.ObjectStore, bus *changes.Bus) *MenuService {
	return &MenuService{repo: repo, store: store, bus: bus}
}

func (s *MenuService) Create(name, description string, price int64, categoryID, imgURL, imgPath *string) (*entity.Menu, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if name == "" {
		return nil, &ValidationError{Message: "Menu name is required"}
	}
	if price < 0 {
		return nil, &ValidationError{Message: "Price must be a non-negative number"}
	}

	now := time.Now().UTC()
	menu := &entity.Menu{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		ImgURL:      imgURL,
		ImgPath:     imgPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(menu); err != nil {
		return nil, err
	}

	s.bus.Publish(changes.Change{Table: changes.TableMenu, Kind: changes.KindCreated, ID: menu.ID, Row: *menu})
	return menu, nil
}

// Update rewrites the row fields. The image follows the tri-state contract:
// an unset patch leaves img_url alone, a nil URL clears it and removes the
// stored object, a URL overwrites it.
func (s *MenuService) Update(ctx context.Context, id, name, description string, price int64, categoryID *string, img ImagePatch) (*entity.Menu, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if price < 0 {
		return nil, &ValidationError{Message: "Price must be a non-negative number"}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Menu %w", ErrNotFound)
		}
		return nil, err
	}

	fields := map[string]any{
		"name":        name,
		"description": description,
		"price":       price,
		"category_id": categoryID,
		"updated_at":  time.Now().UTC(),
	}
	if img.Set {
		if img.URL == nil {
			removeStoredImage(ctx, s.store, storage.BucketMenus, menuImagePath(existing))
			fields["img_url"] = nil
			fields["img_path"] = nil
		} else {
			fields["img_url"] = *img.URL
			fields["img_path"] = img.Path
		}
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(changes.Change{Table: changes.TableMenu, Kind: changes.KindUpdated, ID: id, Row: *updated})
	return updated, nil
}

func (s *MenuService) List() []entity.Menu {
	if s.repo == nil {
		log.Println("database is not configured in MenuService.List")
		return []entity.Menu{}
	}
	menus, err := s.repo.FindAll()
	if err != nil {
		log.Printf("error fetching menus: %v", err)
		return []entity.Menu{}
	}
	return menus
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}

	menu, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Menu %w", ErrNotFound)
		}
		return err
	}

	removeStoredImage(ctx, s.store, storage.BucketMenus, menuImagePath(menu))

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.bus.Publish(changes.Change{Table: changes.TableMenu, Kind: changes.KindDeleted, ID: id})
	return nil
}

// MenuGroup is one rendered section of the menu page. A nil Category is the
// trailing Uncategorized bucket.
type MenuGroup struct {
	Category *entity.Category `json:"category"`
	Menus    []entity.Menu    `json:"menus"`
}

// GroupMenus arranges menus the way the dashboard renders them: categories
// sorted by name descending, menus within each ordered newest first, and
// menus without a category collected at the end.
func GroupMenus(categories []entity.Category, menus []entity.Menu) []MenuGroup {
	byCategory := make(map[string][]entity.Menu)
	var uncategorized []entity.Menu
	for _, m := range menus {
		if m.CategoryID != nil && *m.CategoryID != "" {
			byCategory[*m.CategoryID] = append(byCategory[*m.CategoryID], m)
		} else {
			uncategorized = append(uncategorized, m)
		}
	}

	sorted := make([]entity.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name > sorted[j].Name })

	newestFirst := func(items []entity.Menu) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	}

	groups := make([]MenuGroup, 0, len(sorted)+1)
	for i := range sorted {
		items := byCategory[sorted[i].ID]
		newestFirst(items)
		groups = append(groups, MenuGroup{Category: &sorted[i], Menus: items})
	}
	if len(uncategorized) > 0 {
		newestFirst(uncategorized)
		groups = append(groups, MenuGroup{Menus: uncategorized})
	}
	return groups
}
