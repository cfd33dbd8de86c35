package repository

import (
	"github.com/Jordan10001/soramatcha-admin/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Order("created_at desc").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id string) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) FindByCategory(categoryID string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("category_id = ?", categoryID).Find(&menus).Error
	return menus, err
}

// UpdateFields writes only the given columns, which is how the tri-state
// image contract reaches the table: an absent img_url key touches nothing.
func (r *MenuRepository) UpdateFields(id string, fields map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Menu{}, "id = ?", id).Error
}

func (r *MenuRepository) DeleteByCategory(categoryID string) error {
	return r.DB.Delete(&entity.Menu{}, "category_id = ?", categoryID).Error
}
