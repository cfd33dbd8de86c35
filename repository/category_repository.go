package repository

import (
	"github.com/Jordan10001/soramatcha-admin/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

// FindAll returns newest first, the order the dashboard renders in.
func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("created_at desc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id string) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Category{}, "id = ?", id).Error
}
