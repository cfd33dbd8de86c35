package repository

import (
	"github.com/Jordan10001/soramatcha-admin/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(event *entity.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindAll() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Order("created_at desc").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id string) (*entity.Event, error) {
	var event entity.Event
	if err := r.DB.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// CountByNameInsensitive backs the duplicate-name scan. excludeID skips the
// row being updated.
func (r *EventRepository) CountByNameInsensitive(name, excludeID string) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Event{}).Where("lower(name) = lower(?)", name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *EventRepository) UpdateFields(id string, fields map[string]any) error {
	return r.DB.Model(&entity.Event{}).Where("id = ?", id).Updates(fields).Error
}

func (r *EventRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Event{}, "id = ?", id).Error
}
