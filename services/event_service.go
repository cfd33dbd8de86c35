package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/repository"
	"github.com/Jordan10001/soramatcha-admin/storage"
)

type EventService struct {
	repo  *repository.EventRepository
	store storage.ObjectStore
	bus   *changes.Bus
}

func NewEventService(repo *repository.EventRepository, store storage.ObjectStore, bus *changes.Bus) *EventService {
	return &EventService{repo: repo, store: store, bus: bus}
}

// duplicateName scans existing events case-insensitively. A failed scan is
// logged and treated as no-duplicate so a broken check never blocks writes.
func (s *EventService) duplicateName(name, excludeID string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	count, err := s.repo.CountByNameInsensitive(name, excludeID)
	if err != nil {
		log.Printf("error checking duplicate event name: %v", err)
		return false
	}
	return count > 0
}

func (s *EventService) Create(name, description, locations string, imgURL, imgPath *string) (*entity.Event, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Message: "Event name is required"}
	}
	if s.duplicateName(name, "") {
		return nil, ErrDuplicateName
	}

	now := time.Now().UTC()
	event := &entity.Event{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Locations:   locations,
		ImgURL:      imgURL,
		ImgPath:     imgPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}

	s.bus.Publish(changes.Change{Table: changes.TableEvent, Kind: changes.KindCreated, ID: event.ID, Row: *event})
	return event, nil
}

// Update checks the name against every other event, then diffs the incoming
// image against the stored one: a cleared or replaced image gets its old
// object removed best-effort before the row is rewritten.
func (s *EventService) Update(ctx context.Context, id, name, description, locations string, img ImagePatch) (*entity.Event, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if s.duplicateName(name, id) {
		return nil, ErrDuplicateName
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Event %w", ErrNotFound)
		}
		return nil, err
	}

	fields := map[string]any{
		"name":        name,
		"description": description,
		"locations":   locations,
		"updated_at":  time.Now().UTC(),
	}
	if img.Set {
		if img.URL == nil {
			removeStoredImage(ctx, s.store, storage.BucketEvents, eventImagePath(existing))
			fields["img_url"] = nil
			fields["img_path"] = nil
		} else {
			if existing.ImgURL != nil && *existing.ImgURL != *img.URL {
				removeStoredImage(ctx, s.store, storage.BucketEvents, eventImagePath(existing))
			}
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
	s.bus.Publish(changes.Change{Table: changes.TableEvent, Kind: changes.KindUpdated, ID: id, Row: *updated})
	return updated, nil
}

func (s *EventService) List() []entity.Event {
	if s.repo == nil {
		log.Println("database is not configured in EventService.List")
		return []entity.Event{}
	}
	events, err := s.repo.FindAll()
	if err != nil {
		log.Printf("error fetching events: %v", err)
		return []entity.Event{}
	}
	return events
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}

	event, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Event %w", ErrNotFound)
		}
		return err
	}

	removeStoredImage(ctx, s.store, storage.BucketEvents, eventImagePath(event))

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.bus.Publish(changes.Change{Table: changes.TableEvent, Kind: changes.KindDeleted, ID: id})
	return nil
}
