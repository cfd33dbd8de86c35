package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/services"
)

var ErrDuplicateEvent = errors.New("Event name already exists")

type EventActions interface {
	CreateEvent(ctx context.Context, name, description, locations string, imgURL, imgPath *string) (*entity.Event, error)
	UpdateEvent(ctx context.Context, id, name, description, locations string, img services.ImagePatch) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]entity.Event, error)
}

// Events is the event page list. It subscribes to the change bus so rows
// created or updated through a modal elsewhere are spliced in without a
// refetch.
type Events struct {
	store   *Store[entity.Event]
	actions EventActions
	cancel  func()
}

func NewEvents(actions EventActions, bus *changes.Bus) *Events {
	p := &Events{
		store:   NewStore(func(e entity.Event) string { return e.ID }, actions.ListEvents),
		actions: actions,
	}
	if bus != nil {
		feed, cancel := bus.Subscribe()
		p.cancel = cancel
		go p.listen(feed)
	}
	return p
}

func (p *Events) listen(feed <-chan changes.Change) {
	for change := range feed {
		if change.Table != changes.TableEvent {
			continue
		}
		row, ok := change.Row.(entity.Event)
		if !ok {
			continue
		}
		switch change.Kind {
		case changes.KindCreated:
			p.store.ApplyCreated(row)
		case changes.KindUpdated:
			p.store.ApplyUpdated(row)
		}
	}
}

// Close unsubscribes from the change bus; call when the list unmounts.
func (p *Events) Close() {
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Events) Load(ctx context.Context) error { return p.store.Load(ctx) }

func (p *Events) Items() []entity.Event { return p.store.Items() }

// Create checks the name against the full loaded list case-insensitively
// before any server call.
func (p *Events) Create(ctx context.Context, name, description, locations string, imgURL, imgPath *string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if p.duplicateName(trimmed, "") {
		return ErrDuplicateEvent
	}

	now := time.Now()
	optimistic := entity.Event{
		ID:          "temp-" + uuid.NewString(),
		Name:        name,
		Description: description,
		Locations:   locations,
		ImgURL:      imgURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return p.store.Create(ctx, optimistic, func(ctx context.Context) (*entity.Event, error) {
		return p.actions.CreateEvent(ctx, name, description, locations, imgURL, imgPath)
	})
}

func (p *Events) Update(ctx context.Context, id, name, description, locations string, img services.ImagePatch) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if p.duplicateName(trimmed, id) {
		return ErrDuplicateEvent
	}

	current, ok := p.store.Find(id)
	if !ok {
		return errors.New("Event not found")
	}
	updated := current
	updated.Name = name
	updated.Description = description
	updated.Locations = locations
	if img.Set {
		updated.ImgURL = img.URL
	}

	return p.store.Update(ctx, id, updated, func(ctx context.Context) (*entity.Event, error) {
		return p.actions.UpdateEvent(ctx, id, name, description, locations, img)
	})
}

func (p *Events) Delete(ctx context.Context, id string) error {
	return p.store.Delete(ctx, id, func(ctx context.Context) error {
		return p.actions.DeleteEvent(ctx, id)
	})
}

func (p *Events) duplicateName(name, excludeID string) bool {
	for _, existing := range p.store.Items() {
		if existing.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(existing.Name), name) {
			return true
		}
	}
	return false
}
