package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/repository"
)

func newEventService(t *testing.T) (*EventService, *fakeStore) {
	t.Helper()
	db := newTestDB(t)
	store := &fakeStore{}
	return NewEventService(repository.NewEventRepository(db), store, changes.NewBus()), store
}

func TestCreateEventRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Create("Tasting", "", "Jakarta", nil, nil)
	require.NoError(t, err)

	_, err = svc.Create("tasting", "", "Bandung", nil, nil)
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, "Event name already exists", err.Error())

	// No second row was written.
	assert.Len(t, svc.List(), 1)
}

func TestUpdateEventDuplicateExcludesSelf(t *testing.T) {
	svc, _ := newEventService(t)

	created, err := svc.Create("Tasting", "", "Jakarta", nil, nil)
	require.NoError(t, err)
	_, err = svc.Create("Workshop", "", "Jakarta", nil, nil)
	require.NoError(t, err)

	// Same name, same row: allowed.
	_, err = svc.Update(context.Background(), created.ID, "Tasting", "updated", "Jakarta", ImagePatch{})
	require.NoError(t, err)

	// Renaming onto the other event: rejected.
	_, err = svc.Update(context.Background(), created.ID, "workshop", "", "Jakarta", ImagePatch{})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateEventReplacingImageRemovesPrevious(t *testing.T) {
	svc, store := newEventService(t)

	created, err := svc.Create("Tasting", "", "Jakarta", strPtr("https://cdn.test/event/old.png"), strPtr("old.png"))
	require.NoError(t, err)

	patch := ImagePatch{Set: true, URL: strPtr("https://cdn.test/event/new.png"), Path: strPtr("new.png")}
	updated, err := svc.Update(context.Background(), created.ID, "Tasting", "", "Jakarta", patch)
	require.NoError(t, err)

	assert.Equal(t, []string{"event/old.png"}, store.removed)
	require.NotNil(t, updated.ImgURL)
	assert.Equal(t, "https://cdn.test/event/new.png", *updated.ImgURL)
}

func TestUpdateEventSameImageLeavesObjectAlone(t *testing.T) {
	svc, store := newEventService(t)

	created, err := svc.Create("Tasting", "", "Jakarta", strPtr("https://cdn.test/event/same.png"), strPtr("same.png"))
	require.NoError(t, err)

	patch := ImagePatch{Set: true, URL: strPtr("https://cdn.test/event/same.png"), Path: strPtr("same.png")}
	_, err = svc.Update(context.Background(), created.ID, "Tasting", "", "Jakarta", patch)
	require.NoError(t, err)
	assert.Empty(t, store.removed)
}

func TestUpdateEventClearingImageRemovesObject(t *testing.T) {
	svc, store := newEventService(t)

	created, err := svc.Create("Tasting", "", "Jakarta", strPtr("https://cdn.test/event/old.png"), strPtr("old.png"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, "Tasting", "", "Jakarta", ImagePatch{Set: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ImgURL)
	assert.Equal(t, []string{"event/old.png"}, store.removed)
}

func TestDeleteEventRemovesImageAndRow(t *testing.T) {
	svc, store := newEventService(t)

	created, err := svc.Create("Tasting", "", "Jakarta", strPtr("https://cdn.test/event/x.png"), strPtr("x.png"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{"event/x.png"}, store.removed)
	assert.Empty(t, svc.List())
}

func TestEventNotFound(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Update(context.Background(), "missing", "Tasting", "", "", ImagePatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Event not found", err.Error())

	err = svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
