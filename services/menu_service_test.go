package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/repository"
)

func newMenuService(t *testing.T) (*MenuService, *fakeStore) {
	t.Helper()
	db := newTestDB(t)
	store := &fakeStore{}
	return NewMenuService(repository.NewMenuRepository(db), store, changes.NewBus()), store
}

func TestCreateMenuRoundTrip(t *testing.T) {
	svc, _ := newMenuService(t)
	categoryID := "cat-1"

	created, err := svc.Create("Latte", "with oat milk", 25000, &categoryID, nil, nil)
	require.NoError(t, err)

	menus := svc.List()
	require.Len(t, menus, 1)
	assert.Equal(t, created.ID, menus[0].ID)
	assert.Equal(t, "Latte", menus[0].Name)
	assert.Equal(t, "with oat milk", menus[0].Description)
	assert.Equal(t, int64(25000), menus[0].Price)
	require.NotNil(t, menus[0].CategoryID)
	assert.Equal(t, "cat-1", *menus[0].CategoryID)
}

func TestCreateMenuRejectsNegativePrice(t *testing.T) {
	svc, _ := newMenuService(t)

	_, err := svc.Create("Latte", "", -1, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateMenuImageTriState(t *testing.T) {
	ctx := context.Background()

	t.Run("absent leaves image untouched", func(t *testing.T) {
		svc, store := newMenuService(t)
		created, err := svc.Create("Latte", "", 25000, nil, strPtr("https://cdn.test/menus/a.png"), strPtr("a.png"))
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, "Latte Grande", "", 30000, nil, ImagePatch{})
		require.NoError(t, err)
		require.NotNil(t, updated.ImgURL)
		assert.Equal(t, "https://cdn.test/menus/a.png", *updated.ImgURL)
		assert.Empty(t, store.removed)
	})

	t.Run("null clears image and removes stored object", func(t *testing.T) {
		svc, store := newMenuService(t)
		created, err := svc.Create("Latte", "", 25000, nil, strPtr("https://cdn.test/menus/a.png"), strPtr("a.png"))
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, "Latte", "", 25000, nil, ImagePatch{Set: true})
		require.NoError(t, err)
		assert.Nil(t, updated.ImgURL)
		assert.Equal(t, []string{"menus/a.png"}, store.removed)
	})

	t.Run("value overwrites image", func(t *testing.T) {
		svc, store := newMenuService(t)
		created, err := svc.Create("Latte", "", 25000, nil, strPtr("https://cdn.test/menus/a.png"), strPtr("a.png"))
		require.NoError(t, err)

		patch := ImagePatch{Set: true, URL: strPtr("https://cdn.test/menus/b.png"), Path: strPtr("b.png")}
		updated, err := svc.Update(ctx, created.ID, "Latte", "", 25000, nil, patch)
		require.NoError(t, err)
		require.NotNil(t, updated.ImgURL)
		assert.Equal(t, "https://cdn.test/menus/b.png", *updated.ImgURL)
		assert.Empty(t, store.removed)
	})
}

func TestUpdateMenuNotFound(t *testing.T) {
	svc, _ := newMenuService(t)

	_, err := svc.Update(context.Background(), "missing", "Latte", "", 25000, nil, ImagePatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Menu not found", err.Error())
}

func TestDeleteMenuRemovesStoredImage(t *testing.T) {
	svc, store := newMenuService(t)

	created, err := svc.Create("Latte", "", 25000, nil, strPtr("https://cdn.test/menus/a.png"), strPtr("a.png"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{"menus/a.png"}, store.removed)
	assert.Empty(t, svc.List())
}

func TestDeleteMenuFallsBackToURLHeuristic(t *testing.T) {
	svc, store := newMenuService(t)

	// Legacy row: URL present, no stored path.
	created, err := svc.Create("Latte", "", 25000, nil, strPtr("https://cdn.test/storage/v1/object/public/menus/legacy.png?token=x"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{"menus/legacy.png"}, store.removed)
}

func TestGroupMenusScenario(t *testing.T) {
	drinks := entity.Category{ID: "c-drinks", Name: "DRINKS"}
	bakes := entity.Category{ID: "c-bakes", Name: "BAKES"}

	now := time.Now().UTC()
	latte := entity.Menu{ID: "m-latte", Name: "Latte", Price: 25000, CategoryID: &drinks.ID, CreatedAt: now.Add(-time.Hour)}
	matcha := entity.Menu{ID: "m-matcha", Name: "Matcha", Price: 28000, CategoryID: &drinks.ID, CreatedAt: now}
	scone := entity.Menu{ID: "m-scone", Name: "Scone", Price: 15000, CreatedAt: now}

	groups := GroupMenus([]entity.Category{bakes, drinks}, []entity.Menu{latte, matcha, scone})
	require.Len(t, groups, 3)

	// Categories sort by name descending, uncategorized trails.
	assert.Equal(t, "DRINKS", groups[0].Category.Name)
	assert.Equal(t, "BAKES", groups[1].Category.Name)
	assert.Nil(t, groups[2].Category)

	// Within a category, newest created_at first: Latte after Matcha.
	require.Len(t, groups[0].Menus, 2)
	assert.Equal(t, "m-matcha", groups[0].Menus[0].ID)
	assert.Equal(t, "m-latte", groups[0].Menus[1].ID)

	require.Len(t, groups[2].Menus, 1)
	assert.Equal(t, "m-scone", groups[2].Menus[0].ID)
}
