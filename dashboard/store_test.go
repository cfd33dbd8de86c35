package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

func newRowStore(server *[]row) *Store[row] {
	return NewStore(func(r row) string { return r.ID }, func(context.Context) ([]row, error) {
		out := make([]row, len(*server))
		copy(out, *server)
		return out, nil
	})
}

func TestStoreCreateReconcilesCanonicalRow(t *testing.T) {
	server := []row{}
	s := newRowStore(&server)

	err := s.Create(context.Background(), row{ID: "temp-1", Name: "draft"}, func(context.Context) (*row, error) {
		return &row{ID: "real-1", Name: "DRAFT"}, nil
	})
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "real-1", items[0].ID)
	assert.Equal(t, "DRAFT", items[0].Name)
}

func TestStoreCreateRollsBackAndReloadsOnFailure(t *testing.T) {
	server := []row{{ID: "a", Name: "existing"}}
	s := newRowStore(&server)
	require.NoError(t, s.Load(context.Background()))

	err := s.Create(context.Background(), row{ID: "temp-1", Name: "draft"}, func(context.Context) (*row, error) {
		return nil, errors.New("insert failed")
	})
	require.Error(t, err)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestStoreUpdateOptimisticThenRollback(t *testing.T) {
	server := []row{{ID: "a", Name: "before"}}
	s := newRowStore(&server)
	require.NoError(t, s.Load(context.Background()))

	var seenDuringAction string
	err := s.Update(context.Background(), "a", row{ID: "a", Name: "after"}, func(context.Context) (*row, error) {
		seenDuringAction = s.Items()[0].Name
		return nil, errors.New("update failed")
	})
	require.Error(t, err)

	// The optimistic value was visible while the action ran, then restored.
	assert.Equal(t, "after", seenDuringAction)
	assert.Equal(t, "before", s.Items()[0].Name)
}

func TestStoreRejectsSecondMutationInFlight(t *testing.T) {
	server := []row{{ID: "a", Name: "x"}}
	s := newRowStore(&server)
	require.NoError(t, s.Load(context.Background()))

	release := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Update(context.Background(), "a", row{ID: "a", Name: "first"}, func(context.Context) (*row, error) {
			<-release
			return &row{ID: "a", Name: "first"}, nil
		})
	}()

	// Wait until the first mutation holds the in-flight marker.
	assert.Eventually(t, func() bool {
		return s.Items()[0].Name == "first"
	}, 1e9, 1e6)

	err := s.Update(context.Background(), "a", row{ID: "a", Name: "second"}, func(context.Context) (*row, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrMutationInFlight)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestStoreDeleteRollsBackOnFailure(t *testing.T) {
	server := []row{{ID: "a", Name: "keep"}}
	s := newRowStore(&server)
	require.NoError(t, s.Load(context.Background()))

	err := s.Delete(context.Background(), "a", func(context.Context) error {
		// Optimistically removed before the call resolves.
		assert.Empty(t, s.Items())
		return errors.New("delete failed")
	})
	require.Error(t, err)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "a", s.Items()[0].ID)
}

func TestStoreApplyCreatedSkipsKnownRows(t *testing.T) {
	server := []row{}
	s := newRowStore(&server)

	s.ApplyCreated(row{ID: "a", Name: "x"})
	s.ApplyCreated(row{ID: "a", Name: "x2"})
	s.ApplyCreated(row{ID: "b", Name: "y"})

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "x2", items[1].Name)
}
