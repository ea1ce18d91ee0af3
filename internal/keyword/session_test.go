package keyword

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_OperationsRequireActiveCollection(t *testing.T) {
	s := NewSession()

	_, err := s.Snapshot()
	assert.ErrorIs(t, err, ErrNoCollection)
	assert.ErrorIs(t, s.UpdateRole(0, RolePrimary), ErrNoCollection)
	assert.ErrorIs(t, s.Remove(0), ErrNoCollection)
	assert.ErrorIs(t, s.Reorder([]int{0}), ErrNoCollection)
	assert.ErrorIs(t, s.FilterByVolumeFloor(100), ErrNoCollection)
}

func TestSession_SnapshotIsIsolatedCopy(t *testing.T) {
	s := NewSession()
	s.Replace(sampleRecords())

	snap, err := s.Snapshot()
	require.NoError(t, err)
	snap[0].Text = "mutated"

	again, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "nails", again[0].Text)
}

func TestSession_ConcurrentMutationsStayConsistent(t *testing.T) {
	s := NewSession()
	s.Replace(sampleRecords())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.UpdateRole(1, RoleSection)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Snapshot()
		}()
	}
	wg.Wait()

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap, 4)
	assert.Equal(t, RoleSection, snap[1].Role)
}
