package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricferreira/roster-optimizer/internal/models"
)

func TestStore_AppendAndLoad(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	entries := []models.SpecialHistoryEntry{
		{Descriptor: "1st Monday", EmployeeID: "E1", MonthYear: "Mar-25"},
		{Descriptor: "last Friday", EmployeeID: "E2", MonthYear: "Mar-25"},
	}
	require.NoError(t, store.Append(entries))

	rows, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1st Monday", rows[0].Descriptor)
	assert.Equal(t, "E1", rows[0].EmployeeID)
	assert.Equal(t, "Mar-25", rows[0].MonthYear)
}

func TestStore_AppendIsIdempotent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	entry := []models.SpecialHistoryEntry{{Descriptor: "1st Monday", EmployeeID: "E1", MonthYear: "Mar-25"}}
	require.NoError(t, store.Append(entry))
	require.NoError(t, store.Append(entry)) // re-running the same month

	rows, err := store.LoadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStore_AppendEmptyIsNoop(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(nil))

	rows, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
