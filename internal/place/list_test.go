package place

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddDuplicate(t *testing.T) {
	gdb := testDB(t)
	seedPlace(t, gdb, "ChIJ-abc", "Momofuku CCDC")
	list := &List{DB: gdb}
	ctx := context.Background()

	_, err := list.Add(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)

	_, err = list.Add(ctx, 1, "ChIJ-abc")
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, gdb.Model(&ListEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// another user saving the same place is not a duplicate
	_, err = list.Add(ctx, 2, "ChIJ-abc")
	assert.NoError(t, err)
}

func TestListRemove(t *testing.T) {
	gdb := testDB(t)
	seedPlace(t, gdb, "ChIJ-abc", "Momofuku CCDC")
	list := &List{DB: gdb}
	ctx := context.Background()

	assert.ErrorIs(t, list.Remove(ctx, 1, "ChIJ-abc"), ErrNotFound)

	_, err := list.Add(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)
	require.NoError(t, list.Remove(ctx, 1, "ChIJ-abc"))

	// removable again after re-adding
	_, err = list.Add(ctx, 1, "ChIJ-abc")
	assert.NoError(t, err)
}

func TestListUpdateNotes(t *testing.T) {
	gdb := testDB(t)
	seedPlace(t, gdb, "ChIJ-abc", "Momofuku CCDC")
	list := &List{DB: gdb}
	ctx := context.Background()

	notes := "get the brisket"
	assert.ErrorIs(t, list.UpdateNotes(ctx, 1, "ChIJ-abc", &notes), ErrNotFound)

	_, err := list.Add(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)

	require.NoError(t, list.UpdateNotes(ctx, 1, "ChIJ-abc", &notes))
	e, err := list.Get(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)
	require.NotNil(t, e.Notes)
	assert.Equal(t, "get the brisket", *e.Notes)

	// clearing notes
	require.NoError(t, list.UpdateNotes(ctx, 1, "ChIJ-abc", nil))
	e, err = list.Get(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)
	assert.Nil(t, e.Notes)
}

func TestListPlaces(t *testing.T) {
	gdb := testDB(t)
	seedPlace(t, gdb, "ChIJ-ccc", "Zorba's")
	seedPlace(t, gdb, "ChIJ-aaa", "Annie's")
	seedPlace(t, gdb, "ChIJ-bbb", "Duke's Grocery")
	list := &List{DB: gdb}
	ctx := context.Background()

	for _, id := range []string{"ChIJ-ccc", "ChIJ-aaa", "ChIJ-bbb"} {
		_, err := list.Add(ctx, 1, id)
		require.NoError(t, err)
	}
	// another user's entry must not leak in
	_, err := list.Add(ctx, 2, "ChIJ-aaa")
	require.NoError(t, err)
	notes := "brunch spot"
	require.NoError(t, list.UpdateNotes(ctx, 1, "ChIJ-bbb", &notes))

	entries, err := list.Places(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	names := []string{entries[0].Place.Name, entries[1].Place.Name, entries[2].Place.Name}
	assert.Equal(t, []string{"Annie's", "Duke's Grocery", "Zorba's"}, names)

	require.NotNil(t, entries[1].Notes)
	assert.Equal(t, "brunch spot", *entries[1].Notes)
	assert.Nil(t, entries[0].Notes)
}

func TestListPlaceIDs(t *testing.T) {
	gdb := testDB(t)
	seedPlace(t, gdb, "ChIJ-abc", "Momofuku CCDC")
	list := &List{DB: gdb}
	ctx := context.Background()

	_, err := list.Add(ctx, 1, "ChIJ-abc")
	require.NoError(t, err)

	ids, err := list.placeIDs(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ids["ChIJ-abc"])
	assert.False(t, ids["ChIJ-other"])
}
