package place

import (
	"context"
	"testing"

	"resties/internal/auth"
	"resties/internal/geo"
	"resties/internal/gmaps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNearby struct {
	calls      int
	lastLat    float64
	lastLng    float64
	lastRadius int
	lastTerm   string
	results    []gmaps.PlaceResult
	err        error
}

func (f *fakeNearby) Nearby(ctx context.Context, lat, lng float64, radiusMeters int, keyword string) ([]gmaps.PlaceResult, error) {
	f.calls++
	f.lastLat, f.lastLng, f.lastRadius, f.lastTerm = lat, lng, radiusMeters, keyword
	return f.results, f.err
}

func newSearch(t *testing.T, gdb *gorm.DB, provider *fakeNearby) *Search {
	t.Helper()
	// coordinates come straight from the warm cache, no geocoder involved
	require.NoError(t, gdb.Create(&geo.ZipGeocode{Zip: "87004", Lat: 35.3, Lng: -106.55}).Error)
	list := &List{DB: gdb}
	return &Search{
		DB:       gdb,
		Geo:      &geo.Cache{DB: gdb},
		Provider: provider,
		List:     list,
	}
}

func closed(name, id string) gmaps.PlaceResult {
	return gmaps.PlaceResult{PlaceID: id, Name: name, PermanentlyClosed: true}
}

func TestSearchAnnotatesMembership(t *testing.T) {
	gdb := testDB(t)
	provider := &fakeNearby{results: []gmaps.PlaceResult{
		{PlaceID: "ChIJ-saved", Name: "The Range Cafe"},
		{PlaceID: "ChIJ-new", Name: "Abuelita's"},
		closed("Shuttered Diner", "ChIJ-closed"),
	}}
	s := newSearch(t, gdb, provider)
	ctx := context.Background()

	seedPlace(t, gdb, "ChIJ-saved", "The Range Cafe")
	_, err := s.List.Add(ctx, 1, "ChIJ-saved")
	require.NoError(t, err)

	results, err := s.Nearby(ctx, 1, SearchInput{Term: "range", Zip: "87004"})
	require.NoError(t, err)
	require.Len(t, results, 2, "permanently closed places are dropped")

	assert.Equal(t, "ChIJ-saved", results[0].PlaceID)
	assert.True(t, results[0].AlreadyInList)
	assert.Equal(t, "ChIJ-new", results[1].PlaceID)
	assert.False(t, results[1].AlreadyInList)

	// search is read-only: no catalog row, no entry appeared
	var placeCount, entryCount int64
	require.NoError(t, gdb.Model(&Place{}).Count(&placeCount).Error)
	require.NoError(t, gdb.Model(&ListEntry{}).Count(&entryCount).Error)
	assert.EqualValues(t, 1, placeCount)
	assert.EqualValues(t, 1, entryCount)
}

func TestSearchRequiresTerm(t *testing.T) {
	provider := &fakeNearby{}
	s := newSearch(t, testDB(t), provider)

	_, err := s.Nearby(context.Background(), 1, SearchInput{Term: "   ", Zip: "87004"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, provider.calls)
}

func TestSearchFallsBackToHomeZip(t *testing.T) {
	gdb := testDB(t)
	provider := &fakeNearby{}
	s := newSearch(t, gdb, provider)

	require.NoError(t, gdb.Create(&auth.User{
		UserName: "isaac", Email: "iceman@yoohoo.com",
		PasswordHash: "x", Role: "user", ZipCode: "87004",
	}).Error)
	var u auth.User
	require.NoError(t, gdb.First(&u, "user_name = ?", "isaac").Error)

	_, err := s.Nearby(context.Background(), u.ID, SearchInput{Term: "tacos"})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 35.3, provider.lastLat)
	assert.Equal(t, -106.55, provider.lastLng)
	assert.Equal(t, "tacos", provider.lastTerm)
}

func TestSearchRadius(t *testing.T) {
	tests := []struct {
		name  string
		in    SearchInput
		wantM int
	}{
		{"default", SearchInput{Term: "tacos", Zip: "87004"}, 20000},
		{"meters", SearchInput{Term: "tacos", Zip: "87004", RadiusMeters: 5000}, 5000},
		{"miles converted", SearchInput{Term: "tacos", Zip: "87004", RadiusMiles: 2}, 3218},
		{"meters win over miles", SearchInput{Term: "tacos", Zip: "87004", RadiusMeters: 750, RadiusMiles: 2}, 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeNearby{}
			s := newSearch(t, testDB(t), provider)

			_, err := s.Nearby(context.Background(), 1, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantM, provider.lastRadius)
		})
	}
}

func TestSearchRejectsMalformedZip(t *testing.T) {
	provider := &fakeNearby{}
	s := newSearch(t, testDB(t), provider)

	_, err := s.Nearby(context.Background(), 1, SearchInput{Term: "tacos", Zip: "12ab5"})
	assert.ErrorIs(t, err, geo.ErrInvalidZip)
	assert.Equal(t, 0, provider.calls)
}

func TestSearchProviderFailure(t *testing.T) {
	provider := &fakeNearby{err: &gmaps.APIError{Endpoint: "/place/nearbysearch/json", Status: "OVER_QUERY_LIMIT"}}
	s := newSearch(t, testDB(t), provider)

	_, err := s.Nearby(context.Background(), 1, SearchInput{Term: "tacos", Zip: "87004"})
	var apiErr *gmaps.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	provider := &fakeNearby{}
	s := newSearch(t, testDB(t), provider)

	results, err := s.Nearby(context.Background(), 1, SearchInput{Term: "nothing", Zip: "87004"})
	require.NoError(t, err)
	assert.Empty(t, results)
}
