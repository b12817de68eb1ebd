package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
)

func TestImportTable(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"A", "Manali", "4000", "4.1", "WiFi", "0.6"},
		{"B", "Munnar", "4500", "4.5", "Pool", "0.9"},
	})
	store := &fakeStore{}

	require.NoError(t, app.NewImportService(store, nil).ImportTable(context.Background(), tbl))
	assert.Equal(t, []string{"A", "B"}, names(store.got))
	assert.Equal(t, 1, store.got[1].Row)
}

func TestImportTable_ShorterTableReplacesRows(t *testing.T) {
	store := &fakeStore{}
	svc := app.NewImportService(store, nil)
	ctx := context.Background()

	require.NoError(t, svc.ImportTable(ctx, mustTable(t, fullHeader, [][]string{
		{"A", "Manali", "4000", "", "", "0.6"},
		{"B", "Manali", "4000", "", "", "0.6"},
		{"C", "Manali", "4000", "", "", "0.6"},
	})))
	require.NoError(t, svc.ImportTable(ctx, mustTable(t, fullHeader, [][]string{
		{"A", "Manali", "4000", "", "", "0.6"},
		{"B", "Manali", "4000", "", "", "0.6"},
	})))
	assert.Equal(t, []string{"A", "B"}, names(store.got))
	assert.Equal(t, 2, store.calls)
}

func TestImportTable_StoreError(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{{"A", "Manali", "4000", "", "", ""}})

	err := app.NewImportService(&fakeStore{err: errBoom}, nil).ImportTable(context.Background(), tbl)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "replace 1 hotels")
}

func TestImportTable_EmptyIsNoop(t *testing.T) {
	store := &fakeStore{err: errBoom}
	require.NoError(t, app.NewImportService(store, nil).ImportTable(context.Background(), domain.EmptyTable()))
	assert.Zero(t, store.calls)
}

func TestRefreshCoordinates_OverwritesStaleCache(t *testing.T) {
	cache := &fakeCache{store: map[string]domain.Coordinate{
		"coords:1:A:Manali": {Lat: 0, Lon: 0},
	}}
	geo := &fakeGeocoder{coord: domain.Coordinate{Lat: 32.24, Lon: 77.19}}
	svc := app.NewImportService(&fakeStore{}, app.NewResolver(geo, cache, time.Hour))

	c, src := svc.RefreshCoordinates(context.Background(), domain.HotelRecord{Name: "A", Destination: "Manali"})
	assert.Equal(t, domain.SourceGeocoder, src)
	assert.Equal(t, geo.coord, c)
	assert.Equal(t, int32(1), geo.calls.Load())
	assert.Equal(t, geo.coord, cache.store["coords:1:A:Manali"])
}

func TestRefreshCoordinates_FailedLookupKeepsCachedCoordinate(t *testing.T) {
	good := domain.Coordinate{Lat: 32.24, Lon: 77.19}
	cache := &fakeCache{store: map[string]domain.Coordinate{"coords:1:A:Manali": good}}
	geo := &fakeGeocoder{err: errBoom}
	svc := app.NewImportService(&fakeStore{}, app.NewResolver(geo, cache, time.Hour))

	c, src := svc.RefreshCoordinates(context.Background(), domain.HotelRecord{Name: "A", Destination: "Manali"})
	assert.Equal(t, domain.SourceGeocoder, src)
	assert.Equal(t, good, c)
	assert.Equal(t, good, cache.store["coords:1:A:Manali"])
	assert.Empty(t, cache.dels)

	// the API keeps serving the geocoded point
	c, src = app.NewResolver(geo, cache, time.Hour).Resolve(context.Background(), "A", "Manali")
	assert.Equal(t, domain.SourceGeocoder, src)
	assert.Equal(t, good, c)
}

func TestRefreshCoordinates_FailedLookupWithoutCacheFallsBack(t *testing.T) {
	svc := app.NewImportService(&fakeStore{}, app.NewResolver(&fakeGeocoder{err: errBoom}, &fakeCache{}, time.Hour))

	c, src := svc.RefreshCoordinates(context.Background(), domain.HotelRecord{Name: "A", Destination: "Manali"})
	assert.Equal(t, domain.SourceFallback, src)
	assert.Equal(t, app.FallbackCoordinate("A", "Manali"), c)
}
