package app

import (
	"context"
	"fmt"

	"yatrimitra/internal/domain"
)

// ImportService copies a loaded dataset into the hotel store and refreshes
// cached coordinates.
type ImportService struct {
	store    domain.HotelStore
	resolver *Resolver
}

func NewImportService(store domain.HotelStore, r *Resolver) *ImportService {
	return &ImportService{store: store, resolver: r}
}

// ImportTable replaces the stored hotels with the table's rows, preserving
// dataset order. An empty table leaves the store untouched so a blank or
// unreadable workbook cannot wipe it.
func (s *ImportService) ImportTable(ctx context.Context, t *domain.Table) error {
	recs := t.Records()
	if len(recs) == 0 {
		return nil
	}
	if err := s.store.ReplaceHotels(ctx, recs); err != nil {
		return fmt.Errorf("replace %d hotels: %w", len(recs), err)
	}
	return nil
}

// RefreshCoordinates re-geocodes the hotel. A fresh answer replaces the cached
// coordinate; a failed lookup keeps whatever the cache already holds.
func (s *ImportService) RefreshCoordinates(ctx context.Context, h domain.HotelRecord) (domain.Coordinate, domain.CoordSource) {
	return s.resolver.Refresh(ctx, h.Name, h.Destination)
}
