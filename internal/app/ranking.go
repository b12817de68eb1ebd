package app

import (
	"sort"

	"yatrimitra/internal/domain"
)

// TopN is how many hotels a recommendation shows.
const TopN = 3

// Filter keeps rows at the destination, inside the price tier, and offering
// every required amenity. Dataset order is preserved.
func Filter(t *domain.Table, q domain.RecommendationQuery) []domain.HotelRecord {
	var out []domain.HotelRecord
	for _, h := range t.Records() {
		if h.Destination != q.Destination {
			continue
		}
		if !q.Tier.Contains(h.Price) {
			continue
		}
		if !hasAll(h, q.Amenities) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Rank returns at most TopN filtered hotels ordered by sentiment score, highest
// first. Rows without a score are dropped; ties keep dataset order. An empty
// result is not an error.
func Rank(t *domain.Table, q domain.RecommendationQuery) ([]domain.HotelRecord, error) {
	if !t.HasColumn(domain.ColSentimentScore) {
		return nil, domain.ErrMissingSentimentColumn
	}
	return rankFiltered(Filter(t, q)), nil
}

func rankFiltered(filtered []domain.HotelRecord) []domain.HotelRecord {
	scored := make([]domain.HotelRecord, 0, len(filtered))
	for _, h := range filtered {
		if h.SentimentScore != nil {
			scored = append(scored, h)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].SentimentScore > *scored[j].SentimentScore
	})
	if len(scored) > TopN {
		scored = scored[:TopN]
	}
	return scored
}

func hasAll(h domain.HotelRecord, required []string) bool {
	for _, a := range required {
		if !h.HasAmenity(a) {
			return false
		}
	}
	return true
}
