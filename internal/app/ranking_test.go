package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
)

func TestRank_BudgetManali(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"A", "Manali", "4000", "4.1", "WiFi", "0.6"},
		{"B", "Manali", "4500", "4.5", "WiFi", "0.9"},
		{"C", "Manali", "9000", "4.8", "WiFi", "0.95"},
	})

	got, err := app.Rank(tbl, domain.RecommendationQuery{Destination: "Manali", Tier: domain.Budget})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, names(got))
}

func TestFilter_TierBoundaries(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"p5000", "Goa", "5000", "", "", "0.5"},
		{"p5001", "Goa", "5001", "", "", "0.5"},
		{"p10000", "Goa", "10000", "", "", "0.5"},
		{"p10001", "Goa", "10001", "", "", "0.5"},
		{"noprice", "Goa", "", "", "", "0.5"},
		{"garbage", "Goa", "cheap", "", "", "0.5"},
	})

	cases := map[domain.PriceTier][]string{
		domain.Budget:  {"p5000"},
		domain.Comfort: {"p5001", "p10000"},
		domain.Luxury:  {"p10001"},
	}
	for tier, want := range cases {
		t.Run(tier.String(), func(t *testing.T) {
			got := app.Filter(tbl, domain.RecommendationQuery{Destination: "Goa", Tier: tier})
			assert.Equal(t, want, names(got))
		})
	}
}

func TestFilter_AmenitiesAreASubsetMatch(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"both", "Munnar", "3000", "", "WiFi, Pool, Spa", "0.5"},
		{"wifi-only", "Munnar", "3000", "", "WiFi", "0.5"},
		{"lowercase", "Munnar", "3000", "", "wifi, pool", "0.5"},
		{"none", "Munnar", "3000", "", "", "0.5"},
	})

	q := domain.RecommendationQuery{Destination: "Munnar", Tier: domain.Budget, Amenities: []string{"WiFi", "Pool"}}
	assert.Equal(t, []string{"both"}, names(app.Filter(tbl, q)))

	q.Amenities = nil
	assert.Len(t, app.Filter(tbl, q), 4)
}

func TestFilter_DestinationIsExact(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"x", "Manali", "3000", "", "", "0.5"},
		{"y", "manali", "3000", "", "", "0.5"},
	})
	got := app.Filter(tbl, domain.RecommendationQuery{Destination: "Manali", Tier: domain.Budget})
	assert.Equal(t, []string{"x"}, names(got))
}

func TestRank_DropsMissingScoresAndCapsAtThree(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"h1", "Munnar", "12000", "", "", "0.71"},
		{"h2", "Munnar", "15000", "", "", ""},
		{"h3", "Munnar", "11000", "", "", "0.99"},
		{"h4", "Munnar", "20000", "", "", "0.80"},
		{"h5", "Munnar", "25000", "", "", "0.10"},
	})

	got, err := app.Rank(tbl, domain.RecommendationQuery{Destination: "Munnar", Tier: domain.Luxury})
	require.NoError(t, err)
	assert.Equal(t, []string{"h3", "h4", "h1"}, names(got))
}

func TestRank_TiesKeepDatasetOrder(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{
		{"first", "Darjeeling", "6000", "", "", "0.8"},
		{"second", "Darjeeling", "7000", "", "", "0.8"},
		{"third", "Darjeeling", "8000", "", "", "0.8"},
		{"fourth", "Darjeeling", "9000", "", "", "0.8"},
	})
	q := domain.RecommendationQuery{Destination: "Darjeeling", Tier: domain.Comfort}

	got, err := app.Rank(tbl, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, names(got))

	again, err := app.Rank(tbl, q)
	require.NoError(t, err)
	assert.Equal(t, got, again, "ranking must be repeatable")
}

func TestRank_EmptyIsNotAnError(t *testing.T) {
	tbl := mustTable(t, fullHeader, [][]string{{"x", "Manali", "3000", "", "", "0.5"}})

	got, err := app.Rank(tbl, domain.RecommendationQuery{Destination: "Goa", Tier: domain.Budget})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRank_MissingSentimentColumn(t *testing.T) {
	tbl := mustTable(t, fullHeader[:5], [][]string{{"x", "Manali", "3000", "4", "WiFi"}})

	_, err := app.Rank(tbl, domain.RecommendationQuery{Destination: "Manali", Tier: domain.Budget})
	assert.ErrorIs(t, err, domain.ErrMissingSentimentColumn)
}
