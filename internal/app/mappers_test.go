package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
)

func TestSentimentLabel(t *testing.T) {
	for _, tc := range []struct {
		score float64
		want  string
	}{
		{0.95, "Excellent"},
		{0.8, "Excellent"},
		{0.79, "Very Good"},
		{0.7, "Very Good"},
		{0.6, "Good"},
		{0.5, "Satisfactory"},
		{0.49, "Mixed"},
		{-0.3, "Mixed"},
	} {
		got, desc := app.SentimentLabel(tc.score)
		assert.Equal(t, tc.want, got, "score %v", tc.score)
		assert.NotEmpty(t, desc)
	}
}

func TestAmenityIcon(t *testing.T) {
	assert.Equal(t, "wifi", app.AmenityIcon("Free WiFi"))
	assert.Equal(t, "swimming-pool", app.AmenityIcon("Swimming Pool"))
	assert.Equal(t, "umbrella-beach", app.AmenityIcon("Beach Access"))
	assert.Equal(t, "snowflake", app.AmenityIcon("AC"))
	assert.Equal(t, "check-circle", app.AmenityIcon("Bonfire"))
}

func TestMarkerColor(t *testing.T) {
	assert.Equal(t, "green", app.MarkerColor(0.75))
	assert.Equal(t, "blue", app.MarkerColor(0.74))
	assert.Equal(t, "blue", app.MarkerColor(0.5))
	assert.Equal(t, "orange", app.MarkerColor(0.49))
}

func TestMapsSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Snow+Valley+Resort+Manali",
		app.MapsSearchURL("Snow Valley Resort", "Manali"))
}

func TestStayOf(t *testing.T) {
	in := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	s, err := app.StayOf(in, time.Date(2025, 3, 2, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.Stay{CheckIn: "2025-03-01", CheckOut: "2025-03-02", Nights: 1, Label: "1 night"}, s)

	s, err = app.StayOf(in, in.AddDate(0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Nights)
	assert.Equal(t, "4 nights", s.Label)

	_, err = app.StayOf(in, in)
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
	_, err = app.StayOf(in, in.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}
