package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATASET_SOURCE", "DATASET_PATH", "GEOCODER_PROVIDER", "GEOCODER_RPS", "CACHE_TTL_SECONDS", "IMPORT_WORKERS"} {
		t.Setenv(k, "")
	}
	c := Load()
	assert.Equal(t, "excel", c.DatasetSource)
	assert.Equal(t, "Dataset.xlsx", c.DatasetPath)
	assert.Equal(t, "nominatim", c.GeocoderProvider)
	assert.Equal(t, 1.0, c.GeocoderRPS)
	assert.Equal(t, 24*time.Hour, c.CacheTTL)
	assert.Equal(t, 4, c.Workers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "mysql")
	t.Setenv("GEOCODER_RPS", "0.5")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("IMPORT_WORKERS", "many")
	c := Load()
	assert.Equal(t, "mysql", c.DatasetSource)
	assert.Equal(t, 0.5, c.GeocoderRPS)
	assert.Equal(t, time.Minute, c.CacheTTL)
	assert.Equal(t, 4, c.Workers, "bad integers fall back to the default")
}
