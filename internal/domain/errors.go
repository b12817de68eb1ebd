package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSentimentColumn means the dataset has no sentiment_score column,
	// so no ranking can be produced.
	ErrMissingSentimentColumn = errors.New("'sentiment_score' column not found in dataset")
	ErrUnknownPriceTier       = errors.New("unknown price tier")
	ErrDatasetUnavailable     = errors.New("dataset unavailable")
	ErrInvalidStay            = errors.New("check-out must be after check-in")
	// ErrWeatherUnavailable is returned by weather clients when the service
	// answered but had no data for the city.
	ErrWeatherUnavailable = errors.New("weather data not available")
)

// SchemaError lists required dataset columns that were not found.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "dataset is missing required columns: " + strings.Join(e.Missing, ", ")
}

// DataLoadError wraps any failure to read or parse the dataset.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("error loading data from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
