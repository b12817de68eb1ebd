package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/domain"
)

// LoadDataset reads the source once and builds the immutable table the rest
// of the service works from. On any failure it returns an empty table along
// with a *domain.DataLoadError; there are no retries.
func LoadDataset(ctx context.Context, src domain.DatasetSource) (*domain.Table, error) {
	header, rows, err := src.Load(ctx)
	if err != nil {
		return domain.EmptyTable(), &domain.DataLoadError{Source: src.Name(), Err: err}
	}
	t, err := domain.NewTable(header, rows)
	if err != nil {
		return domain.EmptyTable(), &domain.DataLoadError{Source: src.Name(), Err: err}
	}
	if !t.HasColumn(domain.ColSentimentScore) {
		log.Warn().Str("source", src.Name()).Msg("dataset has no sentiment_score column; ranking will fail")
	}
	observability.DatasetRows.Set(float64(t.Len()))
	log.Info().Str("source", src.Name()).Int("rows", t.Len()).Msg("dataset loaded")
	return t, nil
}
