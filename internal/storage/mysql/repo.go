package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"yatrimitra/internal/domain"
)

// batchSize keeps each INSERT well under max_allowed_packet and the
// 65535 placeholder limit.
const batchSize = 500

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ReplaceHotels makes hs the full contents of the hotels table in one
// transaction. Rows from an earlier, longer import do not survive.
func (r *Repo) ReplaceHotels(ctx context.Context, hs []domain.HotelRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteHotelsSQL); err != nil {
		return fmt.Errorf("clear hotels: %w", err)
	}
	for start := 0; start < len(hs); start += batchSize {
		end := min(start+batchSize, len(hs))
		if err = insertBatch(ctx, tx, hs[start:end]); err != nil {
			return fmt.Errorf("rows %d-%d: %w", start, end-1, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, hs []domain.HotelRecord) error {
	values := make([]string, 0, len(hs))
	args := make([]any, 0, len(hs)*7)
	for _, h := range hs {
		values = append(values, "(?,?,?,?,?,?,?)")
		args = append(args,
			h.Row,
			h.Name,
			h.Destination,
			valF64(h.Price),
			valF64(h.Rating),
			valStr(h.AmenitiesRaw),
			valF64(h.SentimentScore),
		)
	}
	_, err := tx.ExecContext(ctx, insertHotelsPrefix+strings.Join(values, ","), args...)
	return err
}

// Source exposes the hotels table as a dataset in spreadsheet shape.
type Source struct{ db *sql.DB }

func NewSource(db *sql.DB) *Source { return &Source{db: db} }

func (s *Source) Name() string { return "mysql:hotels" }

func (s *Source) Load(ctx context.Context) ([]string, [][]string, error) {
	rows, err := s.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	header := []string{
		domain.ColHotelName, domain.ColDestination, domain.ColPrice,
		domain.ColRatings, domain.ColAmenities, domain.ColSentimentScore,
	}
	var out [][]string
	for rows.Next() {
		var idx int
		var name, dest string
		var price, ratings, score sql.NullFloat64
		var amenities sql.NullString
		if err := rows.Scan(&idx, &name, &dest, &price, &ratings, &amenities, &score); err != nil {
			return nil, nil, err
		}
		out = append(out, []string{
			name, dest, fmtNull(price), fmtNull(ratings), amenities.String, fmtNull(score),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return header, out, nil
}

func fmtNull(f sql.NullFloat64) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}
