package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Dataset column headers, exactly as they appear in the spreadsheet.
const (
	ColHotelName      = "Hotel Name"
	ColDestination    = "Destination"
	ColPrice          = "Price"
	ColRatings        = "Ratings"
	ColAmenities      = "Amenities"
	ColSentimentScore = "sentiment_score"
)

// RequiredColumns must be present for a dataset to load at all.
var RequiredColumns = []string{ColHotelName, ColDestination, ColPrice}

// HotelRecord is one dataset row. Numeric fields are nil when the source
// value was missing or not a number.
type HotelRecord struct {
	Row            int      `json:"-"` // position in the source dataset
	Name           string   `json:"name"`
	Destination    string   `json:"destination"`
	Price          *float64 `json:"price"`
	Rating         *float64 `json:"rating"`
	SentimentScore *float64 `json:"sentiment_score"`
	AmenitiesRaw   string   `json:"-"`
	Amenities      []string `json:"amenities"`
}

// HasAmenity reports literal, case-sensitive membership in the amenity list.
func (h HotelRecord) HasAmenity(a string) bool {
	for _, have := range h.Amenities {
		if have == a {
			return true
		}
	}
	return false
}

// Table is the loaded dataset. It is never mutated after NewTable returns.
type Table struct {
	columns map[string]bool
	rows    []HotelRecord
}

// EmptyTable is what a failed load hands back to callers.
func EmptyTable() *Table {
	return &Table{columns: map[string]bool{}}
}

// NewTable builds a Table from a header row and data rows. Price, Ratings and
// sentiment_score are coerced to numbers; anything unparsable becomes nil.
// Name and Destination keep the cell text as-is: the name seeds the fallback
// hash and the destination is matched exactly against picker values.
// It fails only when a required column is absent.
func NewTable(header []string, rows [][]string) (*Table, error) {
	idx := make(map[string]int, len(header))
	cols := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; dup || h == "" {
			continue
		}
		idx[h] = i
		cols[h] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !cols[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	t := &Table{columns: cols, rows: make([]HotelRecord, 0, len(rows))}
	for n, row := range rows {
		if isBlank(row) {
			continue
		}
		raw := cell(row, ColAmenities)
		t.rows = append(t.rows, HotelRecord{
			Row:            n,
			Name:           cell(row, ColHotelName),
			Destination:    cell(row, ColDestination),
			Price:          ParseNumber(cell(row, ColPrice)),
			Rating:         ParseNumber(cell(row, ColRatings)),
			SentimentScore: ParseNumber(cell(row, ColSentimentScore)),
			AmenitiesRaw:   raw,
			Amenities:      SplitAmenities(raw),
		})
	}
	return t, nil
}

// HasColumn reports whether the source carried the given header.
func (t *Table) HasColumn(name string) bool { return t.columns[name] }

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Records returns a copy of the rows in dataset order.
func (t *Table) Records() []HotelRecord {
	out := make([]HotelRecord, len(t.rows))
	copy(out, t.rows)
	return out
}

// Destinations lists distinct destinations in order of first appearance.
func (t *Table) Destinations() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t.rows {
		if r.Destination == "" || seen[r.Destination] {
			continue
		}
		seen[r.Destination] = true
		out = append(out, r.Destination)
	}
	return out
}

// Amenities is the sorted catalog of every amenity offered by any hotel.
func (t *Table) Amenities() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t.rows {
		for _, a := range r.Amenities {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	sort.Strings(out)
	return out
}

// ParseNumber is the explicit parse-with-default step: nil for blanks,
// garbage, NaN and infinities.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// SplitAmenities splits the stored comma-separated list into trimmed, non-empty tokens.
func SplitAmenities(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
