package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// requiredColumns are the headers the source file must carry. Extra
// columns (rank, tagline, budget, writers) are ignored.
var requiredColumns = []string{
	"name", "year", "certificate", "genre",
	"directors", "casts", "rating", "run_time", "box_office",
}

// Load reads and cleans the movie table from path. A missing or
// structurally unreadable file is an error: the caller is expected to
// treat it as fatal at startup rather than run against partial data.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds.path = path
	return ds, nil
}

// Read parses a CSV stream with a header row into a cleaned Dataset.
// Malformed individual fields fall back silently (zero, or absent for
// rating) and are tallied in the load stats; only structural problems
// such as a missing column or a ragged row produce an error.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		ds.movies = append(ds.movies, cleanRecord(rec, idx, &ds.stats))
		ds.stats.Rows++
	}
	return ds, nil
}

// columnIndex maps required column names to their positions in the
// header, case-insensitively.
func columnIndex(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	idx := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		i, ok := byName[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func cleanRecord(rec []string, idx map[string]int, stats *LoadStats) Movie {
	field := func(col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	m := Movie{
		Name:         field("name"),
		Certificate:  field("certificate"),
		Genre:        field("genre"),
		Directors:    field("directors"),
		Casts:        field("casts"),
		RawBoxOffice: field("box_office"),
	}

	if y, err := strconv.Atoi(field("year")); err == nil {
		m.Year = y
	} else {
		stats.YearFallbacks++
	}

	if rawRating := field("rating"); rawRating != "" {
		if v, err := strconv.ParseFloat(rawRating, 64); err == nil {
			m.Rating = &v
		}
	}
	if m.Rating == nil {
		stats.MissingRatings++
	}

	var ok bool
	if m.RunTime, ok = parseRunTime(field("run_time")); !ok {
		stats.RuntimeFallbacks++
	}
	if m.BoxOffice, ok = parseBoxOffice(m.RawBoxOffice); !ok {
		stats.BoxOfficeFallbacks++
	}
	if m.Certificate == "" {
		stats.MissingCertificates++
	}
	return m
}
