package engine

// seed.go - loading the cleaned dataset into the engine

import (
	"context"
	"fmt"
)

// Table names the engine exposes to queries.
const (
	// MoviesTable holds the cleaned records: normalized box office,
	// numeric rating (NULL when absent), runtime in minutes.
	MoviesTable = "movies"
	// RawTable holds the source file as the engine ingested it, with
	// box office still text. Useful for inspecting what the cleaning
	// rules changed.
	RawTable = "movies_raw"
)

const createMoviesSQL = `CREATE TABLE ` + MoviesTable + ` (
	name TEXT,
	year INTEGER,
	certificate TEXT,
	genre TEXT,
	directors TEXT,
	casts TEXT,
	rating DOUBLE,
	run_time INTEGER,
	box_office DOUBLE,
	box_office_raw TEXT
)`

const insertMovieSQL = `INSERT INTO ` + MoviesTable +
	` VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// seed creates the movies table from the cleaned dataset and, when
// the dataset came from a file, loads the raw file alongside it.
func (e *Engine) seed(ctx context.Context) error {
	if e.ds == nil {
		return fmt.Errorf("engine has no dataset to seed")
	}

	if err := e.db.Exec(ctx, "DROP TABLE IF EXISTS "+MoviesTable); err != nil {
		return err
	}
	if err := e.db.Exec(ctx, createMoviesSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", MoviesTable, err)
	}

	for _, m := range e.ds.Movies() {
		err := e.db.Exec(ctx, insertMovieSQL,
			m.Name, m.Year, m.Certificate, m.Genre, m.Directors, m.Casts,
			m.Rating, m.RunTime, m.BoxOffice, m.RawBoxOffice)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", MoviesTable, err)
		}
	}
	e.logger.Debug("seeded movies table", "rows", e.ds.Len())

	if path := e.ds.Path(); path != "" {
		if err := e.db.LoadCSV(ctx, RawTable, path); err != nil {
			return fmt.Errorf("failed to load raw table: %w", err)
		}
		e.logger.Debug("loaded raw table", "path", path)
	}
	return nil
}
