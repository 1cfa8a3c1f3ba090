package pokedex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/lilellia/ivchecker/internal/iv"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE species (
	name TEXT PRIMARY KEY,
	hp   INTEGER NOT NULL,
	atk  INTEGER NOT NULL,
	def  INTEGER NOT NULL,
	spa  INTEGER NOT NULL,
	spd  INTEGER NOT NULL,
	spe  INTEGER NOT NULL
);
CREATE TABLE stat_changes (
	species    TEXT    NOT NULL REFERENCES species(name),
	generation INTEGER NOT NULL,
	hp         INTEGER NOT NULL,
	atk        INTEGER NOT NULL,
	def        INTEGER NOT NULL,
	spa        INTEGER NOT NULL,
	spd        INTEGER NOT NULL,
	spe        INTEGER NOT NULL,
	PRIMARY KEY (species, generation)
);
CREATE TABLE natures (
	name    TEXT PRIMARY KEY,
	raised  TEXT NOT NULL,
	lowered TEXT NOT NULL
);
CREATE TABLE characteristics (
	description TEXT PRIMARY KEY,
	stat        TEXT    NOT NULL,
	residue     INTEGER NOT NULL
);
`

// LoadSQLite reads the tables from a SQLite database written by ExportSQLite
// (or any database with the same schema).
func LoadSQLite(ctx context.Context, path string, opts Options) (*Pokedex, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var t tables
	if t.Species, err = readSpecies(ctx, db); err != nil {
		return nil, err
	}
	if t.Natures, err = readNatures(ctx, db); err != nil {
		return nil, err
	}
	if t.Characteristics, err = readCharacteristics(ctx, db); err != nil {
		return nil, err
	}

	return build(t, opts)
}

func readSpecies(ctx context.Context, db *sql.DB) ([]speciesRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, hp, atk, def, spa, spd, spe
		FROM species
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying species: %w", err)
	}
	defer rows.Close()

	var out []speciesRow
	index := make(map[string]int)
	for rows.Next() {
		var row speciesRow
		var s iv.Stats
		if err := rows.Scan(&row.Name, &s[0], &s[1], &s[2], &s[3], &s[4], &s[5]); err != nil {
			return nil, fmt.Errorf("scanning species: %w", err)
		}
		row.Stats = s[:]
		index[row.Name] = len(out)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading species: %w", err)
	}

	changes, err := db.QueryContext(ctx, `
		SELECT species, generation, hp, atk, def, spa, spd, spe
		FROM stat_changes
	`)
	if err != nil {
		return nil, fmt.Errorf("querying stat changes: %w", err)
	}
	defer changes.Close()

	for changes.Next() {
		var name string
		var gen int
		var s iv.Stats
		if err := changes.Scan(&name, &gen, &s[0], &s[1], &s[2], &s[3], &s[4], &s[5]); err != nil {
			return nil, fmt.Errorf("scanning stat change: %w", err)
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("stat change for unknown species %q", name)
		}
		if out[i].Changes == nil {
			out[i].Changes = make(map[int][]int)
		}
		out[i].Changes[gen] = s[:]
	}
	if err := changes.Err(); err != nil {
		return nil, fmt.Errorf("reading stat changes: %w", err)
	}

	return out, nil
}

func readNatures(ctx context.Context, db *sql.DB) ([]natureRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, raised, lowered FROM natures ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying natures: %w", err)
	}
	defer rows.Close()

	var out []natureRow
	for rows.Next() {
		var row natureRow
		if err := rows.Scan(&row.Name, &row.Raised, &row.Lowered); err != nil {
			return nil, fmt.Errorf("scanning nature: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading natures: %w", err)
	}
	return out, nil
}

func readCharacteristics(ctx context.Context, db *sql.DB) ([]characteristicRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT description, stat, residue FROM characteristics ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying characteristics: %w", err)
	}
	defer rows.Close()

	var out []characteristicRow
	for rows.Next() {
		var row characteristicRow
		if err := rows.Scan(&row.Description, &row.Stat, &row.Residue); err != nil {
			return nil, fmt.Errorf("scanning characteristic: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading characteristics: %w", err)
	}
	return out, nil
}

// ExportSQLite writes every table to a new SQLite database at path.
// It refuses to overwrite an existing file.
func (p *Pokedex) ExportSQLite(ctx context.Context, path string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("database already exists: %s", path)
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("checking database path: %w", statErr)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		db.Close()
		// a half-written file would block the next attempt
		if err != nil {
			os.Remove(path)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for _, name := range p.speciesNames {
		sp := p.species[key(name)]
		b := sp.Base
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO species (name, hp, atk, def, spa, spd, spe)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, sp.Name, b[0], b[1], b[2], b[3], b[4], b[5]); err != nil {
			return fmt.Errorf("inserting species %q: %w", sp.Name, err)
		}

		for gen, c := range sp.Changes {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO stat_changes (species, generation, hp, atk, def, spa, spd, spe)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, sp.Name, gen, c[0], c[1], c[2], c[3], c[4], c[5]); err != nil {
				return fmt.Errorf("inserting stat change %q/%d: %w", sp.Name, gen, err)
			}
		}
	}

	for _, n := range p.natureList {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO natures (name, raised, lowered) VALUES (?, ?, ?)
		`, n.Name, n.Raised.String(), n.Lowered.String()); err != nil {
			return fmt.Errorf("inserting nature %q: %w", n.Name, err)
		}
	}

	for _, c := range p.characteristicList {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO characteristics (description, stat, residue) VALUES (?, ?, ?)
		`, c.Description, c.HighStat.String(), c.Residue); err != nil {
			return fmt.Errorf("inserting characteristic %q: %w", c.Description, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	p.opts.Logger.Info("exported pokedex", "path", path, "species", len(p.speciesNames))
	return nil
}
