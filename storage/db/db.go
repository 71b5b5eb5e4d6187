// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db archives processed benchmark runs in a SQL database.
//
// Each stored file is a Run, identified by its execution mode,
// thread count and dataset. Its measurements are stored in long form,
// one row per (repetition, section) pair, so that any number of runs
// of the same configuration can later be combined into a single
// table.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/aclements/go-gg/table"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
)

// DB is a high-level interface to a run archive. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun         *sql.Stmt
	insertMeasurement *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Mode VARCHAR(32) NOT NULL,
	Threads INT NOT NULL,
	Dataset INT NOT NULL,
	Source VARCHAR(1024) NOT NULL,
	Created BIGINT NOT NULL{{if not .sqlite3}},
	Index (Mode, Threads, Dataset){{end}}
);
CREATE TABLE IF NOT EXISTS Measurements (
	RunID BIGINT UNSIGNED,
	Pos INT,
	Rep INT NOT NULL,
	Section VARCHAR(255) NOT NULL,
	Value DOUBLE,
	PRIMARY KEY (RunID, Pos),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS RunsConfig ON Runs(Mode, Threads, Dataset);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Mode, Threads, Dataset, Source, Created) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertMeasurement, err = db.sql.Prepare("INSERT INTO Measurements(RunID, Pos, Rep, Section, Value) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// RunInfo identifies the configuration a run was measured under.
type RunInfo struct {
	Mode    string // "sequential" or "parallel"
	Threads int
	Dataset int
	Source  string // file the measurements were read from
}

// A Run is one stored processed-data file.
type Run struct {
	ID int64
	RunInfo
	Created time.Time

	// db is the underlying database that this run is stored in.
	db *DB
}

// InsertRun stores the long table t as a new run described by info.
// The run and its measurements are written in a single transaction,
// so a failed insert leaves no trace in the archive. NaN values are
// stored as NULL.
func (db *DB) InsertRun(ctx context.Context, info RunInfo, t *table.Table) (r *Run, err error) {
	created := now().UTC().Truncate(time.Second)

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			r = nil
		} else if err = tx.Commit(); err != nil {
			r = nil
		}
	}()

	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, info.Mode, info.Threads, info.Dataset, info.Source, created.Unix())
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if t.Len() > 0 {
		runs := t.MustColumn(runfmt.ColRun).([]int)
		secs := t.MustColumn(runfmt.ColSection).([]string)
		vals := t.MustColumn(runfmt.ColValue).([]float64)
		stmt := tx.StmtContext(ctx, db.insertMeasurement)
		for i := range secs {
			var v sql.NullFloat64
			if !math.IsNaN(vals[i]) {
				v = sql.NullFloat64{Float64: vals[i], Valid: true}
			}
			if _, err = stmt.ExecContext(ctx, id, i, runs[i], secs[i], v); err != nil {
				return nil, fmt.Errorf("insert measurement %d of run %d: %w", i, id, err)
			}
		}
	}
	return &Run{ID: id, RunInfo: info, Created: created, db: db}, nil
}

// LoadTable returns the measurements of every run matching mode,
// threads and dataset as a single long table. Repetitions are
// renumbered so that the runs follow each other in the order they
// were stored. The table is empty if nothing matches.
func (db *DB) LoadTable(ctx context.Context, mode string, threads, dataset int) (*table.Table, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT m.RunID, m.Rep, m.Section, m.Value
FROM Measurements m JOIN Runs r ON m.RunID = r.RunID
WHERE r.Mode = ? AND r.Threads = ? AND r.Dataset = ?
ORDER BY m.RunID, m.Pos`, mode, threads, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs, secs, vals := []int{}, []string{}, []float64{}
	var (
		lastID     int64 = -1
		base, next int
	)
	for rows.Next() {
		var (
			id  int64
			rep int
			sec string
			v   sql.NullFloat64
		)
		if err := rows.Scan(&id, &rep, &sec, &v); err != nil {
			return nil, err
		}
		if id != lastID {
			base, lastID = next, id
		}
		next = max(next, base+rep+1)
		runs = append(runs, base+rep)
		secs = append(secs, sec)
		if v.Valid {
			vals = append(vals, v.Float64)
		} else {
			vals = append(vals, math.NaN())
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var b table.Builder
	b.Add(runfmt.ColRun, runs).Add(runfmt.ColSection, secs).Add(runfmt.ColValue, vals)
	return b.Done(), nil
}

// Runs returns every stored run in the order it was stored.
func (db *DB) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID, Mode, Threads, Dataset, Source, Created FROM Runs ORDER BY RunID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Run
	for rows.Next() {
		r := &Run{db: db}
		var created int64
		if err := rows.Scan(&r.ID, &r.Mode, &r.Threads, &r.Dataset, &r.Source, &created); err != nil {
			return nil, err
		}
		r.Created = time.Unix(created, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRuns returns the number of stored runs.
func (db *DB) CountRuns(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Runs").Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertRun.Close(); err != nil {
		return err
	}
	if err := db.insertMeasurement.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
